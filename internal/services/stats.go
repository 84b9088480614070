package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"charityevents/internal/domain"
)

type statsService struct {
	statsRepo      domain.StatsRepository
	contextTimeout time.Duration
}

// NewStatsService creates the dashboard statistics service.
func NewStatsService(statsRepo domain.StatsRepository, timeout time.Duration) domain.StatsService {
	return &statsService{
		statsRepo:      statsRepo,
		contextTimeout: timeout,
	}
}

// GetStats issues the three aggregates as ordered sequential calls. Each
// partial donation sum is rounded to the nearest integer before combining.
func (s *statsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	totalEvents, err := s.statsRepo.CountEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}
	totalRegistrations, err := s.statsRepo.CountRegistrations(ctx)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	eventDonations, registrationDonations, err := s.statsRepo.SumDonations(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum donations: %w", err)
	}

	return &domain.Stats{
		TotalEvents:        totalEvents,
		TotalRegistrations: totalRegistrations,
		TotalDonations:     int64(math.Round(eventDonations)) + int64(math.Round(registrationDonations)),
	}, nil
}
