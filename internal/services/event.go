package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charityevents/internal/domain"
)

type eventService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	contextTimeout   time.Duration
}

// NewEventService creates the admin-side event lifecycle service.
func NewEventService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		contextTimeout:   timeout,
	}
}

func (s *eventService) ListAllEvents(ctx context.Context) ([]*domain.AdminEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all events: %w", err)
	}
	return events, nil
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.Name == "" || event.Location == "" || event.DateTime.IsZero() || event.GoalAmount == 0 {
		return domain.ErrInvalidInput
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	count, err := s.registrationRepo.CountByEventID(ctx, id)
	if err != nil {
		return fmt.Errorf("count registrations: %w", err)
	}
	if count > 0 {
		return domain.ErrHasRegistrations
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
