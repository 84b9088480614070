package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charityevents/internal/domain"
)

type catalogService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	categoryRepo     domain.CategoryRepository
	organizationRepo domain.OrganizationRepository
	contextTimeout   time.Duration
}

// NewCatalogService creates the public browsing service over the given repositories.
func NewCatalogService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	categoryRepo domain.CategoryRepository,
	organizationRepo domain.OrganizationRepository,
	timeout time.Duration,
) domain.CatalogService {
	return &catalogService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		categoryRepo:     categoryRepo,
		organizationRepo: organizationRepo,
		contextTimeout:   timeout,
	}
}

func (s *catalogService) ListUpcomingEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	// Events from earlier today still count as upcoming; the cutoff is the
	// start of the current day, not the current instant.
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	events, err := s.eventRepo.ListUpcoming(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return events, nil
}

func (s *catalogService) SearchEvents(ctx context.Context, filter domain.EventFilter) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	return events, nil
}

func (s *catalogService) GetEvent(ctx context.Context, id int64) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	detail, err := s.eventRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event detail: %w", err)
	}
	return detail, nil
}

func (s *catalogService) ListEventRegistrations(ctx context.Context, eventID int64) ([]*domain.RegistrationWithEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list event registrations: %w", err)
	}
	return regs, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *catalogService) ListOrganizations(ctx context.Context) ([]*domain.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	orgs, err := s.organizationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}
