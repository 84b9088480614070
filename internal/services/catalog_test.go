package services

import (
	"context"
	"testing"
	"time"

	"charityevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepo implements domain.CategoryRepository for tests.
type fakeCategoryRepo struct {
	categories []*domain.Category
	err        error
}

func (f *fakeCategoryRepo) ListAll(ctx context.Context) ([]*domain.Category, error) {
	return f.categories, f.err
}

// fakeOrganizationRepo implements domain.OrganizationRepository for tests.
type fakeOrganizationRepo struct {
	organizations []*domain.Organization
	err           error
}

func (f *fakeOrganizationRepo) ListAll(ctx context.Context) ([]*domain.Organization, error) {
	return f.organizations, f.err
}

func newCatalogService(eventRepo *fakeEventRepo, registrationRepo *fakeRegistrationRepo) domain.CatalogService {
	return NewCatalogService(eventRepo, registrationRepo, &fakeCategoryRepo{}, &fakeOrganizationRepo{}, time.Second)
}

func TestCatalogService_ListUpcomingEvents(t *testing.T) {
	ctx := context.Background()
	events := []*domain.EventSummary{
		{Event: domain.Event{ID: 1, Name: "Fun Run"}},
	}
	repo := &fakeEventRepo{listUpcoming: events}
	svc := newCatalogService(repo, &fakeRegistrationRepo{})

	got, err := svc.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	require.Equal(t, events, got)

	// Cutoff is the start of today, so events from earlier today are included.
	from := repo.listUpcomingFrom
	now := time.Now()
	assert.Equal(t, now.Year(), from.Year())
	assert.Equal(t, now.Month(), from.Month())
	assert.Equal(t, now.Day(), from.Day())
	assert.Zero(t, from.Hour())
	assert.Zero(t, from.Minute())
	assert.Zero(t, from.Second())
}

func TestCatalogService_SearchEvents(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	location := "Sydney"
	categoryID := int64(2)
	filter := domain.EventFilter{Date: &date, Location: &location, CategoryID: &categoryID}

	repo := &fakeEventRepo{searchResult: []*domain.EventSummary{}}
	svc := newCatalogService(repo, &fakeRegistrationRepo{})

	got, err := svc.SearchEvents(ctx, filter)
	require.NoError(t, err)
	require.Empty(t, got)
	assert.Equal(t, filter, repo.lastFilter, "filter must reach the repository unchanged")
}

func TestCatalogService_GetEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		detail := &domain.EventDetail{
			EventSummary: domain.EventSummary{Event: domain.Event{ID: 7, Name: "Gala"}},
		}
		repo := &fakeEventRepo{detail: detail}
		svc := newCatalogService(repo, &fakeRegistrationRepo{})

		got, err := svc.GetEvent(ctx, 7)
		require.NoError(t, err)
		require.Equal(t, detail, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeEventRepo{detailErr: domain.ErrNotFound}
		svc := newCatalogService(repo, &fakeRegistrationRepo{})

		_, err := svc.GetEvent(ctx, 99)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_ListEventRegistrations(t *testing.T) {
	ctx := context.Background()
	regs := []*domain.RegistrationWithEvent{
		{Registration: domain.Registration{ID: 1, EventID: 7, FullName: "Alice", Email: "a@b.com"}, EventName: "Gala"},
	}
	svc := newCatalogService(&fakeEventRepo{}, &fakeRegistrationRepo{listRegs: regs})

	got, err := svc.ListEventRegistrations(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, regs, got)
}

func TestCatalogService_ListCategoriesAndOrganizations(t *testing.T) {
	ctx := context.Background()
	categories := []*domain.Category{{ID: 1, Name: "Fun Run"}}
	organizations := []*domain.Organization{{ID: 1, Name: "Hope Foundation"}}
	svc := NewCatalogService(
		&fakeEventRepo{},
		&fakeRegistrationRepo{},
		&fakeCategoryRepo{categories: categories},
		&fakeOrganizationRepo{organizations: organizations},
		time.Second,
	)

	gotCategories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Equal(t, categories, gotCategories)

	gotOrganizations, err := svc.ListOrganizations(ctx)
	require.NoError(t, err)
	require.Equal(t, organizations, gotOrganizations)
}
