package domain

import (
	"context"
	"time"
)

// Event is a fundraising occasion with a monetary goal and a running total.
// CurrentAmount grows additively as registrations come in; admins may also
// overwrite it directly through a full-row update.
// swagger:model Event
type Event struct {
	ID             int64     `json:"event_id"`
	Name           string    `json:"event_name"`
	Description    *string   `json:"description"`
	DateTime       time.Time `json:"event_datetime"`
	Location       string    `json:"location"`
	TicketPrice    *float64  `json:"ticket_price"`
	GoalAmount     float64   `json:"goal_amount"`
	CurrentAmount  float64   `json:"current_amount"`
	CategoryID     *int64    `json:"category_id"`
	OrganizationID *int64    `json:"organization_id"`
	IsActive       bool      `json:"is_active"`
}

// EventSummary is an event row joined with its category and organization names,
// as returned by the public listing and search endpoints.
// swagger:model EventSummary
type EventSummary struct {
	Event
	CategoryName     *string `json:"category_name"`
	OrganizationName *string `json:"organization_name"`
}

// EventDetail extends EventSummary with the organization's description and
// contact details for the event detail page.
// swagger:model EventDetail
type EventDetail struct {
	EventSummary
	OrganizationDescription *string `json:"organization_description"`
	ContactDetails          *string `json:"contact_details"`
}

// AdminEvent is an event row annotated with its registration count for the
// administrative overview. It includes inactive and past events.
// swagger:model AdminEvent
type AdminEvent struct {
	EventSummary
	RegistrationCount int64 `json:"registration_count"`
}

// EventFilter holds the optional conjunctive search predicates. A nil field
// means the predicate is omitted entirely, not wildcarded.
type EventFilter struct {
	// Date matches the calendar day of event_datetime.
	Date *time.Time
	// Location matches as a case-insensitive substring.
	Location *string
	// CategoryID matches exactly.
	CategoryID *int64
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// ListUpcoming returns active events with event_datetime >= from,
	// ascending by datetime.
	ListUpcoming(ctx context.Context, from time.Time) ([]*EventSummary, error)
	// Search returns active events matching all present filter predicates,
	// ascending by datetime.
	Search(ctx context.Context, filter EventFilter) ([]*EventSummary, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	GetDetail(ctx context.Context, id int64) (*EventDetail, error)
	// ListAll returns every event with its registration count, descending
	// by datetime, regardless of active flag or date.
	ListAll(ctx context.Context) ([]*AdminEvent, error)
	Create(ctx context.Context, event *Event) error
	// Update replaces the full row, including current_amount and is_active.
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id int64) error
}

// CatalogService defines the public browsing operations.
type CatalogService interface {
	ListUpcomingEvents(ctx context.Context) ([]*EventSummary, error)
	SearchEvents(ctx context.Context, filter EventFilter) ([]*EventSummary, error)
	GetEvent(ctx context.Context, id int64) (*EventDetail, error)
	ListEventRegistrations(ctx context.Context, eventID int64) ([]*RegistrationWithEvent, error)
	ListCategories(ctx context.Context) ([]*Category, error)
	ListOrganizations(ctx context.Context) ([]*Organization, error)
}

// EventService defines the admin-side event lifecycle.
type EventService interface {
	ListAllEvents(ctx context.Context) ([]*AdminEvent, error)
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	// DeleteEvent refuses with ErrHasRegistrations while any registration
	// references the event.
	DeleteEvent(ctx context.Context, id int64) error
}
