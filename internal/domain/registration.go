package domain

import (
	"context"
	"time"
)

// Registration is a ticket signup tied to one event and one email. Rows are
// immutable once created; TotalAmount is fixed at registration time using the
// event's ticket price at that instant.
// swagger:model Registration
type Registration struct {
	ID             int64     `json:"registration_id"`
	EventID        int64     `json:"event_id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone"`
	TicketQuantity int       `json:"ticket_quantity"`
	TotalAmount    float64   `json:"total_amount"`
	RegisteredAt   time.Time `json:"registration_date"`
}

// RegistrationWithEvent is a registration row joined with its event's name and
// ticket price, as listed under an event.
// swagger:model RegistrationWithEvent
type RegistrationWithEvent struct {
	Registration
	EventName   string   `json:"event_name"`
	TicketPrice *float64 `json:"ticket_price"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Register runs the whole registration workflow in one transaction:
	// lock the event row and read its ticket price (ErrNotFound when the
	// event does not exist), compute the total, reject an existing
	// (event_id, email) pair with ErrAlreadyRegistered, insert the row, and
	// increment the event's current_amount atomically. On success reg.ID,
	// reg.TotalAmount and reg.RegisteredAt are populated and the locked
	// event row is returned for use by callers (e.g. confirmation email).
	Register(ctx context.Context, reg *Registration) (*Event, error)
	ListByEventID(ctx context.Context, eventID int64) ([]*RegistrationWithEvent, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
}

// RegistrationService defines the registration workflow.
type RegistrationService interface {
	// Register validates the input, creates the registration and updates the
	// event's fundraising total. ErrInvalidInput when a required field is
	// missing or the quantity is not positive.
	Register(ctx context.Context, reg *Registration) (*Registration, error)
}
