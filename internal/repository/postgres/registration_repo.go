package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"charityevents/internal/domain"
)

// uniqueViolation is the Postgres error code for a unique constraint violation.
const uniqueViolation = "23505"

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Register runs the check-then-insert-then-increment workflow in a single
// transaction. The event row is locked up front so the total computed from
// its ticket price and the current_amount increment cannot interleave with a
// concurrent registration, and the (event_id, email) unique constraint backs
// the duplicate check should two transactions race past it anyway.
func (r *registrationRepository) Register(ctx context.Context, reg *domain.Registration) (*domain.Event, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	event := &domain.Event{}
	var priceNull sql.NullFloat64
	err = tx.QueryRowContext(ctx,
		`SELECT event_id, event_name, ticket_price FROM events WHERE event_id = $1 FOR UPDATE`,
		reg.EventID,
	).Scan(&event.ID, &event.Name, &priceNull)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	price := 0.0
	if priceNull.Valid {
		price = priceNull.Float64
		event.TicketPrice = &priceNull.Float64
	}
	reg.TotalAmount = price * float64(reg.TicketQuantity)

	var existingID int64
	err = tx.QueryRowContext(ctx,
		`SELECT registration_id FROM registrations WHERE event_id = $1 AND email = $2`,
		reg.EventID, reg.Email,
	).Scan(&existingID)
	if err == nil {
		return nil, domain.ErrAlreadyRegistered
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO registrations (event_id, full_name, email, phone, ticket_quantity, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING registration_id, registration_date
	`, reg.EventID, reg.FullName, reg.Email, reg.Phone, reg.TicketQuantity, reg.TotalAmount,
	).Scan(&reg.ID, &reg.RegisteredAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET current_amount = current_amount + $1 WHERE event_id = $2`,
		reg.TotalAmount, reg.EventID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.RegistrationWithEvent, error) {
	query := `
		SELECT r.registration_id, r.event_id, r.full_name, r.email, r.phone,
		       r.ticket_quantity, r.total_amount, r.registration_date,
		       e.event_name, e.ticket_price
		FROM registrations r
		JOIN events e ON r.event_id = e.event_id
		WHERE r.event_id = $1
		ORDER BY r.registration_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	regs := make([]*domain.RegistrationWithEvent, 0)
	for rows.Next() {
		reg := &domain.RegistrationWithEvent{}
		var phoneNull sql.NullString
		var priceNull sql.NullFloat64
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.FullName, &reg.Email, &phoneNull,
			&reg.TicketQuantity, &reg.TotalAmount, &reg.RegisteredAt,
			&reg.EventName, &priceNull,
		); err != nil {
			return nil, err
		}
		if phoneNull.Valid {
			reg.Phone = &phoneNull.String
		}
		if priceNull.Valid {
			reg.TicketPrice = &priceNull.Float64
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *registrationRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`,
		eventID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
