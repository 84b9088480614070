package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"charityevents/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventSummaryColumns = `
	e.event_id, e.event_name, e.description, e.event_datetime, e.location,
	e.ticket_price, e.goal_amount, e.current_amount, e.category_id,
	e.organization_id, e.is_active, c.category_name, o.organization_name`

const eventSummaryJoins = `
	FROM events e
	LEFT JOIN categories c ON e.category_id = c.category_id
	LEFT JOIN organizations o ON e.organization_id = o.organization_id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEventSummary(s rowScanner) (*domain.EventSummary, error) {
	ev := &domain.EventSummary{}
	var descNull sql.NullString
	var priceNull sql.NullFloat64
	var catNull, orgNull sql.NullInt64
	var catNameNull, orgNameNull sql.NullString
	err := s.Scan(
		&ev.ID, &ev.Name, &descNull, &ev.DateTime, &ev.Location,
		&priceNull, &ev.GoalAmount, &ev.CurrentAmount, &catNull,
		&orgNull, &ev.IsActive, &catNameNull, &orgNameNull,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		ev.Description = &descNull.String
	}
	if priceNull.Valid {
		ev.TicketPrice = &priceNull.Float64
	}
	if catNull.Valid {
		ev.CategoryID = &catNull.Int64
	}
	if orgNull.Valid {
		ev.OrganizationID = &orgNull.Int64
	}
	if catNameNull.Valid {
		ev.CategoryName = &catNameNull.String
	}
	if orgNameNull.Valid {
		ev.OrganizationName = &orgNameNull.String
	}
	return ev, nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, from time.Time) ([]*domain.EventSummary, error) {
	query := `SELECT` + eventSummaryColumns + eventSummaryJoins + `
	WHERE e.is_active = TRUE AND e.event_datetime >= $1
	ORDER BY e.event_datetime ASC`
	rows, err := r.DB.QueryContext(ctx, query, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.EventSummary, 0)
	for rows.Next() {
		ev, err := scanEventSummary(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepository) Search(ctx context.Context, filter domain.EventFilter) ([]*domain.EventSummary, error) {
	conditions := []string{"e.is_active = TRUE"}
	args := []interface{}{}
	n := 1
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("e.event_datetime::date = $%d", n))
		args = append(args, filter.Date.Format("2006-01-02"))
		n++
	}
	if filter.Location != nil {
		conditions = append(conditions, fmt.Sprintf("e.location ILIKE $%d", n))
		args = append(args, "%"+*filter.Location+"%")
		n++
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, fmt.Sprintf("e.category_id = $%d", n))
		args = append(args, *filter.CategoryID)
		n++
	}
	query := `SELECT` + eventSummaryColumns + eventSummaryJoins + `
	WHERE ` + strings.Join(conditions, " AND ") + `
	ORDER BY e.event_datetime ASC`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.EventSummary, 0)
	for rows.Next() {
		ev, err := scanEventSummary(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT event_id, event_name, description, event_datetime, location,
		       ticket_price, goal_amount, current_amount, category_id,
		       organization_id, is_active
		FROM events
		WHERE event_id = $1
	`
	e := &domain.Event{}
	var descNull sql.NullString
	var priceNull sql.NullFloat64
	var catNull, orgNull sql.NullInt64
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Name, &descNull, &e.DateTime, &e.Location,
		&priceNull, &e.GoalAmount, &e.CurrentAmount, &catNull,
		&orgNull, &e.IsActive,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if priceNull.Valid {
		e.TicketPrice = &priceNull.Float64
	}
	if catNull.Valid {
		e.CategoryID = &catNull.Int64
	}
	if orgNull.Valid {
		e.OrganizationID = &orgNull.Int64
	}
	return e, nil
}

func (r *eventRepository) GetDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	query := `SELECT` + eventSummaryColumns + `,
	o.description, o.contact_details` + eventSummaryJoins + `
	WHERE e.event_id = $1`
	d := &domain.EventDetail{}
	var descNull sql.NullString
	var priceNull sql.NullFloat64
	var catNull, orgNull sql.NullInt64
	var catNameNull, orgNameNull, orgDescNull, contactNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, &descNull, &d.DateTime, &d.Location,
		&priceNull, &d.GoalAmount, &d.CurrentAmount, &catNull,
		&orgNull, &d.IsActive, &catNameNull, &orgNameNull,
		&orgDescNull, &contactNull,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if descNull.Valid {
		d.Description = &descNull.String
	}
	if priceNull.Valid {
		d.TicketPrice = &priceNull.Float64
	}
	if catNull.Valid {
		d.CategoryID = &catNull.Int64
	}
	if orgNull.Valid {
		d.OrganizationID = &orgNull.Int64
	}
	if catNameNull.Valid {
		d.CategoryName = &catNameNull.String
	}
	if orgNameNull.Valid {
		d.OrganizationName = &orgNameNull.String
	}
	if orgDescNull.Valid {
		d.OrganizationDescription = &orgDescNull.String
	}
	if contactNull.Valid {
		d.ContactDetails = &contactNull.String
	}
	return d, nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.AdminEvent, error) {
	query := `SELECT` + eventSummaryColumns + `,
	COUNT(r.registration_id) AS registration_count` + eventSummaryJoins + `
	LEFT JOIN registrations r ON e.event_id = r.event_id
	GROUP BY e.event_id, c.category_name, o.organization_name
	ORDER BY e.event_datetime DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.AdminEvent, 0)
	for rows.Next() {
		ev := &domain.AdminEvent{}
		var descNull sql.NullString
		var priceNull sql.NullFloat64
		var catNull, orgNull sql.NullInt64
		var catNameNull, orgNameNull sql.NullString
		if err := rows.Scan(
			&ev.ID, &ev.Name, &descNull, &ev.DateTime, &ev.Location,
			&priceNull, &ev.GoalAmount, &ev.CurrentAmount, &catNull,
			&orgNull, &ev.IsActive, &catNameNull, &orgNameNull,
			&ev.RegistrationCount,
		); err != nil {
			return nil, err
		}
		if descNull.Valid {
			ev.Description = &descNull.String
		}
		if priceNull.Valid {
			ev.TicketPrice = &priceNull.Float64
		}
		if catNull.Valid {
			ev.CategoryID = &catNull.Int64
		}
		if orgNull.Valid {
			ev.OrganizationID = &orgNull.Int64
		}
		if catNameNull.Valid {
			ev.CategoryName = &catNameNull.String
		}
		if orgNameNull.Valid {
			ev.OrganizationName = &orgNameNull.String
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (event_name, description, event_datetime, location,
		                    ticket_price, goal_amount, category_id, organization_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING event_id, current_amount, is_active
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, e.Description, e.DateTime, e.Location,
		e.TicketPrice, e.GoalAmount, e.CategoryID, e.OrganizationID,
	).Scan(&e.ID, &e.CurrentAmount, &e.IsActive)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET event_name = $1, description = $2, event_datetime = $3, location = $4,
		    ticket_price = $5, goal_amount = $6, current_amount = $7,
		    category_id = $8, organization_id = $9, is_active = $10
		WHERE event_id = $11
	`
	result, err := r.DB.ExecContext(ctx, query,
		e.Name, e.Description, e.DateTime, e.Location,
		e.TicketPrice, e.GoalAmount, e.CurrentAmount,
		e.CategoryID, e.OrganizationID, e.IsActive, e.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE event_id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
