package postgres

import (
	"context"
	"database/sql"

	"charityevents/internal/domain"
)

type statsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &statsRepository{DB: db}
}

func (r *statsRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *statsRepository) CountRegistrations(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SumDonations reads both partial sums in one statement. Registration totals
// that already flowed into an event's current_amount appear in both sums;
// callers combine them as-is.
func (r *statsRepository) SumDonations(ctx context.Context) (float64, float64, error) {
	query := `
		SELECT COALESCE(SUM(current_amount), 0) AS total_event_donations,
		       (SELECT COALESCE(SUM(total_amount), 0) FROM registrations) AS total_registration_amount
		FROM events
	`
	var eventDonations, registrationDonations float64
	err := r.DB.QueryRowContext(ctx, query).Scan(&eventDonations, &registrationDonations)
	if err != nil {
		return 0, 0, err
	}
	return eventDonations, registrationDonations, nil
}
