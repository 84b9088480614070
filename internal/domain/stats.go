package domain

import "context"

// Stats are the aggregate counters shown on the admin dashboard.
// TotalDonations is the sum of every event's current_amount plus the sum of
// every registration's total_amount, each rounded to the nearest integer
// before combining. Amounts that flowed through both tables are counted in
// both sums; the observed behavior is kept as-is.
// swagger:model Stats
type Stats struct {
	TotalEvents        int64 `json:"total_events"`
	TotalRegistrations int64 `json:"total_registrations"`
	TotalDonations     int64 `json:"total_donations"`
}

// StatsRepository defines the aggregate queries backing the dashboard.
type StatsRepository interface {
	CountEvents(ctx context.Context) (int64, error)
	CountRegistrations(ctx context.Context) (int64, error)
	// SumDonations returns the two partial sums, unrounded: the sum of
	// events.current_amount and the sum of registrations.total_amount.
	SumDonations(ctx context.Context) (eventDonations, registrationDonations float64, err error)
}

// StatsService assembles the dashboard counters.
type StatsService interface {
	GetStats(ctx context.Context) (*Stats, error)
}
