package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_CountEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

		repo := NewStatsRepository(db)
		count, err := repo.CountEvents(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(12), count)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).WillReturnError(sql.ErrConnDone)
		repo := NewStatsRepository(db)
		_, err = repo.CountEvents(ctx)
		require.Error(t, err)
	})
}

func TestStatsRepository_CountRegistrations(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(34))

	repo := NewStatsRepository(db)
	count, err := repo.CountRegistrations(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(34), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_SumDonations(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns both partial sums", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`COALESCE\(SUM\(current_amount\), 0\)`).
			WillReturnRows(sqlmock.NewRows([]string{"total_event_donations", "total_registration_amount"}).
				AddRow(500.4, 120.0))

		repo := NewStatsRepository(db)
		eventDonations, registrationDonations, err := repo.SumDonations(ctx)
		require.NoError(t, err)
		require.Equal(t, 500.4, eventDonations)
		require.Equal(t, 120.0, registrationDonations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`COALESCE\(SUM\(current_amount\), 0\)`).WillReturnError(sql.ErrConnDone)
		repo := NewStatsRepository(db)
		_, _, err = repo.SumDonations(ctx)
		require.Error(t, err)
	})
}
