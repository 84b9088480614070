package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"charityevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		username   string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.Admin
		wantErr    bool
		isNotFound bool
	}{
		{
			name:     "success",
			username: "admin",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT admin_id, username, password_hash, salt`).
					WithArgs("admin").
					WillReturnRows(sqlmock.NewRows([]string{"admin_id", "username", "password_hash", "salt"}).
						AddRow(1, "admin", "$2a$10$hash", "abcdef"))
			},
			want: &domain.Admin{ID: 1, Username: "admin", PasswordHash: "$2a$10$hash", Salt: "abcdef"},
		},
		{
			name:     "not found",
			username: "nobody",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT admin_id, username, password_hash, salt`).
					WithArgs("nobody").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name:     "db error",
			username: "admin",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT admin_id, username, password_hash, salt`).
					WithArgs("admin").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAdminRepository(db)
			got, err := repo.GetByUsername(ctx, tt.username)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
