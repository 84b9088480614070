package postgres

import (
	"context"
	"database/sql"
	"errors"

	"charityevents/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{DB: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	query := `
		SELECT admin_id, username, password_hash, salt
		FROM admins
		WHERE username = $1
	`
	a := &domain.Admin{}
	err := r.DB.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}
