package postgres

import (
	"context"
	"database/sql"

	"charityevents/internal/domain"
)

type organizationRepository struct {
	DB *sql.DB
}

func NewOrganizationRepository(db *sql.DB) domain.OrganizationRepository {
	return &organizationRepository{DB: db}
}

func (r *organizationRepository) ListAll(ctx context.Context) ([]*domain.Organization, error) {
	query := `
		SELECT organization_id, organization_name, description, contact_details
		FROM organizations
		ORDER BY organization_name
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orgs := make([]*domain.Organization, 0)
	for rows.Next() {
		o := &domain.Organization{}
		var descNull, contactNull sql.NullString
		if err := rows.Scan(&o.ID, &o.Name, &descNull, &contactNull); err != nil {
			return nil, err
		}
		if descNull.Valid {
			o.Description = &descNull.String
		}
		if contactNull.Valid {
			o.ContactDetails = &contactNull.String
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}
