package domain

import "context"

// Organization is the charity that runs one or more events.
// swagger:model Organization
type Organization struct {
	ID             int64   `json:"organization_id"`
	Name           string  `json:"organization_name"`
	Description    *string `json:"description"`
	ContactDetails *string `json:"contact_details"`
}

// OrganizationRepository defines the interface for organization storage
type OrganizationRepository interface {
	ListAll(ctx context.Context) ([]*Organization, error)
}
