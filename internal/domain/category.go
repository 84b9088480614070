package domain

import "context"

// Category is admin-managed reference data used to classify events.
// swagger:model Category
type Category struct {
	ID   int64  `json:"category_id"`
	Name string `json:"category_name"`
}

// CategoryRepository defines the interface for category storage
type CategoryRepository interface {
	ListAll(ctx context.Context) ([]*Category, error)
}
