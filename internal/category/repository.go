package category

import "context"

// Repository defines all database operations for categories.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, name string) (*Category, error)
	Delete(ctx context.Context, id string) error
}
