package table

import (
	"context"
	"errors"
)

var ErrTableNotFound = errors.New("table not found")

// Repository defines all database operations for tables.
type Repository interface {
	List(ctx context.Context) ([]Table, error)
	GetByID(ctx context.Context, id string) (*Table, error)
	Create(ctx context.Context, t *Table) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}
