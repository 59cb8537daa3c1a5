package order

import (
	"context"
	"errors"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository defines all database operations for orders.
// Order contents are write-once; only the status moves (KOT -> BILLED).
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}
