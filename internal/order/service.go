package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"hungryhouse/internal/billing"
	"hungryhouse/internal/table"
)

var ErrUnknownTable = errors.New("order references an unknown table")

type Service struct {
	repo   Repository
	tables table.Repository
}

func NewService(repo Repository, tables table.Repository) *Service {
	return &Service{repo: repo, tables: tables}
}

// PlaceOrder prices the lines and persists the order. Pricing errors
// (empty order, invalid line) are hard failures and nothing is written.
// The table, when given, must exist and is marked occupied.
func (s *Service) PlaceOrder(
	ctx context.Context,
	customerName string,
	tableID string,
	lines []billing.Line,
	createdBy string,
) (*Order, error) {

	bill, err := billing.Compute(lines)
	if err != nil {
		return nil, err
	}

	if tableID != "" {
		if _, err := s.tables.GetByID(ctx, tableID); err != nil {
			return nil, ErrUnknownTable
		}
	}

	o := &Order{
		ID:           uuid.New().String(),
		CustomerName: customerName,
		TableID:      tableID,
		Status:       StatusKOT,
		Lines:        lines,
		Bill:         *bill,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	if tableID != "" {
		if err := s.tables.UpdateStatus(ctx, tableID, table.StatusOccupied); err != nil {
			// Order is already placed; table state is best effort.
			return o, nil
		}
	}

	return o, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if o.TableID != "" {
		_ = s.tables.UpdateStatus(ctx, o.TableID, table.StatusAvailable)
	}

	return nil
}

// GenerateInvoice builds the invoice view and moves the order to BILLED.
func (s *Service) GenerateInvoice(ctx context.Context, id string) (*Invoice, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusBilled {
		if err := s.repo.UpdateStatus(ctx, id, StatusBilled); err != nil {
			return nil, err
		}
		o.Status = StatusBilled
	}

	return BuildInvoice(o), nil
}
