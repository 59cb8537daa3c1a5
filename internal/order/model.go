package order

import (
	"time"

	"hungryhouse/internal/billing"
)

// Order statuses. KOT means the order has been sent to the kitchen;
// BILLED means an invoice has been generated for it.
const (
	StatusKOT    = "KOT"
	StatusBilled = "BILLED"
)

// Order is immutable once placed: there is no update path, only delete.
type Order struct {
	ID           string         `json:"id"`
	CustomerName string         `json:"customer_name"`
	TableID      string         `json:"table_id,omitempty"`
	Status       string         `json:"status"`
	Lines        []billing.Line `json:"lines"`
	billing.Bill
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}
