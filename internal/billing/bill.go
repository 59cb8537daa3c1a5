package billing

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder  = errors.New("order has no lines")
	ErrInvalidLine = errors.New("order line has negative price or non-positive quantity")
)

// GST is split into two independent components (CGST + SGST),
// tracked separately for compliance reporting.
var gstComponentRate = decimal.RequireFromString("0.025")

// Line is one priced row of an in-progress order.
type Line struct {
	ItemID    string          `json:"item_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Bill is the priced view of an order.
// Invariant: Subtotal + CGST + SGST + RoundOff == Total, exactly.
type Bill struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	RoundOff decimal.Decimal `json:"round_off"`
	Total    decimal.Decimal `json:"total"`
}

// Compute prices an order.
// PURE business logic (NO db / NO http)
func Compute(lines []Line) (*Bill, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.UnitPrice.IsNegative() || line.Quantity <= 0 {
			return nil, ErrInvalidLine
		}
		subtotal = subtotal.Add(
			line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		)
	}

	cgst := subtotal.Mul(gstComponentRate)
	sgst := subtotal.Mul(gstComponentRate)

	raw := subtotal.Add(cgst).Add(sgst)

	// Round half-up to the nearest whole currency unit.
	total := raw.Round(0)

	return &Bill{
		Subtotal: subtotal,
		CGST:     cgst,
		SGST:     sgst,
		RoundOff: total.Sub(raw),
		Total:    total,
	}, nil
}

// RoundOffDisplayed reports whether the round-off line should appear on
// the invoice. A residual that renders as 0.00 at two decimals
// (including negative zero) is treated as absent.
func (b *Bill) RoundOffDisplayed() bool {
	return !b.RoundOff.Round(2).IsZero()
}
