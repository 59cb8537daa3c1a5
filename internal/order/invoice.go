package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLine is one row of the printed bill.
type InvoiceLine struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// Invoice is the customer-facing view of a placed order. RoundOff is
// rendered only when it is non-zero at two decimals; the components
// always reconcile exactly to Total.
type Invoice struct {
	Number       string          `json:"number"`
	OrderID      string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	TableID      string          `json:"table_id,omitempty"`
	Lines        []InvoiceLine   `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	CGST         decimal.Decimal `json:"cgst"`
	SGST         decimal.Decimal `json:"sgst"`
	RoundOff     string          `json:"round_off,omitempty"`
	Total        decimal.Decimal `json:"total"`
	CreatedBy    string          `json:"created_by"`
	IssuedAt     time.Time       `json:"issued_at"`
}

// BuildInvoice derives the invoice view from a placed order.
func BuildInvoice(o *Order) *Invoice {
	inv := &Invoice{
		Number:       invoiceNumber(o.ID),
		OrderID:      o.ID,
		CustomerName: o.CustomerName,
		TableID:      o.TableID,
		Subtotal:     o.Subtotal.Round(2),
		CGST:         o.CGST.Round(2),
		SGST:         o.SGST.Round(2),
		Total:        o.Total,
		CreatedBy:    o.CreatedBy,
		IssuedAt:     time.Now().UTC(),
	}

	for _, line := range o.Lines {
		inv.Lines = append(inv.Lines, InvoiceLine{
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Amount:    line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
		})
	}

	if o.Bill.RoundOffDisplayed() {
		inv.RoundOff = formatRoundOff(o.RoundOff)
	}

	return inv
}

// formatRoundOff renders the residual with an explicit sign: "+₹0.05".
func formatRoundOff(d decimal.Decimal) string {
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s₹%s", sign, d.Abs().StringFixed(2))
}

func invoiceNumber(orderID string) string {
	short := strings.ReplaceAll(orderID, "-", "")
	if len(short) > 8 {
		short = short[:8]
	}
	return "INV-" + strings.ToUpper(short)
}
