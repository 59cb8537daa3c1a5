package order

import (
	"testing"

	"github.com/shopspring/decimal"

	"hungryhouse/internal/billing"
)

func pricedOrder(t *testing.T, price string) *Order {
	t.Helper()

	lines := []billing.Line{
		{ItemID: "i1", Name: "Thali", UnitPrice: decimal.RequireFromString(price), Quantity: 1},
	}
	bill, err := billing.Compute(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &Order{
		ID:           "3f1c2b7a-0000-0000-0000-000000000000",
		CustomerName: "Ravi",
		Status:       StatusKOT,
		Lines:        lines,
		Bill:         *bill,
	}
}

func TestBuildInvoiceHidesZeroRoundOff(t *testing.T) {
	inv := BuildInvoice(pricedOrder(t, "100.00"))

	if inv.RoundOff != "" {
		t.Fatalf("zero round-off must not be rendered, got %q", inv.RoundOff)
	}
	if !inv.Total.Equal(decimal.NewFromInt(105)) {
		t.Fatalf("expected total 105, got %s", inv.Total)
	}
}

func TestBuildInvoiceShowsRoundOff(t *testing.T) {
	// 99.00 -> raw 103.95 -> total 104, round-off +0.05
	inv := BuildInvoice(pricedOrder(t, "99.00"))

	if inv.RoundOff != "+₹0.05" {
		t.Fatalf("expected +₹0.05, got %q", inv.RoundOff)
	}
	if !inv.Total.Equal(decimal.NewFromInt(104)) {
		t.Fatalf("expected total 104, got %s", inv.Total)
	}
}

func TestBuildInvoiceNegativeRoundOff(t *testing.T) {
	// 99.40 -> raw 104.37 -> total 104, round-off -0.37
	inv := BuildInvoice(pricedOrder(t, "99.40"))

	if inv.RoundOff != "-₹0.37" {
		t.Fatalf("expected -₹0.37, got %q", inv.RoundOff)
	}
}

func TestBuildInvoiceLineAmounts(t *testing.T) {
	o := pricedOrder(t, "150")
	o.Lines[0].Quantity = 3
	bill, _ := billing.Compute(o.Lines)
	o.Bill = *bill

	inv := BuildInvoice(o)

	if len(inv.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(inv.Lines))
	}
	if !inv.Lines[0].Amount.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("expected amount 450, got %s", inv.Lines[0].Amount)
	}
}

func TestInvoiceNumberFromOrderID(t *testing.T) {
	inv := BuildInvoice(pricedOrder(t, "100"))

	if inv.Number != "INV-3F1C2B7A" {
		t.Fatalf("unexpected invoice number: %s", inv.Number)
	}
}
