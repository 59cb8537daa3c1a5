package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func line(price string, qty int) Line {
	return Line{
		ItemID:    "item-1",
		Name:      "Test Item",
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestComputeEmptyOrder(t *testing.T) {
	_, err := Compute(nil)
	if err != ErrEmptyOrder {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestComputeInvalidLines(t *testing.T) {
	cases := []struct {
		name  string
		lines []Line
	}{
		{"negative price", []Line{line("-10", 1)}},
		{"zero quantity", []Line{line("100", 0)}},
		{"negative quantity", []Line{line("100", -2)}},
		{"bad line among good", []Line{line("100", 1), line("50", 0)}},
	}

	for _, tc := range cases {
		if _, err := Compute(tc.lines); err != ErrInvalidLine {
			t.Fatalf("%s: expected ErrInvalidLine, got %v", tc.name, err)
		}
	}
}

func TestComputeNoRoundOff(t *testing.T) {
	// subtotal=100.00 -> cgst=2.50, sgst=2.50, raw=105.00 -> total=105
	bill, err := Compute([]Line{line("100.00", 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bill.Subtotal.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected subtotal 100.00, got %s", bill.Subtotal)
	}
	if !bill.CGST.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("expected cgst 2.50, got %s", bill.CGST)
	}
	if !bill.SGST.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("expected sgst 2.50, got %s", bill.SGST)
	}
	if !bill.Total.Equal(decimal.NewFromInt(105)) {
		t.Fatalf("expected total 105, got %s", bill.Total)
	}
	if bill.RoundOffDisplayed() {
		t.Fatalf("round-off of %s should not be displayed", bill.RoundOff)
	}
}

func TestComputeWithRoundOff(t *testing.T) {
	// subtotal=99.00 -> cgst=sgst=2.475, raw=103.95 -> total=104, roundOff=+0.05
	bill, err := Compute([]Line{line("99.00", 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bill.Total.Equal(decimal.NewFromInt(104)) {
		t.Fatalf("expected total 104, got %s", bill.Total)
	}
	if !bill.RoundOff.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("expected round-off 0.05, got %s", bill.RoundOff)
	}
	if !bill.RoundOffDisplayed() {
		t.Fatal("round-off 0.05 should be displayed")
	}
}

func TestComputeNegativeRoundOff(t *testing.T) {
	// subtotal=99.40 -> raw=104.37 -> total=104, roundOff=-0.37
	bill, err := Compute([]Line{line("99.40", 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bill.Total.Equal(decimal.NewFromInt(104)) {
		t.Fatalf("expected total 104, got %s", bill.Total)
	}
	if !bill.RoundOff.IsNegative() {
		t.Fatalf("expected negative round-off, got %s", bill.RoundOff)
	}
	if !bill.RoundOffDisplayed() {
		t.Fatal("non-zero round-off should be displayed")
	}
}

func TestComputeReconciliation(t *testing.T) {
	cases := [][]Line{
		{line("100.00", 1)},
		{line("99.00", 1)},
		{line("150", 2), line("220", 1)},
		{line("33.33", 3), line("0.01", 7)},
		{line("0", 5)},
	}

	for i, lines := range cases {
		bill, err := Compute(lines)
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}

		sum := bill.Subtotal.Add(bill.CGST).Add(bill.SGST).Add(bill.RoundOff)
		if !sum.Equal(bill.Total) {
			t.Fatalf(
				"case %d: components do not reconcile: %s + %s + %s + %s != %s",
				i, bill.Subtotal, bill.CGST, bill.SGST, bill.RoundOff, bill.Total,
			)
		}

		if bill.Total.LessThan(bill.Subtotal) {
			t.Fatalf("case %d: total %s < subtotal %s", i, bill.Total, bill.Subtotal)
		}
		if !bill.Total.Equal(bill.Total.Truncate(0)) {
			t.Fatalf("case %d: total %s is not a whole number", i, bill.Total)
		}
		if bill.Total.IsNegative() {
			t.Fatalf("case %d: total %s is negative", i, bill.Total)
		}
	}
}

func TestComputeIsPure(t *testing.T) {
	lines := []Line{line("150", 2), line("99.50", 3)}

	first, err := Compute(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.Total.Equal(second.Total) || !first.RoundOff.Equal(second.RoundOff) {
		t.Fatal("pricing the same lines twice gave different results")
	}
}
