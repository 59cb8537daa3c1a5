package ingest

import (
	"github.com/shopspring/decimal"

	"hungryhouse/internal/llm"
)

// OutcomeKind tags the two cases of a per-line result.
type OutcomeKind string

const (
	OutcomeItem   OutcomeKind = "item"
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome is the result for one classified menu line: either a
// reviewable item or a failed line, never both.
type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Item   *ReviewItem `json:"item,omitempty"`
	Failed *FailedLine `json:"failed,omitempty"`
}

// ReviewItem is an extracted menu item awaiting human review.
// Price is the first parsed variant; Variants keeps every tier so the
// reviewer can see what else the line encoded.
type ReviewItem struct {
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Price          decimal.Decimal    `json:"price"`
	Variants       []llm.PriceVariant `json:"variants,omitempty"`
	Category       string             `json:"category"`
	CategoryID     string             `json:"category_id"`
	IsVeg          bool               `json:"is_veg"`
	IsSpicy        bool               `json:"is_spicy"`
	IsChefsSpecial bool               `json:"is_chefs_special"`
	IsAvailable    bool               `json:"is_available"`
	ImageURL       string             `json:"image_url"`
	ImageHint      string             `json:"image_hint"`
	SourceLine     string             `json:"source_line"`
}

// FailedLine records a line whose extraction was exhausted.
type FailedLine struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

// ReviewList aggregates per-line outcomes in original input order.
type ReviewList struct {
	Outcomes []Outcome `json:"outcomes"`
}

func (l *ReviewList) Items() []ReviewItem {
	var items []ReviewItem
	for _, o := range l.Outcomes {
		if o.Kind == OutcomeItem {
			items = append(items, *o.Item)
		}
	}
	return items
}

func (l *ReviewList) FailedCount() int {
	n := 0
	for _, o := range l.Outcomes {
		if o.Kind == OutcomeFailed {
			n++
		}
	}
	return n
}
