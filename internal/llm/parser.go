package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ParseExtraction decodes the model's JSON output into an Extraction.
// is_available defaults to true when the model omits it.
func ParseExtraction(raw []byte) (*Extraction, error) {
	if !json.Valid(raw) {
		return nil, errors.New("model returned non-json output")
	}

	var wire struct {
		Name           string         `json:"name"`
		Description    string         `json:"description"`
		Variants       []PriceVariant `json:"variants"`
		Price          *float64       `json:"price"`
		Category       string         `json:"category"`
		IsVeg          bool           `json:"is_veg"`
		IsSpicy        bool           `json:"is_spicy"`
		IsChefsSpecial bool           `json:"is_chefs_special"`
		IsAvailable    *bool          `json:"is_available"`
	}

	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, errors.New("invalid extraction JSON shape")
	}

	// Some model outputs flatten a single price instead of a variants list.
	if len(wire.Variants) == 0 && wire.Price != nil {
		wire.Variants = []PriceVariant{{Price: *wire.Price}}
	}

	available := true
	if wire.IsAvailable != nil {
		available = *wire.IsAvailable
	}

	return &Extraction{
		Name:           strings.TrimSpace(wire.Name),
		Description:    strings.TrimSpace(wire.Description),
		Variants:       wire.Variants,
		Category:       strings.TrimSpace(wire.Category),
		IsVeg:          wire.IsVeg,
		IsSpicy:        wire.IsSpicy,
		IsChefsSpecial: wire.IsChefsSpecial,
		IsAvailable:    available,
	}, nil
}
