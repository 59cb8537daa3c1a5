package llm

// PriceVariant is a named price tier for one item (e.g. Half/Full).
type PriceVariant struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// Extraction is the structured result for one menu text line.
// Variants holds every price tier parsed from the line, in line order;
// the first variant is the item's default price.
type Extraction struct {
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Variants       []PriceVariant `json:"variants"`
	Category       string         `json:"category"`
	IsVeg          bool           `json:"is_veg"`
	IsSpicy        bool           `json:"is_spicy"`
	IsChefsSpecial bool           `json:"is_chefs_special"`
	IsAvailable    bool           `json:"is_available"`
}

// Price returns the default price: the first parsed variant.
func (e *Extraction) Price() float64 {
	if len(e.Variants) == 0 {
		return 0
	}
	return e.Variants[0].Price
}
