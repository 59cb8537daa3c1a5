package menu

import "github.com/shopspring/decimal"

// Item is a persisted menu item.
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	CategoryID     string          `json:"category_id"`
	IsVeg          bool            `json:"is_veg"`
	IsSpicy        bool            `json:"is_spicy"`
	IsChefsSpecial bool            `json:"is_chefs_special"`
	IsAvailable    bool            `json:"is_available"`
	ImageURL       string          `json:"image_url"`
	ImageHint      string          `json:"image_hint"`
}
