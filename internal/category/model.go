package category

// Category groups menu items. Resolved by case-insensitive name match.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
