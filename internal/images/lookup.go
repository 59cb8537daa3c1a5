package images

import "strings"

// Result is a representative image for a menu item.
type Result struct {
	ImageURL  string `json:"image_url"`
	ImageHint string `json:"image_hint"`
}

// PlaceholderURL is returned when no keyword matches an item name.
const PlaceholderURL = "https://placehold.co/600x400?text=Dish"

// Lookup maps item names to stock image URLs by keyword. It never
// fails; callers always get a usable Result back.
type Lookup struct {
	table []keywordImage
}

type keywordImage struct {
	keyword string
	url     string
	hint    string
}

func NewLookup() *Lookup {
	return &Lookup{
		table: []keywordImage{
			{"paneer", "https://images.unsplash.com/photo-1631452180519-c014fe946bc7", "paneer curry"},
			{"chicken", "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398", "chicken dish"},
			{"biryani", "https://images.unsplash.com/photo-1589302168068-964664d93dc0", "biryani rice"},
			{"dal", "https://images.unsplash.com/photo-1546833999-b9f581a1996d", "dal lentils"},
			{"naan", "https://images.unsplash.com/photo-1601050690597-df0568f70950", "naan bread"},
			{"roti", "https://images.unsplash.com/photo-1565557623262-b51c2513a641", "roti bread"},
			{"soup", "https://images.unsplash.com/photo-1547592166-23ac45744acd", "bowl of soup"},
			{"pizza", "https://images.unsplash.com/photo-1513104890138-7c749659a591", "pizza"},
			{"burger", "https://images.unsplash.com/photo-1568901346375-23c9450c58cd", "burger"},
			{"dosa", "https://images.unsplash.com/photo-1630383249896-424e482df921", "dosa"},
			{"lassi", "https://images.unsplash.com/photo-1553530666-ba11a7da3888", "glass of lassi"},
			{"tea", "https://images.unsplash.com/photo-1571934811356-5cc061b6821f", "cup of tea"},
			{"coffee", "https://images.unsplash.com/photo-1509042239860-f550ce710b93", "cup of coffee"},
			{"ice cream", "https://images.unsplash.com/photo-1563805042-7684c019e1cb", "ice cream"},
			{"cake", "https://images.unsplash.com/photo-1578985545062-69928b1d9587", "slice of cake"},
			{"fish", "https://images.unsplash.com/photo-1519708227418-c8fd9a32b7a2", "fish dish"},
			{"salad", "https://images.unsplash.com/photo-1512621776951-a57141f2eefd", "fresh salad"},
			{"rice", "https://images.unsplash.com/photo-1516684732162-798a0062be99", "plate of rice"},
		},
	}
}

// Find returns an image for the item name, falling back to a generic
// placeholder when nothing matches.
func (l *Lookup) Find(itemName string) Result {
	name := strings.ToLower(itemName)

	for _, entry := range l.table {
		if strings.Contains(name, entry.keyword) {
			return Result{ImageURL: entry.url, ImageHint: entry.hint}
		}
	}

	return Result{
		ImageURL:  PlaceholderURL,
		ImageHint: strings.TrimSpace(itemName),
	}
}
