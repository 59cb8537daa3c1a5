package llm

import "testing"

func TestParseExtractionFull(t *testing.T) {
	raw := []byte(`{
		"name": "Butter Chicken",
		"description": "Tender chicken in a rich tomato gravy",
		"variants": [
			{"label": "Half", "price": 220},
			{"label": "Full", "price": 380}
		],
		"category": "Mains",
		"is_veg": false,
		"is_spicy": true,
		"is_chefs_special": true,
		"is_available": true
	}`)

	e, err := ParseExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Name != "Butter Chicken" {
		t.Fatalf("unexpected name: %s", e.Name)
	}
	if len(e.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(e.Variants))
	}
	if e.Price() != 220 {
		t.Fatalf("expected first-variant price 220, got %v", e.Price())
	}
}

func TestParseExtractionFlatPrice(t *testing.T) {
	raw := []byte(`{"name": "Tomato Soup", "price": 150, "category": "Soups"}`)

	e, err := ParseExtraction(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(e.Variants) != 1 || e.Price() != 150 {
		t.Fatalf("expected single variant 150, got %+v", e.Variants)
	}
}

func TestParseExtractionAvailableDefaultsTrue(t *testing.T) {
	e, err := ParseExtraction([]byte(`{"name": "Dal Fry", "price": 120}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.IsAvailable {
		t.Fatal("is_available should default to true")
	}

	e, err = ParseExtraction([]byte(`{"name": "Dal Fry", "price": 120, "is_available": false}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.IsAvailable {
		t.Fatal("explicit is_available=false must be kept")
	}
}

func TestParseExtractionRejectsNonJSON(t *testing.T) {
	if _, err := ParseExtraction([]byte("Sure! Here is the JSON: {}")); err == nil {
		t.Fatal("expected error for non-json output")
	}
}
