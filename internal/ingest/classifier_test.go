package ingest

import "testing"

func TestClassifyItemAndHeading(t *testing.T) {
	out := ClassifyLines([]string{"Soups", "Tomato Soup – 150"})

	if len(out) != 1 {
		t.Fatalf("expected 1 item line, got %d", len(out))
	}
	if out[0].Text != "Tomato Soup – 150" {
		t.Fatalf("unexpected item text: %q", out[0].Text)
	}
	if out[0].Category != "Soups" {
		t.Fatalf("expected category Soups, got %q", out[0].Category)
	}
}

func TestClassifyHeadingStripsTrailingColon(t *testing.T) {
	out := ClassifyLines([]string{"Soups:", "Sweet Corn Soup - 120"})

	if len(out) != 1 || out[0].Category != "Soups" {
		t.Fatalf("expected category Soups, got %+v", out)
	}
}

func TestClassifyHeadingStripsTrailingParens(t *testing.T) {
	out := ClassifyLines([]string{"Starters (Veg)", "Paneer Tikka - 240"})

	if len(out) != 1 || out[0].Category != "Starters" {
		t.Fatalf("expected category Starters, got %+v", out)
	}
}

func TestClassifySeparatorVariants(t *testing.T) {
	items := []string{
		"Tomato Soup - 150",
		"Tomato Soup – 150",
		"Tomato Soup — 150",
		"Tomato Soup: 150",
		"Tomato Soup - ₹150",
		"Tomato Soup - Rs. 150",
		"Butter Chicken: (Half) 220 | (Full) 380",
	}

	for _, line := range items {
		out := ClassifyLines([]string{line})
		if len(out) != 1 {
			t.Fatalf("%q should classify as an item line", line)
		}
	}
}

func TestClassifyHeadingOnlyInput(t *testing.T) {
	out := ClassifyLines([]string{"Soups", "Mains", "Desserts"})
	if len(out) != 0 {
		t.Fatalf("heading-only input should yield no item lines, got %d", len(out))
	}
}

func TestClassifyPreservesOrderAndContext(t *testing.T) {
	out := ClassifyLines([]string{
		"Soups",
		"Tomato Soup – 150",
		"Mains",
		"Butter Chicken: (Half) 220 | (Full) 380",
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 item lines, got %d", len(out))
	}
	if out[0].Category != "Soups" || out[1].Category != "Mains" {
		t.Fatalf("category context wrong: %q, %q", out[0].Category, out[1].Category)
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("  Soups  \n\n\tTomato Soup - 150\n   \n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "Soups" || lines[1] != "Tomato Soup - 150" {
		t.Fatalf("unexpected lines: %v", lines)
	}
}
