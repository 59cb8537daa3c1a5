package ingest

import (
	"regexp"
	"strings"
)

// ClassifiedLine is one item line paired with the category context that
// was current when it appeared.
type ClassifiedLine struct {
	Text     string
	Category string
}

// A line is an item line when a separator (hyphen, en/em dash or colon)
// is followed by an optional currency marker and then a digit or an
// opening parenthesis (multi-variant pricing like "(Half) 100 | (Full) 180").
// Everything else is a heading. This is a syntactic heuristic: a dish
// name containing a literal colon but no price will misclassify.
var itemLinePattern = regexp.MustCompile(`[-–—:]\s*(?:₹|\$|[Rr]s\.?\s*)?\s*[0-9(]`)

// SplitLines breaks raw menu text into trimmed, non-blank lines.
func SplitLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ClassifyLines partitions lines into headings and item lines. Headings
// update the current category and are discarded; item lines are emitted
// in input order with the category context attached. Heading-only input
// yields an empty result.
func ClassifyLines(lines []string) []ClassifiedLine {
	var (
		out      []ClassifiedLine
		category string
	)

	for _, line := range lines {
		if itemLinePattern.MatchString(line) {
			out = append(out, ClassifiedLine{
				Text:     line,
				Category: category,
			})
			continue
		}
		category = headingName(line)
	}

	return out
}

// headingName strips a trailing colon and trailing parenthesized
// content from a heading line: "Starters (Veg):" -> "Starters".
func headingName(line string) string {
	name := strings.TrimSpace(line)
	name = strings.TrimSuffix(name, ":")

	if open := strings.LastIndex(name, "("); open > 0 && strings.HasSuffix(strings.TrimSpace(name), ")") {
		name = name[:open]
	}

	return strings.TrimSpace(name)
}
