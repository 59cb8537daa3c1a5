package llm

import (
	"context"
)

// Extractor turns one menu text line into structured item fields.
type Extractor interface {
	ExtractItem(ctx context.Context, lineText, categoryHint string) (*Extraction, error)
}
