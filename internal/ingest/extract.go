package ingest

import (
	"context"
	"errors"
	"log"

	"hungryhouse/internal/llm"
)

const maxAttempts = 3

var (
	errExtractionExhausted = errors.New("extraction failed after 3 attempts")
	errEmptyExtraction     = errors.New("extraction returned no item name")
)

// retryState is the per-line extraction state machine. An attempt error
// is transient and consumes one attempt; an empty-name result is
// terminal and is never retried; a non-empty name succeeds.
type retryState int

const (
	stateAttempting retryState = iota
	stateSucceeded
	stateFailedTransient
	stateFailedTerminal
)

// extractWithRetry runs up to maxAttempts strictly sequential
// extraction attempts for one line.
func extractWithRetry(
	ctx context.Context,
	extractor llm.Extractor,
	lineText string,
	categoryHint string,
) (*llm.Extraction, error) {

	var (
		state      = stateAttempting
		attempt    = 0
		extraction *llm.Extraction
		terminal   error
	)

	for state == stateAttempting {
		// A cancelled run abandons the line instead of burning the
		// remaining attempts on context errors.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attempt++

		result, err := extractor.ExtractItem(ctx, lineText, categoryHint)
		switch {
		case err != nil:
			log.Printf("[INGEST] attempt %d/%d failed for %q: %v", attempt, maxAttempts, lineText, err)
			state = stateFailedTransient
		case result.Name == "":
			state = stateFailedTerminal
			terminal = errEmptyExtraction
		default:
			extraction = result
			state = stateSucceeded
		}

		// A transient failure with budget left goes back to attempting.
		if state == stateFailedTransient {
			if attempt < maxAttempts {
				state = stateAttempting
			} else {
				state = stateFailedTerminal
				terminal = errExtractionExhausted
			}
		}
	}

	if state == stateSucceeded {
		return extraction, nil
	}
	return nil, terminal
}
