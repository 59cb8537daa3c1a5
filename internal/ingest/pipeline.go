package ingest

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"hungryhouse/internal/category"
	"hungryhouse/internal/images"
	"hungryhouse/internal/llm"
)

var ErrNoLines = errors.New("no menu lines found in input")

// Pipeline turns raw menu text into a reviewable list of extracted
// items and failed lines.
type Pipeline struct {
	extractor  llm.Extractor
	images     *images.Lookup
	categories category.Repository
}

func NewPipeline(
	extractor llm.Extractor,
	lookup *images.Lookup,
	categories category.Repository,
) *Pipeline {
	return &Pipeline{
		extractor:  extractor,
		images:     lookup,
		categories: categories,
	}
}

// Run processes the batch strictly sequentially so the review list
// preserves input-line order. Cancelling ctx stops launching new line
// extractions; outcomes gathered so far are returned intact.
func (p *Pipeline) Run(ctx context.Context, rawText string) (*ReviewList, error) {
	lines := SplitLines(rawText)
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	classified := ClassifyLines(lines)

	resolver, err := category.NewResolver(ctx, p.categories)
	if err != nil {
		return nil, err
	}

	list := &ReviewList{Outcomes: []Outcome{}}

	for _, line := range classified {
		if ctx.Err() != nil {
			log.Printf("[INGEST] cancelled after %d of %d lines", len(list.Outcomes), len(classified))
			break
		}

		extraction, err := extractWithRetry(ctx, p.extractor, line.Text, line.Category)
		if err != nil {
			// Cancellation mid-line abandons the line; it is not an
			// extraction failure.
			if ctx.Err() != nil {
				log.Printf("[INGEST] cancelled after %d of %d lines", len(list.Outcomes), len(classified))
				break
			}
			list.Outcomes = append(list.Outcomes, Outcome{
				Kind: OutcomeFailed,
				Failed: &FailedLine{
					Line:   line.Text,
					Reason: err.Error(),
				},
			})
			continue
		}

		list.Outcomes = append(list.Outcomes, Outcome{
			Kind: OutcomeItem,
			Item: p.assembleItem(ctx, line, extraction, resolver),
		})
	}

	return list, nil
}

// assembleItem finishes a successful extraction: image lookup (never
// blocks success, degrades to a placeholder) and category resolution.
func (p *Pipeline) assembleItem(
	ctx context.Context,
	line ClassifiedLine,
	extraction *llm.Extraction,
	resolver *category.Resolver,
) *ReviewItem {

	image := images.Result{ImageURL: images.PlaceholderURL, ImageHint: extraction.Name}
	if p.images != nil {
		image = p.images.Find(extraction.Name)
	}

	categoryName := extraction.Category
	if categoryName == "" {
		categoryName = line.Category
	}

	return &ReviewItem{
		Name:           extraction.Name,
		Description:    extraction.Description,
		Price:          decimal.NewFromFloat(extraction.Price()),
		Variants:       extraction.Variants,
		Category:       categoryName,
		CategoryID:     resolver.Resolve(ctx, categoryName),
		IsVeg:          extraction.IsVeg,
		IsSpicy:        extraction.IsSpicy,
		IsChefsSpecial: extraction.IsChefsSpecial,
		IsAvailable:    extraction.IsAvailable,
		ImageURL:       image.ImageURL,
		ImageHint:      image.ImageHint,
		SourceLine:     line.Text,
	}
}
