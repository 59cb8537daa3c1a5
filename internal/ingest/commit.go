package ingest

import (
	"context"

	"hungryhouse/internal/menu"
)

// ItemCreator is the slice of the menu service the commit step needs.
type ItemCreator interface {
	CreateItem(ctx context.Context, item menu.Item) (*menu.Item, error)
}

// ItemResult reports one item's commit outcome.
type ItemResult struct {
	Name   string `json:"name"`
	ItemID string `json:"item_id,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CommitResult is the settled batch: every item gets a result, so
// partial success is observable instead of aborting on first failure.
type CommitResult struct {
	Results []ItemResult `json:"results"`
	Created int          `json:"created"`
	Total   int          `json:"total"`
}

// Commit persists reviewed items one by one, settling all of them.
// A failed create never stops the remaining creates.
func Commit(ctx context.Context, creator ItemCreator, items []ReviewItem) *CommitResult {
	result := &CommitResult{
		Results: make([]ItemResult, 0, len(items)),
		Total:   len(items),
	}

	for _, item := range items {
		created, err := creator.CreateItem(ctx, menu.Item{
			Name:           item.Name,
			Description:    item.Description,
			Price:          item.Price,
			CategoryID:     item.CategoryID,
			IsVeg:          item.IsVeg,
			IsSpicy:        item.IsSpicy,
			IsChefsSpecial: item.IsChefsSpecial,
			IsAvailable:    item.IsAvailable,
			ImageURL:       item.ImageURL,
			ImageHint:      item.ImageHint,
		})
		if err != nil {
			result.Results = append(result.Results, ItemResult{
				Name:  item.Name,
				Error: err.Error(),
			})
			continue
		}

		result.Created++
		result.Results = append(result.Results, ItemResult{
			Name:   created.Name,
			ItemID: created.ID,
		})
	}

	return result
}
