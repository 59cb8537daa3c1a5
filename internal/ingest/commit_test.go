package ingest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"hungryhouse/internal/menu"
)

func reviewItem(name string, price int64) ReviewItem {
	return ReviewItem{
		Name:        name,
		Price:       decimal.NewFromInt(price),
		IsAvailable: true,
	}
}

func TestCommitAllSucceed(t *testing.T) {
	service := menu.NewService(menu.NewInMemoryRepository(), nil)

	result := Commit(context.Background(), service, []ReviewItem{
		reviewItem("Tomato Soup", 150),
		reviewItem("Butter Chicken", 220),
	})

	if result.Created != 2 || result.Total != 2 {
		t.Fatalf("expected 2/2 created, got %d/%d", result.Created, result.Total)
	}
	for _, r := range result.Results {
		if r.Error != "" || r.ItemID == "" {
			t.Fatalf("unexpected result entry: %+v", r)
		}
	}
}

func TestCommitSettlesAllOnPartialFailure(t *testing.T) {
	repo := menu.NewInMemoryRepository()
	repo.FailCreateFor("Butter Chicken")
	service := menu.NewService(repo, nil)

	result := Commit(context.Background(), service, []ReviewItem{
		reviewItem("Tomato Soup", 150),
		reviewItem("Butter Chicken", 220),
		reviewItem("Dal Fry", 120),
	})

	if result.Created != 2 || result.Total != 3 {
		t.Fatalf("expected 2/3 created, got %d/%d", result.Created, result.Total)
	}

	// Every item has a result; the failure names which item failed.
	if len(result.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(result.Results))
	}
	failed := result.Results[1]
	if failed.Name != "Butter Chicken" || failed.Error == "" {
		t.Fatalf("partial failure not reported: %+v", failed)
	}

	// The item after the failure was still created.
	if result.Results[2].ItemID == "" {
		t.Fatal("create after a failure must still settle")
	}
}

func TestCommitInvalidItemReported(t *testing.T) {
	service := menu.NewService(menu.NewInMemoryRepository(), nil)

	result := Commit(context.Background(), service, []ReviewItem{
		{Name: "", Price: decimal.NewFromInt(100)},
	})

	if result.Created != 0 {
		t.Fatalf("expected 0 created, got %d", result.Created)
	}
	if result.Results[0].Error == "" {
		t.Fatal("invalid item must carry an error")
	}
}
