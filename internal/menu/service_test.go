package menu

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateItemAssignsID(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	item, err := service.CreateItem(context.Background(), Item{
		Name:        "Paneer Tikka",
		Price:       decimal.RequireFromString("240"),
		IsVeg:       true,
		IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID == "" {
		t.Fatal("expected an assigned id")
	}
}

func TestCreateItemRejectsInvalid(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	cases := []Item{
		{Name: "", Price: decimal.NewFromInt(100)},
		{Name: "   ", Price: decimal.NewFromInt(100)},
		{Name: "Soup", Price: decimal.NewFromInt(-10)},
	}

	for i, item := range cases {
		if _, err := service.CreateItem(context.Background(), item); err != ErrInvalidItem {
			t.Fatalf("case %d: expected ErrInvalidItem, got %v", i, err)
		}
	}
}

func TestUpdateMissingItem(t *testing.T) {
	service := NewService(NewInMemoryRepository(), nil)

	_, err := service.UpdateItem(context.Background(), Item{
		ID:    "does-not-exist",
		Name:  "Soup",
		Price: decimal.NewFromInt(100),
	})
	if err != ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	repo := NewInMemoryRepository()
	service := NewService(repo, nil)

	item, err := service.CreateItem(context.Background(), Item{
		Name:  "Masala Chai",
		Price: decimal.NewFromInt(30),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteItem(context.Background(), item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.GetByID(context.Background(), item.ID); err != ErrItemNotFound {
		t.Fatal("item should be gone after delete")
	}
}

func TestValidateImageExtension(t *testing.T) {
	if err := ValidateImageExtension("dish.png"); err != nil {
		t.Fatalf("png should be allowed: %v", err)
	}
	if err := ValidateImageExtension("dish.exe"); err == nil {
		t.Fatal("exe must be rejected")
	}
	if err := ValidateImageExtension("dish"); err == nil {
		t.Fatal("missing extension must be rejected")
	}
}
