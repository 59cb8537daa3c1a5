package category

import (
	"context"
	"sync"
	"testing"
)

func TestResolveMatchesCaseInsensitive(t *testing.T) {
	repo := NewInMemoryRepository()
	soups, _ := repo.Create(context.Background(), "Soups")

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := resolver.Resolve(context.Background(), "soups")
	if id != soups.ID {
		t.Fatalf("expected id %s, got %s", soups.ID, id)
	}
}

func TestResolveCreatesOnce(t *testing.T) {
	repo := NewInMemoryRepository()

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := resolver.Resolve(context.Background(), "Soups")
	second := resolver.Resolve(context.Background(), "SOUPS")

	if first == "" {
		t.Fatal("expected a created category id")
	}
	if first != second {
		t.Fatalf("same name resolved to two ids: %s vs %s", first, second)
	}

	categories, _ := repo.List(context.Background())
	if len(categories) != 1 {
		t.Fatalf("expected exactly 1 category, got %d", len(categories))
	}
}

func TestResolveConcurrentSameName(t *testing.T) {
	repo := NewInMemoryRepository()

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver.Resolve(context.Background(), "Desserts")
		}()
	}
	wg.Wait()

	categories, _ := repo.List(context.Background())
	if len(categories) != 1 {
		t.Fatalf("expected exactly 1 category, got %d", len(categories))
	}
}

func TestResolveFallbackToUncategorized(t *testing.T) {
	repo := NewInMemoryRepository()
	fallback, _ := repo.Create(context.Background(), FallbackName)
	repo.failCreate = true

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := resolver.Resolve(context.Background(), "Soups")
	if id != fallback.ID {
		t.Fatalf("expected fallback id %s, got %s", fallback.ID, id)
	}
}

func TestResolveFallbackToFirstKnown(t *testing.T) {
	repo := NewInMemoryRepository()
	first, _ := repo.Create(context.Background(), "Mains")
	repo.failCreate = true

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id := resolver.Resolve(context.Background(), "Soups")
	if id != first.ID {
		t.Fatalf("expected first known id %s, got %s", first.ID, id)
	}
}

func TestResolveEmptyWhenNothingKnown(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.failCreate = true

	resolver, err := NewResolver(context.Background(), repo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id := resolver.Resolve(context.Background(), "Soups"); id != "" {
		t.Fatalf("expected empty id, got %s", id)
	}
}
