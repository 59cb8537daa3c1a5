package menu

import (
	"context"
	"errors"
	"sort"
)

type InMemoryRepository struct {
	items      map[string]Item
	failCreate map[string]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:      make(map[string]Item),
		failCreate: make(map[string]bool),
	}
}

// FailCreateFor makes Create return an error for items with this name.
// Test hook only.
func (r *InMemoryRepository) FailCreateFor(name string) {
	r.failCreate[name] = true
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	if r.failCreate[item.Name] {
		return errors.New("create failed")
	}
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}
