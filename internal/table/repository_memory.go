package table

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	tables map[string]Table
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tables: make(map[string]Table)}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Table, error) {
	out := make([]Table, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, ErrTableNotFound
	}
	return &t, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, t *Table) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = StatusAvailable
	}
	r.tables[t.ID] = *t
	return nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	t, ok := r.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	t.Status = status
	r.tables[id] = t
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.tables[id]; !ok {
		return ErrTableNotFound
	}
	delete(r.tables, id)
	return nil
}
