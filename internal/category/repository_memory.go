package category

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	categories []Category
	failCreate bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, name string) (*Category, error) {
	if r.failCreate {
		return nil, errors.New("create failed")
	}

	c := Category{
		ID:   uuid.New().String(),
		Name: name,
	}
	r.categories = append(r.categories, c)
	return &c, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return errors.New("category not found")
}
