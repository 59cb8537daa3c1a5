package category

import (
	"context"
	"log"
	"strings"
	"sync"
)

// FallbackName is used when creating a category fails and no better
// fallback exists in the known set.
const FallbackName = "Uncategorized"

// Resolver maps category names to durable ids, creating categories on
// demand. All resolution is serialized behind one mutex so that two
// concurrent lookups of the same new name cannot create it twice.
type Resolver struct {
	mu    sync.Mutex
	repo  Repository
	known []Category
}

// NewResolver snapshots the current category set. Categories created
// during the run are appended to the snapshot so later lookups see them.
func NewResolver(ctx context.Context, repo Repository) (*Resolver, error) {
	known, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Resolver{
		repo:  repo,
		known: known,
	}, nil
}

// Resolve returns the id for name, creating the category if absent.
// Matching is a case-insensitive exact match. An empty returned id means
// the category could not be resolved at all and needs manual assignment.
func (r *Resolver) Resolve(ctx context.Context, name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = FallbackName
	}

	for _, c := range r.known {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}

	created, err := r.repo.Create(ctx, name)
	if err == nil {
		r.known = append(r.known, *created)
		return created.ID
	}

	log.Printf("[CATEGORY] create %q failed: %v", name, err)

	// Fallback chain: Uncategorized -> first known -> empty id.
	for _, c := range r.known {
		if strings.EqualFold(c.Name, FallbackName) {
			return c.ID
		}
	}
	if len(r.known) > 0 {
		return r.known[0].ID
	}
	return ""
}

// Known returns a copy of the categories visible to this resolver,
// including ones created during the run.
func (r *Resolver) Known() []Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Category, len(r.known))
	copy(out, r.known)
	return out
}
