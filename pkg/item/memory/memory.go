// Package memory implements an in-memory item repository.
package memory

import (
	"context"
	"sync"

	"itemsvc/pkg/item"
)

// Repository provides an in-memory implementation of item.Repository.
// Items are kept in insertion order.
type Repository struct {
	mu     sync.RWMutex
	items  []item.Item
	nextID int64
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{items: make([]item.Item, 0), nextID: 1}
}

// Create appends the item and assigns it the next id.
func (r *Repository) Create(ctx context.Context, n item.NewItem) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it := item.Item{ID: r.nextID, Name: n.Name, Description: n.Description}
	r.nextID++
	r.items = append(r.items, it)
	return it, nil
}

// List returns a copy of all items.
func (r *Repository) List(ctx context.Context) ([]item.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]item.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Delete removes every item with the given id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := make([]item.Item, 0, len(r.items))
	for _, it := range r.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(r.items) {
		return item.ErrNotFound
	}
	r.items = kept
	return nil
}
