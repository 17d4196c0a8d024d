package item

import (
	"context"
	"errors"
)

// Item is a single stored record.
type Item struct {
	ID          int64  `json:"id" example:"1"`
	Name        string `json:"name" example:"Book"`
	Description string `json:"description" example:""`
}

// NewItem holds validated input for Repository.Create.
type NewItem struct {
	Name        string
	Description string
}

// CreateRequest is the wire shape of an add-item request. Pointers
// distinguish an absent or null field from an empty one.
type CreateRequest struct {
	Name        *string `json:"name" example:"Pen"`
	Description *string `json:"description,omitempty" example:"blue"`
}

// Validation errors.
var (
	ErrNameRequired = errors.New("field required: name")
	ErrNameEmpty    = errors.New("name must not be empty")
)

// ErrNotFound indicates the requested item does not exist.
var ErrNotFound = errors.New("item not found")

// Validate checks the request and returns the input to store.
func (r CreateRequest) Validate() (NewItem, error) {
	if r.Name == nil {
		return NewItem{}, ErrNameRequired
	}
	if *r.Name == "" {
		return NewItem{}, ErrNameEmpty
	}
	n := NewItem{Name: *r.Name}
	if r.Description != nil {
		n.Description = *r.Description
	}
	return n, nil
}

// Repository defines behavior for storing items. Implementations assign
// ids from a counter that never goes backwards, so ids are not reused
// after a delete.
type Repository interface {
	Create(ctx context.Context, n NewItem) (Item, error)
	List(ctx context.Context) ([]Item, error)
	Delete(ctx context.Context, id int64) error
}
