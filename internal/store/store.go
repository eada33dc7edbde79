// Package store provides data storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/vyrodovalexey/featured-content/internal/model"
)

// Store errors.
var (
	ErrNotFound = errors.New("content not found")
	ErrNilItem  = errors.New("content cannot be nil")
)

// Store defines the interface for featured-content storage operations.
type Store interface {
	// List returns the first limit items in insertion order, or every item
	// when limit is not positive.
	List(ctx context.Context, limit int) ([]model.ContentItem, error)

	// Get retrieves an item by its ID.
	Get(ctx context.Context, id int) (*model.ContentItem, error)

	// Create validates the fields, assigns the next ID and appends the item.
	Create(ctx context.Context, item *model.NewContentItem) (*model.ContentItem, error)

	// Delete removes the item with the given ID. It returns ErrNotFound
	// when nothing was removed.
	Delete(ctx context.Context, id int) error

	// Len returns the number of stored items.
	Len() int
}
