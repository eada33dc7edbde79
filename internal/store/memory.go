package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/vyrodovalexey/featured-content/internal/model"
)

// FirstID is assigned to the first item created in an empty store.
const FirstID = 1

// MemoryStore implements Store with an ordered in-memory slice.
type MemoryStore struct {
	mu    sync.RWMutex
	items []model.ContentItem
}

// NewMemoryStore creates a MemoryStore holding a copy of seed.
func NewMemoryStore(seed ...model.ContentItem) *MemoryStore {
	items := make([]model.ContentItem, len(seed))
	copy(items, seed)

	return &MemoryStore{
		items: items,
	}
}

// DefaultSeed returns the items the service starts with when no seed file
// is configured.
func DefaultSeed() []model.ContentItem {
	return []model.ContentItem{
		{
			ID:          1,
			Title:       "Storia dell'Aeronautica",
			Description: "Scopri la storia dell'Aeronautica Militare dalla sua fondazione ai giorni nostri.",
			ImageURL:    "https://placehold.co/400x250/003399/ffffff?text=Storia",
			LinkURL:     "#storia",
		},
		{
			ID:          2,
			Title:       "Video Gallery",
			Description: "La nostra raccolta di video sulle operazioni e le attività dell'Aeronautica.",
			ImageURL:    "https://placehold.co/400x250/003399/ffffff?text=Video",
			LinkURL:     "#video",
		},
		{
			ID:          3,
			Title:       "Tecnologia e Innovazione",
			Description: "L'evoluzione tecnologica e i nuovi sistemi in dotazione alla forza armata.",
			ImageURL:    "https://placehold.co/400x250/003399/ffffff?text=Tecnologia",
			LinkURL:     "#tecnologia",
		},
		{
			ID:          4,
			Title:       "Missioni Internazionali",
			Description: "Le operazioni all'estero dell'Aeronautica Militare e il contributo alla NATO.",
			ImageURL:    "https://placehold.co/400x250/003399/ffffff?text=Missioni",
			LinkURL:     "#missioni",
		},
	}
}

// List returns the first limit items, or all of them when limit <= 0.
func (s *MemoryStore) List(ctx context.Context, limit int) ([]model.ContentItem, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list content: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}

	items := make([]model.ContentItem, n)
	copy(items, s.items[:n])

	return items, nil
}

// Get retrieves an item by its ID.
func (s *MemoryStore) Get(ctx context.Context, id int) (*model.ContentItem, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get content: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return &item, nil
		}
	}

	return nil, ErrNotFound
}

// Create appends a new item with ID max(existing)+1, or FirstID when the
// store is empty.
func (s *MemoryStore) Create(ctx context.Context, item *model.NewContentItem) (*model.ContentItem, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("create content: %w", ctx.Err())
	default:
	}

	if item == nil {
		return nil, fmt.Errorf("create content: %w", ErrNilItem)
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	newItem := item.WithID(s.nextIDLocked())
	s.items = append(s.items, newItem)

	return &newItem, nil
}

// Delete removes every item with the given ID.
func (s *MemoryStore) Delete(ctx context.Context, id int) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("delete content: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	if len(kept) == len(s.items) {
		return ErrNotFound
	}

	clear(s.items[len(kept):])
	s.items = kept

	return nil
}

// Len returns the number of stored items.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// nextIDLocked must be called with s.mu held.
func (s *MemoryStore) nextIDLocked() int {
	if len(s.items) == 0 {
		return FirstID
	}

	maxID := s.items[0].ID
	for _, item := range s.items[1:] {
		maxID = max(maxID, item.ID)
	}

	return maxID + 1
}
