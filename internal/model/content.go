// Package model defines data structures used throughout the application.
package model

import (
	"errors"
	"time"
)

// Validation errors for NewContentItem.
var (
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingDescription = errors.New("description is required")
	ErrMissingImageURL    = errors.New("imageUrl is required")
	ErrMissingLinkURL     = errors.New("linkUrl is required")
)

// ContentItem is a single featured-content card.
type ContentItem struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl" yaml:"imageUrl"`
	LinkURL     string `json:"linkUrl" yaml:"linkUrl"`
}

// NewContentItem holds the fields a caller supplies when creating an item.
type NewContentItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	LinkURL     string `json:"linkUrl"`
}

// Validate checks that every field is present. All missing fields are
// reported in a single joined error.
func (n *NewContentItem) Validate() error {
	var errs []error

	if n.Title == "" {
		errs = append(errs, ErrMissingTitle)
	}

	if n.Description == "" {
		errs = append(errs, ErrMissingDescription)
	}

	if n.ImageURL == "" {
		errs = append(errs, ErrMissingImageURL)
	}

	if n.LinkURL == "" {
		errs = append(errs, ErrMissingLinkURL)
	}

	return errors.Join(errs...)
}

// WithID builds the stored item for this payload.
func (n *NewContentItem) WithID(id int) ContentItem {
	return ContentItem{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		ImageURL:    n.ImageURL,
		LinkURL:     n.LinkURL,
	}
}

// APIResponse is the uniform envelope for every API response.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitzero"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful API response.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// NewMessageResponse creates a successful API response carrying a message
// alongside the data.
func NewMessageResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// NewErrorResponse creates a failed API response.
func NewErrorResponse(message, errMsg string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Message: message,
		Error:   errMsg,
	}
}

// ContentEvent is pushed over the change feed after a store mutation.
type ContentEvent struct {
	Type      string       `json:"type"`
	ID        int          `json:"id"`
	Item      *ContentItem `json:"item,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// Change feed event types.
const (
	EventTypeCreated = "created"
	EventTypeDeleted = "deleted"
)

// NewCreatedEvent builds the event announcing a new item.
func NewCreatedEvent(item ContentItem) ContentEvent {
	return ContentEvent{
		Type:      EventTypeCreated,
		ID:        item.ID,
		Item:      &item,
		Timestamp: time.Now().UTC(),
	}
}

// NewDeletedEvent builds the event announcing a removed item.
func NewDeletedEvent(id int) ContentEvent {
	return ContentEvent{
		Type:      EventTypeDeleted,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}
}
