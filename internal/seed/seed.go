// Package seed loads the initial featured-content items from a YAML file.
package seed

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vyrodovalexey/featured-content/internal/model"
)

// Seed file errors.
var (
	ErrInvalidID   = errors.New("item id must be positive")
	ErrDuplicateID = errors.New("duplicate item id")
)

// File is the on-disk layout of a seed file.
type File struct {
	Items []model.ContentItem `yaml:"items"`
}

// Load reads and validates the seed file at path.
func Load(path string) ([]model.ContentItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	return items, nil
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) ([]model.ContentItem, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	if err := validate(f.Items); err != nil {
		return nil, err
	}

	if f.Items == nil {
		return []model.ContentItem{}, nil
	}

	return f.Items, nil
}

func validate(items []model.ContentItem) error {
	seen := make(map[int]bool, len(items))

	for i, item := range items {
		if item.ID <= 0 {
			return fmt.Errorf("item %d: %w", i, ErrInvalidID)
		}

		if seen[item.ID] {
			return fmt.Errorf("item %d (id %d): %w", i, item.ID, ErrDuplicateID)
		}
		seen[item.ID] = true

		fields := model.NewContentItem{
			Title:       item.Title,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			LinkURL:     item.LinkURL,
		}
		if err := fields.Validate(); err != nil {
			return fmt.Errorf("item %d (id %d): %w", i, item.ID, err)
		}
	}

	return nil
}
