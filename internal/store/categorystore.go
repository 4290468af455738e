package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/drift/internal/domain"
)

// CategoryStore persists the classification cache as a single JSON object,
// cache key to category label. The full map is rewritten on every change;
// misses are rare relative to the polling rate, so the rewrite cost is
// acceptable.
type CategoryStore struct {
	path string
}

// NewCategoryStore creates a store backed by the JSON file at path.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{path: path}
}

// Load reads the persisted map. A missing file yields an empty map and no
// error; a corrupt file yields an empty map and the decode error so the
// caller can log it and start fresh.
func (s *CategoryStore) Load() (map[string]domain.Category, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]domain.Category{}, nil
		}
		return map[string]domain.Category{}, fmt.Errorf("reading category store: %w", err)
	}

	var entries map[string]domain.Category
	if err := json.Unmarshal(data, &entries); err != nil {
		return map[string]domain.Category{}, fmt.Errorf("decoding category store: %w", err)
	}
	if entries == nil {
		entries = map[string]domain.Category{}
	}
	return entries, nil
}

// Save writes the full map snapshot, creating the parent directory if needed.
func (s *CategoryStore) Save(entries map[string]domain.Category) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding category store: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing category store: %w", err)
	}
	return nil
}
