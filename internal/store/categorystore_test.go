package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryStore_LoadMissing(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "app_categories.json"))

	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCategoryStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "app_categories.json")
	s := NewCategoryStore(path)

	want := map[string]domain.Category{
		"Code":                           domain.CategoryWork,
		"chrome|Inbox|https://mail.test": domain.CategoryCommunication,
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCategoryStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_categories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewCategoryStore(path)
	entries, err := s.Load()

	assert.Error(t, err)
	assert.Empty(t, entries) // caller starts fresh
}
