package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory_ClosedSet(t *testing.T) {
	for _, c := range Categories {
		assert.Equal(t, c, ParseCategory(string(c)))
	}
}

func TestParseCategory_RejectsToOther(t *testing.T) {
	// Matching is exact: case and whitespace variants are not normalized.
	for _, label := range []string{"work", "WORK ", " Media", "Productivity", "", "gaming\n"} {
		assert.Equal(t, CategoryOther, ParseCategory(label), "label %q", label)
	}
}
