package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Simple(t *testing.T) {
	n := SimpleActivity("Code").Normalize()

	assert.Equal(t, "Code", n.CacheKey)
	assert.Equal(t, "Code", n.LogLabel)
	assert.Equal(t, "Code", n.Subject)
}

func TestNormalize_Browser(t *testing.T) {
	n := BrowserActivity("Google Chrome", "Go Playground", "https://go.dev/play").Normalize()

	assert.Equal(t, "chrome|Go Playground|https://go.dev/play", n.CacheKey)
	assert.Equal(t, "Google Chrome | Go Playground", n.LogLabel)
	assert.Equal(t, "Go Playground | https://go.dev/play", n.Subject)
}

func TestNormalize_BrowserMissingFields(t *testing.T) {
	n := BrowserActivity("", "", "").Normalize()

	assert.Equal(t, "chrome||", n.CacheKey)
	assert.Equal(t, " | ", n.LogLabel)
	assert.Equal(t, " | ", n.Subject)
}

func TestNormalize_Stable(t *testing.T) {
	a := BrowserActivity("Google Chrome", "Inbox", "https://mail.example.com")
	b := BrowserActivity("Google Chrome", "Inbox", "https://mail.example.com")

	assert.Equal(t, a, b)
	assert.Equal(t, a.Normalize(), b.Normalize())
}

func TestIdentity_DistinctTabsDiffer(t *testing.T) {
	a := BrowserActivity("Google Chrome", "Tab A", "https://a.example.com")
	b := BrowserActivity("Google Chrome", "Tab B", "https://b.example.com")

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.Normalize().CacheKey, b.Normalize().CacheKey)
}
