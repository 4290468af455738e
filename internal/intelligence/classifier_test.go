package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOllama serves a canned /api/generate response body.
func fakeOllama(t *testing.T, response string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "gemma3:4b",
			"response": response,
		})
	}))
}

func testClient(endpoint string) llm.Client {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func TestClassifier_ValidLabel(t *testing.T) {
	srv := fakeOllama(t, `{"category": "Work"}`)
	defer srv.Close()

	c := NewClassifier(testClient(srv.URL))
	got, err := c.Categorize(context.Background(), "Visual Studio Code")

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWork, got)
}

func TestClassifier_FencedOutput(t *testing.T) {
	srv := fakeOllama(t, "```json\n{\"category\": \"Media\"}\n```")
	defer srv.Close()

	c := NewClassifier(testClient(srv.URL))
	got, err := c.Categorize(context.Background(), "Spotify")

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMedia, got)
}

func TestClassifier_OutOfSetLabelCoerced(t *testing.T) {
	srv := fakeOllama(t, `{"category": "productivity"}`)
	defer srv.Close()

	c := NewClassifier(testClient(srv.URL))
	got, err := c.Categorize(context.Background(), "Obsidian")

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryOther, got)
}

func TestClassifier_MalformedOutput(t *testing.T) {
	srv := fakeOllama(t, "I think this is a work application.")
	defer srv.Close()

	c := NewClassifier(testClient(srv.URL))
	_, err := c.Categorize(context.Background(), "Code")

	assert.ErrorIs(t, err, llm.ErrInvalidOutput)
}

func TestClassifier_ServerDown(t *testing.T) {
	c := NewClassifier(testClient("http://127.0.0.1:1"))
	_, err := c.Categorize(context.Background(), "Code")

	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
}
