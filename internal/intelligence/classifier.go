package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/llm"
)

// Classifier assigns a category to a textual activity description.
//
// The error return carries transport and schema failures only; the fallback
// to CategoryOther on failure is a policy decision that belongs to the
// caller, not to this boundary.
type Classifier interface {
	Categorize(ctx context.Context, subject string) (domain.Category, error)
}

type classifier struct {
	client llm.Client
}

// NewClassifier creates a Classifier backed by an LLM client.
func NewClassifier(client llm.Client) Classifier {
	return &classifier{client: client}
}

// categoryResponse is the JSON structure expected from the LLM.
type categoryResponse struct {
	Category string `json:"category"`
}

func (c *classifier) Categorize(ctx context.Context, subject string) (domain.Category, error) {
	resp, err := c.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCategorize,
		SystemPrompt: categorizeSystemPrompt,
		UserPrompt:   buildCategorizeUserPrompt(subject),
	})
	if err != nil {
		return "", fmt.Errorf("categorizing %q: %w", subject, err)
	}

	parsed, err := llm.ExtractJSON[categoryResponse](resp.Text, func(r categoryResponse) error {
		if r.Category == "" {
			return fmt.Errorf("category is empty")
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("categorizing %q: %w", subject, err)
	}

	// Out-of-set labels are coerced, not rejected: a model that answers
	// "productivity" still produced a usable classification.
	return domain.ParseCategory(parsed.Category), nil
}

func buildCategorizeUserPrompt(subject string) string {
	return fmt.Sprintf("Categorize this activity: %q", subject)
}
