package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/llm"
)

// FallbackNudgeMessage is sent when the LLM cannot produce a nudge.
// Unlike category results, nudge text is never cached.
const FallbackNudgeMessage = "Consider taking a break from your screen."

// NudgeWriter composes the user-facing nudge text for a triggered rule.
type NudgeWriter interface {
	Compose(ctx context.Context, category domain.Category, durationSeconds int) (string, error)
}

type nudgeWriter struct {
	client llm.Client
}

// NewNudgeWriter creates a NudgeWriter backed by an LLM client.
func NewNudgeWriter(client llm.Client) NudgeWriter {
	return &nudgeWriter{client: client}
}

// nudgeResponse is the JSON structure expected from the LLM.
type nudgeResponse struct {
	Message string `json:"message"`
}

func (n *nudgeWriter) Compose(ctx context.Context, category domain.Category, durationSeconds int) (string, error) {
	resp, err := n.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNudge,
		SystemPrompt: nudgeSystemPrompt,
		UserPrompt:   buildNudgeUserPrompt(category, durationSeconds),
	})
	if err != nil {
		return "", fmt.Errorf("composing nudge for %s: %w", category, err)
	}

	parsed, err := llm.ExtractJSON[nudgeResponse](resp.Text, func(r nudgeResponse) error {
		if r.Message == "" {
			return fmt.Errorf("message is empty")
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("composing nudge for %s: %w", category, err)
	}

	return parsed.Message, nil
}

func buildNudgeUserPrompt(category domain.Category, durationSeconds int) string {
	return fmt.Sprintf("The user has been in the '%s' category for %d seconds.", category, durationSeconds)
}
