package notify

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	titles   []string
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(title, message string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return r.err
}

func TestLogged_PassesThrough(t *testing.T) {
	inner := &recordingNotifier{}
	n := NewLogged(inner, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, n.Notify("drift", "take a break"))
	assert.Equal(t, []string{"drift"}, inner.titles)
	assert.Equal(t, []string{"take a break"}, inner.messages)
}

func TestLogged_SwallowsDeliveryErrors(t *testing.T) {
	inner := &recordingNotifier{err: errors.New("no notification daemon")}
	n := NewLogged(inner, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, n.Notify("drift", "take a break"))
}
