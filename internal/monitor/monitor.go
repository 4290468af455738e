// Package monitor retrieves the identity of the current foreground activity
// from the platform. Observer failures are expected and non-fatal; the poll
// loop treats them as "no activity" for the tick.
package monitor

import (
	"context"

	"github.com/alexanderramin/drift/internal/domain"
)

// Observer reports the current foreground activity. A nil identity with a
// nil error means no activity could be determined this tick.
type Observer interface {
	CurrentActivity(ctx context.Context) (*domain.ActivityIdentity, error)
}

// New returns the Observer for the current platform.
func New() Observer {
	return newPlatformObserver()
}
