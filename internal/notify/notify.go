// Package notify delivers user-visible nudge messages. Delivery is
// best-effort: a failed notification is logged together with the message
// body so it still reaches the console.
package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// Desktop sends notifications through the platform notification service.
type Desktop struct{}

// NewDesktop creates a desktop Notifier.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Logged wraps a Notifier so failures are logged instead of propagated, and
// the message text always lands in the log.
type Logged struct {
	inner  Notifier
	logger *slog.Logger
}

// NewLogged wraps inner with best-effort error handling.
func NewLogged(inner Notifier, logger *slog.Logger) *Logged {
	return &Logged{inner: inner, logger: logger}
}

func (l *Logged) Notify(title, message string) error {
	l.logger.Info("nudge", "title", title, "message", message)
	if err := l.inner.Notify(title, message); err != nil {
		l.logger.Warn("notification delivery failed", "error", err)
	}
	return nil
}
