// Package tracker owns the single open session and detects session
// boundaries: ticks where the observed identity or category differs from the
// previous tick.
package tracker

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/store"
	"github.com/google/uuid"
)

// SessionLog receives closed session records. Implemented by the store; the
// log is the permanent record, the tracker keeps nothing after a close.
type SessionLog interface {
	Append(rec store.SessionRecord) error
}

// Tracker is a two-state machine: no session, or exactly one open session.
type Tracker struct {
	log    SessionLog
	logger *slog.Logger

	current *domain.Session
}

// New creates a Tracker that appends closed sessions to log.
func New(log SessionLog, logger *slog.Logger) *Tracker {
	return &Tracker{log: log, logger: logger}
}

// Observe feeds one tick's observation into the state machine and reports
// whether a session boundary occurred. On a boundary the open session (if
// any) is closed and logged, and a new session opens at the same instant, so
// consecutive sessions tile the monitored time without gaps or overlaps.
func (t *Tracker) Observe(now time.Time, identity domain.ActivityIdentity, category domain.Category, label string) bool {
	if t.current != nil && identity == t.current.Identity && category == t.current.Category {
		return false
	}

	t.closeCurrent(now)

	t.current = &domain.Session{
		ID:        uuid.New().String(),
		AppLabel:  label,
		Category:  category,
		Identity:  identity,
		StartedAt: now,
	}
	t.logger.Info("session started",
		"session_id", t.current.ID, "app", label, "category", category)
	return true
}

// Current returns the open session, or nil before the first observation.
func (t *Tracker) Current() *domain.Session {
	return t.current
}

// LiveDuration is the open session's elapsed time as of now; zero when no
// session is open.
func (t *Tracker) LiveDuration(now time.Time) time.Duration {
	if t.current == nil {
		return 0
	}
	return t.current.LiveDuration(now)
}

// Close ends the open session, if any, and logs it. Used on graceful
// shutdown so no session is silently lost on normal exit.
func (t *Tracker) Close(now time.Time) {
	t.closeCurrent(now)
	t.current = nil
}

func (t *Tracker) closeCurrent(now time.Time) {
	if t.current == nil {
		return
	}

	t.current.EndedAt = now
	t.logger.Info("session ended",
		"session_id", t.current.ID,
		"app", t.current.AppLabel,
		"category", t.current.Category,
		"duration_s", t.current.Duration().Seconds())

	if err := t.log.Append(store.RecordFromSession(t.current)); err != nil {
		t.logger.Warn("appending session record failed", "error", err)
	}
}
