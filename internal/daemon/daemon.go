// Package daemon runs the poll loop that ties the observer, classifier,
// tracker, rule engine and notifier together.
package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/drift/internal/classify"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/monitor"
	"github.com/alexanderramin/drift/internal/notify"
	"github.com/alexanderramin/drift/internal/rules"
	"github.com/alexanderramin/drift/internal/tracker"
)

// Config holds the loop timings and notification title.
type Config struct {
	// PollInterval is the sleep between ticks.
	PollInterval time.Duration

	// ErrorBackoff replaces PollInterval after a failed tick.
	ErrorBackoff time.Duration

	// NotifyTitle is the desktop notification title.
	NotifyTitle string
}

// DefaultConfig returns the standard 1-second loop with a 5x backoff.
func DefaultConfig() Config {
	return Config{
		PollInterval: time.Second,
		ErrorBackoff: 5 * time.Second,
		NotifyTitle:  "drift",
	}
}

// Daemon is the single-threaded orchestrator. All session, cache and rule
// state is mutated only from Run's goroutine, so none of it needs locking.
type Daemon struct {
	cfg      Config
	observer monitor.Observer
	cache    *classify.Cache
	tracker  *tracker.Tracker
	engine   *rules.Engine
	nudger   intelligence.NudgeWriter
	notifier notify.Notifier
	logger   *slog.Logger

	now func() time.Time

	// nudgedForSession suppresses further rule evaluation until the next
	// session boundary; the engine's own debounce governs repeats across
	// sessions.
	nudgedForSession bool
}

// New wires a Daemon from its collaborators.
func New(cfg Config, observer monitor.Observer, cache *classify.Cache, tr *tracker.Tracker,
	engine *rules.Engine, nudger intelligence.NudgeWriter, notifier notify.Notifier, logger *slog.Logger) *Daemon {
	return &Daemon{
		cfg:      cfg,
		observer: observer,
		cache:    cache,
		tracker:  tr,
		engine:   engine,
		nudger:   nudger,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Run polls until ctx is cancelled, then closes and logs any open session.
// Transient tick errors never stop the loop; they extend the sleep to the
// error backoff and the next tick retries.
func (d *Daemon) Run(ctx context.Context) error {
	d.logger.Info("drift watching", "poll_interval", d.cfg.PollInterval)

	for {
		delay := d.cfg.PollInterval
		if err := d.tick(ctx); err != nil {
			if ctx.Err() == nil {
				d.logger.Error("tick failed, backing off", "error", err)
			}
			delay = d.cfg.ErrorBackoff
		}

		select {
		case <-ctx.Done():
			d.tracker.Close(d.now())
			d.logger.Info("drift stopped")
			return nil
		case <-time.After(delay):
		}
	}
}

func (d *Daemon) tick(ctx context.Context) error {
	identity, err := d.observer.CurrentActivity(ctx)
	if err != nil {
		return fmt.Errorf("observing activity: %w", err)
	}
	if identity == nil {
		return nil
	}

	now := d.now()
	normalized := identity.Normalize()
	category := d.cache.Categorize(ctx, normalized.Subject, normalized.CacheKey)

	if d.tracker.Observe(now, *identity, category, normalized.LogLabel) {
		d.nudgedForSession = false
	}
	if d.nudgedForSession {
		return nil
	}

	trigger := d.engine.Evaluate(category, d.tracker.LiveDuration(now))
	if trigger == nil {
		return nil
	}

	d.logger.Info("rule triggered",
		"action", trigger.Action,
		"category", trigger.Category,
		"duration_s", trigger.DurationSeconds)

	message, err := d.nudger.Compose(ctx, trigger.Category, trigger.DurationSeconds)
	if err != nil {
		d.logger.Warn("nudge generation failed, using fallback", "error", err)
		message = intelligence.FallbackNudgeMessage
	}

	// Delivery is best-effort; the Logged notifier never returns an error.
	_ = d.notifier.Notify(d.cfg.NotifyTitle, message)
	d.nudgedForSession = true
	return nil
}
