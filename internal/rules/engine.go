// Package rules evaluates session durations against a hot-reloadable rule
// list and decides when a nudge action may fire.
package rules

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
)

// Trigger describes a rule that fired.
type Trigger struct {
	Action          string
	Category        domain.Category
	DurationSeconds int
}

// Engine owns the loaded rule list and the per-action debounce state.
// Each rule's duration threshold doubles as its re-trigger cooldown.
type Engine struct {
	source Source
	logger *slog.Logger

	rules      []domain.Rule
	loadFailed bool
	lastFired  map[string]time.Time

	now func() time.Time
}

// NewEngine creates an Engine over the given source. The initial load
// happens immediately; on failure the built-in defaults apply until the
// source becomes readable.
func NewEngine(source Source, logger *slog.Logger) *Engine {
	e := &Engine{
		source:    source,
		logger:    logger,
		rules:     domain.DefaultRules(),
		lastFired: make(map[string]time.Time),
		now:       time.Now,
	}
	e.reload()
	return e
}

// Evaluate checks the live duration of the current session against the rule
// list, reloading it first if the backing file changed. The first matching
// non-debounced rule fires; a debounced match does not block later rules.
// Returns nil when nothing fires.
func (e *Engine) Evaluate(category domain.Category, liveDuration time.Duration) *Trigger {
	if e.source != nil && e.source.Stale() {
		e.reload()
	}

	for _, r := range e.rules {
		if r.Category != category || liveDuration < r.Threshold() {
			continue
		}

		if last, fired := e.lastFired[r.ActionName]; fired {
			if e.now().Sub(last) <= r.Threshold() {
				continue
			}
		}

		e.lastFired[r.ActionName] = e.now()
		return &Trigger{
			Action:          r.ActionName,
			Category:        category,
			DurationSeconds: int(liveDuration.Seconds()),
		}
	}
	return nil
}

// Reset clears all debounce state.
func (e *Engine) Reset() {
	e.lastFired = make(map[string]time.Time)
}

// Rules returns the currently loaded rule list.
func (e *Engine) Rules() []domain.Rule {
	return e.rules
}

// reload swaps in the source's rules, keeping the previous set (or the
// defaults, if nothing ever loaded) when the source is unreadable.
func (e *Engine) reload() {
	if e.source == nil {
		return
	}
	rules, err := e.source.Load()
	if err != nil {
		if !e.loadFailed {
			e.logger.Warn("rule config unreadable, keeping current rules", "error", err)
			e.loadFailed = true
		}
		return
	}
	if e.loadFailed {
		e.logger.Info("rule config recovered", "rules", len(rules))
		e.loadFailed = false
	} else {
		e.logger.Info("rule config loaded", "rules", len(rules))
	}
	e.rules = rules
}
