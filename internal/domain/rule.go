package domain

import "time"

// Rule triggers an action when a session in the given category reaches the
// configured duration. The same duration also serves as the action's
// re-trigger cooldown; that conflation is inherited behavior and kept for
// compatibility rather than a separately tuned value.
type Rule struct {
	Category        Category
	DurationSeconds int
	ActionName      string
}

// Threshold is the rule's duration as a time.Duration.
func (r Rule) Threshold() time.Duration {
	return time.Duration(r.DurationSeconds) * time.Second
}

// DefaultRules is the built-in rule set used when no configuration file has
// been successfully loaded. The thresholds are illustrative, not tuned.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategoryWork, DurationSeconds: 30, ActionName: "short_work_session"},
		{Category: CategoryGaming, DurationSeconds: 20, ActionName: "short_gaming_session"},
		{Category: CategoryBrowsing, DurationSeconds: 15, ActionName: "short_browsing_session"},
		{Category: CategoryMedia, DurationSeconds: 10, ActionName: "short_media_session"},
		{Category: CategoryCommunication, DurationSeconds: 10, ActionName: "short_communication_session"},
	}
}
