package rules

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"gopkg.in/yaml.v3"
)

// Source is a reloadable rule configuration. Stale reports whether the
// backing resource changed since the last successful Load.
type Source interface {
	Load() ([]domain.Rule, error)
	Stale() bool
}

// FileSource reads rules from a YAML file and detects changes by comparing
// modification times.
type FileSource struct {
	path    string
	lastMod time.Time
}

// NewFileSource creates a Source over the YAML file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ruleConfig is the on-disk shape of the rule file.
type ruleConfig struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Category        string `yaml:"category"`
	DurationSeconds int    `yaml:"duration_seconds"`
	ActionName      string `yaml:"action_name"`
}

// Load parses the rule file and records its modification time.
func (s *FileSource) Load() ([]domain.Rule, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat rule config: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading rule config: %w", err)
	}

	var cfg ruleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing rule config: %w", err)
	}

	rules := make([]domain.Rule, 0, len(cfg.Rules))
	for i, e := range cfg.Rules {
		if e.ActionName == "" {
			return nil, fmt.Errorf("rule %d: action_name is required", i)
		}
		if e.DurationSeconds <= 0 {
			return nil, fmt.Errorf("rule %d (%s): duration_seconds must be positive", i, e.ActionName)
		}
		rules = append(rules, domain.Rule{
			Category:        domain.ParseCategory(e.Category),
			DurationSeconds: e.DurationSeconds,
			ActionName:      e.ActionName,
		})
	}

	s.lastMod = info.ModTime()
	return rules, nil
}

// Stale reports whether the file's mtime is newer than at the last Load.
// A missing file is stale so the engine keeps probing for it to appear.
func (s *FileSource) Stale() bool {
	info, err := os.Stat(s.path)
	if err != nil {
		return true
	}
	return info.ModTime().After(s.lastMod)
}
