package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/drift/internal/classify"
	"github.com/alexanderramin/drift/internal/cli"
	"github.com/alexanderramin/drift/internal/daemon"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/llm"
	"github.com/alexanderramin/drift/internal/monitor"
	"github.com/alexanderramin/drift/internal/notify"
	"github.com/alexanderramin/drift/internal/rules"
	"github.com/alexanderramin/drift/internal/store"
	"github.com/alexanderramin/drift/internal/tracker"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := newLogger()
	llmCfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}

	app := &cli.App{
		// Validation only needs the endpoint; the model is chosen per run.
		Client:       llm.NewOllamaClient(llmCfg, observer),
		DefaultModel: llmCfg.Model,
		Run: func(ctx context.Context, opts cli.RunOptions) error {
			home, err := resolveHome(opts.Home)
			if err != nil {
				return err
			}

			cfg := llmCfg
			cfg.Model = opts.Model
			client := llm.NewOllamaClient(cfg, observer)

			cache := classify.NewCache(
				intelligence.NewClassifier(client),
				store.NewCategoryStore(filepath.Join(home, "cache", "app_categories.json")),
				logger,
			)
			tr := tracker.New(store.NewSessionLog(filepath.Join(home, "logs")), logger)
			engine := rules.NewEngine(rules.NewFileSource(filepath.Join(home, "rules.yaml")), logger)
			notifier := notify.NewLogged(notify.NewDesktop(), logger)

			dcfg := daemon.DefaultConfig()
			if opts.Interval > 0 {
				dcfg.PollInterval = opts.Interval
				dcfg.ErrorBackoff = 5 * opts.Interval
			}

			d := daemon.New(dcfg, monitor.New(), cache, tr, engine,
				intelligence.NewNudgeWriter(client), notifier, logger)
			return d.Run(ctx)
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// resolveHome picks the data directory: flag, then DRIFT_HOME, then ~/.drift.
func resolveHome(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv("DRIFT_HOME"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".drift"), nil
}

// newLogger writes human-readable logs on a terminal and JSON otherwise.
func newLogger() *slog.Logger {
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	return slog.New(handler)
}
