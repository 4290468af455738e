package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/drift/internal/llm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RunOptions carries the resolved command-line settings into the runner.
type RunOptions struct {
	Model    string
	Interval time.Duration
	Home     string
}

// App holds what the CLI needs: a client for startup model validation and
// the runner that builds and drives the daemon.
type App struct {
	Client       llm.Client
	DefaultModel string
	Run          func(ctx context.Context, opts RunOptions) error
}

// NewRootCmd creates the top-level "drift" command. An optional positional
// argument selects the Ollama model; an explicitly requested model is
// validated against the server before the loop starts.
func NewRootCmd(app *App) *cobra.Command {
	var opts RunOptions

	cmd := &cobra.Command{
		Use:          "drift [model]",
		Short:        "Watch foreground activity and nudge long sessions",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts.Model = app.DefaultModel
			if len(args) == 1 {
				opts.Model = args[0]
				if err := validateModel(ctx, app.Client, opts.Model); err != nil {
					return err
				}
			}

			return app.Run(ctx, opts)
		},
	}

	addRunFlags(cmd.Flags(), &opts)
	return cmd
}

func addRunFlags(fs *pflag.FlagSet, opts *RunOptions) {
	fs.DurationVar(&opts.Interval, "interval", time.Second, "poll interval between activity checks")
	fs.StringVar(&opts.Home, "home", "", "data directory (default $DRIFT_HOME or ~/.drift)")
}

func validateModel(ctx context.Context, client llm.Client, model string) error {
	ok, err := client.HasModel(ctx, model)
	if err != nil {
		return fmt.Errorf("checking model %q: %w (is Ollama running?)", model, err)
	}
	if !ok {
		return fmt.Errorf("model %q is not available in Ollama; run `ollama pull %s` first", model, model)
	}
	return nil
}
