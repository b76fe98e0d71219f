package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/relpredict/internal/component"
	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PredictOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-run predict whenever a component file changes",
		Long: `Predict the components of a file, then predict again each time the file
is saved, until interrupted. Invalid saves are logged and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runWatch(ctx, opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Method, "method", 0, "hazard rate method for components without one (1 part count, 2 part stress)")
	cmd.Flags().IntVar(&opts.Sig, "sig", -1, "significant digits in the output (0 keeps full precision)")

	return cmd
}

func runWatch(ctx context.Context, opts *PredictOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg, sig, err := opts.settings()
	if err != nil {
		return err
	}

	loader, err := component.NewLoader()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to initialise loader", err)
	}
	res, err := loadComponents(loader, []string{path})
	if err != nil {
		return err
	}

	p := predict.New(cfg, predict.WithLogger(slog.Default()))
	run := func(components []record.Record) {
		rep, err := p.PredictAll(ctx, components)
		if err != nil {
			slog.Info("prediction interrupted", "path", path, "error", err)
			return
		}
		if err := writeReport(formatter, rep, sig); err != nil {
			slog.Error("writing report", "error", err)
		}
	}

	if len(res.Issues) > 0 {
		// Keep watching; the next valid save is predicted.
		_ = reportLoadIssues(formatter, res.Issues)
	} else {
		run(res.Components)
	}

	if err := component.Watch(ctx, loader, path, run); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to watch %s", path), err)
	}
	return nil
}
