package cli

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/relpredict/internal/component"
	"github.com/roach88/relpredict/internal/config"
	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
)

// PredictOptions holds flags for the predict command.
type PredictOptions struct {
	*RootOptions
	Method int // 0 uses the configured method
	Sig    int // -1 uses the configured precision
}

// NewPredictCommand creates the predict command.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PredictOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "predict <file>...",
		Short: "Predict hazard rates for component files",
		Long: `Load, validate and predict every component in the given files.

Exit codes:
  0 - Every component was predicted
  1 - A file is invalid or a component calculation failed
  2 - Command error (missing file, bad flag or config)

Examples:
  relpredict predict board.yaml
  relpredict predict board.yaml psu.cue --method 1
  relpredict predict board.yaml --format json --sig 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPredict(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Method, "method", 0, "hazard rate method for components without one (1 part count, 2 part stress)")
	cmd.Flags().IntVar(&opts.Sig, "sig", -1, "significant digits in the output (0 keeps full precision)")

	return cmd
}

// settings resolves the effective configuration and output precision.
func (o *PredictOptions) settings() (*config.Config, int, error) {
	cfg := *o.Config()
	if o.Method != 0 {
		if o.Method != config.MethodPartCount && o.Method != config.MethodPartStress {
			return nil, 0, NewExitError(ExitCommandError,
				fmt.Sprintf("invalid --method %d: must be %d or %d", o.Method, config.MethodPartCount, config.MethodPartStress))
		}
		cfg.Method = o.Method
	}
	sig := cfg.Precision
	if o.Sig >= 0 {
		if o.Sig > 17 {
			return nil, 0, NewExitError(ExitCommandError, fmt.Sprintf("invalid --sig %d: must be in [0, 17]", o.Sig))
		}
		sig = o.Sig
	}
	return &cfg, sig, nil
}

func runPredict(opts *PredictOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	cfg, sig, err := opts.settings()
	if err != nil {
		return err
	}

	loader, err := component.NewLoader()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to initialise loader", err)
	}
	res, err := loadComponents(loader, paths)
	if err != nil {
		return err
	}
	if len(res.Issues) > 0 {
		return reportLoadIssues(formatter, res.Issues)
	}

	p := predict.New(cfg, predict.WithLogger(slog.Default()))
	rep, err := p.PredictAll(cmd.Context(), res.Components)
	if err != nil {
		return WrapExitError(ExitCommandError, "prediction interrupted", err)
	}
	if err := writeReport(formatter, rep, sig); err != nil {
		return err
	}
	if !rep.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d component(s) failed", len(rep.Failures)))
	}
	return nil
}

// writeReport prints a report as a table or as the canonical JSON envelope.
func writeReport(f *OutputFormatter, rep *predict.Report, sig int) error {
	if f.JSON() {
		status := "ok"
		if !rep.OK() {
			status = "error"
		}
		return f.Canonical(status, rep.Canonical(sig))
	}

	num := func(r record.Record, key string) string {
		v, err := r.Float(key)
		if err != nil {
			return "-"
		}
		return record.FormatNumber(record.RoundSig(v, sig))
	}

	w := tabwriter.NewWriter(f.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHARDWARE_ID\tCATEGORY\tMETHOD\tACTIVE\tDORMANT\tLOGISTICS\tMTBF\tOVERSTRESS")
	for _, r := range rep.Results {
		cat, _ := r.Record.Int("category_id")
		method, _ := r.Record.Int("hazard_rate_method_id")
		over := "-"
		if b, err := r.Record.Bool("overstress"); err == nil {
			over = "no"
			if b {
				over = "yes"
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Index, orDash(r.HardwareID), predict.Category(cat), method,
			num(r.Record, "hazard_rate_active"), num(r.Record, "hazard_rate_dormant"),
			num(r.Record, "hazard_rate_logistics"), num(r.Record, "mtbf_logistics"), over)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, r := range rep.Results {
		if reason, err := r.Record.String("reason"); err == nil && reason != "" {
			fmt.Fprintf(f.Writer, "\n%s overstress:\n%s", orDash(r.HardwareID), reason)
		}
	}
	for _, fail := range rep.Failures {
		fmt.Fprintf(f.Writer, "✗ #%d %s [%s] %v\n", fail.Index, orDash(fail.HardwareID), CalcErrorCode(fail.Code()), fail.Err)
	}

	mtbf := "-"
	if rep.MTBFLogistics > 0 {
		mtbf = record.FormatNumber(record.RoundSig(rep.MTBFLogistics, sig))
	}
	fmt.Fprintf(f.Writer, "\nSystem: active %s, logistics %s failures/10^6 h, MTBF %s h (%d predicted, %d failed)\n",
		record.FormatNumber(record.RoundSig(rep.HazardRateActive, sig)),
		record.FormatNumber(record.RoundSig(rep.HazardRateLogistics, sig)),
		mtbf, len(rep.Results), len(rep.Failures))
	f.VerboseLog("run %s", rep.RunID)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
