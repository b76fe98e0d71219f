package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/roach88/relpredict/internal/component"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool           `json:"valid"`
	Components int            `json:"components"`
	Files      map[string]int `json:"files"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Validate component files without predicting",
		Long: `Validate YAML, JSON or CUE component files against the component schema.

Every schema violation is reported with its file and line. No hazard rates
are computed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

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

	if formatter.JSON() {
		return formatter.Success(ValidationResult{Valid: true, Components: len(res.Components), Files: res.Files})
	}
	files := make([]string, 0, len(res.Files))
	for f := range res.Files {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		formatter.VerboseLog("%s: %d component(s)", f, res.Files[f])
	}
	fmt.Fprintf(formatter.Writer, "✓ %d component(s) valid in %d file(s)\n", len(res.Components), len(files))
	return nil
}
