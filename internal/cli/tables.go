package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
)

// TablesResult is the JSON payload of the tables command.
type TablesResult struct {
	Family       string     `json:"family"`
	Environments []string   `json:"environments"`
	Rows         []TableRow `json:"rows"`
}

// TableRow is one subcategory row; unrated environments are 0.
type TableRow struct {
	Label string    `json:"label"`
	Rates []float64 `json:"rates"`
}

// NewTablesCommand creates the tables command.
func NewTablesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tables <family>",
		Short: "Print the part-count base hazard rates of a family",
		Long: `Print the part-count base hazard rate table (failures per 10^6 hours) of a
component family for all fourteen environments. The family is given by
name or category_id. A dash marks an environment the part is not rated for.

Examples:
  relpredict tables semiconductor
  relpredict tables 3 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTables(rootOpts, args[0], cmd)
		},
	}
}

func runTables(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cat, ok := predict.ParseCategory(name)
	if !ok {
		names := make([]string, 0, len(predict.Categories()))
		for _, c := range predict.Categories() {
			names = append(names, c.String())
		}
		msg := fmt.Sprintf("unknown family %q: must be one of %s", name, strings.Join(names, ", "))
		if err := formatter.Error(ErrCodeUnknownCategory, msg, nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, msg)
	}
	rows, err := predict.PartCountTable(cat)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read tables", err)
	}

	envs := milhdbk217f.Environments()
	if formatter.JSON() {
		res := TablesResult{Family: cat.String(), Rows: make([]TableRow, 0, len(rows))}
		for _, e := range envs {
			res.Environments = append(res.Environments, e.String())
		}
		for _, r := range rows {
			res.Rows = append(res.Rows, TableRow{Label: r.Label, Rates: r.Rates[:]})
		}
		return formatter.Success(res)
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 0, 2, ' ', 0)
	header := []string{"SUBCATEGORY"}
	for _, e := range envs {
		header = append(header, e.String())
	}
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, r := range rows {
		cells := []string{r.Label}
		for _, v := range r.Rates {
			if v == 0 {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, record.FormatNumber(v))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}
