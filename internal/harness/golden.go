package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
)

// GoldenPrecision is the number of significant digits kept in golden
// snapshots.
const GoldenPrecision = 6

// snapshot renders a report as canonical JSON under the scenario name.
func snapshot(name string, report *predict.Report) ([]byte, error) {
	m := report.Canonical(GoldenPrecision)
	m["scenario_name"] = name
	return record.MarshalCanonical(m)
}

// RunWithGolden executes a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if the scenario cannot run or an expectation fails.
// A golden mismatch fails the test through goldie.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	if err := AssertGolden(t, scenario.Name, result.Report); err != nil {
		return err
	}
	if !result.Pass {
		return fmt.Errorf("scenario %s failed:\n%s", scenario.Name, strings.Join(result.Errors, "\n"))
	}
	return nil
}

// AssertGolden compares an already computed report against a golden file.
func AssertGolden(t *testing.T, name string, report *predict.Report) error {
	t.Helper()

	data, err := snapshot(name, report)
	if err != nil {
		return err
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
