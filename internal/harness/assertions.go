package harness

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	floats "gonum.org/v1/gonum/floats/scalar"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/predict"
	"github.com/roach88/relpredict/internal/record"
)

// AssertionError is returned when an expectation fails.
type AssertionError struct {
	Type       string // field, error, component or system
	HardwareID string
	Expected   string
	Actual     string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s", e.Type)
	if e.HardwareID != "" {
		fmt.Fprintf(&buf, " [%s]", e.HardwareID)
	}
	fmt.Fprintf(&buf, "\n  Expected: %s\n  Actual: %s\n", e.Expected, e.Actual)
	return buf.String()
}

// EvaluateExpectations checks report against the scenario's expectations
// and returns one message per failure.
func EvaluateExpectations(report *predict.Report, scenario *Scenario) []string {
	tol := scenario.tolerance()
	var errs []string
	for _, e := range scenario.Expect {
		for _, err := range checkComponent(report, e, tol) {
			errs = append(errs, err.Error())
		}
	}
	for _, err := range checkSystem(report, scenario.System, tol) {
		errs = append(errs, err.Error())
	}
	return errs
}

func checkComponent(report *predict.Report, e Expectation, tol float64) []error {
	var res *predict.Result
	for i := range report.Results {
		if report.Results[i].HardwareID == e.HardwareID {
			res = &report.Results[i]
			break
		}
	}
	var fail *predict.ComponentError
	for _, f := range report.Failures {
		if f.HardwareID == e.HardwareID {
			fail = f
			break
		}
	}

	if e.Error != nil {
		return checkError(e, fail, res != nil)
	}
	if res == nil {
		actual := "not found in report"
		if fail != nil {
			actual = "failed: " + fail.Err.Error()
		}
		return []error{&AssertionError{Type: "component", HardwareID: e.HardwareID, Expected: "successful prediction", Actual: actual}}
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		want := e.Fields[k]
		got, ok := res.Record[k]
		if !ok {
			errs = append(errs, &AssertionError{Type: "field", HardwareID: e.HardwareID,
				Expected: fmt.Sprintf("%s = %v", k, want), Actual: "field absent"})
			continue
		}
		if !valuesMatch(want, got, tol) {
			errs = append(errs, &AssertionError{Type: "field", HardwareID: e.HardwareID,
				Expected: fmt.Sprintf("%s = %v", k, want), Actual: fmt.Sprintf("%s = %s", k, record.Format(got))})
		}
	}
	return errs
}

func checkError(e Expectation, fail *predict.ComponentError, succeeded bool) []error {
	want := e.Error.Code
	if e.Error.Field != "" {
		want += " on " + e.Error.Field
	}
	if fail == nil {
		actual := "not found in report"
		if succeeded {
			actual = "component succeeded"
		}
		return []error{&AssertionError{Type: "error", HardwareID: e.HardwareID, Expected: want, Actual: actual}}
	}

	var ce *milhdbk217f.CalcError
	if !errors.As(fail.Err, &ce) {
		return []error{&AssertionError{Type: "error", HardwareID: e.HardwareID, Expected: want, Actual: fail.Err.Error()}}
	}
	if string(ce.Code) != e.Error.Code || (e.Error.Field != "" && ce.Field != e.Error.Field) {
		return []error{&AssertionError{Type: "error", HardwareID: e.HardwareID, Expected: want,
			Actual: fmt.Sprintf("%s on %s", ce.Code, ce.Field)}}
	}
	return nil
}

func checkSystem(report *predict.Report, want map[string]float64, tol float64) []error {
	got := map[string]float64{
		"hazard_rate_active":    report.HazardRateActive,
		"hazard_rate_logistics": report.HazardRateLogistics,
		"mtbf_logistics":        report.MTBFLogistics,
	}
	keys := make([]string, 0, len(want))
	for k := range want {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, k := range keys {
		if !floats.EqualWithinAbsOrRel(want[k], got[k], tol, tol) {
			errs = append(errs, &AssertionError{Type: "system",
				Expected: fmt.Sprintf("%s = %v", k, want[k]), Actual: fmt.Sprintf("%s = %v", k, got[k])})
		}
	}
	return errs
}

// valuesMatch compares a YAML-decoded expectation against a record value.
// Numbers of either kind compare within tol.
func valuesMatch(want any, got record.Value, tol float64) bool {
	switch w := want.(type) {
	case int:
		return numberMatches(float64(w), got, tol)
	case float64:
		return numberMatches(w, got, tol)
	case string:
		s, ok := got.(record.String)
		return ok && string(s) == w
	case bool:
		b, ok := got.(record.Bool)
		return ok && bool(b) == w
	default:
		return false
	}
}

func numberMatches(want float64, got record.Value, tol float64) bool {
	var g float64
	switch v := got.(type) {
	case record.Float:
		g = float64(v)
	case record.Int:
		g = float64(v)
	default:
		return false
	}
	return floats.EqualWithinAbsOrRel(want, g, tol, tol)
}
