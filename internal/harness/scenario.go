package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

// DefaultTolerance is used when a scenario does not set one.
const DefaultTolerance = 1e-9

// Scenario defines one conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunID fixes the report run ID. Empty uses "test-run-default".
	RunID string `yaml:"run_id,omitempty"`

	// Tolerance bounds numeric comparisons. Zero uses DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Config overrides the default predictor configuration. It has the
	// same shape as a relpredict config file.
	Config yaml.Node `yaml:"config,omitempty"`

	// Components are the inputs, in prediction order.
	Components []map[string]any `yaml:"components"`

	// Expect lists per-component expectations.
	Expect []Expectation `yaml:"expect"`

	// System optionally checks the roll-up. Keys are hazard_rate_active,
	// hazard_rate_logistics and mtbf_logistics.
	System map[string]float64 `yaml:"system,omitempty"`
}

// Expectation describes the outcome of one component.
type Expectation struct {
	// HardwareID selects the component.
	HardwareID string `yaml:"hardware_id"`

	// Fields are expected output values (subset match).
	Fields map[string]any `yaml:"fields,omitempty"`

	// Error, when set, requires the component to fail.
	Error *ErrorExpectation `yaml:"error,omitempty"`
}

// ErrorExpectation matches a calculation failure.
type ErrorExpectation struct {
	Code  string `yaml:"code"`
	Field string `yaml:"field,omitempty"`
}

var systemKeys = map[string]bool{
	"hazard_rate_active":    true,
	"hazard_rate_logistics": true,
	"mtbf_logistics":        true,
}

var errorCodes = map[string]bool{
	string(milhdbk217f.ErrCodeIndexRange):       true,
	string(milhdbk217f.ErrCodeUnknownCategory):  true,
	string(milhdbk217f.ErrCodeMissingAttribute): true,
	string(milhdbk217f.ErrCodePrecondition):     true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields, or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// LoadDir loads every *.yaml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	names := make(map[string]string, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		if prev, dup := names[s.Name]; dup {
			return nil, fmt.Errorf("%s: scenario name %q already used by %s", filepath.Base(p), s.Name, prev)
		}
		names[s.Name] = filepath.Base(p)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Components) == 0 {
		return fmt.Errorf("components list is required and must be non-empty")
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %g", s.Tolerance)
	}

	for i, e := range s.Expect {
		if e.HardwareID == "" {
			return fmt.Errorf("expect[%d]: hardware_id is required", i)
		}
		switch {
		case e.Error != nil && len(e.Fields) > 0:
			return fmt.Errorf("expect[%d]: fields and error are mutually exclusive", i)
		case e.Error == nil && len(e.Fields) == 0:
			return fmt.Errorf("expect[%d]: one of fields or error is required", i)
		case e.Error != nil && !errorCodes[e.Error.Code]:
			return fmt.Errorf("expect[%d].error: unknown code %q", i, e.Error.Code)
		}
	}

	for k := range s.System {
		if !systemKeys[k] {
			return fmt.Errorf("system: unknown key %q", k)
		}
	}
	return nil
}

func (s *Scenario) tolerance() float64 {
	if s.Tolerance == 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}
