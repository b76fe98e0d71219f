package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/milhdbk217f/resistor"
	"github.com/roach88/relpredict/internal/milhdbk217f/semiconductor"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultPrecision = 6
	DefaultMethod    = MethodPartStress
)

// Hazard rate methods, as stored in hazard_rate_method_id.
const (
	MethodPartCount  = 1
	MethodPartStress = 2
)

// Config is the tool configuration.
type Config struct {
	// Precision is the number of significant digits floats are rounded to
	// on output. Zero keeps full precision.
	Precision int `yaml:"precision"`

	// Method is the hazard rate method used when a component does not set
	// hazard_rate_method_id.
	Method int `yaml:"hazard_rate_method"`

	// ImputeDefaults runs handbook default imputation before calculating.
	ImputeDefaults bool `yaml:"impute_defaults"`

	Derating Derating `yaml:"derating"`
}

// Derating holds the overstress limits of each family.
type Derating struct {
	Semiconductor semiconductor.Limits `yaml:"semiconductor"`
	Resistor      resistor.Limits      `yaml:"resistor"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Precision:      DefaultPrecision,
		Method:         DefaultMethod,
		ImputeDefaults: true,
		Derating: Derating{
			Semiconductor: semiconductor.DefaultLimits,
			Resistor:      resistor.DefaultLimits,
		},
	}
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over Default. An empty document yields the
// defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// validate checks ranges and structural constraints.
func validate(cfg *Config) error {
	if cfg.Precision < 0 || cfg.Precision > 17 {
		return fmt.Errorf("precision must be in [0, 17], got %d", cfg.Precision)
	}
	switch cfg.Method {
	case MethodPartCount, MethodPartStress:
	default:
		return fmt.Errorf("hazard_rate_method must be %d or %d, got %d", MethodPartCount, MethodPartStress, cfg.Method)
	}
	limits := map[string]milhdbk217f.Limit{
		"semiconductor.power":                cfg.Derating.Semiconductor.Power,
		"semiconductor.junction_temperature": cfg.Derating.Semiconductor.JunctionTemperature,
		"resistor.power":                     cfg.Derating.Resistor.Power,
		"resistor.voltage":                   cfg.Derating.Resistor.Voltage,
	}
	for name, l := range limits {
		if l.Harsh < 0 || l.Mild < 0 {
			return fmt.Errorf("derating.%s must not be negative", name)
		}
	}
	return nil
}
