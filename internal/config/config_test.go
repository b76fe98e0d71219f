package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/milhdbk217f/resistor"
	"github.com/roach88/relpredict/internal/milhdbk217f/semiconductor"
)

func TestParseEmptyIsDefault(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, semiconductor.DefaultLimits, cfg.Derating.Semiconductor)
	assert.Equal(t, resistor.DefaultLimits, cfg.Derating.Resistor)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
precision: 4
derating:
  semiconductor:
    power:
      mild: 0.8
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, MethodPartStress, cfg.Method)
	assert.True(t, cfg.ImputeDefaults)
	assert.Equal(t, milhdbk217f.Limit{Harsh: 0.70, Mild: 0.8}, cfg.Derating.Semiconductor.Power)
	assert.Equal(t, 125.0, cfg.Derating.Semiconductor.JunctionTemperature.Harsh)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("precission: 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "precission")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"precision", "precision: 30\n", "precision"},
		{"method", "hazard_rate_method: 3\n", "hazard_rate_method"},
		{"negative limit", "derating:\n  resistor:\n    voltage:\n      harsh: -1\n", "derating.resistor.voltage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relpredict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hazard_rate_method: 1\nimpute_defaults: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MethodPartCount, cfg.Method)
	assert.False(t, cfg.ImputeDefaults)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
