package resistor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

func overstressOf(t *testing.T, r record.Record) (bool, string) {
	t.Helper()
	flag, err := r.Bool("overstress")
	require.NoError(t, err)
	reason, err := r.String("reason")
	require.NoError(t, err)
	return flag, reason
}

func TestOverstressedMild(t *testing.T) {
	flag, reason := overstressOf(t, Overstressed(mustRecord(t, map[string]any{
		"environment_active_id": 1,
		"power_ratio":           0.6,
		"voltage_ratio":         0.85,
	})))
	assert.False(t, flag)
	assert.Equal(t, "", reason)

	flag, reason = overstressOf(t, Overstressed(mustRecord(t, map[string]any{
		"environment_active_id": 1,
		"power_ratio":           0.6,
		"voltage_ratio":         0.95,
	})))
	assert.True(t, flag)
	assert.Equal(t, "1. Operating voltage > 90% rated voltage.\n", reason)
}

func TestOverstressedHarshDerivesRatios(t *testing.T) {
	out := Overstressed(mustRecord(t, map[string]any{
		"environment_active_id": 3,
		"power_operating":       0.3,
		"power_rated":           0.5,
		"voltage_ac_operating":  2.0,
		"voltage_dc_operating":  7.0,
		"voltage_rated":         10.0,
	}))
	assert.InDelta(t, 0.6, floatField(t, out, "power_ratio"), 1e-12)
	assert.InDelta(t, 0.9, floatField(t, out, "voltage_ratio"), 1e-12)
	flag, reason := overstressOf(t, out)
	assert.True(t, flag)
	assert.Equal(t, "1. Operating power > 50% rated power.\n2. Operating voltage > 80% rated voltage.\n", reason)
}

func TestOverstressCustomLimits(t *testing.T) {
	lim := Limits{Power: milhdbk217f.Limit{Harsh: 0.7}}
	f := Overstress(milhdbk217f.GroundMobile, 0.6, 0.99, lim)
	assert.False(t, f.Overstressed())
}
