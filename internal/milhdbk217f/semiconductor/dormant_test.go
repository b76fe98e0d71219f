package semiconductor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

func TestDormantHazardRate(t *testing.T) {
	tests := []struct {
		name    string
		sub     Subcategory
		active  milhdbk217f.Environment
		dormant milhdbk217f.DormantEnvironment
		want    float64
	}{
		{"diode ground", LowFrequencyDiode, milhdbk217f.GroundBenign, milhdbk217f.DormantGround, 0.02},
		{"transistor airborne", LowFrequencyBipolar, milhdbk217f.AirborneInhabitedCargo, milhdbk217f.DormantAirborne, 0.03},
		{"transistor space to ground", HighFrequencySiFET, milhdbk217f.SpaceFlight, milhdbk217f.DormantGround, 0.5},
		{"thyristor has no dormant rate", Thyristor, milhdbk217f.GroundBenign, milhdbk217f.DormantGround, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := DormantHazardRate(tt.sub, tt.active, tt.dormant, 0.5)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, h, 1e-12)
		})
	}
}

func TestCalculateDormantHazardRate(t *testing.T) {
	out, err := CalculateDormantHazardRate(mustRecord(t, map[string]any{
		"subcategory_id":         2,
		"environment_active_id":  4,
		"environment_dormant_id": 3,
		"hazard_rate_active":     1.5,
	}))
	require.NoError(t, err)
	assert.InDelta(t, 0.06, floatField(t, out, "hazard_rate_dormant"), 1e-12)
}

func TestCalculateDormantHazardRateErrors(t *testing.T) {
	_, err := CalculateDormantHazardRate(mustRecord(t, map[string]any{
		"subcategory_id":         11,
		"environment_active_id":  1,
		"environment_dormant_id": 3,
		"hazard_rate_active":     1.5,
	}))
	require.Error(t, err)
	assert.True(t, milhdbk217f.IsPrecondition(err))
	assert.Contains(t, err.Error(), "active 1, dormant 3")

	_, err = CalculateDormantHazardRate(mustRecord(t, map[string]any{
		"subcategory_id":         1,
		"environment_active_id":  1,
		"environment_dormant_id": 2,
	}))
	assert.True(t, milhdbk217f.IsMissingAttribute(err))
}
