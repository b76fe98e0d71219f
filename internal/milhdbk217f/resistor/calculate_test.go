package resistor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

func mustRecord(t *testing.T, m map[string]any) record.Record {
	t.Helper()
	r, err := record.FromMap(m)
	require.NoError(t, err)
	return r
}

func floatField(t *testing.T, r record.Record, key string) float64 {
	t.Helper()
	v, err := r.Float(key)
	require.NoError(t, err)
	return v
}

// stressRecord is a ground benign (piE = 1) resistor at 39.5 C and 45% rated
// power.
func stressRecord(t *testing.T, sub Subcategory, extra map[string]any) record.Record {
	m := map[string]any{
		"hardware_id":           "R1",
		"subcategory_id":        int(sub),
		"environment_active_id": 1,
		"quality_id":            1,
		"temperature_active":    39.5,
		"power_ratio":           0.45,
		"resistance":            3300.0,
	}
	for k, v := range extra {
		m[k] = v
	}
	return mustRecord(t, m)
}

func TestCalculatePartCount(t *testing.T) {
	in := mustRecord(t, map[string]any{
		"subcategory_id":        2,
		"specification_id":      3,
		"environment_active_id": 3,
		"quality_id":            3,
	})
	out, err := CalculatePartCount(in)
	require.NoError(t, err)

	assert.Equal(t, 0.013, floatField(t, out, "lambda_b"))
	assert.Equal(t, 0.3, floatField(t, out, "piQ"))
	assert.InDelta(t, 0.0039, floatField(t, out, "hazard_rate_active"), 1e-15)
	assert.False(t, in.Has("lambda_b"), "input must not be mutated")
}

func TestCalculatePartCountErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]any
		check func(error) bool
		field string
	}{
		{
			name:  "unknown specification",
			in:    map[string]any{"subcategory_id": 2, "specification_id": 5, "environment_active_id": 1, "quality_id": 1},
			check: milhdbk217f.IsUnknownCategory,
			field: "specification_id",
		},
		{
			name:  "missing specification",
			in:    map[string]any{"subcategory_id": 6, "environment_active_id": 1, "quality_id": 1},
			check: milhdbk217f.IsMissingAttribute,
			field: "specification_id",
		},
		{
			name:  "unrated environment",
			in:    map[string]any{"subcategory_id": 11, "environment_active_id": 8, "quality_id": 1},
			check: milhdbk217f.IsPrecondition,
			field: "environment_active_id",
		},
		{
			name:  "quality out of range",
			in:    map[string]any{"subcategory_id": 1, "environment_active_id": 1, "quality_id": 7},
			check: milhdbk217f.IsIndexRange,
			field: "quality_id",
		},
		{
			name:  "unknown subcategory",
			in:    map[string]any{"subcategory_id": 16, "environment_active_id": 1, "quality_id": 1},
			check: milhdbk217f.IsUnknownCategory,
			field: "subcategory_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePartCount(mustRecord(t, tt.in))
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			var ce *milhdbk217f.CalcError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestPartCountUnratedEnvironments(t *testing.T) {
	for _, s := range Subcategories() {
		nSpecs := 1
		if rows, ok := partCountLambdaBBySpec[s]; ok {
			nSpecs = len(rows)
		}
		for specID := 1; specID <= nSpecs; specID++ {
			for _, env := range milhdbk217f.Environments() {
				a := Attributes{Subcategory: s, SpecificationID: specID, Environment: env, QualityID: 1}
				res, err := PartCount(a)
				if err != nil {
					assert.True(t, milhdbk217f.IsPrecondition(err), "%s specification %d %s: %v", s, specID, env, err)
					continue
				}
				assert.Greater(t, res.HazardRateActive, 0.0)
			}
		}
	}
}

func TestCalculatePartStressBySubcategory(t *testing.T) {
	tests := []struct {
		name  string
		sub   Subcategory
		extra map[string]any
		want  float64
	}{
		{"composition", Composition, nil, 0.0005945371524133455 * 0.03},
		{"film", Film, map[string]any{"specification_id": 1}, 0.0011588565990915385 * 0.03},
		{"power wirewound", PowerWirewound, map[string]any{"specification_id": 1, "family_id": 1, "resistance": 6000.0, "quality_id": 4}, 0.014943350743295952},
		{"thermistor", Thermistor, map[string]any{"type_id": 2}, 0.065},
		{
			"variable film", VariableFilm,
			map[string]any{"resistance": 2.0e5, "voltage_ratio": 0.85, "n_elements": 3},
			0.09983623561897911,
		},
		{
			"precision variable wirewound", PrecisionVariableWirewound,
			map[string]any{"resistance": 5.0e4, "voltage_ratio": 0.85, "n_elements": 3, "construction_id": 3},
			2.468612023545602,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := CalculatePartStress(stressRecord(t, tt.sub, tt.extra))
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, floatField(t, out, "hazard_rate_active"), 1e-9)
		})
	}
}

func TestPartStressNetwork(t *testing.T) {
	in := mustRecord(t, map[string]any{
		"subcategory_id":        int(Network),
		"environment_active_id": 1,
		"quality_id":            1,
		"temperature_active":    38.2,
		"power_ratio":           0.45,
		"n_elements":            10,
	})
	out, err := CalculatePartStress(in)
	require.NoError(t, err)
	assert.InDelta(t, 62.95, floatField(t, out, "temperature_case"), 1e-9)
	assert.InDelta(t, 4.653004187014393, floatField(t, out, "piT"), 1e-12)
	assert.InDelta(t, 0.0027918025122086357, floatField(t, out, "hazard_rate_active"), 1e-15)

	// A known case temperature replaces the ambient estimate.
	in = mustRecord(t, map[string]any{
		"subcategory_id":        int(Network),
		"environment_active_id": 3,
		"quality_id":            2,
		"temperature_case":      70.0,
		"n_elements":            4,
	})
	out, err = CalculatePartStress(in)
	require.NoError(t, err)
	assert.InDelta(t, 5.963546585252484, floatField(t, out, "piT"), 1e-12)
	assert.InEpsilon(t, 6e-5*5.963546585252484*4*3.0*10.0, floatField(t, out, "hazard_rate_active"), 1e-12)
}

func TestPartStressNeutralFactors(t *testing.T) {
	out, err := CalculatePartStress(stressRecord(t, Composition, nil))
	require.NoError(t, err)
	for _, k := range []string{"piT", "piV", "piC", "piTAPS"} {
		assert.Equal(t, 1.0, floatField(t, out, k), k)
	}
	assert.False(t, out.Has("temperature_case"))
}

func TestCalculatePartStressErrors(t *testing.T) {
	tests := []struct {
		name  string
		sub   Subcategory
		extra map[string]any
		check func(error) bool
		field string
	}{
		{
			name:  "resistance outside family range",
			sub:   PowerWirewound,
			extra: map[string]any{"specification_id": 1, "family_id": 5, "resistance": 6000.0},
			check: milhdbk217f.IsPrecondition,
			field: "resistance",
		},
		{
			name:  "family out of range",
			sub:   ChassisMountedWirewound,
			extra: map[string]any{"specification_id": 1, "family_id": 7},
			check: milhdbk217f.IsIndexRange,
			field: "family_id",
		},
		{
			name:  "missing voltage ratio",
			sub:   VariableWirewound,
			extra: map[string]any{"n_elements": 3},
			check: milhdbk217f.IsMissingAttribute,
			field: "voltage_ratio",
		},
		{
			name:  "missing construction",
			sub:   PowerVariableWirewound,
			extra: map[string]any{"n_elements": 3, "voltage_ratio": 0.5},
			check: milhdbk217f.IsMissingAttribute,
			field: "construction_id",
		},
		{
			name:  "unrated environment",
			sub:   SemiprecisionVariableWirewound,
			extra: map[string]any{"n_elements": 3, "voltage_ratio": 0.5, "environment_active_id": 12},
			check: milhdbk217f.IsPrecondition,
			field: "environment_active_id",
		},
		{
			name:  "thermistor type out of range",
			sub:   Thermistor,
			extra: map[string]any{"type_id": 4},
			check: milhdbk217f.IsIndexRange,
			field: "type_id",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePartStress(stressRecord(t, tt.sub, tt.extra))
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			var ce *milhdbk217f.CalcError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}
