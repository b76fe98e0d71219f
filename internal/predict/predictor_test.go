package predict

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relpredict/internal/config"
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
	"github.com/roach88/relpredict/internal/testutil"
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

// diode is the low-frequency diode reference part in naval sheltered
// service, stored in naval conditions.
func diode(t *testing.T) record.Record {
	return mustRecord(t, map[string]any{
		"hardware_id":            "D1",
		"category_id":            2,
		"subcategory_id":         1,
		"type_id":                1,
		"construction_id":        2,
		"environment_active_id":  4,
		"environment_dormant_id": 3,
		"quality_id":             2,
		"temperature_case":       45.0,
		"theta_jc":               70.0,
		"power_operating":        0.15,
		"power_rated":            0.5,
		"voltage_rated":          5.0,
		"voltage_ac_operating":   0.05,
		"voltage_dc_operating":   3.3,
	})
}

func composition(t *testing.T) record.Record {
	return mustRecord(t, map[string]any{
		"hardware_id":           "R1",
		"category_id":           3,
		"subcategory_id":        1,
		"environment_active_id": 1,
		"quality_id":            1,
		"temperature_active":    39.5,
		"power_operating":       0.225,
		"power_rated":           0.5,
		"voltage_rated":         100.0,
		"voltage_dc_operating":  50.0,
		"resistance":            3300.0,
	})
}

func TestPredictPartStress(t *testing.T) {
	in := diode(t)
	out, err := New(nil).Predict(in)
	require.NoError(t, err)

	const active = 0.06771168232203263
	assert.InDelta(t, 0.67, floatField(t, out, "voltage_ratio"), 1e-12)
	assert.InDelta(t, 0.3, floatField(t, out, "power_ratio"), 1e-12)
	assert.InDelta(t, 55.5, floatField(t, out, "temperature_junction"), 1e-9)
	assert.InDelta(t, active, floatField(t, out, "hazard_rate_active"), 1e-12)
	assert.InDelta(t, 0.002708467292881305, floatField(t, out, "hazard_rate_dormant"), 1e-12)
	assert.InDelta(t, 0.07042014961491394, floatField(t, out, "hazard_rate_logistics"), 1e-12)
	assert.InEpsilon(t, 14200481.047944477, floatField(t, out, "mtbf_logistics"), 1e-9)

	over, err := out.Bool("overstress")
	require.NoError(t, err)
	assert.False(t, over)
	assert.False(t, in.Has("hazard_rate_active"), "input must not be mutated")
}

func TestPredictPartCountWithAdjustments(t *testing.T) {
	out, err := New(nil).Predict(mustRecord(t, map[string]any{
		"category_id":           2,
		"hazard_rate_method_id": 1,
		"subcategory_id":        1,
		"type_id":               1,
		"environment_active_id": 1,
		"quality_id":            2,
		"duty_cycle":            50.0,
		"add_adj_factor":        0.001,
		"mult_adj_factor":       1.5,
		"quantity":              2,
	}))
	require.NoError(t, err)
	assert.Equal(t, 0.0036, floatField(t, out, "lambda_b"))
	assert.InDelta(t, 0.0069, floatField(t, out, "hazard_rate_active"), 1e-15)
	assert.Equal(t, 0.0, floatField(t, out, "hazard_rate_dormant"))
	assert.False(t, out.Has("overstress"), "part count skips overstress")
}

func TestPredictUsesConfiguredMethod(t *testing.T) {
	cfg := config.Default()
	cfg.Method = config.MethodPartCount
	out, err := New(cfg).Predict(composition(t))
	require.NoError(t, err)

	m, err := out.Int("hazard_rate_method_id")
	require.NoError(t, err)
	assert.Equal(t, config.MethodPartCount, m)
	assert.InDelta(t, 0.0005*0.03, floatField(t, out, "hazard_rate_active"), 1e-15)
}

func TestPredictResistor(t *testing.T) {
	out, err := New(nil).Predict(composition(t))
	require.NoError(t, err)
	assert.InDelta(t, 0.45, floatField(t, out, "power_ratio"), 1e-15)
	assert.InEpsilon(t, 1.7836114572400365e-05, floatField(t, out, "hazard_rate_active"), 1e-9)
	reason, err := out.String("reason")
	require.NoError(t, err)
	assert.Equal(t, "", reason)
}

func TestPredictDefaultImputation(t *testing.T) {
	in := composition(t)
	delete(in, "resistance")

	out, err := New(nil).Predict(in)
	require.NoError(t, err)
	assert.Equal(t, 1.0e6, floatField(t, out, "resistance"))

	cfg := config.Default()
	cfg.ImputeDefaults = false
	_, err = New(cfg).Predict(in)
	assert.True(t, milhdbk217f.IsMissingAttribute(err))
}

func TestPredictOverstressUsesConfiguredLimits(t *testing.T) {
	in := composition(t)
	in["environment_active_id"] = record.Int(3)
	in["power_operating"] = record.Float(0.3)

	out, err := New(nil).Predict(in)
	require.NoError(t, err)
	reason, err := out.String("reason")
	require.NoError(t, err)
	assert.Equal(t, "1. Operating power > 50% rated power.\n", reason)

	cfg := config.Default()
	cfg.Derating.Resistor.Power = milhdbk217f.Limit{Harsh: 0.7, Mild: 0.8}
	out, err = New(cfg).Predict(in)
	require.NoError(t, err)
	over, err := out.Bool("overstress")
	require.NoError(t, err)
	assert.False(t, over)
}

func TestPredictErrors(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(record.Record)
		check func(error) bool
		field string
	}{
		{"unknown category", func(r record.Record) { r["category_id"] = record.Int(9) }, milhdbk217f.IsUnknownCategory, "category_id"},
		{"missing category", func(r record.Record) { delete(r, "category_id") }, milhdbk217f.IsMissingAttribute, "category_id"},
		{"unknown method", func(r record.Record) { r["hazard_rate_method_id"] = record.Int(3) }, milhdbk217f.IsUnknownCategory, "hazard_rate_method_id"},
		{"negative quantity", func(r record.Record) { r["quantity"] = record.Int(-1) }, milhdbk217f.IsPrecondition, "quantity"},
		{"bad dormant pair", func(r record.Record) { r["environment_dormant_id"] = record.Int(4) }, milhdbk217f.IsPrecondition, "environment_dormant_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := diode(t)
			tt.edit(in)
			_, err := New(nil).Predict(in)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error kind: %v", err)
			var ce *milhdbk217f.CalcError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestPredictDeterministic(t *testing.T) {
	p := New(nil)
	a, err := p.Predict(diode(t))
	require.NoError(t, err)
	b, err := p.Predict(diode(t))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPredictAll(t *testing.T) {
	broken := diode(t)
	broken["hardware_id"] = record.String("D2")
	delete(broken, "type_id")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := New(nil,
		WithRunIDGenerator(testutil.NewFixedRunIDGenerator("run-1")),
		WithLogger(logger))

	rep, err := p.PredictAll(context.Background(), []record.Record{diode(t), broken, composition(t)})
	require.NoError(t, err)

	assert.Equal(t, "run-1", rep.RunID)
	assert.False(t, rep.OK())
	require.Len(t, rep.Results, 2)
	assert.Equal(t, "D1", rep.Results[0].HardwareID)
	assert.Equal(t, 2, rep.Results[1].Index)
	assert.Len(t, rep.Results[0].InputHash, 64)

	require.Len(t, rep.Failures, 1)
	f := rep.Failures[0]
	assert.Equal(t, "D2", f.HardwareID)
	assert.Equal(t, 1, f.Index)
	assert.Equal(t, milhdbk217f.ErrCodeMissingAttribute, f.Code())
	assert.Contains(t, f.Error(), `component "D2"`)
	assert.True(t, milhdbk217f.IsMissingAttribute(f))

	assert.InDelta(t, 0.06771168232203263+1.7836114572400365e-05, rep.HazardRateActive, 1e-12)
	assert.InDelta(t, 0.07042014961491394+1.7836114572400365e-05, rep.HazardRateLogistics, 1e-12)
	assert.InEpsilon(t, 1e6/rep.HazardRateLogistics, rep.MTBFLogistics, 1e-12)

	assert.Contains(t, logs.String(), "prediction complete")
	assert.Contains(t, logs.String(), "hardware_id=D1")
}

func TestPredictAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := New(nil, WithRunIDGenerator(testutil.NewFixedRunIDGenerator("run-1"))).
		PredictAll(ctx, []record.Record{diode(t)})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, rep)
	assert.Empty(t, rep.Results)
}

func TestPredictAllRunIDs(t *testing.T) {
	p := New(nil, WithRunIDGenerator(testutil.NewSequenceRunIDGenerator("a", "b")))
	r1, err := p.PredictAll(context.Background(), nil)
	require.NoError(t, err)
	r2, err := p.PredictAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "a", r1.RunID)
	assert.Equal(t, "b", r2.RunID)
	assert.True(t, r1.OK())
	assert.Equal(t, 0.0, r1.MTBFLogistics)
}

func TestUUIDv7RunIDs(t *testing.T) {
	id := UUIDv7Generator{}.Generate()
	assert.Len(t, id, 36)
	assert.Equal(t, byte('7'), id[14])
}
