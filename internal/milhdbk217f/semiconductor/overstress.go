package semiconductor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Limits are the derating thresholds checked by overstress detection.
type Limits struct {
	// Power is the maximum power_ratio.
	Power milhdbk217f.Limit `yaml:"power" json:"power"`

	// JunctionTemperature is the maximum junction temperature in C.
	JunctionTemperature milhdbk217f.Limit `yaml:"junction_temperature" json:"junction_temperature"`
}

// DefaultLimits: 90% rated power in mild environments, 70% and a 125 C
// junction in harsh ones.
var DefaultLimits = Limits{
	Power:               milhdbk217f.Limit{Harsh: 0.70, Mild: 0.90},
	JunctionTemperature: milhdbk217f.Limit{Harsh: 125.0},
}

// Overstress checks the operating point of a part against lim.
func Overstress(env milhdbk217f.Environment, powerRatio, junctionTemperature float64, lim Limits) *milhdbk217f.Findings {
	var f milhdbk217f.Findings
	if lim.Power.Exceeded(env, powerRatio) {
		f.Addf("Operating power > %s%% rated power.", milhdbk217f.Percent(lim.Power.For(env)))
	}
	if lim.JunctionTemperature.Exceeded(env, junctionTemperature) {
		f.Addf("Junction temperature > %.1fC.", lim.JunctionTemperature.For(env))
	}
	return &f
}

// Overstressed runs OverstressedWithLimits with DefaultLimits.
func Overstressed(r record.Record) record.Record {
	return OverstressedWithLimits(r, DefaultLimits)
}

// OverstressedWithLimits returns a copy of r with overstress and reason set.
// power_ratio and voltage_ratio are derived from the operating and rated
// values when absent. The junction temperature is taken from the record or
// computed from the thermal inputs; when neither is possible the
// temperature check is skipped. It never fails.
func OverstressedWithLimits(r record.Record, lim Limits) record.Record {
	out := r.Clone()
	if !r.Has("power_ratio") {
		out["power_ratio"] = record.Float(milhdbk217f.Ratio(floatOrZero(r, "power_operating"), floatOrZero(r, "power_rated")))
	}
	if !r.Has("voltage_ratio") {
		v := floatOrZero(r, "voltage_ac_operating") + floatOrZero(r, "voltage_dc_operating")
		out["voltage_ratio"] = record.Float(milhdbk217f.Ratio(v, floatOrZero(r, "voltage_rated")))
	}

	env := milhdbk217f.Environment(intOrZero(r, "environment_active_id"))
	powerRatio := floatOrZero(out, "power_ratio")
	f := Overstress(env, powerRatio, junctionFor(r, env), lim)
	out["overstress"] = record.Bool(f.Overstressed())
	out["reason"] = record.String(f.Reason())
	return out
}

// junctionFor returns 0 when the junction temperature cannot be resolved.
func junctionFor(r record.Record, env milhdbk217f.Environment) float64 {
	if tj, err := r.Float("temperature_junction"); err == nil {
		return tj
	}
	a, err := Decode(r)
	if err != nil {
		return 0
	}
	t, err := JunctionTemperature(env, a.PackageID, a.TemperatureCase, a.ThetaJC, a.PowerOperating)
	if err != nil {
		return 0
	}
	return t.JunctionTemperature
}

func floatOrZero(r record.Record, key string) float64 {
	v, err := r.FloatOr(key, 0)
	if err != nil {
		return 0
	}
	return v
}

func intOrZero(r record.Record, key string) int {
	v, err := r.IntOr(key, 0)
	if err != nil {
		return 0
	}
	return v
}
