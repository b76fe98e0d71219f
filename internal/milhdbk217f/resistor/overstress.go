package resistor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Limits are the derating thresholds checked by overstress detection.
type Limits struct {
	Power   milhdbk217f.Limit `yaml:"power" json:"power"`
	Voltage milhdbk217f.Limit `yaml:"voltage" json:"voltage"`
}

var DefaultLimits = Limits{
	Power:   milhdbk217f.Limit{Harsh: 0.50, Mild: 0.80},
	Voltage: milhdbk217f.Limit{Harsh: 0.80, Mild: 0.90},
}

// Overstress checks the power and voltage ratios of a resistor against lim.
func Overstress(env milhdbk217f.Environment, powerRatio, voltageRatio float64, lim Limits) *milhdbk217f.Findings {
	var f milhdbk217f.Findings
	if lim.Power.Exceeded(env, powerRatio) {
		f.Addf("Operating power > %s%% rated power.", milhdbk217f.Percent(lim.Power.For(env)))
	}
	if lim.Voltage.Exceeded(env, voltageRatio) {
		f.Addf("Operating voltage > %s%% rated voltage.", milhdbk217f.Percent(lim.Voltage.For(env)))
	}
	return &f
}

// Overstressed runs OverstressedWithLimits with DefaultLimits.
func Overstressed(r record.Record) record.Record {
	return OverstressedWithLimits(r, DefaultLimits)
}

// OverstressedWithLimits returns a copy of r with overstress and reason set.
// power_ratio and voltage_ratio are derived from the operating and rated
// values when absent. It never fails.
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
	f := Overstress(env, floatOrZero(out, "power_ratio"), floatOrZero(out, "voltage_ratio"), lim)
	out["overstress"] = record.Bool(f.Overstressed())
	out["reason"] = record.String(f.Reason())
	return out
}

func intOrZero(r record.Record, key string) int {
	v, err := r.IntOr(key, 0)
	if err != nil {
		return 0
	}
	return v
}

func floatOrZero(r record.Record, key string) float64 {
	v, err := r.FloatOr(key, 0)
	if err != nil {
		return 0
	}
	return v
}
