package resistor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

const defaultPowerRatio = 0.5

// Network case temperature rise over ambient, in C.
const networkCaseRise = 28.0

var defaultResistance = map[Subcategory]float64{
	Composition:                    1.0e6,
	Film:                           1.0e6,
	PowerFilm:                      100.0,
	Network:                        1000.0,
	Wirewound:                      1.0e5,
	PowerWirewound:                 5000.0,
	ChassisMountedWirewound:        5000.0,
	Thermistor:                     1000.0,
	VariableWirewound:              5000.0,
	PrecisionVariableWirewound:     5.0e4,
	SemiprecisionVariableWirewound: 5000.0,
	PowerVariableWirewound:         5000.0,
	VariableNonWirewound:           2.0e5,
	VariableComposition:            2.0e5,
	VariableFilm:                   2.0e5,
}

// defaultElements returns 0 for styles without element or tap counts.
func defaultElements(s Subcategory) int {
	switch {
	case s == Network:
		return 10
	case s.Variable():
		return 3
	default:
		return 0
	}
}

// SetDefaults imputes handbook defaults into every unset (<= 0) input that
// has one. Positive values are never replaced.
func SetDefaults(a Attributes) Attributes {
	s := a.Subcategory
	a.PowerRatio = milhdbk217f.Some(a.PowerRatio.Or(defaultPowerRatio))
	if !a.Resistance.Positive() {
		if v, ok := defaultResistance[s]; ok {
			a.Resistance = milhdbk217f.Some(v)
		}
	}
	if a.NElements <= 0 {
		a.NElements = defaultElements(s)
	}
	if s == Network && !a.TemperatureCase.Positive() {
		a.TemperatureCase = milhdbk217f.Some(a.TemperatureActive + networkCaseRise)
	}
	return a
}

// SetDefaultValues is SetDefaults over a record. Only imputed fields are
// written back, and a network's case temperature only when
// temperature_active is present. A record that does not decode is returned
// unchanged; the calculation reports the problem.
func SetDefaultValues(r record.Record) record.Record {
	out := r.Clone()
	a, err := Decode(r)
	if err != nil {
		return out
	}
	d := SetDefaults(a)

	if d.PowerRatio != a.PowerRatio {
		milhdbk217f.SetOpt(out, "power_ratio", d.PowerRatio)
	}
	if d.Resistance != a.Resistance {
		milhdbk217f.SetOpt(out, "resistance", d.Resistance)
	}
	if d.NElements > 0 && d.NElements != a.NElements {
		out["n_elements"] = record.Int(d.NElements)
	}
	if d.TemperatureCase != a.TemperatureCase && r.Has("temperature_active") {
		milhdbk217f.SetOpt(out, "temperature_case", d.TemperatureCase)
	}
	return out
}
