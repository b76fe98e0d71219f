package semiconductor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

var defaultPowerRated = map[Subcategory]float64{
	LowFrequencyBipolar:           0.5,
	HighFrequencyLowNoiseBipolar:  0.5,
	HighFrequencyHighPowerBipolar: 100.0,
}

var defaultVoltageRatio = map[Subcategory]float64{
	LowFrequencyDiode:            0.7,
	LowFrequencyBipolar:          0.5,
	HighFrequencyLowNoiseBipolar: 0.7,
	LaserDiode:                   0.5,
}

// defaultApplication returns 0 when the subcategory has no default.
func defaultApplication(s Subcategory, typeID int) int {
	switch s {
	case HighFrequencyDiode:
		return 3
	case LowFrequencyBipolar, LowFrequencySiFET, HighFrequencyHighPowerBipolar:
		return 2
	case GaAsFET:
		if typeID == 2 {
			return 2
		}
		return 1
	case LaserDiode:
		return 1
	default:
		return 0
	}
}

func voltageRatioDefault(s Subcategory) float64 {
	if v, ok := defaultVoltageRatio[s]; ok {
		return v
	}
	return 1.0
}

// SetDefaults imputes handbook defaults into every unset (<= 0) input that
// has one. Positive values are never replaced, so SetDefaults is idempotent.
func SetDefaults(a Attributes) Attributes {
	s := a.Subcategory
	if a.ApplicationID <= 0 {
		a.ApplicationID = defaultApplication(s, a.TypeID)
	}
	if !a.PowerRated.Positive() {
		if v, ok := defaultPowerRated[s]; ok {
			a.PowerRated = milhdbk217f.Some(v)
		}
	}
	a.VoltageRatio = milhdbk217f.Some(a.VoltageRatio.Or(voltageRatioDefault(s)))
	if a.TypeID <= 0 && s == LowFrequencySiFET {
		a.TypeID = 1
	}
	if a.ConstructionID <= 0 && s == LowFrequencyDiode {
		a.ConstructionID = 1
	}
	return a
}

// SetDefaultValues is SetDefaults over a record. Only imputed fields are
// written back. A record that does not decode is returned unchanged; the
// calculation reports the problem.
func SetDefaultValues(r record.Record) record.Record {
	out := r.Clone()
	a, err := Decode(r)
	if err != nil {
		return out
	}
	d := SetDefaults(a)

	setID(out, "application_id", a.ApplicationID, d.ApplicationID)
	setID(out, "type_id", a.TypeID, d.TypeID)
	setID(out, "construction_id", a.ConstructionID, d.ConstructionID)
	if d.PowerRated != a.PowerRated {
		milhdbk217f.SetOpt(out, "power_rated", d.PowerRated)
	}
	if d.VoltageRatio != a.VoltageRatio {
		milhdbk217f.SetOpt(out, "voltage_ratio", d.VoltageRatio)
	}
	return out
}

func setID(r record.Record, key string, was, now int) {
	if now > 0 && now != was {
		r[key] = record.Int(now)
	}
}
