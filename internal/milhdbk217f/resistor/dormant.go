package resistor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// DormantHazardRate converts an active hazard rate into the dormant one.
// Every resistor style shares the resistor conversion row.
func DormantHazardRate(active milhdbk217f.Environment, dormant milhdbk217f.DormantEnvironment, hazardRateActive float64) (float64, error) {
	factor, err := milhdbk217f.DormantFactor(milhdbk217f.DormantResistors, active, dormant)
	if err != nil {
		return 0, err
	}
	return hazardRateActive * factor, nil
}

// CalculateDormantHazardRate returns a copy of r with hazard_rate_dormant
// set from hazard_rate_active and the environment pair.
func CalculateDormantHazardRate(r record.Record) (record.Record, error) {
	if err := requireFields(r, "environment_active_id", "environment_dormant_id", "hazard_rate_active"); err != nil {
		return nil, err
	}
	rd := milhdbk217f.NewReader(r)
	active := milhdbk217f.Environment(rd.Int("environment_active_id"))
	dormant := milhdbk217f.DormantEnvironment(rd.Int("environment_dormant_id"))
	hazard := rd.Float("hazard_rate_active")
	if err := rd.Err(); err != nil {
		return nil, err
	}
	h, err := DormantHazardRate(active, dormant, hazard)
	if err != nil {
		return nil, err
	}
	out := r.Clone()
	out["hazard_rate_dormant"] = record.Float(h)
	return out, nil
}
