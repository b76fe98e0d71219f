package semiconductor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// DormantHazardRate converts an active hazard rate into the dormant one.
// Diodes and transistors have conversion factors; thyristors and
// optoelectronic parts have no dormant rate and return 0. The environment
// pair is always validated.
func DormantHazardRate(s Subcategory, active milhdbk217f.Environment, dormant milhdbk217f.DormantEnvironment, hazardRateActive float64) (float64, error) {
	if _, err := milhdbk217f.ConversionFor(active, dormant); err != nil {
		return 0, err
	}
	var row milhdbk217f.DormantRow
	switch {
	case s.IsDiode():
		row = milhdbk217f.DormantDiodes
	case s.IsTransistor():
		row = milhdbk217f.DormantTransistors
	default:
		return 0, nil
	}
	factor, err := milhdbk217f.DormantFactor(row, active, dormant)
	if err != nil {
		return 0, err
	}
	return hazardRateActive * factor, nil
}

// CalculateDormantHazardRate returns a copy of r with hazard_rate_dormant
// set from hazard_rate_active and the environment pair.
func CalculateDormantHazardRate(r record.Record) (record.Record, error) {
	if err := requireFields(r, "subcategory_id", "environment_active_id", "environment_dormant_id", "hazard_rate_active"); err != nil {
		return nil, err
	}
	rd := milhdbk217f.NewReader(r)
	s := Subcategory(rd.Int("subcategory_id"))
	active := milhdbk217f.Environment(rd.Int("environment_active_id"))
	dormant := milhdbk217f.DormantEnvironment(rd.Int("environment_dormant_id"))
	hazard := rd.Float("hazard_rate_active")
	if err := rd.Err(); err != nil {
		return nil, err
	}
	h, err := DormantHazardRate(s, active, dormant, hazard)
	if err != nil {
		return nil, err
	}
	out := r.Clone()
	out["hazard_rate_dormant"] = record.Float(h)
	return out, nil
}
