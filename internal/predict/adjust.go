package predict

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Hazard rates are in failures per 10^6 hours.
const hoursPerUnitRate = 1.0e6

// Adjust applies the user adjustments to hazard_rate_active:
//
//	(hazard_rate_active + add_adj_factor) * duty_cycle/100 * mult_adj_factor * quantity
//
// Absent fields default to 0, 100, 1 and 1.
func Adjust(r record.Record) (record.Record, error) {
	rd := milhdbk217f.NewReader(r)
	h := rd.Float("hazard_rate_active")
	add := rd.FloatOr("add_adj_factor", 0)
	duty := rd.FloatOr("duty_cycle", 100)
	mult := rd.FloatOr("mult_adj_factor", 1)
	quantity := rd.FloatOr("quantity", 1)
	if err := rd.Err(); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, milhdbk217f.NewPreconditionError("quantity", quantity, "quantity must not be negative")
	}

	out := r.Clone()
	out["hazard_rate_active"] = record.Float((h + add) * (duty / 100.0) * mult * quantity)
	return out, nil
}

// Logistics sets hazard_rate_logistics to the sum of the active and dormant
// rates and mtbf_logistics to its reciprocal in hours. A zero logistics
// rate leaves mtbf_logistics unset.
func Logistics(r record.Record) record.Record {
	out := r.Clone()
	active, _ := r.FloatOr("hazard_rate_active", 0)
	dormant, _ := r.FloatOr("hazard_rate_dormant", 0)
	h := active + dormant
	out["hazard_rate_logistics"] = record.Float(h)
	delete(out, "mtbf_logistics")
	if h > 0 {
		out["mtbf_logistics"] = record.Float(hoursPerUnitRate / h)
	}
	return out
}
