package predict

import (
	"gonum.org/v1/gonum/floats"

	"github.com/roach88/relpredict/internal/record"
)

// Report is the outcome of one batch prediction.
type Report struct {
	RunID    string
	Results  []Result
	Failures []*ComponentError

	// System roll-up over the successful components.
	HazardRateActive    float64
	HazardRateLogistics float64
	MTBFLogistics       float64
}

// Result is one successfully predicted component.
type Result struct {
	Index      int
	HardwareID string

	// InputHash is the content hash of the component as supplied.
	InputHash string

	Record record.Record
}

// OK reports whether every component was predicted.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// total computes the system roll-up.
func (r *Report) total() {
	active := make([]float64, 0, len(r.Results))
	logistics := make([]float64, 0, len(r.Results))
	for _, res := range r.Results {
		a, _ := res.Record.FloatOr("hazard_rate_active", 0)
		l, _ := res.Record.FloatOr("hazard_rate_logistics", 0)
		active = append(active, a)
		logistics = append(logistics, l)
	}
	r.HazardRateActive = floats.Sum(active)
	r.HazardRateLogistics = floats.Sum(logistics)
	r.MTBFLogistics = 0
	if r.HazardRateLogistics > 0 {
		r.MTBFLogistics = hoursPerUnitRate / r.HazardRateLogistics
	}
}

// Canonical returns the report as plain values for record.MarshalCanonical,
// with every float rounded to sig significant digits (0 keeps full
// precision).
func (r *Report) Canonical(sig int) map[string]any {
	components := make([]any, 0, len(r.Results))
	for _, res := range r.Results {
		components = append(components, map[string]any{
			"index":       res.Index,
			"hardware_id": res.HardwareID,
			"input_hash":  res.InputHash,
			"record":      res.Record.Round(sig),
		})
	}
	failures := make([]any, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, map[string]any{
			"index":       f.Index,
			"hardware_id": f.HardwareID,
			"code":        string(f.Code()),
			"message":     f.Err.Error(),
		})
	}
	system := map[string]any{
		"hazard_rate_active":    record.RoundSig(r.HazardRateActive, sig),
		"hazard_rate_logistics": record.RoundSig(r.HazardRateLogistics, sig),
	}
	if r.MTBFLogistics > 0 {
		system["mtbf_logistics"] = record.RoundSig(r.MTBFLogistics, sig)
	}
	return map[string]any{
		"run_id":     r.RunID,
		"components": components,
		"failures":   failures,
		"system":     system,
	}
}
