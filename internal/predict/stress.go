package predict

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// stressRatio describes one operating/rated quotient.
type stressRatio struct {
	ratio     string
	rated     string
	operating []string
}

var stressRatios = []stressRatio{
	{ratio: "voltage_ratio", rated: "voltage_rated", operating: []string{"voltage_ac_operating", "voltage_dc_operating"}},
	{ratio: "current_ratio", rated: "current_rated", operating: []string{"current_operating"}},
	{ratio: "power_ratio", rated: "power_rated", operating: []string{"power_operating"}},
}

// StressRatios returns a copy of r with voltage_ratio, current_ratio and
// power_ratio computed from the operating and rated values. A ratio is only
// computed when its rated value is present; a non-positive rating yields 1.0.
// Absent operating values count as zero.
func StressRatios(r record.Record) record.Record {
	out := r.Clone()
	for _, s := range stressRatios {
		if !r.Has(s.rated) {
			continue
		}
		rated, err := r.Float(s.rated)
		if err != nil {
			continue
		}
		var operating float64
		for _, k := range s.operating {
			v, err := r.FloatOr(k, 0)
			if err != nil {
				continue
			}
			operating += v
		}
		out[s.ratio] = record.Float(milhdbk217f.Ratio(operating, rated))
	}
	return out
}
