package semiconductor

import (
	"math"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

// PartCountLambdaB returns the part-count base hazard rate. An unknown
// subcategory or type is an unknown-category failure; an environment
// outside 1..14 is an index-range failure.
func PartCountLambdaB(s Subcategory, typeID int, env milhdbk217f.Environment) (float64, error) {
	var row [14]float64
	if s.partCountTyped() {
		rows := partCountTypedLambdaB[s]
		if typeID < 1 || typeID > len(rows) {
			return 0, milhdbk217f.NewUnknownCategoryError("type_id", typeID, s.String())
		}
		row = rows[typeID-1]
	} else {
		r, ok := partCountLambdaB[s]
		if !ok {
			return 0, unknownSubcategory(s)
		}
		row = r
	}
	return milhdbk217f.LookupEnvironment(row[:], env)
}

// PartStressLambdaB returns the part-stress base hazard rate.
func PartStressLambdaB(a Attributes) (float64, error) {
	s := a.Subcategory
	switch s {
	case HighFrequencyHighPowerBipolar:
		return 0.032 * math.Exp(0.354*a.FrequencyOperating+0.00558*a.PowerOperating), nil
	case GaAsFET:
		if a.FrequencyOperating > 1 && a.FrequencyOperating <= 10 && a.PowerOperating < 0.1 {
			return 0.052, nil
		}
		return 0.0093 * math.Exp(0.429*a.FrequencyOperating+0.486*a.PowerOperating), nil
	case AlphanumericDisplay:
		if a.NElements < 1 {
			return 0, milhdbk217f.NewPreconditionError("n_elements", a.NElements, "display must have at least one character")
		}
		lambda := 0.00043 * float64(a.NElements)
		if a.ApplicationID == 1 || a.ApplicationID == 3 {
			lambda += 0.000043
		}
		return lambda, nil
	}
	if v, ok := partStressLambdaB[s]; ok {
		return v, nil
	}
	table, ok := partStressLambdaBByType[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.Lookup(table, "type_id", a.TypeID)
}
