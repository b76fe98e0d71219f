package resistor

import (
	"fmt"
	"math"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

// PartCountLambdaB returns the part-count base hazard rate. Film and power
// wirewound styles are selected by specification_id.
func PartCountLambdaB(s Subcategory, specificationID int, env milhdbk217f.Environment) (float64, error) {
	var row [14]float64
	if s.bySpecification() {
		rows := partCountLambdaBBySpec[s]
		if specificationID < 1 || specificationID > len(rows) {
			return 0, milhdbk217f.NewUnknownCategoryError("specification_id", specificationID, s.String())
		}
		row = rows[specificationID-1]
	} else {
		r, ok := partCountLambdaB[s]
		if !ok {
			return 0, unknownSubcategory(s)
		}
		row = r
	}
	return rated(row[:], env)
}

// rated looks up an environment-indexed value that must be defined.
func rated(table []float64, env milhdbk217f.Environment) (float64, error) {
	v, err := milhdbk217f.LookupEnvironment(table, env)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, milhdbk217f.NewPreconditionError("environment_active_id", int(env),
			"style is not rated for the "+env.String()+" environment")
	}
	return v, nil
}

// PartCountQualityFactor returns piQ for the part-count method.
func PartCountQualityFactor(qualityID int) (float64, error) {
	return milhdbk217f.Lookup(partCountQuality, "quality_id", qualityID)
}

// PartStressQualityFactor returns piQ for the part-stress method.
func PartStressQualityFactor(s Subcategory, qualityID int) (float64, error) {
	table, ok := partStressQuality[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.Lookup(table, "quality_id", qualityID)
}

// EnvironmentFactor returns piE.
func EnvironmentFactor(s Subcategory, env milhdbk217f.Environment) (float64, error) {
	table, ok := environmentFactors[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return rated(table, env)
}

// PartStressLambdaB returns the part-stress base hazard rate.
func PartStressLambdaB(a Attributes) (float64, error) {
	var lf lambdaFactors
	switch a.Subcategory {
	case Network:
		return networkLambdaB, nil
	case Thermistor:
		return milhdbk217f.Lookup(thermistorLambdaB, "type_id", a.TypeID)
	case Film:
		f, err := milhdbk217f.Lookup(filmRateFactors, "specification_id", a.SpecificationID)
		if err != nil {
			return 0, err
		}
		lf = f
	default:
		f, ok := baseRateFactors[a.Subcategory]
		if !ok {
			return 0, unknownSubcategory(a.Subcategory)
		}
		lf = f
	}

	t := a.TemperatureActive + 273.0
	s := a.PowerRatio.Value()
	f := lf.f
	return f[0] *
		math.Exp(f[1]*math.Pow(t/lf.tref, f[2])) *
		math.Exp(math.Pow((s/f[3])*math.Pow(t/273.0, f[4]), f[5])), nil
}

const networkActivation = 4056.0

// TemperatureFactor returns the network case temperature Ta + 55 S and
// its piT.
func TemperatureFactor(temperatureActive, powerRatio float64) (caseTemperature, piT float64) {
	caseTemperature = temperatureActive + 55.0*powerRatio
	return caseTemperature, milhdbk217f.Arrhenius(networkActivation, caseTemperature)
}

// ResistanceFactor returns piR for the band resistance falls in. Networks
// and thermistors have no resistance factor and return 1.0.
func ResistanceFactor(s Subcategory, specificationID, familyID int, resistance float64) (float64, error) {
	var (
		breaks []float64
		table  []float64
	)
	switch s {
	case Network, Thermistor:
		return 1.0, nil
	case PowerWirewound, ChassisMountedWirewound:
		byFamily := powerWirewoundResistance
		if s == ChassisMountedWirewound {
			byFamily = chassisMountedResistance
		}
		families, err := milhdbk217f.Lookup(byFamily, "specification_id", specificationID)
		if err != nil {
			return 0, err
		}
		if table, err = milhdbk217f.Lookup(families, "family_id", familyID); err != nil {
			return 0, err
		}
		breaks = resistanceBreaks[s]
		if s == PowerWirewound {
			breaks = powerWirewoundBreaks[specificationID-1]
		}
	default:
		var ok bool
		if table, ok = resistanceFactors[s]; !ok {
			return 0, unknownSubcategory(s)
		}
		breaks = resistanceBreaks[s]
	}

	band := milhdbk217f.Band(breaks, resistance)
	if band >= len(table) || table[band] == 0 {
		return 0, milhdbk217f.NewPreconditionError("resistance", resistance, "resistance is outside the range of this style")
	}
	return table[band], nil
}

// VoltageFactor returns piV for potentiometers; other styles return 1.0.
func VoltageFactor(s Subcategory, voltageRatio float64) float64 {
	var breaks []float64
	switch s {
	case VariableWirewound, PrecisionVariableWirewound, SemiprecisionVariableWirewound, PowerVariableWirewound:
		breaks = wirewoundVoltageBreaks
	case VariableNonWirewound, VariableComposition, VariableFilm:
		breaks = nonWirewoundVoltageBreaks
	default:
		return 1.0
	}
	return voltageFactors[s][milhdbk217f.Band(breaks, voltageRatio)]
}

// TapsFactor returns piTAPS = n^1.5/25 + 0.792 for a potentiometer with n
// taps.
func TapsFactor(n int) float64 {
	return math.Pow(float64(n), 1.5)/25.0 + 0.792
}

// ConstructionFactor returns piC for precision and power variable
// wirewound styles; other styles return 1.0.
func ConstructionFactor(s Subcategory, constructionID int) (float64, error) {
	table, ok := constructionFactors[s]
	if !ok {
		return 1.0, nil
	}
	return milhdbk217f.Lookup(table, "construction_id", constructionID)
}

// PartCountTable lists the part-count base hazard rates in subcategory
// order, one row per specification where the rate depends on
// specification_id. Unrated environments are 0.
func PartCountTable() []milhdbk217f.RateRow {
	var rows []milhdbk217f.RateRow
	for _, s := range Subcategories() {
		if s.bySpecification() {
			for i, r := range partCountLambdaBBySpec[s] {
				rows = append(rows, milhdbk217f.RateRow{Label: fmt.Sprintf("%s, specification %d", s, i+1), Rates: r})
			}
			continue
		}
		rows = append(rows, milhdbk217f.RateRow{Label: s.String(), Rates: partCountLambdaB[s]})
	}
	return rows
}
