package semiconductor

import (
	"fmt"
	"math"

	"github.com/roach88/relpredict/internal/milhdbk217f"
)

// JunctionTemperature resolves the case temperature (environment default
// when unset or <= 0) and theta_jc (package default when unset or <= 0) and
// returns Tj = Tc + theta_jc * P.
func JunctionTemperature(env milhdbk217f.Environment, packageID int, tc, theta milhdbk217f.Opt, powerOperating float64) (Thermal, error) {
	var t Thermal
	t.CaseTemperature = tc.V
	if !tc.Positive() {
		v, err := milhdbk217f.LookupEnvironment(caseTemperature, env)
		if err != nil {
			return Thermal{}, err
		}
		t.CaseTemperature = v
	}
	t.ThetaJC = theta.V
	if !theta.Positive() {
		v, err := milhdbk217f.Lookup(thetaJC, "package_id", packageID)
		if err != nil {
			return Thermal{}, err
		}
		t.ThetaJC = v
	}
	t.JunctionTemperature = t.CaseTemperature + t.ThetaJC*powerOperating
	return t, nil
}

// TemperatureFactor returns piT at junction temperature tj.
func TemperatureFactor(s Subcategory, typeID int, tj, voltageRatio float64) (float64, error) {
	switch s {
	case LowFrequencyDiode, HighFrequencyDiode:
		ea, err := milhdbk217f.Lookup(activationByType[s], "type_id", typeID)
		if err != nil {
			return 0, err
		}
		return milhdbk217f.Arrhenius(ea, tj), nil
	case HighFrequencyHighPowerBipolar:
		f, err := milhdbk217f.Lookup(highPowerBipolarTemperature, "type_id", typeID)
		if err != nil {
			return 0, err
		}
		if voltageRatio <= 0.4 {
			return f[1] * milhdbk217f.Arrhenius(f[0], tj), nil
		}
		return f[2] * (voltageRatio - 0.35) * milhdbk217f.Arrhenius(f[0], tj), nil
	}
	ea, ok := activation[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.Arrhenius(ea, tj), nil
}

// ApplicationFactor returns piA. Subcategories without an application
// factor return 1.0.
func ApplicationFactor(s Subcategory, applicationID int, dutyCycle float64) (float64, error) {
	switch s {
	case HighFrequencyDiode, LowFrequencyBipolar, LowFrequencySiFET, GaAsFET:
		return milhdbk217f.Lookup(applicationFactors[s], "application_id", applicationID)
	case HighFrequencyHighPowerBipolar:
		if dutyCycle < 0 {
			return 0, negativeDutyCycle(dutyCycle)
		}
		if applicationID == 1 {
			return 7.6, nil
		}
		return 0.06*(dutyCycle/100) + 0.4, nil
	case LaserDiode:
		if dutyCycle < 0 {
			return 0, negativeDutyCycle(dutyCycle)
		}
		if applicationID == 1 {
			return 4.4, nil
		}
		return math.Sqrt(dutyCycle / 100), nil
	default:
		return 1.0, nil
	}
}

func negativeDutyCycle(d float64) error {
	return milhdbk217f.NewPreconditionError("duty_cycle", d, "duty cycle must not be negative")
}

// ElectricalStressFactor returns piS. Subcategories without an electrical
// stress factor return 1.0.
func ElectricalStressFactor(s Subcategory, typeID int, voltageRatio float64) float64 {
	switch s {
	case LowFrequencyDiode:
		switch {
		case typeID > 5:
			return 1.0
		case voltageRatio <= 0.3:
			return 0.054
		default:
			return math.Pow(voltageRatio, 2.43)
		}
	case LowFrequencyBipolar, HighFrequencyLowNoiseBipolar:
		return 0.045 * math.Exp(3.1*voltageRatio)
	case Thyristor:
		if voltageRatio <= 0.3 {
			return 0.1
		}
		return math.Pow(voltageRatio, 1.9)
	default:
		return 1.0
	}
}

// PowerRatingFactor returns piR. Subcategories without a power rating
// factor return 1.0.
func PowerRatingFactor(s Subcategory, typeID int, powerRated, currentRated float64) (float64, error) {
	switch s {
	case HighFrequencyDiode:
		if typeID != 4 {
			return 1.0, nil
		}
		if powerRated <= 0 {
			return 0, milhdbk217f.NewPreconditionError("power_rated", powerRated, "PIN diode rated power must be positive")
		}
		pi := 0.326*math.Log(powerRated) - 0.25
		if pi <= 0 {
			return 0, milhdbk217f.NewPreconditionError("power_rated", powerRated, "PIN diode rated power too low for a positive piR")
		}
		return pi, nil
	case LowFrequencyBipolar, HighFrequencyLowNoiseBipolar:
		if powerRated < 0.1 {
			return 0.43, nil
		}
		return math.Pow(powerRated, 0.37), nil
	case Thyristor:
		if currentRated <= 0 {
			return 0, milhdbk217f.NewPreconditionError("current_rated", currentRated, "rated current must be positive")
		}
		return math.Pow(currentRated, 0.4), nil
	default:
		return 1.0, nil
	}
}

// EnvironmentFactor returns piE.
func EnvironmentFactor(s Subcategory, env milhdbk217f.Environment) (float64, error) {
	table, ok := environmentFactors[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.LookupEnvironment(table, env)
}

// PartCountQualityFactor returns piQ for the part-count method.
func PartCountQualityFactor(s Subcategory, typeID, qualityID int) (float64, error) {
	switch s {
	case HighFrequencyDiode:
		if typeID == 5 {
			return milhdbk217f.Lookup(qualityHFDiodeSchottky, "quality_id", qualityID)
		}
		return milhdbk217f.Lookup(qualityHFDiode, "quality_id", qualityID)
	case LaserDiode:
		return milhdbk217f.Lookup(qualityLaser, "quality_id", qualityID)
	}
	if !s.Valid() {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.Lookup(qualityStandard, "quality_id", qualityID)
}

// PartStressQualityFactor returns piQ for the part-stress method. The
// high-frequency diode table is split by type, so its type_id is checked
// here.
func PartStressQualityFactor(s Subcategory, typeID, qualityID int) (float64, error) {
	if s == HighFrequencyDiode {
		if n := len(partStressLambdaBByType[HighFrequencyDiode]); typeID < 1 || typeID > n {
			return 0, milhdbk217f.NewIndexRangeError("type_id", typeID, n)
		}
		if typeID == 5 {
			return milhdbk217f.Lookup(qualityHFDiodeSchottky, "quality_id", qualityID)
		}
		return milhdbk217f.Lookup(qualityHFDiode, "quality_id", qualityID)
	}
	table, ok := partStressQuality[s]
	if !ok {
		return 0, unknownSubcategory(s)
	}
	return milhdbk217f.Lookup(table, "quality_id", qualityID)
}

// ConstructionFactor returns piC. Only low-frequency diodes use it; other
// subcategories get 1.0, but a non-zero construction_id is still checked.
func ConstructionFactor(s Subcategory, constructionID int) (float64, error) {
	return optionalFactor(s == LowFrequencyDiode, constructionFactors, "construction_id", constructionID)
}

// MatchingFactor returns piM. Only high-power bipolar transistors and GaAs
// FETs use it; other subcategories get 1.0, but a non-zero matching_id is
// still checked.
func MatchingFactor(s Subcategory, matchingID int) (float64, error) {
	uses := s == HighFrequencyHighPowerBipolar || s == GaAsFET
	return optionalFactor(uses, matchingFactors, "matching_id", matchingID)
}

func optionalFactor(uses bool, table []float64, field string, id int) (float64, error) {
	if !uses && id == 0 {
		return 1.0, nil
	}
	pi, err := milhdbk217f.Lookup(table, field, id)
	if err != nil {
		return 0, err
	}
	if !uses {
		return 1.0, nil
	}
	return pi, nil
}

// ForwardCurrentFactor returns the laser diode piI = I^0.68 (amperes).
func ForwardCurrentFactor(currentOperating float64) (float64, error) {
	if currentOperating <= 0 {
		return 0, milhdbk217f.NewPreconditionError("current_operating", currentOperating, "forward current must be positive")
	}
	return math.Pow(currentOperating, 0.68), nil
}

// PowerDegradationFactor returns the laser diode piP = 1 / (2 (1 - ratio)).
func PowerDegradationFactor(powerRatio float64) (float64, error) {
	if powerRatio >= 1 || powerRatio < 0 {
		return 0, milhdbk217f.NewPreconditionError("power_ratio", powerRatio, "required/rated optical power must be in [0, 1)")
	}
	return 1 / (2 * (1 - powerRatio)), nil
}

// PartCountTable lists the part-count base hazard rates in subcategory
// order, one row per type where the rate depends on type_id.
func PartCountTable() []milhdbk217f.RateRow {
	var rows []milhdbk217f.RateRow
	for _, s := range Subcategories() {
		if typed, ok := partCountTypedLambdaB[s]; ok {
			for i, r := range typed {
				rows = append(rows, milhdbk217f.RateRow{Label: fmt.Sprintf("%s, type %d", s, i+1), Rates: r})
			}
			continue
		}
		rows = append(rows, milhdbk217f.RateRow{Label: s.String(), Rates: partCountLambdaB[s]})
	}
	return rows
}
