package resistor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// PartCount runs the part-count method: lambda_b * piQ.
func PartCount(a Attributes) (PartCountResult, error) {
	if !a.Subcategory.Valid() {
		return PartCountResult{}, unknownSubcategory(a.Subcategory)
	}
	lambdaB, err := PartCountLambdaB(a.Subcategory, a.SpecificationID, a.Environment)
	if err != nil {
		return PartCountResult{}, err
	}
	piQ, err := PartCountQualityFactor(a.QualityID)
	if err != nil {
		return PartCountResult{}, err
	}
	return PartCountResult{
		LambdaB:          lambdaB,
		PiQ:              piQ,
		HazardRateActive: lambdaB * piQ,
	}, nil
}

// PartStress runs the part-stress method. The baseline lambda_b * piQ * piE
// is multiplied by the factors of the style:
//
//	network                            piT n
//	thermistor                         (none)
//	variable, except those below       piTAPS piR piV
//	precision and power variable ww    piTAPS piC piR piV
//	fixed resistors                    piR
//
// A network takes its case temperature from temperature_case when that is
// positive and from Ta + 55 S otherwise.
func PartStress(a Attributes) (PartStressResult, error) {
	s := a.Subcategory
	if !s.Valid() {
		return PartStressResult{}, unknownSubcategory(s)
	}

	res := PartStressResult{PiT: 1.0, PiR: 1.0, PiV: 1.0, PiC: 1.0, PiTAPS: 1.0}
	var err error
	if res.PiQ, err = PartStressQualityFactor(s, a.QualityID); err != nil {
		return PartStressResult{}, err
	}
	if res.PiE, err = EnvironmentFactor(s, a.Environment); err != nil {
		return PartStressResult{}, err
	}
	if res.LambdaB, err = PartStressLambdaB(a); err != nil {
		return PartStressResult{}, err
	}

	h := res.LambdaB * res.PiQ * res.PiE
	switch {
	case s == Thermistor:
	case s == Network:
		if a.TemperatureCase.Positive() {
			res.TemperatureCase = a.TemperatureCase.Value()
			res.PiT = milhdbk217f.Arrhenius(networkActivation, res.TemperatureCase)
		} else {
			res.TemperatureCase, res.PiT = TemperatureFactor(a.TemperatureActive, a.PowerRatio.Value())
		}
		h *= res.PiT * float64(a.NElements)
	default:
		if res.PiR, err = ResistanceFactor(s, a.SpecificationID, a.FamilyID, a.Resistance.Value()); err != nil {
			return PartStressResult{}, err
		}
		h *= res.PiR
		if s.Variable() {
			if res.PiC, err = ConstructionFactor(s, a.ConstructionID); err != nil {
				return PartStressResult{}, err
			}
			res.PiV = VoltageFactor(s, a.VoltageRatio)
			res.PiTAPS = TapsFactor(a.NElements)
			h *= res.PiTAPS * res.PiC * res.PiV
		}
	}
	res.HazardRateActive = h
	return res, nil
}

// CalculatePartCount decodes r, runs PartCount and returns a copy of r
// with lambda_b, piQ and hazard_rate_active set.
func CalculatePartCount(r record.Record) (record.Record, error) {
	a, err := DecodePartCount(r)
	if err != nil {
		return nil, err
	}
	res, err := PartCount(a)
	if err != nil {
		return nil, err
	}
	return r.Merge(res.Fields()), nil
}

// CalculatePartStress decodes r, runs PartStress and returns a copy of r
// with every pi factor, lambda_b and hazard_rate_active set.
func CalculatePartStress(r record.Record) (record.Record, error) {
	a, err := DecodePartStress(r)
	if err != nil {
		return nil, err
	}
	res, err := PartStress(a)
	if err != nil {
		return nil, err
	}
	return r.Merge(res.Fields()), nil
}
