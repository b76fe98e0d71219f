package semiconductor

import (
	"github.com/roach88/relpredict/internal/record"
)

// PartCount runs the part-count method: lambda_b * piQ.
func PartCount(a Attributes) (PartCountResult, error) {
	if !a.Subcategory.Valid() {
		return PartCountResult{}, unknownSubcategory(a.Subcategory)
	}
	lambdaB, err := PartCountLambdaB(a.Subcategory, a.TypeID, a.Environment)
	if err != nil {
		return PartCountResult{}, err
	}
	piQ, err := PartCountQualityFactor(a.Subcategory, a.TypeID, a.QualityID)
	if err != nil {
		return PartCountResult{}, err
	}
	return PartCountResult{
		LambdaB:          lambdaB,
		PiQ:              piQ,
		HazardRateActive: lambdaB * piQ,
	}, nil
}

// PartStress runs the part-stress method. The common baseline
// lambda_b * piT * piQ * piE is multiplied by the factors of the
// subcategory's model:
//
//	low-frequency diode             piS piC
//	high-frequency diode            piA piR
//	low-frequency bipolar           piA piR piS
//	low-frequency Si FET            piA
//	HF low-noise bipolar, thyristor piR piS
//	HF high-power bipolar, GaAs FET piA piM
//	laser diode                     piI piA piP
//
// Unijunction, HF Si FET, optoelectronic and display models use the
// baseline alone.
func PartStress(a Attributes) (PartStressResult, error) {
	s := a.Subcategory
	if !s.Valid() {
		return PartStressResult{}, unknownSubcategory(s)
	}

	var (
		res PartStressResult
		err error
	)
	if res.PiQ, err = PartStressQualityFactor(s, a.TypeID, a.QualityID); err != nil {
		return PartStressResult{}, err
	}
	if res.LambdaB, err = PartStressLambdaB(a); err != nil {
		return PartStressResult{}, err
	}
	if res.Thermal, err = JunctionTemperature(a.Environment, a.PackageID, a.TemperatureCase, a.ThetaJC, a.PowerOperating); err != nil {
		return PartStressResult{}, err
	}
	if res.PiT, err = TemperatureFactor(s, a.TypeID, res.JunctionTemperature, a.VoltageRatio.Value()); err != nil {
		return PartStressResult{}, err
	}
	if res.PiA, err = ApplicationFactor(s, a.ApplicationID, a.DutyCycle); err != nil {
		return PartStressResult{}, err
	}
	if res.PiR, err = PowerRatingFactor(s, a.TypeID, a.PowerRated.Value(), a.CurrentRated); err != nil {
		return PartStressResult{}, err
	}
	res.PiS = ElectricalStressFactor(s, a.TypeID, a.VoltageRatio.Value())
	if res.PiE, err = EnvironmentFactor(s, a.Environment); err != nil {
		return PartStressResult{}, err
	}
	if res.PiC, err = ConstructionFactor(s, a.ConstructionID); err != nil {
		return PartStressResult{}, err
	}
	if res.PiM, err = MatchingFactor(s, a.MatchingID); err != nil {
		return PartStressResult{}, err
	}
	res.PiI, res.PiP = 1.0, 1.0
	if s == LaserDiode {
		if res.PiI, err = ForwardCurrentFactor(a.CurrentOperating); err != nil {
			return PartStressResult{}, err
		}
		if res.PiP, err = PowerDegradationFactor(a.PowerRatio.Value()); err != nil {
			return PartStressResult{}, err
		}
	}

	h := res.LambdaB * res.PiT * res.PiQ * res.PiE
	switch s {
	case LowFrequencyDiode:
		h *= res.PiS * res.PiC
	case HighFrequencyDiode:
		h *= res.PiA * res.PiR
	case LowFrequencyBipolar:
		h *= res.PiA * res.PiR * res.PiS
	case LowFrequencySiFET:
		h *= res.PiA
	case HighFrequencyLowNoiseBipolar, Thyristor:
		h *= res.PiR * res.PiS
	case HighFrequencyHighPowerBipolar, GaAsFET:
		h *= res.PiA * res.PiM
	case LaserDiode:
		h *= res.PiI * res.PiA * res.PiP
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
// with the junction temperature, every pi factor, lambda_b and
// hazard_rate_active set.
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
