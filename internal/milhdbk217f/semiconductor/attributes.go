package semiconductor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Attributes are the inputs of one semiconductor calculation.
//
// ID fields use 0 for "not given". Inputs that are imputed when unset are
// Opt; the remaining numeric inputs are plain values whose absence is
// reported when a calculation path needs them.
type Attributes struct {
	Subcategory        Subcategory
	TypeID             int
	ApplicationID      int
	ConstructionID     int
	MatchingID         int
	PackageID          int
	QualityID          int
	Environment        milhdbk217f.Environment
	DormantEnvironment milhdbk217f.DormantEnvironment

	PowerOperating     float64
	PowerRated         milhdbk217f.Opt
	PowerRatio         milhdbk217f.Opt
	VoltageRatio       milhdbk217f.Opt
	CurrentOperating   float64
	CurrentRated       float64
	TemperatureCase    milhdbk217f.Opt
	ThetaJC            milhdbk217f.Opt
	FrequencyOperating float64
	DutyCycle          float64
	NElements          int
}

// Decode reads every semiconductor field present in r. Absent fields keep
// their zero value; a field of the wrong kind is a precondition failure.
// Decode does not check that a calculation's required fields are present;
// see DecodePartCount and DecodePartStress.
func Decode(r record.Record) (Attributes, error) {
	rd := milhdbk217f.NewReader(r)
	a := Attributes{
		Subcategory:        Subcategory(rd.OptInt("subcategory_id")),
		TypeID:             rd.OptInt("type_id"),
		ApplicationID:      rd.OptInt("application_id"),
		ConstructionID:     rd.OptInt("construction_id"),
		MatchingID:         rd.OptInt("matching_id"),
		PackageID:          rd.OptInt("package_id"),
		QualityID:          rd.OptInt("quality_id"),
		Environment:        milhdbk217f.Environment(rd.OptInt("environment_active_id")),
		DormantEnvironment: milhdbk217f.DormantEnvironment(rd.OptInt("environment_dormant_id")),
		PowerOperating:     rd.FloatOr("power_operating", 0),
		PowerRated:         rd.Opt("power_rated"),
		PowerRatio:         rd.Opt("power_ratio"),
		VoltageRatio:       rd.Opt("voltage_ratio"),
		CurrentOperating:   rd.FloatOr("current_operating", 0),
		CurrentRated:       rd.FloatOr("current_rated", 0),
		TemperatureCase:    rd.Opt("temperature_case"),
		ThetaJC:            rd.Opt("theta_jc"),
		FrequencyOperating: rd.FloatOr("frequency_operating", 0),
		DutyCycle:          rd.FloatOr("duty_cycle", 100),
		NElements:          rd.OptInt("n_elements"),
	}
	if err := rd.Err(); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

// DecodePartCount decodes r and checks the fields the part-count method
// needs.
func DecodePartCount(r record.Record) (Attributes, error) {
	if err := requireFields(r, "subcategory_id", "environment_active_id", "quality_id"); err != nil {
		return Attributes{}, err
	}
	a, err := Decode(r)
	if err != nil {
		return Attributes{}, err
	}
	if !a.Subcategory.Valid() {
		return Attributes{}, unknownSubcategory(a.Subcategory)
	}
	if a.Subcategory.partCountTyped() {
		if err := requireFields(r, "type_id"); err != nil {
			return Attributes{}, err
		}
	}
	return a, nil
}

// DecodePartStress decodes r and checks the fields the part-stress method
// needs for its subcategory.
func DecodePartStress(r record.Record) (Attributes, error) {
	if err := requireFields(r, "subcategory_id", "environment_active_id", "quality_id", "power_operating"); err != nil {
		return Attributes{}, err
	}
	a, err := Decode(r)
	if err != nil {
		return Attributes{}, err
	}
	if !a.Subcategory.Valid() {
		return Attributes{}, unknownSubcategory(a.Subcategory)
	}
	if err := requireFields(r, partStressFields(a)...); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

// partStressFields lists the subcategory-specific inputs of the part-stress
// model. theta_jc falls back to the package table, so package_id is needed
// only when theta_jc is unset.
func partStressFields(a Attributes) []string {
	var keys []string
	switch a.Subcategory {
	case LowFrequencyDiode:
		keys = []string{"type_id", "construction_id", "voltage_ratio"}
	case HighFrequencyDiode:
		keys = []string{"type_id", "application_id"}
		if a.TypeID == 4 {
			keys = append(keys, "power_rated")
		}
	case LowFrequencyBipolar:
		keys = []string{"application_id", "power_rated", "voltage_ratio"}
	case HighFrequencyLowNoiseBipolar:
		keys = []string{"power_rated", "voltage_ratio"}
	case LowFrequencySiFET:
		keys = []string{"type_id", "application_id"}
	case HighFrequencyHighPowerBipolar:
		keys = []string{"type_id", "application_id", "matching_id", "frequency_operating", "duty_cycle", "voltage_ratio"}
	case GaAsFET:
		keys = []string{"application_id", "matching_id", "frequency_operating"}
	case HighFrequencySiFET, Optoelectronic:
		keys = []string{"type_id"}
	case Thyristor:
		keys = []string{"current_rated", "voltage_ratio"}
	case AlphanumericDisplay:
		keys = []string{"application_id", "n_elements"}
	case LaserDiode:
		keys = []string{"type_id", "application_id", "current_operating", "power_ratio", "duty_cycle"}
	}
	if !a.ThetaJC.Positive() {
		keys = append(keys, "package_id")
	}
	return keys
}

func requireFields(r record.Record, keys ...string) error {
	for _, k := range keys {
		if !r.Has(k) {
			return milhdbk217f.NewMissingAttributeError(k)
		}
	}
	return nil
}

func unknownSubcategory(s Subcategory) error {
	return milhdbk217f.NewUnknownCategoryError("subcategory_id", int(s), "semiconductor")
}

// Thermal is the resolved thermal state of a part.
type Thermal struct {
	CaseTemperature     float64
	ThetaJC             float64
	JunctionTemperature float64
}

// PartCountResult is the output of the part-count method.
type PartCountResult struct {
	LambdaB          float64
	PiQ              float64
	HazardRateActive float64
}

// Fields returns the computed fields in record form.
func (p PartCountResult) Fields() record.Record {
	return record.Record{
		"lambda_b":           record.Float(p.LambdaB),
		"piQ":                record.Float(p.PiQ),
		"hazard_rate_active": record.Float(p.HazardRateActive),
	}
}

// PartStressResult is the output of the part-stress method. Factors that do
// not apply to the subcategory are 1.0.
type PartStressResult struct {
	Thermal
	LambdaB          float64
	PiT              float64
	PiQ              float64
	PiE              float64
	PiA              float64
	PiC              float64
	PiM              float64
	PiR              float64
	PiS              float64
	PiI              float64
	PiP              float64
	HazardRateActive float64
}

// Fields returns the computed fields in record form.
func (p PartStressResult) Fields() record.Record {
	return record.Record{
		"temperature_case":     record.Float(p.CaseTemperature),
		"theta_jc":             record.Float(p.ThetaJC),
		"temperature_junction": record.Float(p.JunctionTemperature),
		"lambda_b":             record.Float(p.LambdaB),
		"piT":                  record.Float(p.PiT),
		"piQ":                  record.Float(p.PiQ),
		"piE":                  record.Float(p.PiE),
		"piA":                  record.Float(p.PiA),
		"piC":                  record.Float(p.PiC),
		"piM":                  record.Float(p.PiM),
		"piR":                  record.Float(p.PiR),
		"piS":                  record.Float(p.PiS),
		"piI":                  record.Float(p.PiI),
		"piP":                  record.Float(p.PiP),
		"hazard_rate_active":   record.Float(p.HazardRateActive),
	}
}
