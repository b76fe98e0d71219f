package resistor

import (
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

// Attributes are the inputs of one resistor calculation.
type Attributes struct {
	Subcategory        Subcategory
	SpecificationID    int
	FamilyID           int
	TypeID             int
	ConstructionID     int
	QualityID          int
	Environment        milhdbk217f.Environment
	DormantEnvironment milhdbk217f.DormantEnvironment

	// TemperatureActive is the ambient temperature in C.
	TemperatureActive float64
	TemperatureCase   milhdbk217f.Opt
	PowerRatio        milhdbk217f.Opt
	VoltageRatio      float64
	Resistance        milhdbk217f.Opt
	NElements         int
}

// Decode reads every resistor field present in r.
func Decode(r record.Record) (Attributes, error) {
	rd := milhdbk217f.NewReader(r)
	a := Attributes{
		Subcategory:        Subcategory(rd.OptInt("subcategory_id")),
		SpecificationID:    rd.OptInt("specification_id"),
		FamilyID:           rd.OptInt("family_id"),
		TypeID:             rd.OptInt("type_id"),
		ConstructionID:     rd.OptInt("construction_id"),
		QualityID:          rd.OptInt("quality_id"),
		Environment:        milhdbk217f.Environment(rd.OptInt("environment_active_id")),
		DormantEnvironment: milhdbk217f.DormantEnvironment(rd.OptInt("environment_dormant_id")),
		TemperatureActive:  rd.FloatOr("temperature_active", 0),
		TemperatureCase:    rd.Opt("temperature_case"),
		PowerRatio:         rd.Opt("power_ratio"),
		VoltageRatio:       rd.FloatOr("voltage_ratio", 0),
		Resistance:         rd.Opt("resistance"),
		NElements:          rd.OptInt("n_elements"),
	}
	if err := rd.Err(); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

// DecodePartCount decodes r and checks the part-count inputs.
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
	if a.Subcategory.bySpecification() {
		if err := requireFields(r, "specification_id"); err != nil {
			return Attributes{}, err
		}
	}
	return a, nil
}

// DecodePartStress decodes r and checks the part-stress inputs of its
// subcategory.
func DecodePartStress(r record.Record) (Attributes, error) {
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
	if err := requireFields(r, partStressFields(a)...); err != nil {
		return Attributes{}, err
	}
	return a, nil
}

func partStressFields(a Attributes) []string {
	switch s := a.Subcategory; {
	case s == Thermistor:
		return []string{"type_id"}
	case s == Network:
		if a.TemperatureCase.Positive() {
			return []string{"n_elements"}
		}
		return []string{"temperature_active", "power_ratio", "n_elements"}
	}

	fields := []string{"temperature_active", "power_ratio", "resistance"}
	switch a.Subcategory {
	case Film:
		fields = append(fields, "specification_id")
	case PowerWirewound, ChassisMountedWirewound:
		fields = append(fields, "specification_id", "family_id")
	case PrecisionVariableWirewound, PowerVariableWirewound:
		fields = append(fields, "construction_id")
	}
	if a.Subcategory.Variable() {
		fields = append(fields, "voltage_ratio", "n_elements")
	}
	return fields
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
	return milhdbk217f.NewUnknownCategoryError("subcategory_id", int(s), "resistor")
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
// not apply to the style are 1.0; TemperatureCase is only resolved for
// networks.
type PartStressResult struct {
	LambdaB          float64
	PiQ              float64
	PiE              float64
	PiT              float64
	PiR              float64
	PiV              float64
	PiC              float64
	PiTAPS           float64
	TemperatureCase  float64
	HazardRateActive float64
}

// Fields returns the computed fields in record form.
func (p PartStressResult) Fields() record.Record {
	out := record.Record{
		"lambda_b":           record.Float(p.LambdaB),
		"piQ":                record.Float(p.PiQ),
		"piE":                record.Float(p.PiE),
		"piT":                record.Float(p.PiT),
		"piR":                record.Float(p.PiR),
		"piV":                record.Float(p.PiV),
		"piC":                record.Float(p.PiC),
		"piTAPS":             record.Float(p.PiTAPS),
		"hazard_rate_active": record.Float(p.HazardRateActive),
	}
	if p.TemperatureCase != 0 {
		out["temperature_case"] = record.Float(p.TemperatureCase)
	}
	return out
}
