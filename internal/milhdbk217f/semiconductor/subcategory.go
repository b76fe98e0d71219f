package semiconductor

import "fmt"

// Subcategory is the semiconductor family (subcategory_id).
type Subcategory int

const (
	LowFrequencyDiode Subcategory = iota + 1
	HighFrequencyDiode
	LowFrequencyBipolar
	LowFrequencySiFET
	Unijunction
	HighFrequencyLowNoiseBipolar
	HighFrequencyHighPowerBipolar
	GaAsFET
	HighFrequencySiFET
	Thyristor
	Optoelectronic
	AlphanumericDisplay
	LaserDiode
)

var subcategoryNames = [...]string{
	"low-frequency diode",
	"high-frequency diode",
	"low-frequency bipolar transistor",
	"low-frequency Si FET",
	"unijunction transistor",
	"high-frequency low-noise bipolar transistor",
	"high-frequency high-power bipolar transistor",
	"GaAs FET",
	"high-frequency Si FET",
	"thyristor/SCR",
	"optoelectronic device",
	"alphanumeric display",
	"laser diode",
}

// Valid reports whether s has a model.
func (s Subcategory) Valid() bool {
	return s >= LowFrequencyDiode && s <= LaserDiode
}

func (s Subcategory) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Subcategory(%d)", int(s))
	}
	return subcategoryNames[s-1]
}

// Subcategories returns every modeled subcategory in ID order.
func Subcategories() []Subcategory {
	out := make([]Subcategory, 0, len(subcategoryNames))
	for s := LowFrequencyDiode; s <= LaserDiode; s++ {
		out = append(out, s)
	}
	return out
}

// IsDiode reports whether dormant conversion uses the diode row.
func (s Subcategory) IsDiode() bool {
	return s == LowFrequencyDiode || s == HighFrequencyDiode
}

// IsTransistor reports whether dormant conversion uses the transistor row.
func (s Subcategory) IsTransistor() bool {
	return s >= LowFrequencyBipolar && s <= HighFrequencySiFET
}

// partCountTyped reports whether the part-count base hazard rate depends on
// type_id.
func (s Subcategory) partCountTyped() bool {
	switch s {
	case LowFrequencyDiode, HighFrequencyDiode, LowFrequencyBipolar, GaAsFET, Optoelectronic, LaserDiode:
		return true
	default:
		return false
	}
}
