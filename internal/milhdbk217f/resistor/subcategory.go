package resistor

import "fmt"

// Subcategory is the resistor style (subcategory_id).
type Subcategory int

const (
	Composition Subcategory = iota + 1
	Film
	PowerFilm
	Network
	Wirewound
	PowerWirewound
	ChassisMountedWirewound
	Thermistor
	VariableWirewound
	PrecisionVariableWirewound
	SemiprecisionVariableWirewound
	PowerVariableWirewound
	VariableNonWirewound
	VariableComposition
	VariableFilm
)

var subcategoryNames = [...]string{
	"composition (RC, RCR)",
	"film (RL, RLR, RN, RNC, RNN, RNR)",
	"power film (RD)",
	"network (RZ)",
	"wirewound (RB, RBR)",
	"power wirewound (RW, RWR)",
	"chassis-mounted wirewound (RE, RER)",
	"thermistor (RTH)",
	"variable wirewound (RT, RTR)",
	"precision variable wirewound (RR)",
	"semiprecision variable wirewound (RA, RK)",
	"power variable wirewound (RP)",
	"variable non-wirewound (RJ, RJR)",
	"variable composition (RV)",
	"variable film and precision (RQ, RVC)",
}

// Valid reports whether s has a model.
func (s Subcategory) Valid() bool {
	return s >= Composition && s <= VariableFilm
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
	for s := Composition; s <= VariableFilm; s++ {
		out = append(out, s)
	}
	return out
}

// Variable reports whether s is a potentiometer style, which carries the
// taps and voltage factors.
func (s Subcategory) Variable() bool {
	return s >= VariableWirewound && s <= VariableFilm
}

// bySpecification reports whether the part-count rate depends on
// specification_id.
func (s Subcategory) bySpecification() bool {
	return s == Film || s == PowerWirewound
}
