package milhdbk217f

import "fmt"

// Conversion selects one column of the active-to-dormant table.
type Conversion int

const (
	GroundToGround Conversion = iota
	AirborneToAirborne
	AirborneToGround
	NavalToNaval
	NavalToGround
	SpaceToSpace
	SpaceToGround
)

// DormantRow is the seven active-to-dormant multipliers of one part class,
// in Conversion order.
type DormantRow [7]float64

// Part-class rows of the active-to-passive conversion table (Reliability
// Toolkit: Commercial Practices Edition, table 6.3.4-1).
var (
	DormantDiodes      = DormantRow{0.04, 0.05, 0.01, 0.04, 0.03, 0.20, 0.80}
	DormantTransistors = DormantRow{0.05, 0.06, 0.02, 0.05, 0.03, 0.20, 1.00}
	DormantResistors   = DormantRow{0.20, 0.06, 0.03, 0.10, 0.06, 0.50, 1.00}
)

// ConversionFor maps an (active, dormant) environment pair to its table
// column. Missile and cannon environments have no dormant conversion.
func ConversionFor(active Environment, dormant DormantEnvironment) (Conversion, error) {
	if !active.Valid() {
		return 0, NewIndexRangeError("environment_active_id", int(active), EnvironmentCount)
	}

	switch active {
	case GroundBenign, GroundFixed, GroundMobile:
		if dormant == DormantGround {
			return GroundToGround, nil
		}
	case NavalSheltered, NavalUnsheltered:
		switch dormant {
		case DormantNaval:
			return NavalToNaval, nil
		case DormantGround:
			return NavalToGround, nil
		}
	case AirborneInhabitedCargo, AirborneInhabitedFighter, AirborneUninhabitedCargo,
		AirborneUninhabitedFighter, AirborneRotaryWinged:
		switch dormant {
		case DormantAirborne:
			return AirborneToAirborne, nil
		case DormantGround:
			return AirborneToGround, nil
		}
	case SpaceFlight:
		switch dormant {
		case DormantSpace:
			return SpaceToSpace, nil
		case DormantGround:
			return SpaceToGround, nil
		}
	}

	return 0, NewPreconditionError("environment_dormant_id", int(dormant),
		fmt.Sprintf("unknown active and/or dormant environment ID: active %d, dormant %d", int(active), int(dormant)))
}

// DormantFactor returns the multiplier that converts an active hazard rate
// into a dormant one for the given part class.
func DormantFactor(row DormantRow, active Environment, dormant DormantEnvironment) (float64, error) {
	c, err := ConversionFor(active, dormant)
	if err != nil {
		return 0, err
	}
	return row[c], nil
}
