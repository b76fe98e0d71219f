package milhdbk217f

import "fmt"

// Environment is an active operating environment from MIL-HDBK-217F
// table 3-2. Values are the 1-based environment_active_id.
type Environment int

const (
	GroundBenign Environment = iota + 1
	GroundFixed
	GroundMobile
	NavalSheltered
	NavalUnsheltered
	AirborneInhabitedCargo
	AirborneInhabitedFighter
	AirborneUninhabitedCargo
	AirborneUninhabitedFighter
	AirborneRotaryWinged
	SpaceFlight
	MissileFlight
	MissileLaunch
	CannonLaunch
)

// EnvironmentCount is the number of active environments; every
// environment-indexed table has exactly this many entries.
const EnvironmentCount = 14

var environmentCodes = [EnvironmentCount]string{
	"GB", "GF", "GM", "NS", "NU", "AIC", "AIF", "AUC", "AUF", "ARW", "SF", "MF", "ML", "CL",
}

// Valid reports whether e is one of the fourteen handbook environments.
func (e Environment) Valid() bool {
	return e >= GroundBenign && e <= CannonLaunch
}

// String returns the handbook abbreviation (GB, GF, ...).
func (e Environment) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Environment(%d)", int(e))
	}
	return environmentCodes[e-1]
}

// Harsh reports whether derating uses the harsh-environment limits.
// Ground benign, ground fixed, naval sheltered and space flight are mild.
func (e Environment) Harsh() bool {
	switch e {
	case GroundBenign, GroundFixed, NavalSheltered, SpaceFlight:
		return false
	default:
		return true
	}
}

// Environments returns all active environments in table order.
func Environments() []Environment {
	out := make([]Environment, EnvironmentCount)
	for i := range out {
		out[i] = Environment(i + 1)
	}
	return out
}

// DormantEnvironment is the storage environment of a non-operating part.
// Values are the 1-based environment_dormant_id.
type DormantEnvironment int

const (
	DormantAirborne DormantEnvironment = iota + 1
	DormantGround
	DormantNaval
	DormantSpace
)

func (d DormantEnvironment) String() string {
	switch d {
	case DormantAirborne:
		return "airborne"
	case DormantGround:
		return "ground"
	case DormantNaval:
		return "naval"
	case DormantSpace:
		return "space"
	default:
		return fmt.Sprintf("DormantEnvironment(%d)", int(d))
	}
}
