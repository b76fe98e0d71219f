package milhdbk217f

import "math"

// ReferenceTemperatureK is the 25 C reference point of the handbook
// temperature factors, in kelvin.
const ReferenceTemperatureK = 298.0

// Arrhenius returns exp(-ea * (1/(t+273) - 1/298)) for a temperature t in
// Celsius and an activation coefficient ea already divided by Boltzmann's
// constant (the handbook tabulates Ea/k directly).
func Arrhenius(ea, t float64) float64 {
	return math.Exp(-ea * (1.0/(t+273.0) - 1.0/ReferenceTemperatureK))
}
