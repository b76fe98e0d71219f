// Package milhdbk217f holds the pieces shared by every MIL-HDBK-217F
// component family: the error taxonomy, the active and dormant environment
// enumerations, bounds-checked table lookup, the attribute reader that
// decodes flat records into typed family structs, the active-to-dormant
// conversion table and the derating checks behind overstress detection.
//
// Family models live in subpackages (semiconductor, resistor). Each one
// exposes record-level entry points (CalculatePartCount, CalculatePartStress,
// SetDefaultValues, Overstressed, CalculateDormantHazardRate) on top of a
// typed core that works on its own Attributes struct.
//
// All tables are package-level values that are never written after
// initialization, so every function is safe for concurrent use.
package milhdbk217f
