// Package resistor implements the MIL-HDBK-217F section 9 models for fixed
// and variable resistors and thermistors.
//
// The package mirrors package semiconductor: typed Attributes decoded from
// a record, PartCount and PartStress over the typed form, and record entry
// points that return an enriched copy of their input.
package resistor
