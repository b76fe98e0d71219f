// Package semiconductor implements the MIL-HDBK-217F section 6 models for
// discrete semiconductors: diodes, transistors, thyristors and
// optoelectronic devices.
//
// Two analysis methods are provided. The part-count method (PartCount,
// CalculatePartCount) multiplies a tabulated base hazard rate by a quality
// factor and needs only the subcategory, type, environment and quality. The
// part-stress method (PartStress, CalculatePartStress) derives the junction
// temperature, evaluates every applicable pi factor and combines them with
// the subcategory-specific base hazard rate.
//
// Hazard rates are in failures per 10^6 hours.
//
// The typed API works on Attributes; the record API decodes a flat
// record.Record, calls the typed API and merges the computed fields back
// into a copy of the record under the handbook names (lambda_b, piT, piQ,
// ...). Neither API mutates its input.
package semiconductor
