// Package record provides the flat attribute record exchanged with the
// prediction engine.
//
// A Record maps field names to a small closed set of value kinds (Float, Int,
// String, Bool). Records arrive from component files as loosely typed maps,
// are decoded into per-family attribute structs by the calculation packages,
// and leave the engine enriched with computed fields.
//
// This package imports nothing internal. Every other internal package may
// import record; record never imports them back.
//
// Key design constraints:
//   - Field names are preserved verbatim (piT, piQ, lambda_b, ...)
//   - Serialization is canonical: sorted keys, NFC strings, no HTML escaping
//   - NaN and infinities are rejected at the serialization boundary
package record
