// Package component loads hardware component files.
//
// A component file holds a list of flat attribute records under a single
// "components" key. Three encodings are accepted, chosen by extension:
//
//	.yaml, .yml   YAML document
//	.json         JSON document
//	.cue          CUE source
//
// Every document is unified with the embedded #Document schema before its
// records are returned, so an out-of-range environment or a nested value is
// reported with the position of the offending field rather than failing
// deep inside a calculation.
package component
