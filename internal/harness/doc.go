// Package harness runs reliability-prediction conformance scenarios.
//
// A scenario is a YAML file naming a set of components, an optional
// configuration override and the results the predictor must produce:
//
//	name: diode_part_stress
//	description: "Low-frequency diode in naval sheltered service"
//	run_id: scenario-run-001
//	tolerance: 1e-9
//	config:
//	  hazard_rate_method: 2
//	components:
//	  - hardware_id: D1
//	    category_id: 2
//	    subcategory_id: 1
//	    ...
//	expect:
//	  - hardware_id: D1
//	    fields:
//	      hazard_rate_active: 0.0677117
//	      overstress: false
//	  - hardware_id: X1
//	    error:
//	      code: UNKNOWN_CATEGORY
//	      field: category_id
//	system:
//	  hazard_rate_active: 0.0677117
//
// # Expectations
//
// Field expectations are subset matches: only the named fields are checked.
// Numbers compare within the scenario tolerance (absolute or relative,
// default 1e-9); strings and booleans compare exactly. An error expectation
// requires the component to fail with the given code and, when set, the
// given field.
//
// # Deterministic Runs
//
// Every run uses a fixed run ID (scenario.run_id, or "test-run-default"),
// so reports are byte-identical across runs and can be compared against
// golden files with RunWithGolden.
package harness
