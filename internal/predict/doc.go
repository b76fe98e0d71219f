// Package predict runs hardware components through the MIL-HDBK-217F
// calculation families and rolls the results up into a system report.
//
// A component is a flat record. Two fields select the calculation:
//
//   - category_id: 2 semiconductor, 3 resistor
//   - hazard_rate_method_id: 1 part count, 2 part stress (absent: configured default)
//
// Predict runs one component through these stages:
//
//  1. Stress ratios from operating and rated values (part stress)
//  2. Default imputation (when configured)
//  3. The family calculation
//  4. Adjustment by additive and multiplicative factors, duty cycle and quantity
//  5. Dormant hazard rate (when environment_dormant_id is set)
//  6. Overstress detection (part stress)
//  7. Logistics hazard rate and MTBF
//
// PredictAll runs a batch under one run ID. A failing component does not
// stop the batch; it is reported as a ComponentError carrying the
// component's hardware_id.
//
// Predictor holds no mutable state and is safe for concurrent use.
package predict
