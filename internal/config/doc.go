// Package config loads the relpredict tool configuration.
//
// The configuration is a small YAML document:
//
//	precision: 6              # significant digits in printed records
//	hazard_rate_method: 2     # 1 part count, 2 part stress
//	impute_defaults: true     # run default imputation before calculating
//	derating:
//	  semiconductor:
//	    power: {harsh: 0.7, mild: 0.9}
//	    junction_temperature: {harsh: 125}
//	  resistor:
//	    power: {harsh: 0.5, mild: 0.8}
//	    voltage: {harsh: 0.8, mild: 0.9}
//
// Omitted keys keep their defaults. Unknown keys are rejected.
package config
