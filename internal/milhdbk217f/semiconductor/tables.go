package semiconductor

// Part-count base hazard rates (MIL-HDBK-217F table A-2), per environment.
// Type-dependent subcategories carry one row per type.
var partCountTypedLambdaB = map[Subcategory][][14]float64{
	LowFrequencyDiode: {
		{0.00360, 0.0280, 0.049, 0.043, 0.100, 0.092, 0.210, 0.200, 0.44, 0.170, 0.00180, 0.076, 0.23, 1.50},
		{0.00094, 0.0075, 0.013, 0.011, 0.027, 0.024, 0.054, 0.054, 0.12, 0.045, 0.00047, 0.020, 0.06, 0.40},
		{0.06500, 0.5200, 0.890, 0.780, 1.900, 1.700, 3.700, 3.700, 8.00, 3.100, 0.03200, 1.400, 4.10, 28.0},
		{0.00280, 0.0220, 0.039, 0.034, 0.062, 0.073, 0.160, 0.160, 0.35, 0.130, 0.00140, 0.060, 0.18, 1.20},
		{0.00290, 0.0230, 0.040, 0.035, 0.084, 0.075, 0.170, 0.170, 0.36, 0.140, 0.00150, 0.062, 0.18, 1.20},
		{0.00330, 0.0240, 0.039, 0.035, 0.082, 0.066, 0.150, 0.130, 0.27, 0.120, 0.00160, 0.060, 0.16, 1.30},
		{0.00580, 0.0400, 0.066, 0.060, 0.140, 0.110, 0.250, 0.220, 0.460, 0.21, 0.00280, 0.100, 0.28, 2.10},
	},
	HighFrequencyDiode: {
		{0.86, 2.80, 8.9, 5.6, 20.0, 11.0, 14.0, 36.0, 62.0, 44.0, 0.43, 16.0, 67.0, 350.0},
		{0.31, 0.76, 2.1, 1.5, 4.60, 2.00, 2.50, 4.50, 7.60, 7.90, 0.16, 3.70, 12.0, 94.00},
		{0.004, 0.0096, 0.0026, 0.0019, 0.058, 0.025, 0.032, 0.057, 0.097, 0.10, 0.002, 0.048, 0.15, 1.2},
		{0.028, 0.068, 0.19, 0.14, 0.41, 0.18, 0.22, 0.40, 0.69, 0.71, 0.014, 0.34, 1.1, 8.5},
		{0.047, 0.11, 0.31, 0.23, 0.68, 0.3, 0.37, 0.67, 1.1, 1.2, 0.023, 0.56, 1.8, 14.0},
		{0.0043, 0.010, 0.029, 0.021, 0.063, 0.028, 0.034, 0.062, 0.11, 0.11, 0.0022, 0.052, 0.17, 1.3},
	},
	LowFrequencyBipolar: {
		{0.00015, 0.0011, 0.0017, 0.0017, 0.0037, 0.0030, 0.0067, 0.0060, 0.013, 0.0056, 0.000073, 0.0027, 0.0074, 0.056},
		{0.0057, 0.042, 0.069, 0.063, 0.15, 0.12, 0.26, 0.23, 0.50, 0.22, 0.0029, 0.11, 0.29, 1.1},
	},
	GaAsFET: {
		{0.17, 0.51, 1.5, 1.0, 3.4, 1.8, 2.3, 5.4, 9.2, 7.2, 0.083, 2.8, 11.0, 63.0},
		{0.42, 1.3, 3.8, 2.5, 8.5, 4.5, 5.6, 13.0, 23.0, 18.0, 0.21, 6.9, 27.0, 160.0},
	},
	Optoelectronic: {
		{0.01100, 0.0290, 0.0830, 0.0590, 0.1800, 0.0840, 0.1100, 0.2100, 0.3500, 0.3400, 0.00570, 0.1500, 0.510, 3.70},
		{0.02700, 0.0700, 0.2000, 0.1400, 0.4300, 0.2000, 0.2500, 0.4900, 0.8300, 0.8000, 0.01300, 0.3500, 1.200, 8.70},
		{0.00047, 0.0012, 0.0035, 0.0025, 0.0077, 0.0035, 0.0044, 0.0086, 0.0150, 0.0140, 0.00024, 0.0053, 0.021, 0.15},
	},
	LaserDiode: {
		{5.1, 16.0, 49.0, 32.0, 110.0, 58.0, 72.0, 100.0, 170.0, 230.0, 2.6, 87.0, 350.0, 2000.0},
		{8.9, 28.0, 85.0, 55.0, 190.0, 100.0, 130.0, 180.0, 300.0, 400.0, 4.5, 150.0, 600.0, 3500.0},
	},
}

var partCountLambdaB = map[Subcategory][14]float64{
	LowFrequencySiFET:             {0.014, 0.099, 0.16, 0.15, 0.34, 0.28, 0.62, 0.53, 1.1, 0.51, 0.0069, 0.25, 0.68, 5.3},
	Unijunction:                   {0.016, 0.12, 0.20, 0.18, 0.42, 0.35, 0.80, 0.74, 1.6, 0.66, 0.0079, 0.31, 0.88, 6.4},
	HighFrequencyLowNoiseBipolar:  {0.094, 0.23, 0.63, 0.46, 1.4, 0.60, 0.75, 1.3, 2.3, 2.4, 0.047, 1.1, 3.6, 28.0},
	HighFrequencyHighPowerBipolar: {0.074, 0.15, 0.37, 0.29, 0.81, 0.29, 0.37, 0.52, 0.88, 0.037, 0.33, 0.66, 1.8, 18.0},
	HighFrequencySiFET:            {0.014, 0.099, 0.16, 0.15, 0.34, 0.28, 0.62, 0.53, 1.1, 0.51, 0.0069, 0.25, 0.68, 5.3},
	Thyristor:                     {0.0025, 0.020, 0.034, 0.030, 0.072, 0.064, 0.14, 0.14, 0.31, 0.12, 0.0012, 0.053, 0.16, 1.1},
	AlphanumericDisplay:           {0.0062, 0.016, 0.045, 0.032, 0.10, 0.046, 0.058, 0.11, 0.19, 0.18, 0.0031, 0.082, 0.28, 2.0},
}

var (
	qualityStandard = []float64{0.7, 1.0, 2.4, 5.5, 8.0}
	qualityHighRel  = []float64{0.5, 1.0, 2.0, 5.0}
	qualityLaser    = []float64{1.0, 1.0, 3.3}

	// High-frequency diodes: Schottky barrier (type 5) has its own row.
	qualityHFDiode         = []float64{0.5, 1.0, 5.0, 25.0, 50.0}
	qualityHFDiodeSchottky = []float64{0.5, 1.0, 1.8, 2.5}
)

var partStressQuality = map[Subcategory][]float64{
	LowFrequencyDiode:             qualityStandard,
	LowFrequencyBipolar:           qualityStandard,
	LowFrequencySiFET:             qualityStandard,
	Unijunction:                   qualityStandard,
	HighFrequencyLowNoiseBipolar:  qualityHighRel,
	HighFrequencyHighPowerBipolar: qualityHighRel,
	GaAsFET:                       qualityHighRel,
	HighFrequencySiFET:            qualityHighRel,
	Thyristor:                     qualityStandard,
	Optoelectronic:                qualityStandard,
	AlphanumericDisplay:           qualityStandard,
	LaserDiode:                    qualityLaser,
}

var applicationFactors = map[Subcategory][]float64{
	HighFrequencyDiode:  {0.5, 2.5, 1.0},
	LowFrequencyBipolar: {1.5, 0.7},
	LowFrequencySiFET:   {1.5, 0.7, 2.0, 4.0, 8.0, 10.0},
	GaAsFET:             {1.0, 4.0},
}

// Activation energies (Ea/k, kelvin) for the temperature factor.
var (
	activationByType = map[Subcategory][]float64{
		LowFrequencyDiode:  {3091, 3091, 3091, 3091, 3091, 3091, 1925, 1925},
		HighFrequencyDiode: {5260, 2100, 2100, 2100, 2100, 2100, 2100},
	}
	activation = map[Subcategory]float64{
		LowFrequencyBipolar:          2114,
		LowFrequencySiFET:            1925,
		Unijunction:                  2483,
		HighFrequencyLowNoiseBipolar: 2114,
		GaAsFET:                      4485,
		HighFrequencySiFET:           1925,
		Thyristor:                    3082,
		Optoelectronic:               2790,
		AlphanumericDisplay:          2790,
		LaserDiode:                   4635,
	}
)

// highPowerBipolarTemperature holds {Ea/k, f1, f2} for gold and aluminum
// metallization (type 1 and 2).
var highPowerBipolarTemperature = [][3]float64{
	{2903, 0.1, 2.0},
	{5794, 0.38, 7.55},
}

// Default case temperature by environment.
var caseTemperature = []float64{
	35.0, 45.0, 50.0, 45.0, 50.0, 60.0, 60.0, 75.0, 75.0, 60.0, 35.0, 50.0, 60.0, 45.0,
}

// Default junction-to-case thermal resistance by package.
var thetaJC = []float64{
	70.0, 10.0, 70.0, 70.0, 70.0, 70.0, 70.0, 5.0, 70.0, 70.0, 10.0, 70.0,
	70.0, 70.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 10.0, 70.0, 70.0, 5.0, 22.0,
	70.0, 5.0, 70.0, 5.0, 5.0, 1.0, 10.0, 70.0, 70.0, 5.0, 5.0, 5.0, 10.0, 5.0,
	5.0, 10.0, 5.0, 10.0, 10.0, 10.0, 5.0, 70.0, 5.0, 70.0, 70.0, 70.0, 70.0,
	70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0, 70.0,
	70.0,
}

var (
	constructionFactors = []float64{1.0, 2.0}
	matchingFactors     = []float64{1.0, 2.0, 4.0}
)

var (
	environmentDiscrete = []float64{1.0, 6.0, 9.0, 9.0, 19.0, 13.0, 29.0, 20.0, 43.0, 24.0, 0.5, 14.0, 32.0, 320.0}
	environmentRF       = []float64{1.0, 2.0, 5.0, 4.0, 11.0, 4.0, 5.0, 7.0, 12.0, 16.0, 0.5, 9.0, 24.0, 250.0}
	environmentGaAs     = []float64{1.0, 2.0, 5.0, 4.0, 11.0, 4.0, 5.0, 7.0, 12.0, 16.0, 0.5, 7.5, 24.0, 250.0}
	environmentOpto     = []float64{1.0, 2.0, 8.0, 5.0, 12.0, 4.0, 6.0, 6.0, 8.0, 17.0, 0.5, 9.0, 24.0, 450.0}
)

var environmentFactors = map[Subcategory][]float64{
	LowFrequencyDiode:             environmentDiscrete,
	HighFrequencyDiode:            environmentRF,
	LowFrequencyBipolar:           environmentDiscrete,
	LowFrequencySiFET:             environmentDiscrete,
	Unijunction:                   environmentDiscrete,
	HighFrequencyLowNoiseBipolar:  environmentRF,
	HighFrequencyHighPowerBipolar: environmentRF,
	GaAsFET:                       environmentGaAs,
	HighFrequencySiFET:            environmentDiscrete,
	Thyristor:                     environmentDiscrete,
	Optoelectronic:                environmentOpto,
	AlphanumericDisplay:           environmentOpto,
	LaserDiode:                    environmentOpto,
}

// Part-stress base hazard rates.
var (
	partStressLambdaBByType = map[Subcategory][]float64{
		LowFrequencyDiode:  {0.0038, 0.0010, 0.069, 0.003, 0.005, 0.0013, 0.0034, 0.002},
		HighFrequencyDiode: {0.22, 0.18, 0.0023, 0.0081, 0.027, 0.0025, 0.0025},
		LowFrequencySiFET:  {0.012, 0.0045},
		HighFrequencySiFET: {0.06, 0.023},
		Optoelectronic: {
			0.0055, 0.004, 0.0025, 0.013, 0.013, 0.0064, 0.0033, 0.017, 0.017,
			0.0086, 0.0013, 0.00023,
		},
		LaserDiode: {3.23, 5.65},
	}
	partStressLambdaB = map[Subcategory]float64{
		LowFrequencyBipolar:          0.00074,
		Unijunction:                  0.0083,
		HighFrequencyLowNoiseBipolar: 0.18,
		Thyristor:                    0.0022,
	}
)
