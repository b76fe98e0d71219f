package resistor

// Part-count base hazard rates (MIL-HDBK-217F table A-4), per environment.
// A zero marks an environment the style is not rated for.
var partCountLambdaB = map[Subcategory][14]float64{
	Composition:                    {0.0005, 0.0022, 0.0071, 0.0037, 0.012, 0.0052, 0.0065, 0.016, 0.025, 0.025, 0.00025, 0.0098, 0.035, 0.36},
	PowerFilm:                      {0.012, 0.025, 0.13, 0.062, 0.21, 0.078, 0.1, 0.19, 0.24, 0.32, 0.006, 0.18, 0.47, 8.2},
	Network:                        {0.0023, 0.0066, 0.031, 0.013, 0.055, 0.022, 0.043, 0.077, 0.15, 0.1, 0.0011, 0.055, 0.15, 1.7},
	Wirewound:                      {0.0085, 0.018, 0.1, 0.045, 0.16, 0.15, 0.17, 0.3, 0.38, 0.26, 0.0068, 0.13, 0.37, 5.4},
	ChassisMountedWirewound:        {0.008, 0.18, 0.096, 0.045, 0.15, 0.044, 0.088, 0.12, 0.24, 0.25, 0.004, 0.13, 0.37, 5.5},
	Thermistor:                     {0.065, 0.32, 1.4, 0.71, 1.6, 0.71, 1.9, 1.0, 2.7, 2.4, 0.032, 1.3, 3.4, 62.0},
	VariableWirewound:              {0.025, 0.055, 0.35, 0.15, 0.58, 0.16, 0.26, 0.35, 0.58, 1.1, 0.013, 0.52, 1.6, 24.0},
	PrecisionVariableWirewound:     {0.33, 0.73, 7.0, 2.9, 12.0, 3.5, 5.3, 7.1, 9.8, 23.0, 0.16, 11.0, 33.0, 510.0},
	SemiprecisionVariableWirewound: {0.15, 0.35, 3.1, 1.2, 5.4, 1.9, 2.8, 0.0, 0.0, 9.0, 0.075, 0.0, 0.0, 0.0},
	PowerVariableWirewound:         {0.15, 0.34, 2.9, 1.2, 5.0, 1.6, 2.4, 0.0, 0.0, 7.6, 0.076, 0.0, 0.0, 0.0},
	VariableNonWirewound:           {0.043, 0.15, 0.75, 0.35, 1.3, 0.39, 0.78, 1.8, 2.8, 2.5, 0.21, 1.2, 3.7, 49.0},
	VariableComposition:            {0.05, 0.11, 1.1, 0.45, 1.7, 2.8, 4.6, 4.6, 7.5, 3.3, 0.025, 1.5, 4.7, 67.0},
	VariableFilm:                   {0.048, 0.16, 0.76, 0.36, 1.3, 0.36, 0.72, 1.4, 2.2, 2.3, 0.024, 1.2, 3.4, 52.0},
}

// Film and power wirewound rates by specification_id.
var partCountLambdaBBySpec = map[Subcategory][][14]float64{
	Film: {
		{0.0012, 0.0027, 0.011, 0.0054, 0.02, 0.0063, 0.013, 0.018, 0.033, 0.03, 0.00025, 0.014, 0.044, 0.69},
		{0.0012, 0.0027, 0.011, 0.0054, 0.02, 0.0063, 0.013, 0.018, 0.033, 0.03, 0.00025, 0.014, 0.044, 0.69},
		{0.0014, 0.0031, 0.013, 0.0061, 0.023, 0.0072, 0.014, 0.021, 0.038, 0.034, 0.00028, 0.016, 0.05, 0.78},
		{0.0014, 0.0031, 0.013, 0.0061, 0.023, 0.0072, 0.014, 0.021, 0.038, 0.034, 0.00028, 0.016, 0.05, 0.78},
	},
	PowerWirewound: {
		{0.014, 0.031, 0.16, 0.077, 0.26, 0.073, 0.15, 0.19, 0.39, 0.42, 0.0042, 0.21, 0.62, 9.4},
		{0.013, 0.028, 0.15, 0.07, 0.24, 0.065, 0.13, 0.18, 0.35, 0.38, 0.0038, 0.19, 0.56, 8.6},
	},
}

var partCountQuality = []float64{0.03, 0.1, 0.3, 1.0, 3.0, 10.0}

var partStressQuality = map[Subcategory][]float64{
	Composition:                    {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	Film:                           {0.03, 0.1, 0.3, 1.0, 5.0, 5.0, 15.0},
	PowerFilm:                      {1.0, 3.0},
	Network:                        {1.0, 3.0},
	Wirewound:                      {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	PowerWirewound:                 {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	ChassisMountedWirewound:        {0.03, 0.1, 0.3, 1.0, 5.0, 15.0},
	Thermistor:                     {1.0, 15.0},
	VariableWirewound:              {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	PrecisionVariableWirewound:     {2.5, 5.0},
	SemiprecisionVariableWirewound: {2.0, 4.0},
	PowerVariableWirewound:         {2.0, 4.0},
	VariableNonWirewound:           {0.02, 0.06, 0.2, 0.6, 3.0, 10.0},
	VariableComposition:            {2.5, 5.0},
	VariableFilm:                   {2.0, 4.0},
}

var environmentFactors = map[Subcategory][]float64{
	Composition:                    {1.0, 3.0, 8.0, 5.0, 13.0, 4.0, 5.0, 7.0, 11.0, 19.0, 0.5, 11.0, 27.0, 490.0},
	Film:                           {1.0, 2.0, 8.0, 4.0, 14.0, 4.0, 8.0, 10.0, 18.0, 19.0, 0.2, 10.0, 28.0, 510.0},
	PowerFilm:                      {1.0, 2.0, 10.0, 5.0, 17.0, 6.0, 8.0, 14.0, 18.0, 25.0, 0.5, 14.0, 36.0, 660.0},
	Network:                        {1.0, 2.0, 10.0, 5.0, 17.0, 6.0, 8.0, 14.0, 18.0, 25.0, 0.5, 14.0, 36.0, 660.0},
	Wirewound:                      {1.0, 2.0, 11.0, 5.0, 18.0, 15.0, 18.0, 28.0, 35.0, 27.0, 0.8, 14.0, 38.0, 610.0},
	PowerWirewound:                 {1.0, 2.0, 10.0, 5.0, 16.0, 4.0, 8.0, 9.0, 18.0, 23.0, 0.3, 13.0, 34.0, 610.0},
	ChassisMountedWirewound:        {1.0, 2.0, 10.0, 5.0, 16.0, 4.0, 8.0, 9.0, 18.0, 23.0, 0.5, 13.0, 34.0, 610.0},
	Thermistor:                     {1.0, 5.0, 21.0, 11.0, 24.0, 11.0, 30.0, 16.0, 42.0, 37.0, 0.5, 20.0, 53.0, 950.0},
	VariableWirewound:              {1.0, 2.0, 12.0, 6.0, 20.0, 5.0, 8.0, 9.0, 15.0, 33.0, 0.5, 18.0, 48.0, 870.0},
	PrecisionVariableWirewound:     {1.0, 2.0, 18.0, 8.0, 30.0, 8.0, 12.0, 13.0, 18.0, 53.0, 0.5, 29.0, 76.0, 1400.0},
	SemiprecisionVariableWirewound: {1.0, 2.0, 16.0, 7.0, 28.0, 8.0, 12.0, 0.0, 0.0, 38.0, 0.5, 0.0, 0.0, 0.0},
	PowerVariableWirewound:         {1.0, 3.0, 16.0, 7.0, 28.0, 8.0, 12.0, 0.0, 0.0, 38.0, 0.5, 0.0, 0.0, 0.0},
	VariableNonWirewound:           {1.0, 3.0, 14.0, 6.0, 24.0, 5.0, 7.0, 12.0, 18.0, 39.0, 0.5, 22.0, 57.0, 1000.0},
	VariableComposition:            {1.0, 2.0, 19.0, 8.0, 29.0, 40.0, 65.0, 48.0, 78.0, 46.0, 0.5, 25.0, 66.0, 1200.0},
	VariableFilm:                   {1.0, 3.0, 14.0, 7.0, 24.0, 6.0, 12.0, 20.0, 30.0, 39.0, 0.5, 22.0, 57.0, 1000.0},
}

var resistanceFactors = map[Subcategory][]float64{
	Composition:                    {1.0, 1.1, 1.6, 2.5},
	Film:                           {1.0, 1.1, 1.6, 2.5},
	PowerFilm:                      {1.0, 1.2, 1.3, 3.5},
	Wirewound:                      {1.0, 1.7, 3.0, 5.0},
	VariableWirewound:              {1.0, 1.4, 2.0},
	PrecisionVariableWirewound:     {1.0, 1.1, 1.4, 2.0, 2.5, 3.5},
	SemiprecisionVariableWirewound: {1.0, 1.4, 2.0},
	PowerVariableWirewound:         {1.0, 1.4, 2.0},
	VariableNonWirewound:           {1.0, 1.1, 1.2, 1.4, 1.8},
	VariableComposition:            {1.0, 1.1, 1.2, 1.4, 1.8},
	VariableFilm:                   {1.0, 1.1, 1.2, 1.4, 1.8},
}

// powerWirewoundResistance is indexed by specification_id, then family_id, then band.
var powerWirewoundResistance = [][][]float64{
	{
		{1.0, 1.0, 1.2, 1.2, 1.6, 1.6, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.2, 1.6, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.2, 1.2, 1.6},
		{1.0, 1.2, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.6, 1.6, 0.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.1, 1.2, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0, 0.0, 0.0},
	},
	{
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
		{1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 2.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 2.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.0, 0.0, 0.0},
		{1.0, 1.2, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.2, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.5, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 2.0},
		{1.0, 1.0, 1.0, 1.4, 1.6, 2.0},
		{1.0, 1.0, 1.4, 2.4, 0.0, 0.0},
		{1.0, 1.0, 1.2, 2.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.0, 0.0, 0.0, 0.0},
		{1.0, 1.0, 0.0, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.0, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.4, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.5, 0.0, 0.0, 0.0},
		{1.0, 1.2, 0.0, 0.0, 0.0, 0.0},
	},
}

// chassisMountedResistance is indexed by specification_id, then family_id, then band.
var chassisMountedResistance = [][][]float64{
	{
		{1.0, 1.2, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.1, 1.2, 1.6},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
		{1.0, 1.0, 1.0, 1.0, 1.2, 1.6},
	},
	{
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.2, 1.6, 0.0, 0.0, 0.0},
		{1.0, 1.0, 1.2, 1.6, 0.0, 0.0},
		{1.0, 1.0, 1.1, 1.2, 1.4, 0.0},
		{1.0, 1.0, 1.0, 1.2, 1.6, 0.0},
		{1.0, 1.0, 1.0, 1.1, 1.4, 0.0},
	},
}

var voltageFactors = map[Subcategory][]float64{
	VariableWirewound:              {1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0},
	PrecisionVariableWirewound:     {1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0},
	SemiprecisionVariableWirewound: {1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0},
	PowerVariableWirewound:         {1.1, 1.05, 1.0, 1.1, 1.22, 1.4, 2.0},
	VariableNonWirewound:           {1.0, 1.05, 1.2},
	VariableComposition:            {1.0, 1.05, 1.2},
	VariableFilm:                   {1.0, 1.05, 1.2},
}

var constructionFactors = map[Subcategory][]float64{
	PrecisionVariableWirewound: {2.0, 1.0, 3.0, 1.5},
	PowerVariableWirewound:     {2.0, 1.0},
}

// Resistance breakpoints in ohms. A style with n breakpoints has n+1
// resistance factor bands.
var resistanceBreaks = map[Subcategory][]float64{
	Composition:                    {1.0e5, 1.0e6, 1.0e7},
	Film:                           {1.0e5, 1.0e6, 1.0e7},
	PowerFilm:                      {100.0, 1.0e5, 1.0e6},
	Wirewound:                      {1.0e4, 1.0e5, 1.0e6},
	ChassisMountedWirewound:        {500.0, 1.0e3, 5.0e3, 1.0e4, 2.0e4},
	VariableWirewound:              {2.0e3, 5.0e3},
	PrecisionVariableWirewound:     {1.0e4, 2.0e4, 5.0e4, 1.0e5, 2.0e5},
	SemiprecisionVariableWirewound: {2.0e3, 5.0e3},
	PowerVariableWirewound:         {2.0e3, 5.0e3},
	VariableNonWirewound:           {5.0e4, 1.0e5, 2.0e5, 5.0e5},
	VariableComposition:            {5.0e4, 1.0e5, 2.0e5, 5.0e5},
	VariableFilm:                   {1.0e4, 5.0e4, 2.0e5, 1.0e6},
}

// Power wirewound breakpoints by specification_id (RW, RWR).
var powerWirewoundBreaks = [][]float64{
	{500.0, 1.0e3, 5.0e3, 7.5e3, 1.0e4, 1.5e4, 2.0e4},
	{100.0, 1.0e3, 1.0e4, 1.0e5, 1.5e5, 2.0e5},
}

// Voltage ratio breakpoints for the potentiometer voltage factor.
var (
	wirewoundVoltageBreaks    = []float64{0.1, 0.2, 0.6, 0.7, 0.8, 0.9}
	nonWirewoundVoltageBreaks = []float64{0.8, 0.9}
)

// lambdaFactors are the constants of the base hazard rate model
//
//	lambda_b = f0 * exp(f1 * ((T+273)/Tref)^f2) * exp(((S/f3) * ((T+273)/273)^f4)^f5)
//
// with T the ambient temperature in C and S the power ratio.
type lambdaFactors struct {
	f    [6]float64
	tref float64
}

var baseRateFactors = map[Subcategory]lambdaFactors{
	Composition:                    {[6]float64{4.5e-9, 12.0, 1.0, 0.6, 1.0, 1.0}, 343.0},
	PowerFilm:                      {[6]float64{7.33e-3, 0.202, 2.6, 1.45, 0.89, 1.3}, 298.0},
	Wirewound:                      {[6]float64{0.0031, 1.0, 10.0, 1.0, 1.0, 1.5}, 398.0},
	PowerWirewound:                 {[6]float64{0.00148, 1.0, 2.0, 0.5, 1.0, 1.0}, 298.0},
	ChassisMountedWirewound:        {[6]float64{0.00015, 2.64, 1.0, 0.466, 1.0, 1.0}, 298.0},
	VariableWirewound:              {[6]float64{0.0062, 1.0, 5.0, 1.0, 1.0, 1.0}, 358.0},
	PrecisionVariableWirewound:     {[6]float64{0.0735, 1.03, 4.45, 2.74, 3.51, 1.0}, 358.0},
	SemiprecisionVariableWirewound: {[6]float64{0.0398, 0.514, 5.28, 1.44, 4.46, 1.0}, 313.0},
	PowerVariableWirewound:         {[6]float64{0.0481, 0.334, 4.66, 1.47, 2.83, 1.0}, 298.0},
	VariableNonWirewound:           {[6]float64{0.019, 0.445, 7.3, 2.69, 2.46, 1.0}, 358.0},
	VariableComposition:            {[6]float64{0.0246, 0.459, 9.3, 2.32, 5.3, 1.0}, 343.0},
	VariableFilm:                   {[6]float64{0.018, 1.0, 7.4, 2.55, 3.6, 1.0}, 343.0},
}

// Film resistors by specification_id: RL/RLR, RN (R, C or N), RN, RN.
var filmRateFactors = []lambdaFactors{
	{[6]float64{3.25e-4, 1.0, 3.0, 1.0, 1.0, 1.0}, 343.0},
	{[6]float64{3.25e-4, 1.0, 3.0, 1.0, 1.0, 1.0}, 343.0},
	{[6]float64{5.0e-5, 3.5, 1.0, 1.0, 1.0, 1.0}, 398.0},
	{[6]float64{5.0e-5, 3.5, 1.0, 1.0, 1.0, 1.0}, 398.0},
}

const networkLambdaB = 0.00006

// Thermistor base rates by type: bead, disk, rod.
var thermistorLambdaB = []float64{0.021, 0.065, 0.105}
