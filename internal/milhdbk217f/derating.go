package milhdbk217f

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Limit is a derating threshold with separate harsh and mild environment
// values. A zero threshold disables the check for that environment class.
type Limit struct {
	Harsh float64 `yaml:"harsh" json:"harsh"`
	Mild  float64 `yaml:"mild" json:"mild"`
}

// For returns the threshold that applies in env.
func (l Limit) For(env Environment) float64 {
	if env.Harsh() {
		return l.Harsh
	}
	return l.Mild
}

// Exceeded reports whether value is above the threshold for env.
func (l Limit) Exceeded(env Environment, value float64) bool {
	lim := l.For(env)
	return lim > 0 && value > lim
}

// Percent renders a ratio threshold as a percentage without float noise
// (0.9 becomes "90", 0.925 becomes "92.5").
func Percent(ratio float64) string {
	return strconv.FormatFloat(math.Round(ratio*1000)/10, 'f', -1, 64)
}

// Findings accumulates overstress reasons in the order they are detected.
type Findings struct {
	reasons []string
}

// Add records one violated condition. The sentence should end with a period.
func (f *Findings) Add(reason string) {
	f.reasons = append(f.reasons, reason)
}

// Addf records one violated condition built from a format string.
func (f *Findings) Addf(format string, args ...any) {
	f.Add(fmt.Sprintf(format, args...))
}

// Overstressed reports whether any condition was recorded.
func (f *Findings) Overstressed() bool {
	return len(f.reasons) > 0
}

// Reason joins the findings as numbered lines: "1. ...\n2. ...\n".
// No findings yields the empty string.
func (f *Findings) Reason() string {
	var b strings.Builder
	for i, r := range f.reasons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

// Ratio divides operating by rated. A non-positive rating yields 1.0 so the
// part is treated as fully stressed.
func Ratio(operating, rated float64) float64 {
	if rated <= 0 {
		return 1.0
	}
	return operating / rated
}
