package milhdbk217f

// Lookup returns table[id-1], failing with an index-range error that names
// field when id is outside 1..len(table).
func Lookup[T any](table []T, field string, id int) (T, error) {
	if id < 1 || id > len(table) {
		var zero T
		return zero, NewIndexRangeError(field, id, len(table))
	}
	return table[id-1], nil
}

// LookupEnvironment returns the entry of an environment-indexed table.
func LookupEnvironment[T any](table []T, env Environment) (T, error) {
	return Lookup(table, "environment_active_id", int(env))
}

// Band returns how many breakpoints lie strictly below x. Piecewise factor
// tables have len(breaks)+1 entries and are indexed by the band: a value
// equal to a breakpoint belongs to the lower band.
func Band(breaks []float64, x float64) int {
	n := 0
	for _, b := range breaks {
		if x > b {
			n++
		}
	}
	return n
}

// RateRow is one labelled row of an environment-indexed rate table.
type RateRow struct {
	Label string
	Rates [EnvironmentCount]float64
}
