package milhdbk217f

// Opt is an optional physical input. The zero value is unset.
//
// Records historically encode "unset" as 0.0. Decoding keeps absence and
// presence apart; imputation then treats a non-positive value as unset too,
// so a caller-supplied positive value always wins.
type Opt struct {
	V   float64
	Set bool
}

// Some returns a set Opt holding v.
func Some(v float64) Opt { return Opt{V: v, Set: true} }

// Positive reports whether the input is set to a usable (> 0) value.
func (o Opt) Positive() bool { return o.Set && o.V > 0 }

// Or returns the value when Positive, otherwise def.
func (o Opt) Or(def float64) float64 {
	if o.Positive() {
		return o.V
	}
	return def
}

// Value returns the raw value, 0 when unset.
func (o Opt) Value() float64 {
	if !o.Set {
		return 0
	}
	return o.V
}
