package record

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf16"
)

// Record is the flat attribute mapping for one hardware component.
// Use SortedKeys() for deterministic iteration.
type Record map[string]Value

// KeyError reports a field that is absent or holds the wrong kind of value.
type KeyError struct {
	Key     string
	Missing bool
	Want    string // expected kind when Missing is false
	Have    Value
}

func (e *KeyError) Error() string {
	if e.Missing {
		return fmt.Sprintf("record: missing key %q", e.Key)
	}
	return fmt.Sprintf("record: key %q: want %s, have %s %s", e.Key, e.Want, Kind(e.Have), Format(e.Have))
}

// FromMap builds a Record from a decoded document map.
func FromMap(m map[string]any) (Record, error) {
	r := make(Record, len(m))
	for k, v := range m {
		val, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("record key %q: %w", k, err)
		}
		r[k] = val
	}
	return r, nil
}

// ToMap converts the record into plain Go values (float64, int64, string,
// bool) for encoders that do not know about Value.
func (r Record) ToMap() map[string]any {
	m := make(map[string]any, len(r))
	for k, v := range r {
		switch val := v.(type) {
		case Float:
			m[k] = float64(val)
		case Int:
			m[k] = int64(val)
		case String:
			m[k] = string(val)
		case Bool:
			m[k] = bool(val)
		}
	}
	return m
}

// Clone returns a shallow copy. Values are immutable so this is a full copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with every field of other written over it.
func (r Record) Merge(other Record) Record {
	out := r.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Has reports whether key is present.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Float returns a numeric field as float64. Int values are widened.
func (r Record) Float(key string) (float64, error) {
	v, ok := r[key]
	if !ok {
		return 0, &KeyError{Key: key, Missing: true}
	}
	switch val := v.(type) {
	case Float:
		return float64(val), nil
	case Int:
		return float64(val), nil
	default:
		return 0, &KeyError{Key: key, Want: "float", Have: v}
	}
}

// Int returns an integral field. A Float is accepted when it has no
// fractional part, since JSON decoders produce floats for every number.
func (r Record) Int(key string) (int, error) {
	v, ok := r[key]
	if !ok {
		return 0, &KeyError{Key: key, Missing: true}
	}
	switch val := v.(type) {
	case Int:
		return int(val), nil
	case Float:
		f := float64(val)
		if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, &KeyError{Key: key, Want: "int", Have: v}
		}
		return int(f), nil
	default:
		return 0, &KeyError{Key: key, Want: "int", Have: v}
	}
}

// String returns a textual field. Numbers are rendered so that hardware IDs
// given as integers still identify the component.
func (r Record) String(key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", &KeyError{Key: key, Missing: true}
	}
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Int, Float:
		return Format(val), nil
	default:
		return "", &KeyError{Key: key, Want: "string", Have: v}
	}
}

// Bool returns a flag field.
func (r Record) Bool(key string) (bool, error) {
	v, ok := r[key]
	if !ok {
		return false, &KeyError{Key: key, Missing: true}
	}
	b, ok := v.(Bool)
	if !ok {
		return false, &KeyError{Key: key, Want: "bool", Have: v}
	}
	return bool(b), nil
}

// FloatOr returns the field or def when it is absent.
func (r Record) FloatOr(key string, def float64) (float64, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Float(key)
}

// IntOr returns the field or def when it is absent.
func (r Record) IntOr(key string, def int) (int, error) {
	if !r.Has(key) {
		return def, nil
	}
	return r.Int(key)
}

// Round returns a copy with every Float rounded to sig significant digits.
// Output formatting uses this so that golden comparisons are stable.
func (r Record) Round(sig int) Record {
	out := make(Record, len(r))
	for k, v := range r {
		if f, ok := v.(Float); ok {
			out[k] = Float(RoundSig(float64(f), sig))
			continue
		}
		out[k] = v
	}
	return out
}

// RoundSig rounds f to sig significant decimal digits.
func RoundSig(f float64, sig int) float64 {
	if sig <= 0 || f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', sig, 64), 64)
	if err != nil {
		return f
	}
	return rounded
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
func (r Record) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

// compareKeysRFC8785 compares strings by UTF-16 code units as RFC 8785
// requires. Go's native string order is UTF-8 bytes and differs for
// characters outside the BMP.
func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}

	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	default:
		return 0
	}
}
