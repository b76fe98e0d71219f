package record

import (
	"fmt"
	"math"
	"strconv"
)

// Value is a sealed interface over the value kinds a record may hold.
// Only Float, Int, String and Bool implement it.
type Value interface {
	recordValue() // Sealed - only these types implement it
}

// Float is a real-valued field (temperatures, ratios, factors, rates).
type Float float64

func (Float) recordValue() {}

// Int is an integral field, typically a 1-based table ID or a count.
type Int int64

func (Int) recordValue() {}

// String is a textual field (hardware IDs, diagnostic reasons).
type String string

func (String) recordValue() {}

// Bool is a flag field such as overstress.
type Bool bool

func (Bool) recordValue() {}

// Kind names the value kind for diagnostics.
func Kind(v Value) string {
	switch v.(type) {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// FromAny converts a decoded YAML, JSON or CUE scalar into a Value.
// Integral JSON numbers stay Float; the typed getters accept either kind.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case Value:
		return val, nil
	case float64:
		return Float(val), nil
	case float32:
		return Float(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case int32:
		return Int(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", val)
		}
		return Int(val), nil
	case string:
		return String(val), nil
	case bool:
		return Bool(val), nil
	case nil:
		return nil, fmt.Errorf("null values are not allowed")
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// Format renders a value for human-readable output.
func Format(v Value) string {
	switch val := v.(type) {
	case Float:
		return strconv.FormatFloat(float64(val), 'g', -1, 64)
	case Int:
		return strconv.FormatInt(int64(val), 10)
	case String:
		return string(val)
	case Bool:
		return strconv.FormatBool(bool(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}
