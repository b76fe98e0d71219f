package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSealed(t *testing.T) {
	var _ Value = Float(1.5)
	var _ Value = Int(3)
	var _ Value = String("D1")
	var _ Value = Bool(true)
}

func TestFromMap(t *testing.T) {
	r, err := FromMap(map[string]any{
		"subcategory_id":  1,
		"power_operating": 0.05,
		"hardware_id":     "D1",
		"overstress":      false,
		"quantity":        int64(2),
		"n_elements":      uint64(8),
	})
	require.NoError(t, err)

	assert.Equal(t, Int(1), r["subcategory_id"])
	assert.Equal(t, Float(0.05), r["power_operating"])
	assert.Equal(t, String("D1"), r["hardware_id"])
	assert.Equal(t, Bool(false), r["overstress"])
	assert.Equal(t, Int(2), r["quantity"])
	assert.Equal(t, Int(8), r["n_elements"])
}

func TestFromMapRejectsNull(t *testing.T) {
	_, err := FromMap(map[string]any{"theta_jc": nil})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theta_jc")
}

func TestFromMapRejectsNested(t *testing.T) {
	_, err := FromMap(map[string]any{"nested": map[string]any{"a": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value type")
}

func TestRecordFloatWidensInt(t *testing.T) {
	r := Record{"temperature_case": Int(45)}
	f, err := r.Float("temperature_case")
	require.NoError(t, err)
	assert.Equal(t, 45.0, f)
}

func TestRecordIntAcceptsIntegralFloat(t *testing.T) {
	r := Record{"type_id": Float(2), "bad": Float(2.5)}

	n, err := r.Int("type_id")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = r.Int("bad")
	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	assert.False(t, ke.Missing)
	assert.Equal(t, "int", ke.Want)
}

func TestRecordMissingKey(t *testing.T) {
	r := Record{}

	_, err := r.Float("power_rated")
	var ke *KeyError
	require.ErrorAs(t, err, &ke)
	assert.True(t, ke.Missing)
	assert.Equal(t, "power_rated", ke.Key)
	assert.Equal(t, `record: missing key "power_rated"`, err.Error())
}

func TestRecordWrongKind(t *testing.T) {
	r := Record{"power_rated": String("high")}

	_, err := r.Float("power_rated")
	require.Error(t, err)
	assert.Equal(t, `record: key "power_rated": want float, have string high`, err.Error())
}

func TestRecordStringRendersNumbers(t *testing.T) {
	r := Record{"hardware_id": Int(42), "ref": String("R7")}

	s, err := r.String("hardware_id")
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = r.String("ref")
	require.NoError(t, err)
	assert.Equal(t, "R7", s)
}

func TestRecordOrDefaults(t *testing.T) {
	r := Record{"duty_cycle": Float(65)}

	duty, err := r.FloatOr("duty_cycle", 100)
	require.NoError(t, err)
	assert.Equal(t, 65.0, duty)

	mult, err := r.FloatOr("mult_adj_factor", 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, mult)

	qty, err := r.IntOr("quantity", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}

func TestCloneIsIndependent(t *testing.T) {
	r := Record{"piT": Float(1)}
	c := r.Clone()
	c["piT"] = Float(2)

	assert.Equal(t, Float(1), r["piT"])
	assert.Equal(t, Float(2), c["piT"])
}

func TestMergeOverwrites(t *testing.T) {
	r := Record{"piT": Float(1), "hardware_id": String("D1")}
	m := r.Merge(Record{"piT": Float(2), "piQ": Float(0.7)})

	assert.Equal(t, Record{"piT": Float(2), "piQ": Float(0.7), "hardware_id": String("D1")}, m)
	assert.Equal(t, Float(1), r["piT"])
}

func TestRoundSig(t *testing.T) {
	assert.Equal(t, 0.000749506, RoundSig(0.0007495062, 6))
	assert.Equal(t, 2.42315, RoundSig(2.42314826, 6))
	assert.Equal(t, 0.0, RoundSig(0, 6))
	assert.Equal(t, 1.23456789, RoundSig(1.23456789, 0))
}

func TestRoundOnlyTouchesFloats(t *testing.T) {
	r := Record{"piT": Float(2.42314826), "type_id": Int(1)}.Round(3)
	assert.Equal(t, Float(2.42), r["piT"])
	assert.Equal(t, Int(1), r["type_id"])
}

func TestToMap(t *testing.T) {
	m := Record{"piT": Float(1.5), "type_id": Int(1), "reason": String(""), "overstress": Bool(true)}.ToMap()
	assert.Equal(t, map[string]any{"piT": 1.5, "type_id": int64(1), "reason": "", "overstress": true}, m)
}

func TestSortedKeysUTF16Order(t *testing.T) {
	r := Record{
		"piT":      Float(1),
		"piA":      Float(1),
		"lambda_b": Float(1),
		"Z":        Float(1),
	}
	// Uppercase sorts before lowercase; "piA" < "piT".
	assert.Equal(t, []string{"Z", "lambda_b", "piA", "piT"}, r.SortedKeys())
}

func TestCompareKeysSurrogates(t *testing.T) {
	// U+FFFD is a single UTF-16 unit 0xFFFD; U+1F600 encodes as 0xD83D 0xDE00.
	// UTF-16 order places the emoji first even though its UTF-8 bytes sort later.
	assert.Equal(t, 1, compareKeysRFC8785("\uFFFD", "\U0001F600"))
	assert.Equal(t, -1, compareKeysRFC8785("a", "ab"))
	assert.Equal(t, 0, compareKeysRFC8785("piE", "piE"))
}
