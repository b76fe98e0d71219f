package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalCanonicalRecord(t *testing.T) {
	r := Record{
		"piT":                   Float(2.5),
		"hardware_id":           String("D1"),
		"environment_active_id": Int(3),
		"overstress":            Bool(false),
	}

	out, err := MarshalCanonical(r)
	require.NoError(t, err)
	assert.Equal(t, `{"environment_active_id":3,"hardware_id":"D1","overstress":false,"piT":2.5}`, string(out))
}

func TestMarshalCanonicalNoHTMLEscape(t *testing.T) {
	out, err := MarshalCanonical(Record{"reason": String("1. P < 0.9 & Tj > 125\n")})
	require.NoError(t, err)
	assert.Equal(t, `{"reason":"1. P < 0.9 & Tj > 125\n"}`, string(out))
}

func TestMarshalCanonicalNFC(t *testing.T) {
	// "e" + combining acute (NFD) must serialize as precomposed U+00E9.
	out, err := MarshalCanonical(Record{"name": String("re\u0301sistor")})
	require.NoError(t, err)
	assert.Equal(t, "{\"name\":\"r\u00e9sistor\"}", string(out))
}

func TestMarshalCanonicalLineSeparators(t *testing.T) {
	out, err := MarshalCanonical("a\u2028b\u2029c")
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\u2029c\"", string(out))

	// A literal backslash followed by u2028 text stays escaped.
	out, err = MarshalCanonical(`a\u2028`)
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028"`, string(out))
}

func TestMarshalCanonicalRejectsNonFinite(t *testing.T) {
	_, err := MarshalCanonical(Record{"piP": Float(math.Inf(1))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "piP")

	_, err = MarshalCanonical(Float(math.NaN()))
	require.Error(t, err)
}

func TestMarshalCanonicalRejectsNull(t *testing.T) {
	_, err := MarshalCanonical(nil)
	require.Error(t, err)
}

func TestMarshalCanonicalEnvelope(t *testing.T) {
	out, err := MarshalCanonical(map[string]any{
		"run_id":     "run-1",
		"components": []Record{{"lambda_b": Float(0.0036)}},
		"failures":   []any{},
		"total":      0.0036,
		"count":      1,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"components":[{"lambda_b":0.0036}],"count":1,"failures":[],"run_id":"run-1","total":0.0036}`, string(out))
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{100, "100"},
		{0.0036, "0.0036"},
		{0.000001, "0.000001"},
		{5.846584e-05, "0.00005846584"},
		{1e-7, "1e-7"},
		{1.5e-7, "1.5e-7"},
		{1e21, "1e+21"},
		{123456789012345680000, "123456789012345680000"},
		{43.45, "43.45"},
		{2.4231482604, "2.4231482604"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}
