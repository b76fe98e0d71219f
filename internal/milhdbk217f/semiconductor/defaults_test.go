package semiconductor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/record"
)

func TestSetDefaultValues(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]any
		want record.Record
	}{
		{
			name: "low-frequency diode",
			in:   map[string]any{"subcategory_id": 1, "type_id": 1, "construction_id": 0},
			want: record.Record{
				"subcategory_id":  record.Int(1),
				"type_id":         record.Int(1),
				"construction_id": record.Int(1),
				"voltage_ratio":   record.Float(0.7),
			},
		},
		{
			name: "Si FET gets a type",
			in:   map[string]any{"subcategory_id": 4},
			want: record.Record{
				"subcategory_id": record.Int(4),
				"type_id":        record.Int(1),
				"application_id": record.Int(2),
				"voltage_ratio":  record.Float(1.0),
			},
		},
		{
			name: "high-power bipolar",
			in:   map[string]any{"subcategory_id": 7, "type_id": 1, "power_rated": -1.0},
			want: record.Record{
				"subcategory_id": record.Int(7),
				"type_id":        record.Int(1),
				"application_id": record.Int(2),
				"power_rated":    record.Float(100),
				"voltage_ratio":  record.Float(1.0),
			},
		},
		{
			name: "GaAs FET application follows type",
			in:   map[string]any{"subcategory_id": 8, "type_id": 2},
			want: record.Record{
				"subcategory_id": record.Int(8),
				"type_id":        record.Int(2),
				"application_id": record.Int(2),
				"voltage_ratio":  record.Float(1.0),
			},
		},
		{
			name: "positive values win",
			in:   map[string]any{"subcategory_id": 3, "application_id": 1, "power_rated": 2.0, "voltage_ratio": 0.2},
			want: record.Record{
				"subcategory_id": record.Int(3),
				"application_id": record.Int(1),
				"power_rated":    record.Float(2.0),
				"voltage_ratio":  record.Float(0.2),
			},
		},
		{
			name: "records that do not decode are unchanged",
			in:   map[string]any{"subcategory_id": 13, "application_id": "pulsed"},
			want: record.Record{
				"subcategory_id": record.Int(13),
				"application_id": record.String("pulsed"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetDefaultValues(mustRecord(t, tt.in)))
		})
	}
}

func TestSetDefaultValuesIdempotent(t *testing.T) {
	for _, s := range Subcategories() {
		for _, typeID := range []int{0, 1, 2} {
			in := record.Record{
				"subcategory_id": record.Int(s),
				"type_id":        record.Int(typeID),
				"voltage_ratio":  record.Float(0),
			}
			once := SetDefaultValues(in)
			assert.Equal(t, once, SetDefaultValues(once), "%s type %d", s, typeID)
		}
	}
}

func TestSetDefaultsTyped(t *testing.T) {
	a := SetDefaults(Attributes{Subcategory: LowFrequencyBipolar, PowerRated: milhdbk217f.Some(0)})
	assert.Equal(t, 2, a.ApplicationID)
	assert.Equal(t, milhdbk217f.Some(0.5), a.PowerRated)
	assert.Equal(t, milhdbk217f.Some(0.5), a.VoltageRatio)
	assert.Equal(t, a, SetDefaults(a))

	b := SetDefaults(Attributes{Subcategory: Thyristor})
	assert.Equal(t, 0, b.ApplicationID)
	assert.False(t, b.PowerRated.Set)
	assert.Equal(t, milhdbk217f.Some(1.0), b.VoltageRatio)
}
