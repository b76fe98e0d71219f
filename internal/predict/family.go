package predict

import (
	"strconv"

	"github.com/roach88/relpredict/internal/config"
	"github.com/roach88/relpredict/internal/milhdbk217f"
	"github.com/roach88/relpredict/internal/milhdbk217f/resistor"
	"github.com/roach88/relpredict/internal/milhdbk217f/semiconductor"
	"github.com/roach88/relpredict/internal/record"
)

// Category is a component family, as stored in category_id.
type Category int

const (
	Semiconductor Category = 2
	Resistor      Category = 3
)

func (c Category) String() string {
	if f, ok := families[c]; ok {
		return f.name
	}
	return "unknown"
}

// family is the calculation surface of one component family.
type family struct {
	name       string
	partCount  func(record.Record) (record.Record, error)
	partStress func(record.Record) (record.Record, error)
	defaults   func(record.Record) record.Record
	dormant    func(record.Record) (record.Record, error)
	overstress func(record.Record, config.Derating) record.Record
	table      func() []milhdbk217f.RateRow
}

var families = map[Category]family{
	Semiconductor: {
		name:       "semiconductor",
		partCount:  semiconductor.CalculatePartCount,
		partStress: semiconductor.CalculatePartStress,
		defaults:   semiconductor.SetDefaultValues,
		dormant:    semiconductor.CalculateDormantHazardRate,
		overstress: func(r record.Record, d config.Derating) record.Record {
			return semiconductor.OverstressedWithLimits(r, d.Semiconductor)
		},
		table: semiconductor.PartCountTable,
	},
	Resistor: {
		name:       "resistor",
		partCount:  resistor.CalculatePartCount,
		partStress: resistor.CalculatePartStress,
		defaults:   resistor.SetDefaultValues,
		dormant:    resistor.CalculateDormantHazardRate,
		overstress: func(r record.Record, d config.Derating) record.Record {
			return resistor.OverstressedWithLimits(r, d.Resistor)
		},
		table: resistor.PartCountTable,
	},
}

// Categories lists the supported families in category_id order.
func Categories() []Category {
	return []Category{Semiconductor, Resistor}
}

// ParseCategory accepts a family name or its category_id.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if s == c.String() || s == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return 0, false
}

// PartCountTable returns the part-count base hazard rates of a family.
func PartCountTable(c Category) ([]milhdbk217f.RateRow, error) {
	f, ok := families[c]
	if !ok {
		return nil, milhdbk217f.NewUnknownCategoryError("category_id", int(c), "component")
	}
	return f.table(), nil
}

func familyFor(r record.Record) (family, error) {
	rd := milhdbk217f.NewReader(r)
	id := rd.Int("category_id")
	if err := rd.Err(); err != nil {
		return family{}, err
	}
	f, ok := families[Category(id)]
	if !ok {
		return family{}, milhdbk217f.NewUnknownCategoryError("category_id", id, "component")
	}
	return f, nil
}
