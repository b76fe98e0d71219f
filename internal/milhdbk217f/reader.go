package milhdbk217f

import (
	"errors"

	"github.com/roach88/relpredict/internal/record"
)

// Reader decodes fields from a flat record into typed attributes.
//
// The first failure is kept and every later call becomes a no-op returning
// the zero value, so decoders read all fields and check Err once:
//
//	rd := milhdbk217f.NewReader(r)
//	a.QualityID = rd.Int("quality_id")
//	a.PowerRated = rd.Opt("power_rated")
//	if err := rd.Err(); err != nil {
//	    return Attributes{}, err
//	}
type Reader struct {
	r   record.Record
	err error
}

// NewReader returns a Reader over r.
func NewReader(r record.Record) *Reader {
	return &Reader{r: r}
}

// Err returns the first decoding failure as a *CalcError.
func (rd *Reader) Err() error {
	return rd.err
}

// Int reads a required integral field.
func (rd *Reader) Int(key string) int {
	if rd.err != nil {
		return 0
	}
	v, err := rd.r.Int(key)
	if err != nil {
		rd.fail(key, err)
	}
	return v
}

// OptInt reads an integral field that defaults to 0 (unset) when absent.
func (rd *Reader) OptInt(key string) int {
	if rd.err != nil || !rd.r.Has(key) {
		return 0
	}
	return rd.Int(key)
}

// Float reads a required numeric field.
func (rd *Reader) Float(key string) float64 {
	if rd.err != nil {
		return 0
	}
	v, err := rd.r.Float(key)
	if err != nil {
		rd.fail(key, err)
	}
	return v
}

// FloatOr reads a numeric field, returning def when it is absent.
func (rd *Reader) FloatOr(key string, def float64) float64 {
	if rd.err != nil || !rd.r.Has(key) {
		return def
	}
	return rd.Float(key)
}

// Opt reads an optional numeric field.
func (rd *Reader) Opt(key string) Opt {
	if rd.err != nil || !rd.r.Has(key) {
		return Opt{}
	}
	return Some(rd.Float(key))
}

func (rd *Reader) fail(key string, err error) {
	var ke *record.KeyError
	if errors.As(err, &ke) && ke.Missing {
		rd.err = NewMissingAttributeError(key)
		return
	}
	if errors.As(err, &ke) {
		rd.err = NewPreconditionError(key, record.Format(ke.Have), "want "+ke.Want+" value")
		return
	}
	rd.err = NewPreconditionError(key, nil, err.Error())
}

// SetOpt writes an imputed optional value back into the record form.
// Unset values are omitted.
func SetOpt(r record.Record, key string, o Opt) {
	if o.Set {
		r[key] = record.Float(o.V)
	}
}
