package component

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/relpredict/internal/record"
)

//go:embed schema.cue
var schemaSource string

// yamlDocument is the strict YAML envelope; unknown top-level keys fail.
type yamlDocument struct {
	Components []map[string]any `yaml:"components"`
}

// Loader validates component documents against the embedded schema.
// A Loader is not safe for concurrent use; create one per goroutine.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader compiles the embedded schema.
func NewLoader() (*Loader, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling component schema: %w", err)
	}
	return &Loader{
		ctx:    ctx,
		schema: schema.LookupPath(cue.ParsePath("#Document")),
	}, nil
}

// LoadFile reads path and returns its components. All schema violations are
// returned, not just the first.
func (l *Loader) LoadFile(path string) ([]record.Record, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading component file: %v", err)}}
	}
	return l.Load(path, data)
}

// Load decodes data as the format implied by name's extension.
func (l *Loader) Load(name string, data []byte) ([]record.Record, []error) {
	var v cue.Value
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		doc, err := decodeYAML(data)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeParse, Message: fmt.Sprintf("%s: %v", name, err)}}
		}
		v = l.ctx.Encode(map[string]any{"components": doc.Components})
	case ".json", ".cue":
		// JSON is a subset of CUE, so both keep integer literals and
		// source positions.
		v = l.ctx.CompileBytes(data, cue.Filename(name))
	default:
		return nil, []error{&LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported component file extension %q", filepath.Ext(name))}}
	}
	if err := v.Err(); err != nil {
		return nil, fromCUE(ErrCodeParse, err)
	}
	return l.extract(l.schema.Unify(v))
}

func decodeYAML(data []byte) (*yamlDocument, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &doc, nil
}

// extract validates the unified document and converts each component.
func (l *Loader) extract(v cue.Value) ([]record.Record, []error) {
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fromCUE(ErrCodeSchema, err)
	}
	iter, err := v.LookupPath(cue.ParsePath("components")).List()
	if err != nil {
		return nil, fromCUE(ErrCodeSchema, err)
	}

	var (
		out  []record.Record
		errs []error
	)
	for iter.Next() {
		r, err := toRecord(iter.Value())
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, r)
	}
	return out, errs
}

// toRecord converts one validated component into a Record.
func toRecord(v cue.Value) (record.Record, error) {
	fields, err := v.Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: err.Error(), Pos: v.Pos()}
	}
	r := make(record.Record)
	for fields.Next() {
		fv := fields.Value()
		val, err := scalar(fv)
		if err != nil {
			return nil, &LoadError{
				Code:    ErrCodeSchema,
				Message: fmt.Sprintf("%s: %v", fields.Selector(), err),
				Pos:     fv.Pos(),
			}
		}
		r[fields.Selector().String()] = val
	}
	return r, nil
}

func scalar(v cue.Value) (record.Value, error) {
	switch v.Kind() {
	case cue.IntKind:
		i, err := v.Int64()
		return record.Int(i), err
	case cue.FloatKind, cue.NumberKind:
		f, err := v.Float64()
		return record.Float(f), err
	case cue.StringKind:
		s, err := v.String()
		return record.String(s), err
	case cue.BoolKind:
		b, err := v.Bool()
		return record.Bool(b), err
	default:
		return nil, fmt.Errorf("unsupported value kind %v", v.Kind())
	}
}
