package table

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Definition is a declarative table document. Column attributes are loosely
// typed and go through Infer.
type Definition struct {
	RowIDs  []string           `yaml:"row_ids,omitempty" validate:"omitempty,unique,dive,required"`
	Styles  Styles             `yaml:"styles,omitempty"`
	Columns []ColumnDefinition `yaml:"columns" validate:"required,min=1,dive"`
}

// ColumnDefinition declares one column. IDs default to the table row ids.
type ColumnDefinition struct {
	Header  string         `yaml:"header" validate:"required"`
	Kind    Kind           `yaml:"kind,omitempty" validate:"omitempty,oneof=generic text button checkbox dropdown input"`
	IDs     []string       `yaml:"ids,omitempty" validate:"omitempty,unique,dive,required"`
	Options HeaderOptions  `yaml:"header_options,omitempty"`
	Cell    CellOptions    `yaml:"cell,omitempty"`
	Loading LoadingOptions `yaml:"loading,omitempty"`
	Attrs   map[string]any `yaml:"attrs,omitempty"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// ParseDefinition decodes a YAML (or JSON) table document and validates it.
// Unknown fields are rejected.
func ParseDefinition(r io.Reader) (*Definition, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var def Definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ValidationError{Message: "empty document"}
		}
		return nil, fmt.Errorf("table: parse definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the document's structure. Row count consistency is
// checked by Build.
func (d *Definition) Validate() error {
	if err := validatorInstance().Struct(d); err != nil {
		return convertValidationError(err)
	}
	for i, col := range d.Columns {
		if col.IDs == nil && d.RowIDs == nil {
			return &ValidationError{
				Field:   fmt.Sprintf("columns[%d].ids", i),
				Message: "required when row_ids is not set",
			}
		}
	}
	return nil
}

// Build resolves every column and assembles the table.
func (d *Definition) Build() (*Table, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	cols := make([]*Column, 0, len(d.Columns))
	for _, cd := range d.Columns {
		col, err := cd.build(d.RowIDs)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	t, err := BuildTable(cols, d.RowIDs)
	if err != nil {
		return nil, err
	}
	return t.WithStyles(d.Styles), nil
}

func (cd ColumnDefinition) build(tableRowIDs []string) (*Column, error) {
	ids := cd.IDs
	if ids == nil {
		ids = tableRowIDs
	}
	kind := cd.Kind
	if kind == "" {
		kind = KindGeneric
	}

	names := make([]string, 0, len(cd.Attrs))
	for name := range cd.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make(map[string]Attr, len(cd.Attrs))
	for _, name := range names {
		a, err := Infer(name, cd.Attrs[name])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cd.Header, err)
		}
		attrs[name] = a
	}
	return BuildKind(kind, ids, cd.Header, attrs, ColumnOptions{
		Header:  cd.Options,
		Cell:    cd.Cell,
		Loading: cd.Loading,
	})
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	fe := ves[0]
	return &ValidationError{Field: fieldPath(fe), Message: describe(fe)}
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "unique":
		return "must not contain duplicates"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
