// Package table broadcasts scalar-or-per-row cell attributes into resolved
// per-row attribute sets and assembles them into validated tables.
//
// A column is built from its row identifiers and a set of named attributes.
// Each attribute is either one value shared by every row (Scalar) or one
// value per row (PerRow). Columns sharing a row count are assembled into a
// Table whose rows are the transposition of its columns.
package table

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Attribute names with special meaning.
const (
	// StyleAttr holds a style mapping. A mapping is always one shared value.
	StyleAttr = "style"
	// OptionsAttr holds a dropdown option list. A list of option mappings is
	// one shared value, never one option per row.
	OptionsAttr = "options"
)

// Attr is an attribute value that is either shared by every row or given
// per row. The zero Attr is unset and is skipped when a column is built.
type Attr struct {
	set    bool
	perRow bool
	scalar any
	rows   []any
}

// Scalar returns an attribute applied uniformly to every row.
func Scalar(v any) Attr {
	return Attr{set: true, scalar: v}
}

// PerRow returns an attribute whose i-th value applies only to row i.
func PerRow[T any](vs ...T) Attr {
	rows := make([]any, len(vs))
	for i, v := range vs {
		rows[i] = v
	}
	return Attr{set: true, perRow: true, rows: rows}
}

// Style returns a style mapping shared by every row.
func Style(style map[string]string) Attr {
	return Scalar(maps.Clone(style))
}

// Option is one entry of a dropdown option list.
type Option struct {
	Label    string `json:"label" yaml:"label"`
	Value    any    `json:"value" yaml:"value"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// SharedOptions returns a dropdown option list shared by every row.
func SharedOptions(opts ...Option) Attr {
	if opts == nil {
		opts = []Option{}
	}
	return Scalar(slices.Clone(opts))
}

// IsSet reports whether a was constructed rather than left zero.
func (a Attr) IsSet() bool { return a.set }

// IsScalar reports whether a is shared by every row.
func (a Attr) IsScalar() bool { return a.set && !a.perRow }

// Len returns the number of per-row values, or -1 for a scalar.
func (a Attr) Len() int {
	if !a.perRow {
		return -1
	}
	return len(a.rows)
}

// Expand pairs attr with rowIDs. A scalar is replicated once per row, with
// mapping and slice values cloned so rows never alias. A per-row attribute
// is returned as given regardless of its length; a mismatch is reported when
// the column is built.
func Expand(attr Attr, rowIDs []string) []any {
	if attr.perRow {
		return slices.Clone(attr.rows)
	}
	out := make([]any, len(rowIDs))
	for i := range out {
		out[i] = cloneValue(attr.scalar)
	}
	return out
}

// Infer converts a loosely typed value, such as one decoded from YAML or
// JSON, into an Attr:
//
//   - an Attr is returned as is;
//   - a mapping is one shared value (a style);
//   - a list whose elements are all mappings is one shared option list when
//     name is OptionsAttr, and one mapping per row otherwise;
//   - a list of option lists is one option list per row when name is
//     OptionsAttr;
//   - a list of scalar values is one value per row;
//   - strings, numbers, booleans and nil are shared values.
//
// Any other list shape fails with ErrAmbiguousAttribute.
func Infer(name string, v any) (Attr, error) {
	switch x := v.(type) {
	case Attr:
		return x, nil
	case []Option:
		if name == OptionsAttr {
			return SharedOptions(x...), nil
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return Scalar(v), nil
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return inferList(name, items)
	default:
		return Scalar(v), nil
	}
}

func inferList(name string, items []any) (Attr, error) {
	var nMaps, nLists int
	for _, it := range items {
		switch shapeOf(it) {
		case shapeMap:
			nMaps++
		case shapeList:
			nLists++
		}
	}
	nValues := len(items) - nMaps - nLists

	switch {
	case len(items) == 0:
		if name == OptionsAttr {
			return SharedOptions(), nil
		}
		return PerRow[any](), nil
	case nMaps == len(items):
		if name == OptionsAttr {
			opts, err := toOptions(items)
			if err != nil {
				return Attr{}, err
			}
			return SharedOptions(opts...), nil
		}
		return PerRow(items...), nil
	case nValues == len(items):
		return PerRow(items...), nil
	case nLists == len(items) && name == OptionsAttr:
		rows := make([]any, len(items))
		for i, it := range items {
			sub, err := Infer(OptionsAttr, it)
			if err != nil {
				return Attr{}, err
			}
			if !sub.IsScalar() {
				return Attr{}, fmt.Errorf("%w: %q row %d is not an option list", ErrAmbiguousAttribute, name, i)
			}
			rows[i] = sub.scalar
		}
		return PerRow(rows...), nil
	}
	return Attr{}, fmt.Errorf("%w: %q mixes %d mappings, %d lists and %d values",
		ErrAmbiguousAttribute, name, nMaps, nLists, nValues)
}

type shape int

const (
	shapeValue shape = iota
	shapeMap
	shapeList
)

func shapeOf(v any) shape {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Map:
		return shapeMap
	case reflect.Slice, reflect.Array:
		return shapeList
	}
	return shapeValue
}

// toOptions converts decoded option mappings. "value" is required; a missing
// "label" defaults to the value's text.
func toOptions(items []any) ([]Option, error) {
	opts := make([]Option, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: option %d has non-string keys", ErrAmbiguousAttribute, i)
		}
		value, ok := m["value"]
		if !ok {
			return nil, fmt.Errorf("%w: option %d has no value", ErrAmbiguousAttribute, i)
		}
		opt := Option{Value: value, Label: fmt.Sprint(value)}
		if label, ok := m["label"]; ok {
			opt.Label = fmt.Sprint(label)
		}
		if disabled, ok := m["disabled"].(bool); ok {
			opt.Disabled = disabled
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]string:
		return maps.Clone(x)
	case map[string]any:
		return maps.Clone(x)
	case []Option:
		return slices.Clone(x)
	case []any:
		return slices.Clone(x)
	case []string:
		return slices.Clone(x)
	}
	return v
}
