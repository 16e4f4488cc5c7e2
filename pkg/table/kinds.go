package table

import "fmt"

// TextOptions configures a text column. Format, when set, renders each
// value; otherwise values are rendered with fmt.Sprint.
type TextOptions struct {
	Text   Attr
	Format func(any) string
}

// Text builds a column of formatted text cells.
func Text(rowIDs []string, header string, text TextOptions, opts ColumnOptions) (*Column, error) {
	if err := checkRowIDs(rowIDs); err != nil {
		return nil, fmt.Errorf("column %q: %w", header, err)
	}
	format := text.Format
	if format == nil {
		format = func(v any) string { return fmt.Sprint(v) }
	}
	attr := text.Text
	if !attr.IsSet() {
		attr = Scalar("")
	}
	raw := Expand(attr, rowIDs)
	formatted := make([]string, len(raw))
	for i, v := range raw {
		formatted[i] = format(v)
	}
	return BuildKind(KindText, rowIDs, header, map[string]Attr{"text": PerRow(formatted...)}, opts)
}

// ButtonOptions configures a button column. Size defaults to "sm" and
// Color to "primary".
type ButtonOptions struct {
	Text     Attr
	Icon     Attr
	Size     Attr
	Color    Attr
	Outline  Attr
	Disabled Attr
}

// Button builds a column of buttons, one per row id.
func Button(rowIDs []string, header string, b ButtonOptions, opts ColumnOptions) (*Column, error) {
	return BuildKind(KindButton, rowIDs, header, map[string]Attr{
		"text":     b.Text,
		"icon":     b.Icon,
		"size":     b.Size,
		"color":    b.Color,
		"outline":  b.Outline,
		"disabled": b.Disabled,
	}, opts)
}

// CheckboxOptions configures a checkbox column. Value defaults to false.
type CheckboxOptions struct {
	Value    Attr
	Label    Attr
	Disabled Attr
}

// Checkbox builds a column of checkboxes, one per row id.
func Checkbox(rowIDs []string, header string, c CheckboxOptions, opts ColumnOptions) (*Column, error) {
	return BuildKind(KindCheckbox, rowIDs, header, map[string]Attr{
		"value":    c.Value,
		"label":    c.Label,
		"disabled": c.Disabled,
	}, opts)
}

// DropdownOptions configures a dropdown column. Options is normally built
// with SharedOptions; Clearable and Multi default to false.
type DropdownOptions struct {
	Value       Attr
	Options     Attr
	Clearable   Attr
	Placeholder Attr
	Multi       Attr
}

// Dropdown builds a column of dropdowns, one per row id.
func Dropdown(rowIDs []string, header string, d DropdownOptions, opts ColumnOptions) (*Column, error) {
	return BuildKind(KindDropdown, rowIDs, header, map[string]Attr{
		"value":       d.Value,
		OptionsAttr:   d.Options,
		"clearable":   d.Clearable,
		"placeholder": d.Placeholder,
		"multi":       d.Multi,
	}, opts)
}

// InputOptions configures an input column. Extra carries any further input
// properties.
type InputOptions struct {
	Value       Attr
	Type        Attr
	Placeholder Attr
	Disabled    Attr
	Debounce    Attr
	Extra       map[string]Attr
}

// Input builds a column of inputs, one per row id.
func Input(rowIDs []string, header string, in InputOptions, opts ColumnOptions) (*Column, error) {
	attrs := make(map[string]Attr, len(in.Extra)+5)
	for name, a := range in.Extra {
		attrs[name] = a
	}
	for name, a := range map[string]Attr{
		"value":       in.Value,
		"type":        in.Type,
		"placeholder": in.Placeholder,
		"disabled":    in.Disabled,
		"debounce":    in.Debounce,
	} {
		if a.IsSet() {
			attrs[name] = a
		}
	}
	return BuildKind(KindInput, rowIDs, header, attrs, opts)
}
