package table

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/google/uuid"
)

// Kind names the component a column renders in each cell.
type Kind string

const (
	KindGeneric  Kind = "generic"
	KindText     Kind = "text"
	KindButton   Kind = "button"
	KindCheckbox Kind = "checkbox"
	KindDropdown Kind = "dropdown"
	KindInput    Kind = "input"
)

// Kinds returns every known column kind.
func Kinds() []Kind {
	return []Kind{KindGeneric, KindText, KindButton, KindCheckbox, KindDropdown, KindInput}
}

// kindDefaults are applied to attributes the caller leaves unset.
var kindDefaults = map[Kind]map[string]Attr{
	KindGeneric: {},
	KindText:    {"text": Scalar("")},
	KindButton: {
		"size":  Scalar("sm"),
		"color": Scalar("primary"),
	},
	KindCheckbox: {"value": Scalar(false)},
	KindDropdown: {
		"clearable": Scalar(false),
		"multi":     Scalar(false),
		OptionsAttr: SharedOptions(),
	},
	KindInput: {},
}

// HeaderOptions configures the column header cell.
type HeaderOptions struct {
	Style     map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
	ClassName string            `json:"className,omitempty" yaml:"class_name,omitempty"`
}

// CellOptions configures the cell wrapping each row's component. IDs, when
// given, supply one cell id per row; otherwise ids are generated.
type CellOptions struct {
	IDs       []string          `json:"-" yaml:"ids,omitempty"`
	Style     map[string]string `json:"style,omitempty" yaml:"style,omitempty"`
	ClassName string            `json:"className,omitempty" yaml:"class_name,omitempty"`
}

// LoadingOptions wraps each cell's component in a loading indicator.
type LoadingOptions struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,oneof=graph cube circle dot default"`
	Color   string `json:"color,omitempty" yaml:"color,omitempty"`
}

// ColumnOptions routes the non-component settings of a column to their
// destination.
type ColumnOptions struct {
	Header  HeaderOptions
	Cell    CellOptions
	Loading LoadingOptions
}

// Cell is the resolved attribute set of one row of one column.
type Cell struct {
	RowID string         `json:"rowId" yaml:"row_id"`
	ID    string         `json:"id" yaml:"id"`
	Attrs map[string]any `json:"attrs" yaml:"attrs"`
}

func (c Cell) clone() Cell {
	c.Attrs = maps.Clone(c.Attrs)
	return c
}

// Column is an immutable, fully resolved table column.
type Column struct {
	kind   Kind
	header string
	opts   ColumnOptions
	rowIDs []string
	cells  []Cell
}

// BuildColumn validates rowIDs, expands every attribute against them and
// zips the results into one attribute map per row.
func BuildColumn(rowIDs []string, header string, attrs map[string]Attr) (*Column, error) {
	return BuildKind(KindGeneric, rowIDs, header, attrs, ColumnOptions{})
}

// BuildKind is BuildColumn for a specific component kind: the kind's
// defaults fill unset attributes and opts are attached to the column.
func BuildKind(kind Kind, rowIDs []string, header string, attrs map[string]Attr, opts ColumnOptions) (*Column, error) {
	defaults, ok := kindDefaults[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if err := checkRowIDs(rowIDs); err != nil {
		return nil, fmt.Errorf("column %q: %w", header, err)
	}
	n := len(rowIDs)

	resolved := make(map[string]Attr, len(attrs)+len(defaults))
	for name, a := range defaults {
		resolved[name] = a
	}
	for name, a := range attrs {
		if a.IsSet() {
			resolved[name] = a
		}
	}

	names := make([]string, 0, len(resolved))
	for name := range resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	expanded := make(map[string][]any, len(names))
	for _, name := range names {
		vals := Expand(resolved[name], rowIDs)
		if len(vals) != n {
			return nil, fmt.Errorf("%w: column %q attribute %q has %d values for %d rows",
				ErrAttributeLengthMismatch, header, name, len(vals), n)
		}
		expanded[name] = vals
	}

	cellIDs := opts.Cell.IDs
	switch {
	case cellIDs == nil:
		cellIDs = make([]string, n)
		for i := range cellIDs {
			cellIDs[i] = uuid.NewString()
		}
	case len(cellIDs) != n:
		return nil, fmt.Errorf("%w: column %q has %d cell ids for %d rows",
			ErrAttributeLengthMismatch, header, len(cellIDs), n)
	default:
		cellIDs = slices.Clone(cellIDs)
	}

	cells := make([]Cell, n)
	for i, id := range rowIDs {
		m := make(map[string]any, len(names))
		for _, name := range names {
			m[name] = expanded[name][i]
		}
		cells[i] = Cell{RowID: id, ID: cellIDs[i], Attrs: m}
	}

	opts.Header.Style = maps.Clone(opts.Header.Style)
	opts.Cell.Style = maps.Clone(opts.Cell.Style)
	opts.Cell.IDs = cellIDs

	return &Column{
		kind:   kind,
		header: header,
		opts:   opts,
		rowIDs: slices.Clone(rowIDs),
		cells:  cells,
	}, nil
}

// checkRowIDs requires a non-nil set of non-empty, unique identifiers.
func checkRowIDs(rowIDs []string) error {
	if rowIDs == nil {
		return fmt.Errorf("%w: missing", ErrInvalidRowIds)
	}
	seen := make(map[string]int, len(rowIDs))
	for i, id := range rowIDs {
		if id == "" {
			return fmt.Errorf("%w: empty id at row %d", ErrInvalidRowIds, i)
		}
		if j, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q repeated at rows %d and %d", ErrInvalidRowIds, id, j, i)
		}
		seen[id] = i
	}
	return nil
}

// Kind returns the column's component kind.
func (c *Column) Kind() Kind { return c.kind }

// Header returns the column label.
func (c *Column) Header() string { return c.header }

// HeaderOptions returns the header cell settings.
func (c *Column) HeaderOptions() HeaderOptions {
	h := c.opts.Header
	h.Style = maps.Clone(h.Style)
	return h
}

// CellOptions returns the settings shared by the column's cells.
func (c *Column) CellOptions() CellOptions {
	o := c.opts.Cell
	o.IDs = slices.Clone(o.IDs)
	o.Style = maps.Clone(o.Style)
	return o
}

// Loading returns the loading indicator settings.
func (c *Column) Loading() LoadingOptions { return c.opts.Loading }

// Len returns the column's row count.
func (c *Column) Len() int { return len(c.rowIDs) }

// RowIDs returns the column's row identifiers in order.
func (c *Column) RowIDs() []string { return slices.Clone(c.rowIDs) }

// Cell returns the resolved cell at row i.
func (c *Column) Cell(i int) (Cell, error) {
	if i < 0 || i >= len(c.cells) {
		return Cell{}, fmt.Errorf("%w: index %d of %d in column %q", ErrRowNotFound, i, len(c.cells), c.header)
	}
	return c.cells[i].clone(), nil
}

// Cells returns every resolved cell in row order.
func (c *Column) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	for i, cell := range c.cells {
		out[i] = cell.clone()
	}
	return out
}

// Values returns attribute name for every row, or nil if the column does
// not carry it.
func (c *Column) Values(name string) []any {
	if len(c.cells) == 0 {
		return nil
	}
	if _, ok := c.cells[0].Attrs[name]; !ok {
		return nil
	}
	out := make([]any, len(c.cells))
	for i, cell := range c.cells {
		out[i] = cloneValue(cell.Attrs[name])
	}
	return out
}

func (c *Column) String() string {
	return fmt.Sprintf("table column %q (%s, %d rows)", c.header, c.kind, len(c.rowIDs))
}
