package table

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Styles holds the table-level style mappings.
type Styles struct {
	Header map[string]string `json:"header,omitempty" yaml:"header,omitempty"`
	Body   map[string]string `json:"body,omitempty" yaml:"body,omitempty"`
	Row    map[string]string `json:"row,omitempty" yaml:"row,omitempty"`
}

func (s Styles) clone() Styles {
	return Styles{
		Header: maps.Clone(s.Header),
		Body:   maps.Clone(s.Body),
		Row:    maps.Clone(s.Row),
	}
}

// Row is one table row: the cells of every column at one index.
type Row struct {
	Index int    `json:"index" yaml:"index"`
	ID    string `json:"id" yaml:"id"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// Table is an immutable ordered set of columns sharing one row count.
type Table struct {
	columns []*Column
	rowIDs  []string
	index   map[string]int
	styles  Styles
}

// BuildTable assembles columns into a table. All columns must share one row
// count. rowIDs, when non-nil, must be unique and match that count; when nil,
// row ids are generated.
func BuildTable(columns []*Column, rowIDs []string) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilColumn, i)
		}
	}

	n := columns[0].Len()
	for _, col := range columns[1:] {
		if col.Len() != n {
			return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
				ErrColumnLengthMismatch, columns[0].Header(), n, col.Header(), col.Len())
		}
	}

	if rowIDs == nil {
		rowIDs = make([]string, n)
		for i := range rowIDs {
			rowIDs[i] = uuid.NewString()
		}
	} else {
		if len(rowIDs) != n {
			return nil, fmt.Errorf("%w: %d row ids for %d rows", ErrRowIdLengthMismatch, len(rowIDs), n)
		}
		if err := checkRowIDs(rowIDs); err != nil {
			return nil, err
		}
		rowIDs = slices.Clone(rowIDs)
	}

	index := make(map[string]int, n)
	for i, id := range rowIDs {
		index[id] = i
	}
	return &Table{
		columns: slices.Clone(columns),
		rowIDs:  rowIDs,
		index:   index,
	}, nil
}

// WithStyles returns a copy of t carrying styles.
func (t *Table) WithStyles(styles Styles) *Table {
	out := *t
	out.styles = styles.clone()
	return &out
}

// Styles returns the table-level styles.
func (t *Table) Styles() Styles { return t.styles.clone() }

// Len returns the row count.
func (t *Table) Len() int { return len(t.rowIDs) }

// Columns returns the columns in order.
func (t *Table) Columns() []*Column { return slices.Clone(t.columns) }

// Headers returns the column labels in order.
func (t *Table) Headers() []string {
	out := make([]string, len(t.columns))
	for i, col := range t.columns {
		out[i] = col.Header()
	}
	return out
}

// RowIDs returns the row identifiers in order.
func (t *Table) RowIDs() []string { return slices.Clone(t.rowIDs) }

// Row returns the row at index i.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rowIDs) {
		return Row{}, fmt.Errorf("%w: index %d of %d", ErrRowNotFound, i, len(t.rowIDs))
	}
	return t.row(i), nil
}

// RowByID returns the row with identifier id.
func (t *Table) RowByID(id string) (Row, error) {
	i, ok := t.index[id]
	if !ok {
		return Row{}, fmt.Errorf("%w: id %q", ErrRowNotFound, id)
	}
	return t.row(i), nil
}

// Rows returns every row in order.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rowIDs))
	for i := range out {
		out[i] = t.row(i)
	}
	return out
}

func (t *Table) row(i int) Row {
	cells := make([]Cell, len(t.columns))
	for j, col := range t.columns {
		cells[j] = col.cells[i].clone()
	}
	return Row{Index: i, ID: t.rowIDs[i], Cells: cells}
}

// Document is the serialisable form of a Table handed to a renderer.
type Document struct {
	Styles  Styles           `json:"styles" yaml:"styles"`
	Columns []ColumnDocument `json:"columns" yaml:"columns"`
	Rows    []Row            `json:"rows" yaml:"rows"`
}

// ColumnDocument is the serialisable header side of a Column.
type ColumnDocument struct {
	Header  string         `json:"header" yaml:"header"`
	Kind    Kind           `json:"kind" yaml:"kind"`
	Options HeaderOptions  `json:"headerOptions" yaml:"header_options"`
	Cell    CellOptions    `json:"cell" yaml:"cell"`
	Loading LoadingOptions `json:"loading" yaml:"loading"`
}

// Document returns the serialisable form of t.
func (t *Table) Document() Document {
	cols := make([]ColumnDocument, len(t.columns))
	for i, col := range t.columns {
		cell := col.CellOptions()
		cell.IDs = nil
		cols[i] = ColumnDocument{
			Header:  col.Header(),
			Kind:    col.Kind(),
			Options: col.HeaderOptions(),
			Cell:    cell,
			Loading: col.Loading(),
		}
	}
	return Document{Styles: t.Styles(), Columns: cols, Rows: t.Rows()}
}

// MarshalJSON encodes the table's Document.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Document())
}
