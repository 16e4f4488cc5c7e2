package table

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustColumn(t *testing.T, rowIDs []string, header string, attrs map[string]Attr) *Column {
	t.Helper()
	col, err := BuildColumn(rowIDs, header, attrs)
	if err != nil {
		t.Fatalf("BuildColumn(%q): %v", header, err)
	}
	return col
}

func TestBuildTableColumnLengthMismatch(t *testing.T) {
	short := mustColumn(t, abc, "Short", map[string]Attr{"text": Scalar("x")})
	long := mustColumn(t, []string{"a", "b", "c", "d"}, "Long", map[string]Attr{"text": Scalar("y")})
	if _, err := BuildTable([]*Column{short, long}, nil); !errors.Is(err, ErrColumnLengthMismatch) {
		t.Errorf("error = %v, want ErrColumnLengthMismatch", err)
	}
}

func TestBuildTableRowIDErrors(t *testing.T) {
	col := mustColumn(t, abc, "H", map[string]Attr{"text": Scalar("x")})
	tests := []struct {
		name   string
		rowIDs []string
		want   error
	}{
		{"too few", []string{"a", "b"}, ErrRowIdLengthMismatch},
		{"too many", []string{"a", "b", "c", "d"}, ErrRowIdLengthMismatch},
		{"duplicate", []string{"a", "a", "b"}, ErrInvalidRowIds},
		{"empty id", []string{"a", "", "b"}, ErrInvalidRowIds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildTable([]*Column{col}, tt.rowIDs); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuildTableNoColumns(t *testing.T) {
	if _, err := BuildTable(nil, nil); !errors.Is(err, ErrNoColumns) {
		t.Errorf("error = %v, want ErrNoColumns", err)
	}
	if _, err := BuildTable([]*Column{nil}, nil); !errors.Is(err, ErrNilColumn) {
		t.Errorf("error = %v, want ErrNilColumn", err)
	}
}

func TestBuildTableGeneratesRowIDs(t *testing.T) {
	col := mustColumn(t, abc, "H", map[string]Attr{"text": Scalar("x")})
	tbl, err := BuildTable([]*Column{col}, nil)
	if err != nil {
		t.Fatal(err)
	}
	ids := tbl.RowIDs()
	if len(ids) != 3 {
		t.Fatalf("RowIDs len = %d, want 3", len(ids))
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if id == "" || seen[id] {
			t.Errorf("generated ids not unique and non-empty: %v", ids)
		}
		seen[id] = true
	}
}

func TestTableRows(t *testing.T) {
	name := mustColumn(t, abc, "Name", map[string]Attr{"text": PerRow("x", "y", "z")})
	flag := mustColumn(t, abc, "Flag", map[string]Attr{"value": Scalar(true)})
	tbl, err := BuildTable([]*Column{name, flag}, []string{"r1", "r2", "r3"})
	if err != nil {
		t.Fatal(err)
	}

	if tbl.Len() != 3 {
		t.Errorf("Len = %d, want 3", tbl.Len())
	}
	if diff := cmp.Diff([]string{"Name", "Flag"}, tbl.Headers()); diff != "" {
		t.Errorf("Headers (-want +got):\n%s", diff)
	}

	row, err := tbl.RowByID("r2")
	if err != nil {
		t.Fatal(err)
	}
	if row.Index != 1 || len(row.Cells) != 2 {
		t.Fatalf("row = %+v", row)
	}
	if row.Cells[0].Attrs["text"] != "y" || row.Cells[1].Attrs["value"] != true {
		t.Errorf("row cells = %+v", row.Cells)
	}

	byIndex, err := tbl.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(row, byIndex); diff != "" {
		t.Errorf("Row(1) vs RowByID(r2) (-want +got):\n%s", diff)
	}

	rows := tbl.Rows()
	if len(rows) != 3 || rows[2].ID != "r3" {
		t.Errorf("Rows = %+v", rows)
	}
}

func TestTableRowLookupMisses(t *testing.T) {
	tbl, err := BuildTable([]*Column{mustColumn(t, abc, "H", nil)}, abc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tbl.RowByID("nope"); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("RowByID error = %v", err)
	}
	if _, err := tbl.Row(3); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("Row(3) error = %v", err)
	}
}

func TestTableWithStylesCopies(t *testing.T) {
	tbl, err := BuildTable([]*Column{mustColumn(t, abc, "H", nil)}, abc)
	if err != nil {
		t.Fatal(err)
	}
	header := map[string]string{"fontWeight": "bold"}
	styled := tbl.WithStyles(Styles{Header: header})
	header["fontWeight"] = "normal"

	if got := styled.Styles().Header["fontWeight"]; got != "bold" {
		t.Errorf("styled header = %q, want bold", got)
	}
	if tbl.Styles().Header != nil {
		t.Error("WithStyles modified the original table")
	}
}

func TestTableMarshalJSON(t *testing.T) {
	col, err := BuildKind(KindText, []string{"a"}, "Name", map[string]Attr{"text": Scalar("hi")}, ColumnOptions{
		Cell: CellOptions{IDs: []string{"cell-a"}, ClassName: "c"},
	})
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := BuildTable([]*Column{col}, []string{"row-a"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(tbl)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"styles": map[string]any{},
		"columns": []any{map[string]any{
			"header":        "Name",
			"kind":          "text",
			"headerOptions": map[string]any{},
			"cell":          map[string]any{"className": "c"},
			"loading":       map[string]any{"enabled": false},
		}},
		"rows": []any{map[string]any{
			"index": float64(0),
			"id":    "row-a",
			"cells": []any{map[string]any{
				"rowId": "a",
				"id":    "cell-a",
				"attrs": map[string]any{"text": "hi"},
			}},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON (-want +got):\n%s", diff)
	}
}
