package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/charlotte/pkg/table"
	"gitlab.com/tinyland/lab/charlotte/pkg/theme"
)

// accentNames are tried in order for the header colour.
var accentNames = []string{"blue", "primary", "skyblue"}

// renderTable draws tbl as a bordered terminal table, one line per row, with
// each cell reduced to the attribute its component would display.
func renderTable(tbl *table.Table, th theme.Theme, profile termenv.Profile) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	header := r.NewStyle().Bold(true).Padding(0, 1)
	for _, name := range accentNames {
		if c, ok := th.Color(name); ok {
			header = header.Foreground(theme.AdaptColor(c, profile))
			break
		}
	}
	cell := r.NewStyle().Padding(0, 1)
	border := r.NewStyle()
	if c, ok := th.Color("shade3"); ok {
		border = border.Foreground(theme.AdaptColor(c, profile))
	}

	cols := tbl.Columns()
	rows := make([][]string, 0, tbl.Len())
	for _, row := range tbl.Rows() {
		line := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			line[i] = displayValue(cols[i].Kind(), c.Attrs)
		}
		rows = append(rows, line)
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(tbl.Headers()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}

// displayValue picks the attribute a component of kind would show.
func displayValue(kind table.Kind, attrs map[string]any) string {
	switch kind {
	case table.KindText, table.KindButton:
		return textOf(attrs["text"])
	case table.KindCheckbox:
		mark := "[ ]"
		if v, _ := attrs["value"].(bool); v {
			mark = "[x]"
		}
		if label := textOf(attrs["label"]); label != "" {
			return mark + " " + label
		}
		return mark
	case table.KindDropdown, table.KindInput:
		if v := textOf(attrs["value"]); v != "" {
			return v
		}
		return textOf(attrs["placeholder"])
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != table.StyleAttr {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + textOf(attrs[k])
	}
	return strings.Join(parts, " ")
}

func textOf(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = textOf(e)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprint(v)
}
