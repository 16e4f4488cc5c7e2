package table

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var abc = []string{"a", "b", "c"}

// --- Expand ---

func TestExpandScalarReplicates(t *testing.T) {
	got := Expand(Scalar("same"), abc)
	want := []any{"same", "same", "same"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand scalar (-want +got):\n%s", diff)
	}
}

func TestExpandStringIsScalar(t *testing.T) {
	// A string is one value, never a sequence of characters.
	got := Expand(Scalar("xyz"), abc)
	if len(got) != 3 || got[0] != "xyz" {
		t.Errorf("Expand(Scalar(\"xyz\")) = %v", got)
	}
}

func TestExpandPerRowUnchanged(t *testing.T) {
	got := Expand(PerRow("x", "y", "z"), abc)
	want := []any{"x", "y", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Expand per-row (-want +got):\n%s", diff)
	}
}

func TestExpandPerRowIgnoresLength(t *testing.T) {
	got := Expand(PerRow(1, 2), abc)
	if len(got) != 2 {
		t.Errorf("Expand kept %d values, want 2 (length is checked later)", len(got))
	}
}

func TestExpandScalarStyleIsClonedPerRow(t *testing.T) {
	got := Expand(Style(map[string]string{"color": "red"}), abc)
	first := got[0].(map[string]string)
	first["color"] = "blue"
	if got[1].(map[string]string)["color"] != "red" {
		t.Error("rows share one style map")
	}
}

func TestExpandUnsetIsNilPerRow(t *testing.T) {
	got := Expand(Attr{}, abc)
	if diff := cmp.Diff([]any{nil, nil, nil}, got); diff != "" {
		t.Errorf("Expand unset (-want +got):\n%s", diff)
	}
}

func TestAttrAccessors(t *testing.T) {
	if (Attr{}).IsSet() {
		t.Error("zero Attr is set")
	}
	if !Scalar(1).IsScalar() || Scalar(1).Len() != -1 {
		t.Error("Scalar accessors wrong")
	}
	p := PerRow(1, 2, 3)
	if p.IsScalar() || p.Len() != 3 {
		t.Error("PerRow accessors wrong")
	}
}

func TestStyleCopiesInput(t *testing.T) {
	in := map[string]string{"color": "red"}
	a := Style(in)
	in["color"] = "blue"
	if Expand(a, []string{"a"})[0].(map[string]string)["color"] != "red" {
		t.Error("Style kept a reference to the caller's map")
	}
}

// --- Infer ---

func TestInferShapes(t *testing.T) {
	tests := []struct {
		name      string
		attr      string
		in        any
		scalar    bool
		wantFirst any
	}{
		{"string", "text", "hello", true, "hello"},
		{"number", "size", 3, true, 3},
		{"bool", "disabled", true, true, true},
		{"nil", "icon", nil, true, nil},
		{"style mapping", StyleAttr, map[string]any{"color": "red"}, true, map[string]any{"color": "red"}},
		{"any mapping", "data", map[string]string{"k": "v"}, true, map[string]string{"k": "v"}},
		{"list of values", "text", []any{"x", "y", "z"}, false, "x"},
		{"typed list", "text", []string{"x", "y", "z"}, false, "x"},
		{"per-row styles", StyleAttr, []any{map[string]any{"color": "red"}, map[string]any{"color": "blue"}}, false, map[string]any{"color": "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Infer(tt.attr, tt.in)
			if err != nil {
				t.Fatalf("Infer error: %v", err)
			}
			if a.IsScalar() != tt.scalar {
				t.Errorf("IsScalar = %v, want %v", a.IsScalar(), tt.scalar)
			}
			got := Expand(a, abc)[0]
			if diff := cmp.Diff(tt.wantFirst, got); diff != "" {
				t.Errorf("first value (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInferSharedOptions(t *testing.T) {
	in := []any{
		map[string]any{"label": "Yes", "value": true},
		map[string]any{"label": "No", "value": false},
	}
	a, err := Infer(OptionsAttr, in)
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsScalar() {
		t.Fatal("option list inferred as per-row")
	}
	want := []Option{{Label: "Yes", Value: true}, {Label: "No", Value: false}}
	for i, v := range Expand(a, abc) {
		if diff := cmp.Diff(want, v); diff != "" {
			t.Errorf("row %d options (-want +got):\n%s", i, diff)
		}
	}
}

func TestInferOptionLabelDefaultsToValue(t *testing.T) {
	a, err := Infer(OptionsAttr, []any{map[string]any{"value": 7}})
	if err != nil {
		t.Fatal(err)
	}
	opts := Expand(a, []string{"a"})[0].([]Option)
	if opts[0].Label != "7" {
		t.Errorf("label = %q, want %q", opts[0].Label, "7")
	}
}

func TestInferPerRowOptionLists(t *testing.T) {
	in := []any{
		[]any{map[string]any{"value": "a1"}},
		[]any{map[string]any{"value": "b1"}, map[string]any{"value": "b2"}},
	}
	a, err := Infer(OptionsAttr, in)
	if err != nil {
		t.Fatal(err)
	}
	if a.IsScalar() || a.Len() != 2 {
		t.Fatalf("got scalar=%v len=%d, want per-row of 2", a.IsScalar(), a.Len())
	}
	second := Expand(a, []string{"a", "b"})[1].([]Option)
	if len(second) != 2 || second[1].Value != "b2" {
		t.Errorf("second row options = %+v", second)
	}
}

func TestInferEmptyLists(t *testing.T) {
	a, err := Infer(OptionsAttr, []any{})
	if err != nil || !a.IsScalar() {
		t.Errorf("empty options: scalar=%v err=%v", a.IsScalar(), err)
	}
	b, err := Infer("text", []any{})
	if err != nil || b.IsScalar() || b.Len() != 0 {
		t.Errorf("empty text list: scalar=%v len=%d err=%v", b.IsScalar(), b.Len(), err)
	}
}

func TestInferAmbiguous(t *testing.T) {
	tests := []struct {
		name string
		attr string
		in   any
	}{
		{"mixed map and value", StyleAttr, []any{map[string]any{"a": "b"}, "x"}},
		{"nested lists", "text", []any{[]any{"x"}, []any{"y"}}},
		{"mixed list and value", "text", []any{[]any{"x"}, "y"}},
		{"option without value", OptionsAttr, []any{map[string]any{"label": "x"}}},
		{"option list row of values", OptionsAttr, []any{[]any{"x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Infer(tt.attr, tt.in); !errors.Is(err, ErrAmbiguousAttribute) {
				t.Errorf("Infer error = %v, want ErrAmbiguousAttribute", err)
			}
		})
	}
}

func TestInferPassesAttrThrough(t *testing.T) {
	a, err := Infer("text", PerRow("x"))
	if err != nil || a.Len() != 1 {
		t.Errorf("Infer(Attr) = %+v, %v", a, err)
	}
	b, err := Infer(OptionsAttr, []Option{{Label: "A", Value: "a"}})
	if err != nil || !b.IsScalar() {
		t.Errorf("Infer([]Option) scalar=%v err=%v", b.IsScalar(), err)
	}
}
