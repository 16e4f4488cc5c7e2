package ident

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestNewKeepsExplicitInstance(t *testing.T) {
	id := New("DrawerMultiLi", "Li", "menu-1")
	if id.Instance != "menu-1" {
		t.Errorf("Instance = %q, want %q", id.Instance, "menu-1")
	}
}

func TestNewGeneratesInstance(t *testing.T) {
	a := New("DrawerMultiLi", "Li", "")
	b := New("DrawerMultiLi", "Li", "")
	if _, err := uuid.Parse(a.Instance); err != nil {
		t.Errorf("generated instance %q is not a UUID: %v", a.Instance, err)
	}
	if a == b {
		t.Error("two generated ids are equal")
	}
}

func TestWith(t *testing.T) {
	li := New("DrawerMultiLi", "Li", "x")
	arrow := li.With("arrow")
	if arrow.Subcomponent != "arrow" || arrow.Instance != "x" || arrow.Component != "DrawerMultiLi" {
		t.Errorf("With = %+v", arrow)
	}
	if li.Subcomponent != "Li" {
		t.Error("With mutated the receiver")
	}
}

func TestMatch(t *testing.T) {
	id := New("DrawerMultiLi", "arrow", "x")
	tests := []struct {
		name    string
		pattern ID
		want    bool
	}{
		{"exact", id, true},
		{"instance wildcard", ID{"DrawerMultiLi", "arrow", Wildcard}, true},
		{"all wildcard", ID{Wildcard, Wildcard, Wildcard}, true},
		{"other subcomponent", ID{"DrawerMultiLi", "Li", Wildcard}, false},
		{"other instance", ID{"DrawerMultiLi", "arrow", "y"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := id.Match(tt.pattern); got != tt.want {
				t.Errorf("Match(%+v) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestStringSortedKeys(t *testing.T) {
	id := New("DrawerMultiLi", "Li", "x")
	want := `{"aio_id":"x","component":"DrawerMultiLi","subcomponent":"Li"}`
	if id.String() != want {
		t.Errorf("String() = %s, want %s", id.String(), want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	id := New("TableRow", "btn", "r1")
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatal(err)
	}
	var back ID
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back != id {
		t.Errorf("round trip = %+v, want %+v", back, id)
	}
}
