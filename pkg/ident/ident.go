// Package ident defines structured component identities. Event layers match
// on these key-value records (with wildcards) to target one instance of a
// repeated component, so they are plain comparable values.
package ident

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Wildcard matches any value in a pattern field.
const Wildcard = "*"

// ID identifies one subcomponent of one component instance.
type ID struct {
	Component    string `json:"component"`
	Subcomponent string `json:"subcomponent"`
	Instance     string `json:"aio_id"`
}

// New returns an ID. An empty instance is replaced with a fresh one.
func New(component, subcomponent, instance string) ID {
	if instance == "" {
		instance = NewInstance()
	}
	return ID{Component: component, Subcomponent: subcomponent, Instance: instance}
}

// NewInstance returns a random instance identifier.
func NewInstance() string {
	return uuid.NewString()
}

// With returns a copy of id addressing a sibling subcomponent.
func (id ID) With(subcomponent string) ID {
	id.Subcomponent = subcomponent
	return id
}

// Match reports whether id satisfies pattern. Pattern fields equal to
// Wildcard match anything.
func (id ID) Match(pattern ID) bool {
	return fieldMatch(pattern.Component, id.Component) &&
		fieldMatch(pattern.Subcomponent, id.Subcomponent) &&
		fieldMatch(pattern.Instance, id.Instance)
}

// String returns the compact JSON form with keys in sorted order, which is
// the form dictionary ids take on the wire.
func (id ID) String() string {
	b, _ := json.Marshal(map[string]string{
		"aio_id":       id.Instance,
		"component":    id.Component,
		"subcomponent": id.Subcomponent,
	})
	return string(b)
}

func fieldMatch(pattern, v string) bool {
	return pattern == Wildcard || pattern == v
}
