package table

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRowIds is returned when row identifiers are missing, empty
	// or not unique.
	ErrInvalidRowIds = errors.New("table: invalid row ids")
	// ErrColumnLengthMismatch is returned when columns assembled into one
	// table disagree on row count.
	ErrColumnLengthMismatch = errors.New("table: column lengths do not match")
	// ErrRowIdLengthMismatch is returned when explicit table row ids do not
	// match the common row count.
	ErrRowIdLengthMismatch = errors.New("table: row id length does not match columns")
	// ErrAttributeLengthMismatch is returned when a per-row attribute does
	// not pair with the column's row ids.
	ErrAttributeLengthMismatch = errors.New("table: attribute length does not match row ids")
	// ErrAmbiguousAttribute is returned by Infer for shapes that are neither
	// a scalar nor a per-row sequence.
	ErrAmbiguousAttribute = errors.New("table: ambiguous attribute shape")
	// ErrNoColumns is returned when a table is built without columns.
	ErrNoColumns = errors.New("table: no columns")
	// ErrNilColumn is returned when a nil column is passed to BuildTable.
	ErrNilColumn = errors.New("table: nil column")
	// ErrUnknownKind is returned for an unrecognised column kind.
	ErrUnknownKind = errors.New("table: unknown column kind")
	// ErrRowNotFound is returned by row lookups that miss.
	ErrRowNotFound = errors.New("table: row not found")
	// ErrInvalidDefinition classifies every ValidationError.
	ErrInvalidDefinition = errors.New("table: invalid definition")
)

// ValidationError reports one invalid field of a Definition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("table: invalid definition: %s", e.Message)
	}
	return fmt.Sprintf("table: invalid definition: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidDefinition.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidDefinition
}
