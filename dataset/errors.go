// Package dataset: sentinel error set.
// All public operations return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...)); tests and callers match via errors.Is.
// No operation panics on user-triggered conditions.

package dataset

import "errors"

var (
	// ErrNoColumns indicates a dataset was constructed with an empty schema.
	ErrNoColumns = errors.New("dataset: no columns")

	// ErrEmptyHeader indicates a header cell (column name) is empty.
	ErrEmptyHeader = errors.New("dataset: empty column name")

	// ErrDuplicateColumn indicates two columns share the same name.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrUnknownColumn indicates a referenced column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrRaggedRow indicates a row's cell count does not match the schema.
	ErrRaggedRow = errors.New("dataset: row width does not match schema")

	// ErrTypeMismatch indicates a value's type does not match its column kind
	// (e.g., a string appended to a numeric column).
	ErrTypeMismatch = errors.New("dataset: value type does not match column kind")

	// ErrBadNumeric indicates a cell in a numeric column failed to parse.
	ErrBadNumeric = errors.New("dataset: cell is not a valid number")

	// ErrIndexOutOfRange indicates a row index outside [0, NumRows).
	ErrIndexOutOfRange = errors.New("dataset: row index out of range")

	// ErrNoRows indicates an operation that requires observations was given
	// a dataset with none.
	ErrNoRows = errors.New("dataset: dataset has no rows")
)
