// Package formula: sentinel error set. Match with errors.Is.

package formula

import "errors"

var (
	// ErrEmptyFormula indicates a blank formula string.
	ErrEmptyFormula = errors.New("formula: empty formula")

	// ErrBadSyntax indicates a formula string that does not parse
	// (missing '~', empty term, empty factor, and similar).
	ErrBadSyntax = errors.New("formula: bad syntax")

	// ErrDuplicateTerm indicates the same term appears twice after
	// '*' expansion.
	ErrDuplicateTerm = errors.New("formula: duplicate term")

	// ErrUnknownColumn indicates the spec references a column the dataset
	// does not have.
	ErrUnknownColumn = errors.New("formula: unknown column")

	// ErrResponseNotNumeric indicates the response column is categorical.
	ErrResponseNotNumeric = errors.New("formula: response must be numeric")

	// ErrNoRows indicates Design was given a dataset without observations.
	ErrNoRows = errors.New("formula: dataset has no rows")
)
