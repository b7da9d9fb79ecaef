// Package report: sentinel error set. Match with errors.Is.

package report

import "errors"

var (
	// ErrNilSummary indicates a nil summary was passed in.
	ErrNilSummary = errors.New("report: nil summary")

	// ErrUnknownCoefficient indicates the summary has no coefficient with
	// the requested name.
	ErrUnknownCoefficient = errors.New("report: unknown coefficient")

	// ErrNoDraws indicates the coefficient carries no retained draws —
	// run the estimator with Options.KeepDraws to plot a histogram.
	ErrNoDraws = errors.New("report: no draws retained for coefficient")
)
