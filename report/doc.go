// Package report renders bootstrap summaries for human consumption:
// a fixed-width console table and an optional PNG histogram of a
// coefficient's bootstrap distribution.
//
// Presentation only — nothing here feeds back into estimation.
package report
