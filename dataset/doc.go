// Package dataset provides the tabular data model consumed by the bootstat
// estimators: an ordered sequence of rows over a fixed column schema, where
// every column is either numeric or categorical.
//
// 🚀 What is a Dataset?
//
//	An immutable-after-load, rectangular table of observations:
//	  • Numeric columns hold float64 measurements.
//	  • Categorical columns hold opaque labels. Labels are never coerced
//	    to numbers, even when they look numeric (a subject ID such as "42"
//	    stays a label, not a magnitude).
//
// ✨ Key features:
//   - strict rectangular invariant: every row has exactly one cell per column
//   - CSV ingestion with header row, configurable delimiter, explicit
//     categorical declarations and conservative type inference
//   - Select(indices) builds row-resampled copies without touching the source,
//     which is the primitive the bootstrap resampler is built on
//   - Levels(col) enumerates a categorical column's labels in sorted order,
//     so downstream design-matrix expansion is deterministic
//
// ⚙️ Usage:
//
//	cols := []dataset.Column{
//	  {Name: "y", Kind: dataset.Numeric},
//	  {Name: "group", Kind: dataset.Categorical},
//	}
//	ds, err := dataset.New(cols...)
//	err = ds.Append(3.14, "a")
//
// All errors are package sentinels; match them with errors.Is.
package dataset
