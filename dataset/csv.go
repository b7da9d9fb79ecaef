package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVOptions configures ReadCSV.
//   - Comma:       field delimiter (default ',').
//   - Comment:     comment rune; 0 disables comment handling (default 0).
//   - Categorical: column names that must be ingested as labels verbatim,
//     bypassing numeric inference entirely.
type CSVOptions struct {
	Comma       rune
	Comment     rune
	Categorical []string
}

// DefaultCSVOptions returns the documented defaults.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{Comma: ','}
}

// ReadCSV ingests a delimited table with a header row into a Dataset.
//
// Column typing:
//   - Columns listed in opts.Categorical are Categorical, always. Their
//     cells are preserved verbatim — "007" stays "007".
//   - Every other column is Numeric iff all of its cells parse as float64;
//     otherwise it is inferred Categorical.
//
// Inference requires two passes over the records, so the whole input is
// materialized before typing; this matches the in-memory model (the
// estimators need random row access anyway).
//
// Errors:
//   - ErrEmptyHeader, ErrDuplicateColumn — malformed header.
//   - ErrUnknownColumn — opts.Categorical names a column not in the header.
//   - ErrRaggedRow     — a record's width differs from the header's.
//   - csv.Reader errors are passed through wrapped.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	if opts.Comment != 0 {
		cr.Comment = opts.Comment
	}
	cr.FieldsPerRecord = -1 // ragged rows are our error, with our sentinel

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyHeader
	}

	header := records[0]
	body := records[1:]

	declared := make(map[string]bool, len(opts.Categorical))
	for _, name := range opts.Categorical {
		declared[name] = true
	}

	// Validate the header before looking at any data.
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if name == "" {
			return nil, ErrEmptyHeader
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		seen[name] = true
	}
	for name := range declared {
		if !seen[name] {
			return nil, fmt.Errorf("%w: declared categorical %q not in header", ErrUnknownColumn, name)
		}
	}
	for i, rec := range body {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("%w: record %d has %d cells, header has %d",
				ErrRaggedRow, i+1, len(rec), len(header))
		}
	}

	// Pass 1: type inference per column.
	cols := make([]Column, len(header))
	for j, name := range header {
		kind := Numeric
		if declared[name] {
			kind = Categorical
		} else {
			for _, rec := range body {
				if _, perr := strconv.ParseFloat(rec[j], 64); perr != nil {
					kind = Categorical
					break
				}
			}
		}
		cols[j] = Column{Name: name, Kind: kind}
	}

	// Pass 2: materialize.
	d, err := New(cols...)
	if err != nil {
		return nil, err
	}
	row := make([]any, len(cols))
	for _, rec := range body {
		for j := range cols {
			if cols[j].Kind == Numeric {
				v, perr := strconv.ParseFloat(rec[j], 64)
				if perr != nil {
					return nil, fmt.Errorf("%w: column %q cell %q", ErrBadNumeric, cols[j].Name, rec[j])
				}
				row[j] = v
			} else {
				row[j] = rec[j]
			}
		}
		if err = d.Append(row...); err != nil {
			return nil, err
		}
	}
	return d, nil
}
