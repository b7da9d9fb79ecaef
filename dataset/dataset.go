package dataset

import (
	"fmt"
	"sort"
)

// Kind discriminates the two column types.
//
//   - Numeric     — float64 measurements; participate in arithmetic.
//   - Categorical — opaque labels; only equality and level enumeration.
type Kind int

const (
	// Numeric marks a column of float64 measurements.
	Numeric Kind = iota

	// Categorical marks a column of opaque labels. Labels are preserved
	// verbatim and never interpreted as magnitudes.
	Categorical
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	if k == Categorical {
		return "categorical"
	}
	return "numeric"
}

// Column describes one column of the schema: a unique name plus its Kind.
type Column struct {
	Name string
	Kind Kind
}

// Dataset is a rectangular table of observations.
//
// Storage is column-major: one slice per column, which makes row resampling
// (Select) a sequence of independent per-column gathers. A Dataset is meant
// to be fully constructed (New+Append or ReadCSV) and then treated as
// read-only by every consumer; no method mutates a dataset after handoff.
type Dataset struct {
	cols  []Column
	index map[string]int // column name → position in cols

	// Exactly one of nums[i] / labels[i] is non-nil per column i,
	// depending on cols[i].Kind.
	nums   [][]float64
	labels [][]string

	rows int
}

// New constructs an empty dataset over the given schema.
//
// Errors:
//   - ErrNoColumns        — empty schema.
//   - ErrEmptyHeader      — a column name is "".
//   - ErrDuplicateColumn  — two columns share a name.
func New(cols ...Column) (*Dataset, error) {
	if len(cols) == 0 {
		return nil, ErrNoColumns
	}
	d := &Dataset{
		cols:   make([]Column, len(cols)),
		index:  make(map[string]int, len(cols)),
		nums:   make([][]float64, len(cols)),
		labels: make([][]string, len(cols)),
	}
	copy(d.cols, cols)
	for i, c := range d.cols {
		if c.Name == "" {
			return nil, ErrEmptyHeader
		}
		if _, dup := d.index[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		d.index[c.Name] = i
	}
	return d, nil
}

// Append adds one row. Values must match the schema positionally:
// float64 for numeric columns, string for categorical columns.
// Integers are accepted for numeric columns as a convenience.
//
// Errors:
//   - ErrRaggedRow    — len(values) != NumCols().
//   - ErrTypeMismatch — a value's Go type does not match its column kind.
func (d *Dataset) Append(values ...any) error {
	if len(values) != len(d.cols) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, len(values), len(d.cols))
	}
	// Validate the whole row before touching storage so a failed append
	// never leaves a partially written row behind.
	for i, v := range values {
		switch d.cols[i].Kind {
		case Numeric:
			switch v.(type) {
			case float64, int:
			default:
				return fmt.Errorf("%w: column %q wants float64, got %T", ErrTypeMismatch, d.cols[i].Name, v)
			}
		case Categorical:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("%w: column %q wants string, got %T", ErrTypeMismatch, d.cols[i].Name, v)
			}
		}
	}
	for i, v := range values {
		if d.cols[i].Kind == Numeric {
			switch x := v.(type) {
			case float64:
				d.nums[i] = append(d.nums[i], x)
			case int:
				d.nums[i] = append(d.nums[i], float64(x))
			}
		} else {
			d.labels[i] = append(d.labels[i], v.(string))
		}
	}
	d.rows++
	return nil
}

// NumRows reports the number of observations.
func (d *Dataset) NumRows() int { return d.rows }

// NumCols reports the number of columns in the schema.
func (d *Dataset) NumCols() int { return len(d.cols) }

// Columns returns a copy of the schema in declaration order.
func (d *Dataset) Columns() []Column {
	cp := make([]Column, len(d.cols))
	copy(cp, d.cols)
	return cp
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, false
	}
	return d.cols[i], true
}

// Float returns the numeric value at (row, col).
//
// Errors:
//   - ErrUnknownColumn   — no such column.
//   - ErrTypeMismatch    — the column is categorical.
//   - ErrIndexOutOfRange — row outside [0, NumRows).
func (d *Dataset) Float(row int, col string) (float64, error) {
	i, ok := d.index[col]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if d.cols[i].Kind != Numeric {
		return 0, fmt.Errorf("%w: column %q is categorical", ErrTypeMismatch, col)
	}
	if row < 0 || row >= d.rows {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, row)
	}
	return d.nums[i][row], nil
}

// Label returns the categorical label at (row, col).
//
// Errors mirror Float, with ErrTypeMismatch when the column is numeric.
func (d *Dataset) Label(row int, col string) (string, error) {
	i, ok := d.index[col]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if d.cols[i].Kind != Categorical {
		return "", fmt.Errorf("%w: column %q is numeric", ErrTypeMismatch, col)
	}
	if row < 0 || row >= d.rows {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, row)
	}
	return d.labels[i][row], nil
}

// Floats returns a copy of a numeric column's values in row order.
func (d *Dataset) Floats(col string) ([]float64, error) {
	i, ok := d.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if d.cols[i].Kind != Numeric {
		return nil, fmt.Errorf("%w: column %q is categorical", ErrTypeMismatch, col)
	}
	cp := make([]float64, d.rows)
	copy(cp, d.nums[i])
	return cp, nil
}

// Labels returns a copy of a categorical column's labels in row order.
func (d *Dataset) Labels(col string) ([]string, error) {
	i, ok := d.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if d.cols[i].Kind != Categorical {
		return nil, fmt.Errorf("%w: column %q is numeric", ErrTypeMismatch, col)
	}
	cp := make([]string, d.rows)
	copy(cp, d.labels[i])
	return cp, nil
}

// Levels returns the distinct labels of a categorical column in sorted
// (lexicographic) order. The sorted order is what makes downstream dummy
// expansion deterministic: the first level is always the reference level.
func (d *Dataset) Levels(col string) ([]string, error) {
	i, ok := d.index[col]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
	}
	if d.cols[i].Kind != Categorical {
		return nil, fmt.Errorf("%w: column %q is numeric", ErrTypeMismatch, col)
	}
	seen := make(map[string]struct{}, 8)
	levels := make([]string, 0, 8)
	for _, lab := range d.labels[i] {
		if _, ok = seen[lab]; !ok {
			seen[lab] = struct{}{}
			levels = append(levels, lab)
		}
	}
	sort.Strings(levels)
	return levels, nil
}

// Select builds a new dataset whose rows are the source rows at the given
// indices, in the order given. Indices may repeat and may omit source rows;
// this is the primitive a with-replacement resampler draws through.
// The source dataset is never modified.
//
// Errors:
//   - ErrIndexOutOfRange — any index outside [0, NumRows).
func (d *Dataset) Select(indices []int) (*Dataset, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= d.rows {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
		}
	}
	out := &Dataset{
		cols:   make([]Column, len(d.cols)),
		index:  make(map[string]int, len(d.cols)),
		nums:   make([][]float64, len(d.cols)),
		labels: make([][]string, len(d.cols)),
		rows:   len(indices),
	}
	copy(out.cols, d.cols)
	for name, i := range d.index {
		out.index[name] = i
	}
	for i, c := range d.cols {
		if c.Kind == Numeric {
			col := make([]float64, len(indices))
			for j, idx := range indices {
				col[j] = d.nums[i][idx]
			}
			out.nums[i] = col
		} else {
			col := make([]string, len(indices))
			for j, idx := range indices {
				col[j] = d.labels[i][idx]
			}
			out.labels[i] = col
		}
	}
	return out, nil
}
