package formula

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bootstat/dataset"
)

// InterceptName is the coefficient name of the implicit intercept column.
const InterceptName = "(Intercept)"

// expanded is one design column produced by factor expansion:
// a coefficient name plus its values in row order.
type expanded struct {
	name string
	vals []float64
}

// Design expands the spec over ds into a dense design matrix.
//
// Returns the n×p design matrix (intercept first), the p coefficient
// names in column order, and the response vector of length n.
//
// Expansion rules:
//   - numeric factor      → one column of raw values, named after the column.
//   - categorical factor  → one indicator column per non-reference level,
//     named "col[level]". The reference level is the first of the sorted
//     level set of the dataset passed in.
//   - interaction         → cartesian cross of its factors' expansions,
//     names joined with ':', values multiplied elementwise.
//
// A categorical factor with a single observed level expands to zero columns,
// so the term silently contributes nothing — this is exactly what happens to
// a resample that lost a level, and callers must therefore match
// coefficients by name rather than by position or count.
//
// Errors:
//   - ErrNoRows             — ds has no observations.
//   - ErrUnknownColumn      — response or a factor is not in the schema.
//   - ErrResponseNotNumeric — response column is categorical.
func (s Spec) Design(ds *dataset.Dataset) (*mat.Dense, []string, []float64, error) {
	if ds == nil || ds.NumRows() == 0 {
		return nil, nil, nil, ErrNoRows
	}

	rc, ok := ds.Column(s.Response)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: response %q", ErrUnknownColumn, s.Response)
	}
	if rc.Kind != dataset.Numeric {
		return nil, nil, nil, fmt.Errorf("%w: %q", ErrResponseNotNumeric, s.Response)
	}
	y, err := ds.Floats(s.Response)
	if err != nil {
		return nil, nil, nil, err
	}

	n := ds.NumRows()
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	cols := []expanded{{name: InterceptName, vals: ones}}

	for _, term := range s.Terms {
		termCols, terr := expandFactors(ds, term)
		if terr != nil {
			return nil, nil, nil, terr
		}
		cols = append(cols, termCols...)
	}

	p := len(cols)
	X := mat.NewDense(n, p, nil)
	names := make([]string, p)
	for j, c := range cols {
		names[j] = c.name
		X.SetCol(j, c.vals)
	}
	return X, names, y, nil
}

// CoefficientNames reports the coefficient names Design produces for ds.
func (s Spec) CoefficientNames(ds *dataset.Dataset) ([]string, error) {
	_, names, _, err := s.Design(ds)
	if err != nil {
		return nil, err
	}
	return names, nil
}

// expandFactors expands one term into design columns: per-factor expansion
// followed by a deterministic cartesian cross.
func expandFactors(ds *dataset.Dataset, term Term) ([]expanded, error) {
	if len(term.Factors) == 0 {
		return nil, fmt.Errorf("%w: term with no factors", ErrBadSyntax)
	}
	n := ds.NumRows()

	// Per-factor expansions, in factor order.
	groups := make([][]expanded, len(term.Factors))
	for fi, factor := range term.Factors {
		col, ok := ds.Column(factor)
		if !ok {
			return nil, fmt.Errorf("%w: %q in term %s", ErrUnknownColumn, factor, term)
		}
		if col.Kind == dataset.Numeric {
			vals, err := ds.Floats(factor)
			if err != nil {
				return nil, err
			}
			groups[fi] = []expanded{{name: factor, vals: vals}}
			continue
		}

		levels, err := ds.Levels(factor)
		if err != nil {
			return nil, err
		}
		labs, err := ds.Labels(factor)
		if err != nil {
			return nil, err
		}
		// levels[0] is the reference; indicators for the rest.
		var exp []expanded
		for _, lvl := range levels[1:] {
			ind := make([]float64, n)
			for i, lab := range labs {
				if lab == lvl {
					ind[i] = 1
				}
			}
			exp = append(exp, expanded{name: fmt.Sprintf("%s[%s]", factor, lvl), vals: ind})
		}
		groups[fi] = exp
	}

	// Cross the groups. Any empty group (single-level categorical) empties
	// the whole term.
	out := groups[0]
	for _, g := range groups[1:] {
		var crossed []expanded
		for _, a := range out {
			for _, b := range g {
				vals := make([]float64, n)
				for i := range vals {
					vals[i] = a.vals[i] * b.vals[i]
				}
				crossed = append(crossed, expanded{name: a.name + ":" + b.name, vals: vals})
			}
		}
		out = crossed
	}
	return out, nil
}
