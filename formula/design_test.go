package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/formula"
)

// designDataset builds 4 rows with one numeric and one 3-level categorical
// predictor.
func designDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		dataset.Column{Name: "y", Kind: dataset.Numeric},
		dataset.Column{Name: "x", Kind: dataset.Numeric},
		dataset.Column{Name: "g", Kind: dataset.Categorical},
	)
	require.NoError(t, err)
	require.NoError(t, ds.Append(1.0, 10.0, "a"))
	require.NoError(t, ds.Append(2.0, 20.0, "b"))
	require.NoError(t, ds.Append(3.0, 30.0, "c"))
	require.NoError(t, ds.Append(4.0, 40.0, "b"))
	return ds
}

// TestDesign_NumericAndCategorical verifies intercept, raw numeric column,
// and dummy expansion against the sorted reference level.
func TestDesign_NumericAndCategorical(t *testing.T) {
	ds := designDataset(t)
	spec, err := formula.Parse("y ~ x + g")
	require.NoError(t, err)

	X, names, y, err := spec.Design(ds)
	require.NoError(t, err)

	assert.Equal(t, []string{"(Intercept)", "x", "g[b]", "g[c]"}, names,
		"reference level 'a' is dropped; sorted order fixes the rest")
	assert.Equal(t, []float64{1, 2, 3, 4}, y)

	r, c := X.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)

	// Row 1 is (1, 20, g=b): intercept 1, x 20, g[b] 1, g[c] 0.
	assert.Equal(t, 1.0, X.At(1, 0))
	assert.Equal(t, 20.0, X.At(1, 1))
	assert.Equal(t, 1.0, X.At(1, 2))
	assert.Equal(t, 0.0, X.At(1, 3))

	// Row 0 is the reference level: both indicators zero.
	assert.Equal(t, 0.0, X.At(0, 2))
	assert.Equal(t, 0.0, X.At(0, 3))
}

// TestDesign_Interaction verifies numeric×categorical interaction columns.
func TestDesign_Interaction(t *testing.T) {
	ds := designDataset(t)
	spec, err := formula.Parse("y ~ x:g")
	require.NoError(t, err)

	X, names, _, err := spec.Design(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"(Intercept)", "x:g[b]", "x:g[c]"}, names)

	// Row 1 (x=20, g=b): x:g[b] = 20, x:g[c] = 0.
	assert.Equal(t, 20.0, X.At(1, 1))
	assert.Equal(t, 0.0, X.At(1, 2))
	// Row 2 (x=30, g=c): x:g[b] = 0, x:g[c] = 30.
	assert.Equal(t, 0.0, X.At(2, 1))
	assert.Equal(t, 30.0, X.At(2, 2))
}

// TestDesign_SingleLevelCategorical verifies that a categorical factor with
// one observed level contributes no columns — the resample-lost-a-level
// shape the bootstrap estimator must tolerate.
func TestDesign_SingleLevelCategorical(t *testing.T) {
	ds, err := dataset.New(
		dataset.Column{Name: "y", Kind: dataset.Numeric},
		dataset.Column{Name: "g", Kind: dataset.Categorical},
	)
	require.NoError(t, err)
	require.NoError(t, ds.Append(1.0, "only"))
	require.NoError(t, ds.Append(2.0, "only"))

	spec, err := formula.Parse("y ~ g")
	require.NoError(t, err)

	_, names, _, err := spec.Design(ds)
	require.NoError(t, err)
	assert.Equal(t, []string{"(Intercept)"}, names,
		"single-level categorical expands to zero columns")
}

// TestDesign_Errors covers the sentinel error paths.
func TestDesign_Errors(t *testing.T) {
	ds := designDataset(t)

	spec, err := formula.Parse("y ~ nope")
	require.NoError(t, err)
	_, _, _, err = spec.Design(ds)
	assert.ErrorIs(t, err, formula.ErrUnknownColumn)

	spec, err = formula.Parse("nope ~ x")
	require.NoError(t, err)
	_, _, _, err = spec.Design(ds)
	assert.ErrorIs(t, err, formula.ErrUnknownColumn)

	spec, err = formula.Parse("g ~ x")
	require.NoError(t, err)
	_, _, _, err = spec.Design(ds)
	assert.ErrorIs(t, err, formula.ErrResponseNotNumeric)

	empty, err := dataset.New(
		dataset.Column{Name: "y", Kind: dataset.Numeric},
		dataset.Column{Name: "x", Kind: dataset.Numeric},
	)
	require.NoError(t, err)
	spec, err = formula.Parse("y ~ x")
	require.NoError(t, err)
	_, _, _, err = spec.Design(empty)
	assert.ErrorIs(t, err, formula.ErrNoRows)
}

// TestCoefficientNames verifies the names-only helper agrees with Design.
func TestCoefficientNames(t *testing.T) {
	ds := designDataset(t)
	spec, err := formula.Parse("y ~ x + g + x:g")
	require.NoError(t, err)

	names, err := spec.CoefficientNames(ds)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"(Intercept)", "x", "g[b]", "g[c]", "x:g[b]", "x:g[c]"},
		names)
}
