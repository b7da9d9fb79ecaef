package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootstat/dataset"
)

// TestReadCSV_Inference verifies numeric inference and that a column with a
// single non-numeric cell falls back to categorical.
func TestReadCSV_Inference(t *testing.T) {
	in := "y,x,g\n1.5,2,a\n2.5,3,b\n3.5,oops,a\n"
	ds, err := dataset.ReadCSV(strings.NewReader(in), dataset.DefaultCSVOptions())
	require.NoError(t, err)

	require.Equal(t, 3, ds.NumRows())
	y, ok := ds.Column("y")
	require.True(t, ok)
	assert.Equal(t, dataset.Numeric, y.Kind, "all-numeric column must infer Numeric")

	x, ok := ds.Column("x")
	require.True(t, ok)
	assert.Equal(t, dataset.Categorical, x.Kind, "one bad cell must force Categorical")

	g, ok := ds.Column("g")
	require.True(t, ok)
	assert.Equal(t, dataset.Categorical, g.Kind)
}

// TestReadCSV_DeclaredCategorical verifies that declared categorical columns
// keep numeric-looking labels verbatim — a subject ID is not a magnitude.
func TestReadCSV_DeclaredCategorical(t *testing.T) {
	in := "y,subject\n1.5,007\n2.5,010\n"
	opts := dataset.DefaultCSVOptions()
	opts.Categorical = []string{"subject"}

	ds, err := dataset.ReadCSV(strings.NewReader(in), opts)
	require.NoError(t, err)

	c, ok := ds.Column("subject")
	require.True(t, ok)
	assert.Equal(t, dataset.Categorical, c.Kind)

	lab, err := ds.Label(0, "subject")
	require.NoError(t, err)
	assert.Equal(t, "007", lab, "leading zeros preserved verbatim")
}

// TestReadCSV_Delimiter verifies a non-default delimiter.
func TestReadCSV_Delimiter(t *testing.T) {
	in := "y;x\n1.0;2.0\n"
	opts := dataset.DefaultCSVOptions()
	opts.Comma = ';'

	ds, err := dataset.ReadCSV(strings.NewReader(in), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, ds.NumRows())
	assert.Equal(t, 2, ds.NumCols())
}

// TestReadCSV_Errors covers malformed headers, ragged records, and bad
// categorical declarations.
func TestReadCSV_Errors(t *testing.T) {
	opts := dataset.DefaultCSVOptions()

	_, err := dataset.ReadCSV(strings.NewReader(""), opts)
	assert.ErrorIs(t, err, dataset.ErrEmptyHeader, "empty input must error")

	_, err = dataset.ReadCSV(strings.NewReader("a,,c\n1,2,3\n"), opts)
	assert.ErrorIs(t, err, dataset.ErrEmptyHeader, "empty header cell must error")

	_, err = dataset.ReadCSV(strings.NewReader("a,a\n1,2\n"), opts)
	assert.ErrorIs(t, err, dataset.ErrDuplicateColumn)

	_, err = dataset.ReadCSV(strings.NewReader("a,b\n1\n"), opts)
	assert.ErrorIs(t, err, dataset.ErrRaggedRow)

	bad := dataset.DefaultCSVOptions()
	bad.Categorical = []string{"missing"}
	_, err = dataset.ReadCSV(strings.NewReader("a,b\n1,2\n"), bad)
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn, "declared categorical must exist in header")
}

// TestReadCSV_HeaderOnly verifies a header without records yields an empty,
// well-formed dataset.
func TestReadCSV_HeaderOnly(t *testing.T) {
	ds, err := dataset.ReadCSV(strings.NewReader("a,b\n"), dataset.DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, ds.NumRows())
	assert.Equal(t, 2, ds.NumCols())
}
