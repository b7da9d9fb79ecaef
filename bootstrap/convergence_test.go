package bootstrap_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootstat/bootstrap"
	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/ols"
)

// factorialDataset builds 960 rows over two balanced binary predictors
// (240 rows per cell) with y = 1 + 2·[g1=b] − 1.5·[g2=b] + N(0,1).
func factorialDataset(t *testing.T, seed int64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(
		dataset.Column{Name: "y", Kind: dataset.Numeric},
		dataset.Column{Name: "g1", Kind: dataset.Categorical},
		dataset.Column{Name: "g2", Kind: dataset.Categorical},
	)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(seed))
	labels := []string{"a", "b"}
	for i := 0; i < 960; i++ {
		g1 := labels[i%2]
		g2 := labels[(i/2)%2]
		y := 1.0 + rng.NormFloat64()
		if g1 == "b" {
			y += 2
		}
		if g2 == "b" {
			y -= 1.5
		}
		require.NoError(t, ds.Append(y, g1, g2))
	}
	return ds
}

// TestBootstrapSE_MatchesAnalyticSE is the end-to-end sanity bound: on a
// balanced two-factor main-effects design the bootstrap standard error of
// each main effect should land within ~20% of the analytic OLS standard
// error. Not an exact equality — a tolerance band over a seeded run.
func TestBootstrapSE_MatchesAnalyticSE(t *testing.T) {
	if testing.Short() {
		t.Skip("1000 refits of 960 rows, skipped in -short")
	}
	ds := factorialDataset(t, 101)
	spec := mustSpec(t, "y ~ g1 + g2")

	opts := bootstrap.DefaultOptions() // B = 1000
	opts.Seed = 102
	est, err := bootstrap.New(ols.OLS{}, opts)
	require.NoError(t, err)

	sum, err := est.Run(context.Background(), ds, spec)
	require.NoError(t, err)
	assert.Zero(t, sum.FailedTrials, "balanced 480/480 levels cannot vanish")

	for _, name := range []string{"g1[b]", "g2[b]"} {
		cs, ok := sum.Coefficient(name)
		require.True(t, ok)
		analytic, ok := sum.Baseline.StdErr(name)
		require.True(t, ok)

		rel := math.Abs(cs.StdErr-analytic) / analytic
		assert.Less(t, rel, 0.20,
			"%s: bootstrap SE %v vs analytic SE %v", name, cs.StdErr, analytic)
	}
}

// TestIntervalWidth_StabilizesWithTrials verifies the interval width is a
// converging estimate of spread, not a shrinking one: widths at B=5000 and
// B=10000 must agree within 5%.
func TestIntervalWidth_StabilizesWithTrials(t *testing.T) {
	if testing.Short() {
		t.Skip("15000 refits, skipped in -short")
	}
	ds := lineDataset(t, 80, 103)
	spec := mustSpec(t, "y ~ x")

	width := func(trials int, seed int64) float64 {
		opts := bootstrap.DefaultOptions()
		opts.Trials = trials
		opts.Seed = seed
		est, err := bootstrap.New(ols.OLS{}, opts)
		require.NoError(t, err)
		sum, err := est.Run(context.Background(), ds, spec)
		require.NoError(t, err)
		cs, ok := sum.Coefficient("x")
		require.True(t, ok)
		return cs.Upper - cs.Lower
	}

	w5k := width(5000, 104)
	w10k := width(10000, 105)
	require.Greater(t, w5k, 0.0)

	rel := math.Abs(w5k-w10k) / w10k
	assert.Less(t, rel, 0.05, "width must stabilize: B=5000 %v vs B=10000 %v", w5k, w10k)
}
