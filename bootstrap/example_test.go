package bootstrap_test

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bootstat/bootstrap"
	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/formula"
	"github.com/katalvlaran/bootstat/ols"
)

// ExampleEstimator_Run bootstraps a small two-predictor model with a fixed
// seed. The printed trial counts are exact: the seed pins every resample,
// and both predictors are common enough to appear in every one of them.
func ExampleEstimator_Run() {
	ds, err := dataset.New(
		dataset.Column{Name: "y", Kind: dataset.Numeric},
		dataset.Column{Name: "x", Kind: dataset.Numeric},
		dataset.Column{Name: "group", Kind: dataset.Categorical},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		x := float64(i) / 50
		group := "ctl"
		if i%2 == 0 {
			group = "trt"
		}
		y := 0.5 + 3*x + rng.NormFloat64()
		if group == "trt" {
			y += 1.5
		}
		if err = ds.Append(y, x, group); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	spec, err := formula.Parse("y ~ x + group")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := bootstrap.DefaultOptions()
	opts.Trials = 200
	opts.Seed = 7

	est, err := bootstrap.New(ols.OLS{}, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sum, err := est.Run(context.Background(), ds, spec)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("completed %d of %d trials, %d failed\n",
		sum.CompletedTrials, sum.RequestedTrials, sum.FailedTrials)
	for _, c := range sum.Sorted() {
		fmt.Printf("%s: trials=%d\n", c.Name, c.Trials)
	}
	// Output:
	// completed 200 of 200 trials, 0 failed
	// (Intercept): trials=200
	// group[trt]: trials=200
	// x: trials=200
}
