package bootstrap

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/formula"
	"github.com/katalvlaran/bootstat/ols"
)

// Estimator runs resample-and-refit trials and summarizes the resulting
// coefficient distributions. Construct with New; an Estimator is immutable
// and safe for concurrent Run calls.
type Estimator struct {
	fitter ols.Fitter
	opts   Options
}

// New validates opts and builds an Estimator around the given fitter.
//
// Errors:
//   - ErrNilFitter and the Options sentinel set (ErrBadTrials,
//     ErrBadConfidence, ErrBadThreshold, ErrBadWorkers, ErrBadInterval).
func New(fitter ols.Fitter, opts Options) (*Estimator, error) {
	if fitter == nil {
		return nil, ErrNilFitter
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Estimator{fitter: fitter, opts: opts}, nil
}

// Options returns the estimator's configuration.
func (e *Estimator) Options() Options { return e.opts }

// trialOutcome is one trial's contribution, written by exactly one worker
// into its own slot of the outcomes slice (no locking needed).
type trialOutcome struct {
	ran    bool
	failed bool
	coefs  map[string]float64
}

// Run executes the bootstrap:
//
//  1. Fit the full dataset. Failure here is fatal (ErrBaselineFit) — there
//     is no point estimate to bootstrap around.
//  2. Derive one sub-seed per trial from the master seed, so every trial
//     owns an independent generator and the result does not depend on how
//     trials land on workers.
//  3. Fan trials out over the worker pool: resample → refit → record the
//     coefficient values, or mark the trial failed if the refit errored
//     (a rank-deficient resample is data, not a crash).
//  4. Reduce by coefficient name: contributing-trial count, bootstrap
//     standard error, and the configured confidence interval.
//
// Cancelling ctx stops dispatching further trials; whatever completed
// still summarizes. ErrCancelled is returned only when zero trials
// completed before cancellation.
func (e *Estimator) Run(ctx context.Context, ds *dataset.Dataset, spec formula.Spec) (*Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ds == nil {
		return nil, ErrNilDataset
	}
	if ds.NumRows() == 0 {
		return nil, ErrNoRows
	}

	baseline, err := e.fitter.Fit(ds, spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBaselineFit, err)
	}

	seed := e.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	master := rand.New(rand.NewSource(seed))
	trials := e.opts.Trials
	seeds := make([]int64, trials)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	workers := e.opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > trials {
		workers = trials
	}

	outcomes := make([]trialOutcome, trials)
	jobs := make(chan int)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				outcomes[i] = e.trial(ds, spec, seeds[i])
			}
			return nil
		})
	}

feed:
	for i := 0; i < trials; i++ {
		// Checked before the select so an already-cancelled context
		// dispatches nothing at all.
		if gctx.Err() != nil {
			break
		}
		select {
		case jobs <- i:
		case <-gctx.Done():
			break feed
		}
	}
	close(jobs)
	_ = g.Wait() // workers only ever return nil; Wait is the join barrier

	completed, failed := 0, 0
	for i := range outcomes {
		if outcomes[i].ran {
			completed++
			if outcomes[i].failed {
				failed++
			}
		}
	}
	if completed == 0 && ctx.Err() != nil {
		return nil, fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
	}

	return e.reduce(baseline, outcomes, seed, completed, failed), nil
}

// trial runs one resample-and-refit with its own generator.
func (e *Estimator) trial(ds *dataset.Dataset, spec formula.Spec, seed int64) trialOutcome {
	rng := rand.New(rand.NewSource(seed))
	sub, err := Resample(ds, rng)
	if err != nil {
		return trialOutcome{ran: true, failed: true}
	}
	fit, err := e.fitter.Fit(sub, spec)
	if err != nil {
		return trialOutcome{ran: true, failed: true}
	}
	coefs := make(map[string]float64, fit.Len())
	for _, name := range fit.Names() {
		v, _ := fit.Coefficient(name)
		coefs[name] = v
	}
	return trialOutcome{ran: true, coefs: coefs}
}

// reduce folds the ordered trial outcomes into the per-coefficient summary.
// Iteration is over the baseline's sorted names, and outcomes are scanned
// in trial order, so the reduction is deterministic for a fixed seed.
func (e *Estimator) reduce(baseline *ols.FitResult, outcomes []trialOutcome, seed int64, completed, failed int) *Summary {
	successes := completed - failed
	sum := &Summary{
		Baseline:        baseline,
		Coefficients:    make(map[string]CoefficientSummary, baseline.Len()),
		RequestedTrials: e.opts.Trials,
		CompletedTrials: completed,
		FailedTrials:    failed,
		Confidence:      e.opts.Confidence,
		Interval:        e.opts.Interval,
		Seed:            seed,
	}

	if completed > 0 {
		rate := float64(failed) / float64(completed)
		if rate > e.opts.FailureThreshold {
			sum.Warnings = append(sum.Warnings, Warning{
				Kind: ExcessiveFailureRate,
				Message: fmt.Sprintf("%d of %d trials failed (%.1f%%, threshold %.1f%%)",
					failed, completed, 100*rate, 100*e.opts.FailureThreshold),
			})
		}
	}

	// Standard-normal quantile for the normal-approximation interval.
	z := distuv.UnitNormal.Quantile(1 - (1-e.opts.Confidence)/2)
	loQ := (1 - e.opts.Confidence) / 2
	hiQ := 1 - loQ

	for _, name := range baseline.Names() {
		estimate, _ := baseline.Coefficient(name)

		var draws []float64
		for i := range outcomes {
			o := &outcomes[i]
			if !o.ran || o.failed {
				continue
			}
			if v, ok := o.coefs[name]; ok {
				draws = append(draws, v)
			}
		}
		count := len(draws)

		se := math.NaN()
		if count >= 2 {
			se = stat.StdDev(draws, nil)
		}

		lower, upper := math.NaN(), math.NaN()
		switch e.opts.Interval {
		case NormalApprox:
			// Interval is anchored on the baseline estimate, not the
			// bootstrap mean.
			if count >= 2 {
				lower = estimate - z*se
				upper = estimate + z*se
			}
		case Percentile:
			if count >= 1 {
				sorted := make([]float64, count)
				copy(sorted, draws)
				sort.Float64s(sorted)
				lower = stat.Quantile(loQ, stat.LinInterp, sorted, nil)
				upper = stat.Quantile(hiQ, stat.LinInterp, sorted, nil)
			}
		}

		cs := CoefficientSummary{
			Name:     name,
			Estimate: estimate,
			StdErr:   se,
			Lower:    lower,
			Upper:    upper,
			Trials:   count,
		}
		if e.opts.KeepDraws {
			cs.Draws = draws
		}
		sum.Coefficients[name] = cs

		if count < successes {
			sum.Warnings = append(sum.Warnings, Warning{
				Kind:        InsufficientCoverage,
				Coefficient: name,
				Message: fmt.Sprintf("coefficient %q present in only %d of %d successful trials",
					name, count, successes),
			})
		}
	}
	return sum
}
