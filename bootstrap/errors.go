// Package bootstrap: sentinel error set.
// Per-trial fit failures are NOT errors at this level — they are recorded
// in the Summary. Only input validation, a failing baseline fit, and a
// cancellation that completed zero trials surface as errors.

package bootstrap

import "errors"

var (
	// ErrNilDataset indicates a nil source dataset.
	ErrNilDataset = errors.New("bootstrap: nil dataset")

	// ErrNoRows indicates a source dataset without observations.
	ErrNoRows = errors.New("bootstrap: dataset has no rows")

	// ErrNilRand indicates a nil random generator passed to Resample.
	ErrNilRand = errors.New("bootstrap: nil random generator")

	// ErrNilFitter indicates an estimator constructed without a fitter.
	ErrNilFitter = errors.New("bootstrap: nil fitter")

	// ErrBadTrials indicates Options.Trials < 1.
	ErrBadTrials = errors.New("bootstrap: trials must be >= 1")

	// ErrBadConfidence indicates Options.Confidence outside (0, 1).
	ErrBadConfidence = errors.New("bootstrap: confidence must be in (0, 1)")

	// ErrBadThreshold indicates Options.FailureThreshold outside [0, 1].
	ErrBadThreshold = errors.New("bootstrap: failure threshold must be in [0, 1]")

	// ErrBadWorkers indicates Options.Workers < 0.
	ErrBadWorkers = errors.New("bootstrap: workers must be >= 0")

	// ErrBadInterval indicates an unknown IntervalMethod.
	ErrBadInterval = errors.New("bootstrap: unknown interval method")

	// ErrBaselineFit indicates the fit of the original, non-resampled
	// dataset failed. Without a baseline point estimate there is nothing
	// to bootstrap around, so the whole run fails fast. The fitter's own
	// error is wrapped and remains matchable via errors.Is.
	ErrBaselineFit = errors.New("bootstrap: baseline fit failed")

	// ErrCancelled indicates the context was cancelled before any trial
	// completed. When at least one trial completed, Run returns a partial
	// Summary and no error instead.
	ErrCancelled = errors.New("bootstrap: cancelled before any trial completed")
)
