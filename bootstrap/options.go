package bootstrap

import "fmt"

// IntervalMethod selects how confidence intervals are computed.
//
//   - NormalApprox — estimate ± z·SE around the baseline point estimate,
//     where SE is the bootstrap standard error and z the standard-normal
//     quantile for the configured confidence. The default; matches the
//     usual reporting convention.
//   - Percentile   — the empirical [(1−c)/2, 1−(1−c)/2] quantiles of the
//     bootstrap draws themselves. No normality assumption; asymmetric
//     intervals come out asymmetric.
type IntervalMethod int

const (
	// NormalApprox builds estimate ± z·SE intervals (default).
	NormalApprox IntervalMethod = iota

	// Percentile builds intervals from empirical bootstrap quantiles.
	Percentile
)

// String returns a human-readable method name.
func (m IntervalMethod) String() string {
	if m == Percentile {
		return "percentile"
	}
	return "normal"
}

// Defaults (single source of truth).
const (
	// DefaultTrials is the conventional bootstrap replication count.
	DefaultTrials = 1000

	// DefaultConfidence is the conventional 95% level.
	DefaultConfidence = 0.95

	// DefaultFailureThreshold is the per-trial failure fraction above
	// which the Summary carries an ExcessiveFailureRate warning.
	DefaultFailureThreshold = 0.10
)

// Options configures an Estimator.
//
// Fields:
//   - Trials           — replication count B (≥ 1).
//   - Confidence       — interval level in (0, 1), e.g. 0.95.
//   - Interval         — NormalApprox or Percentile.
//   - Workers          — parallel trial workers; 0 means GOMAXPROCS.
//   - Seed             — master PRNG seed; 0 draws one from the clock.
//     The seed actually used is recorded in Summary.Seed either way.
//   - FailureThreshold — failed-trial fraction that triggers a warning.
//   - KeepDraws        — retain every coefficient's raw bootstrap draws
//     on the Summary (needed for histograms; off by default to keep
//     memory proportional to coefficients, not B×coefficients).
type Options struct {
	Trials           int
	Confidence       float64
	Interval         IntervalMethod
	Workers          int
	Seed             int64
	FailureThreshold float64
	KeepDraws        bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Trials:           DefaultTrials,
		Confidence:       DefaultConfidence,
		Interval:         NormalApprox,
		FailureThreshold: DefaultFailureThreshold,
	}
}

// validate enforces option invariants with sentinel errors.
func (o Options) validate() error {
	if o.Trials < 1 {
		return fmt.Errorf("%w: got %d", ErrBadTrials, o.Trials)
	}
	if o.Confidence <= 0 || o.Confidence >= 1 {
		return fmt.Errorf("%w: got %v", ErrBadConfidence, o.Confidence)
	}
	if o.FailureThreshold < 0 || o.FailureThreshold > 1 {
		return fmt.Errorf("%w: got %v", ErrBadThreshold, o.FailureThreshold)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: got %d", ErrBadWorkers, o.Workers)
	}
	if o.Interval != NormalApprox && o.Interval != Percentile {
		return fmt.Errorf("%w: %d", ErrBadInterval, int(o.Interval))
	}
	return nil
}
