package bootstrap

import (
	"sort"

	"github.com/katalvlaran/bootstat/ols"
)

// WarningKind classifies the cautions a run can attach to its Summary.
type WarningKind int

const (
	// ExcessiveFailureRate flags a run whose per-trial failure fraction
	// exceeded Options.FailureThreshold. The Summary is still returned —
	// treat its spreads with suspicion.
	ExcessiveFailureRate WarningKind = iota

	// InsufficientCoverage flags a coefficient that was absent from some
	// successful trials (typically a categorical level thin enough to
	// vanish from resamples). Its statistics are computed from the trials
	// that did contribute, never fabricated.
	InsufficientCoverage
)

// String returns a human-readable kind name.
func (k WarningKind) String() string {
	if k == InsufficientCoverage {
		return "insufficient coverage"
	}
	return "excessive failure rate"
}

// Warning is one caution attached to a Summary.
type Warning struct {
	// Kind classifies the warning.
	Kind WarningKind

	// Coefficient names the affected coefficient for per-coefficient
	// warnings; empty for run-level warnings.
	Coefficient string

	// Message is a preformatted human-readable description.
	Message string
}

// CoefficientSummary is the empirical distribution summary of one
// coefficient across the successful bootstrap trials.
type CoefficientSummary struct {
	// Name is the coefficient name (the only identity; never positional).
	Name string

	// Estimate is the baseline (full-data) point estimate.
	Estimate float64

	// StdErr is the bootstrap standard error: the sample standard
	// deviation of the draws. NaN when fewer than two trials contributed.
	StdErr float64

	// Lower and Upper bound the confidence interval at the configured
	// level, by the configured method. NaN when too few trials
	// contributed to compute them.
	Lower, Upper float64

	// Trials counts how many successful trials contributed a value for
	// this coefficient.
	Trials int

	// Draws holds the raw bootstrap draws when Options.KeepDraws is set;
	// nil otherwise.
	Draws []float64
}

// Summary is the result of one bootstrap run.
type Summary struct {
	// Baseline is the full-data fit the run bootstrapped around.
	Baseline *ols.FitResult

	// Coefficients maps coefficient name to its distribution summary.
	Coefficients map[string]CoefficientSummary

	// RequestedTrials is Options.Trials; CompletedTrials counts trials
	// that actually ran (cancellation can leave it short); FailedTrials
	// counts completed trials whose refit failed.
	RequestedTrials int
	CompletedTrials int
	FailedTrials    int

	// Confidence and Interval record the settings the intervals were
	// computed under.
	Confidence float64
	Interval   IntervalMethod

	// Seed is the master seed actually used; rerunning with this seed
	// reproduces the summary exactly.
	Seed int64

	// Warnings carries every caution raised by the run, in deterministic
	// order: run-level first, then per-coefficient by name.
	Warnings []Warning
}

// Coefficient looks up one coefficient's summary by name.
func (s *Summary) Coefficient(name string) (CoefficientSummary, bool) {
	c, ok := s.Coefficients[name]
	return c, ok
}

// Sorted returns the coefficient summaries ordered by name. The order is a
// presentation convenience; identity remains the name.
func (s *Summary) Sorted() []CoefficientSummary {
	out := make([]CoefficientSummary, 0, len(s.Coefficients))
	for _, c := range s.Coefficients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HasWarning reports whether any warning of the given kind was raised.
func (s *Summary) HasWarning(kind WarningKind) bool {
	for _, w := range s.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
