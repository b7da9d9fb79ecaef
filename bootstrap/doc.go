// Package bootstrap estimates sampling distributions of model coefficients
// by resampling rows with replacement and refitting.
//
// 🚀 What is the bootstrap?
//
//	Given a dataset of N rows, a model spec, and a trial count B:
//	draw N rows with replacement, refit the model, record the coefficients;
//	repeat B times. The spread of each coefficient across the B refits is
//	an empirical estimate of its sampling variability — the bootstrap
//	standard error — and its empirical quantiles give confidence bands
//	without any distributional assumption.
//
// ✨ Key features:
//   - trials fan out over a worker pool; every trial owns an independent
//     PRNG seeded from one master seed, so results are identical for any
//     worker count and fully reproducible under a fixed seed
//   - per-trial fit failures (a resample that went rank-deficient) are
//     recorded and excluded, never fatal; only a failing baseline fit
//     aborts the run
//   - ragged coefficient sets are expected: coefficients are aggregated
//     strictly by name, and every summary row reports how many trials
//     actually contributed to it
//   - both normal-approximation and percentile confidence intervals
//   - warnings (excessive failure rate, partial coefficient coverage) are
//     attached to the Summary, never swallowed
//
// ⚙️ Usage:
//
//	est, err := bootstrap.New(ols.OLS{}, bootstrap.DefaultOptions())
//	sum, err := est.Run(ctx, ds, spec)
//	for _, c := range sum.Sorted() {
//	  fmt.Println(c.Name, c.StdErr, c.Lower, c.Upper, c.Trials)
//	}
//
// Cancelling ctx abandons undispatched trials; trials already finished
// still summarize (a degraded B, reported honestly via CompletedTrials).
package bootstrap
