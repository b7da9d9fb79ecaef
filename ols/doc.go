// Package ols fits ordinary least squares models and defines the Fitter
// seam the bootstrap estimator refits through.
//
// 🚀 What is the Fitter seam?
//
//	Fit(dataset, spec) → FitResult. The bootstrap estimator only ever
//	calls this one method, so any model family — mixed-effects, robust
//	regression, whatever — can be resampled by implementing Fitter.
//	This package ships the reference implementation: OLS via the normal
//	equations with a Cholesky factorization of XᵀX.
//
// ✨ Key features:
//   - coefficient access is by name only; FitResult deliberately exposes
//     no stable ordering, because design-matrix column order is an
//     implementation detail of the expansion
//   - analytic standard errors, residual variance, degrees of freedom
//     and R² alongside the point estimates
//   - rank deficiency (a dropped categorical level, collinear columns)
//     surfaces as ErrSingular rather than a garbage fit
//
// ⚙️ Usage:
//
//	res, err := ols.OLS{}.Fit(ds, spec)
//	if errors.Is(err, ols.ErrSingular) { ... }
//	b, ok := res.Coefficient("x")
package ols
