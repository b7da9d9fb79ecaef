package ols

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/bootstat/dataset"
	"github.com/katalvlaran/bootstat/formula"
)

// Fitter fits a model specification against a dataset.
//
// Implementations must be safe for concurrent use: the bootstrap estimator
// calls Fit from multiple workers on independent resampled datasets.
type Fitter interface {
	Fit(ds *dataset.Dataset, spec formula.Spec) (*FitResult, error)
}

// FitResult holds one fit's estimates, keyed by coefficient name.
//
// Treat a FitResult as read-only once returned. There is deliberately no
// positional access: the set and order of design columns depend on the
// levels observed in the fitted dataset, so consumers must index purely
// by coefficient name. Fields are exported so alternative Fitter
// implementations (mixed-effects, robust regression) can build results.
type FitResult struct {
	// Coef maps coefficient name to its point estimate.
	Coef map[string]float64
	// StdErrs maps coefficient name to its analytic standard error.
	StdErrs map[string]float64

	// Sigma2 is the residual variance RSS/(n-p).
	Sigma2 float64
	// DF is the residual degrees of freedom n-p.
	DF int
	// R2 is the coefficient of determination; NaN when the response is
	// constant.
	R2 float64
	// N is the number of observations fitted.
	N int
}

// Coefficient returns the estimate for name, with ok=false when the fit
// produced no such coefficient.
func (r *FitResult) Coefficient(name string) (float64, bool) {
	v, ok := r.Coef[name]
	return v, ok
}

// StdErr returns the analytic standard error for name.
func (r *FitResult) StdErr(name string) (float64, bool) {
	v, ok := r.StdErrs[name]
	return v, ok
}

// Names returns the coefficient names in sorted order. The sort is a
// presentation convenience only and carries no positional meaning.
func (r *FitResult) Names() []string {
	names := make([]string, 0, len(r.Coef))
	for name := range r.Coef {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of estimated coefficients.
func (r *FitResult) Len() int { return len(r.Coef) }

// OLS is the reference Fitter: ordinary least squares via the normal
// equations, XᵀX β = Xᵀy, solved with a Cholesky factorization.
//
// OLS is stateless and safe for concurrent use.
type OLS struct{}

// Fit estimates the spec against ds.
//
// Errors:
//   - formula design errors pass through wrapped (unknown column, no rows,
//     categorical response).
//   - ErrInsufficientRows — rows ≤ columns, residual df would be ≤ 0.
//   - ErrSingular         — XᵀX is not positive definite (rank-deficient
//     design).
func (OLS) Fit(ds *dataset.Dataset, spec formula.Spec) (*FitResult, error) {
	X, names, y, err := spec.Design(ds)
	if err != nil {
		return nil, fmt.Errorf("ols: design: %w", err)
	}
	n, p := X.Dims()
	if n <= p {
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrInsufficientRows, n, p)
	}

	// Normal equations. XᵀX is symmetric positive definite exactly when X
	// has full column rank; Cholesky failure is the singularity signal.
	xtx := mat.NewSymDense(p, nil)
	xtx.SymOuterK(1, X.T())

	var chol mat.Cholesky
	if !chol.Factorize(xtx) {
		return nil, ErrSingular
	}

	yv := mat.NewVecDense(n, y)
	var xty mat.VecDense
	xty.MulVec(X.T(), yv)

	var beta mat.VecDense
	if err = chol.SolveVecTo(&beta, &xty); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	// Residual variance and R².
	var fitted mat.VecDense
	fitted.MulVec(X, &beta)
	rss, tss := 0.0, 0.0
	mean := 0.0
	for _, v := range y {
		mean += v
	}
	mean /= float64(n)
	for i := 0; i < n; i++ {
		r := y[i] - fitted.AtVec(i)
		rss += r * r
		d := y[i] - mean
		tss += d * d
	}
	df := n - p
	sigma2 := rss / float64(df)
	r2 := math.NaN()
	if tss > 0 {
		r2 = 1 - rss/tss
	}

	// Standard errors from the diagonal of σ²·(XᵀX)⁻¹.
	var cov mat.SymDense
	if err = chol.InverseTo(&cov); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}

	res := &FitResult{
		Coef:    make(map[string]float64, p),
		StdErrs: make(map[string]float64, p),
		Sigma2:  sigma2,
		DF:      df,
		R2:      r2,
		N:       n,
	}
	for j, name := range names {
		res.Coef[name] = beta.AtVec(j)
		res.StdErrs[name] = math.Sqrt(sigma2 * cov.At(j, j))
	}
	return res, nil
}
