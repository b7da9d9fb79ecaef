// Package ols: sentinel error set. Match with errors.Is.

package ols

import "errors"

var (
	// ErrSingular indicates the design matrix is rank deficient, so the
	// normal equations have no unique solution. Typical causes: a resample
	// dropped a categorical level, or two predictors are collinear.
	ErrSingular = errors.New("ols: singular design matrix")

	// ErrInsufficientRows indicates there are not enough observations to
	// leave positive residual degrees of freedom (need rows > columns).
	ErrInsufficientRows = errors.New("ols: not enough rows for design")
)
