// Package bootstat is your in-memory toolkit for bootstrap inference on
// linear models — from CSV ingestion to resampled refits, standard
// errors, confidence intervals and plots.
//
// 🚀 What is bootstat?
//
//	A small, composable library (plus CLI) that brings together:
//		• Dataset: column-major tables with numeric & categorical columns, CSV ingestion
//		• Formulas: R-style model notation — "y ~ x + g", interactions via ":" and "*"
//		• OLS: full-rank least squares with analytic standard errors (gonum)
//		• Bootstrap: resample-with-replacement, parallel refits, name-keyed aggregation
//		• Report: aligned console tables and PNG histograms of coefficient draws
//
// ✨ Why choose bootstat?
//
//   - Deterministic – one seed reproduces the whole run, at any worker count
//   - Honest about failure – degenerate refits are counted and reported, never hidden
//   - Name-keyed – coefficients aggregate by name, so ragged resamples stay correct
//   - Pluggable – any Fitter implementation can ride the same bootstrap loop
//
// Under the hood, everything is organized under five subpackages:
//
//	dataset/   — typed columns, row append & gather, CSV reader with type inference
//	formula/   — formula parsing and design-matrix construction
//	ols/       — the Fitter seam and the ordinary-least-squares implementation
//	bootstrap/ — the resampler and the parallel estimator
//	report/    — console tables and histogram PNGs
//
// Quick sketch of a run:
//
//	data ──resample──▶ trial 1 ──refit──▶ β̂₁ ┐
//	     ──resample──▶ trial 2 ──refit──▶ β̂₂ ├──▶ SE, CI per coefficient
//	     ──resample──▶   ...   ──refit──▶ ... ┘
//
// Dive into README.md and examples/ for full, runnable scenarios.
//
//	go get github.com/katalvlaran/bootstat
package bootstat
