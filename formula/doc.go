// Package formula describes linear-model specifications and expands them
// into design matrices over a dataset.
//
// 🚀 What is a Spec?
//
//	A response column plus an ordered list of predictor terms. A term is a
//	set of factors: one factor is a main effect, two or more factors form
//	an interaction (the elementwise cross of their expansions).
//
// ✨ Key features:
//   - R-style formula syntax: Parse("y ~ x + g + x:g"); a*b is sugar for
//     a + b + a:b (all non-empty factor combinations)
//   - deterministic expansion: categorical factors become indicator columns
//     against the reference level (first level in sorted order), so the
//     same spec over the same column types always yields the same
//     coefficient names
//   - level sets come from the dataset actually passed to Design, so a
//     resample that lost a level simply yields fewer columns — callers
//     must index coefficients by name, never by position or count
//
// ⚙️ Usage:
//
//	spec, err := formula.Parse("y ~ x + group")
//	X, names, y, err := spec.Design(ds)
//
// Coefficient naming: "(Intercept)", "x", "group[b]" for level b of group,
// and "x:group[b]" for interactions.
package formula
