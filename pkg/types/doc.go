// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package types provides the core data structures shared across the solver:
// sparse matrices, problem definitions, solve options, and solutions.
//
// # Core Types
//
// The package defines several essential types:
//
//   - CscMatrix: a matrix in compressed sparse column form
//   - ProblemQP / ProblemLP: the quadratic and linear program definitions
//   - SolveOptions: tolerances, iteration and time budgets, ADMM parameters
//   - Solution: the primal/dual result, outcome status, and solve statistics
//
// # Error Handling
//
// The package provides a single structured SolverError type with a Kind
// discriminator so callers can distinguish dimension errors from numerical
// failures without string matching.
//
// # Thread Safety
//
// Types in this package are not thread-safe. A Problem, once built, is safe
// to read concurrently, but the solver mutates its coefficients in place
// during scaling, so concurrent solves over the same Problem are unsafe.
package types
