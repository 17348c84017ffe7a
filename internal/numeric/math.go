// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package numeric provides the dense-vector primitives the ADMM engine
// builds on: dot products, norms, AXPY, box projection, and the
// relative-gap termination quantity.
package numeric

import "math"

// Dot returns the inner product of a and b. Panics if lengths disagree.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("numeric: dot product dimension mismatch")
	}
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}
	return acc
}

// Norm2 returns the Euclidean norm of v.
func Norm2(v []float64) float64 {
	return math.Sqrt(Dot(v, v))
}

// NormInf returns the maximum absolute entry of v, or 0 for an empty slice.
func NormInf(v []float64) float64 {
	var max float64
	for _, x := range v {
		if a := math.Abs(x); a > max {
			max = a
		}
	}
	return max
}

// Axpy computes y ← αx + y in place. Panics if lengths disagree.
func Axpy(alpha float64, x []float64, y []float64) {
	if len(x) != len(y) {
		panic("numeric: axpy dimension mismatch")
	}
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// ProjectBox clamps x componentwise into [lower, upper] in place. Infinite
// bounds leave the corresponding side unconstrained. Panics if lengths
// disagree.
func ProjectBox(x, lower, upper []float64) {
	if len(x) != len(lower) || len(x) != len(upper) {
		panic("numeric: project_box dimension mismatch")
	}
	for i := range x {
		if x[i] < lower[i] {
			x[i] = lower[i]
		}
		if x[i] > upper[i] {
			x[i] = upper[i]
		}
	}
}

// ResidualsInf returns the infinity norms of the primal and dual residual vectors.
func ResidualsInf(primal, dual []float64) (float64, float64) {
	return NormInf(primal), NormInf(dual)
}

// RelativeGap returns |primalObj - dualObj| / (1 + max(|primalObj|, |dualObj|)).
func RelativeGap(primalObj, dualObj float64) float64 {
	gap := math.Abs(primalObj - dualObj)
	denom := 1.0 + math.Max(math.Abs(primalObj), math.Abs(dualObj))
	return gap / denom
}
