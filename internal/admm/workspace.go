// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package admm implements the ADMM iteration engine: workspace assembly over
// a scaled problem, the refactor-avoiding linear-system cache, and the main
// iteration loop with adaptive penalty and warm-start support.
package admm

import (
	"math"

	"github.com/cvxgo/solver/pkg/types"
)

// workspace stacks every linear constraint of a QP into one dense m x n
// matrix A (equalities, then inequalities, then bound rows), precomputes
// G = AᵀA, and materializes the dense quadratic term.
type workspace struct {
	n, m, mEq int
	pBase     []float64
	ata       []float64
	aDense    []float64
	lower     []float64
	upper     []float64
}

func newWorkspace(problem *types.ProblemQP) *workspace {
	n := problem.Nvars()
	m := 0
	if problem.Equalities != nil {
		m += problem.Equalities.Matrix.Nrows
	}
	if problem.Inequalities != nil {
		m += problem.Inequalities.Matrix.Nrows
	}
	hasBounds := problem.Bounds != nil
	if hasBounds {
		m += len(problem.Bounds.Lower)
	}

	aDense := make([]float64, m*n)
	lower := make([]float64, m)
	upper := make([]float64, m)
	for i := range lower {
		lower[i] = math.Inf(-1)
		upper[i] = math.Inf(1)
	}

	rowOffset := 0
	if problem.Equalities != nil {
		eq := problem.Equalities
		types.ScatterCsc(&eq.Matrix, n, rowOffset, aDense)
		for idx, value := range eq.Rhs {
			lower[rowOffset+idx] = value
			upper[rowOffset+idx] = value
		}
		rowOffset += eq.Matrix.Nrows
	}
	mEq := rowOffset
	if problem.Inequalities != nil {
		ineq := problem.Inequalities
		types.ScatterCsc(&ineq.Matrix, n, rowOffset, aDense)
		for idx, value := range ineq.Rhs {
			upper[rowOffset+idx] = value
		}
		rowOffset += ineq.Matrix.Nrows
	}
	if hasBounds {
		bounds := problem.Bounds
		for v := 0; v < n; v++ {
			row := rowOffset + v
			aDense[row*n+v] = 1.0
			lower[row] = float64(bounds.Lower[v])
			upper[row] = float64(bounds.Upper[v])
		}
	}

	pBase := problem.Quadratic.Dense()
	ata := computeAtA(aDense, m, n)

	return &workspace{
		n: n, m: m, mEq: mEq,
		pBase: pBase, ata: ata, aDense: aDense,
		lower: lower, upper: upper,
	}
}

func (w *workspace) multiplyA(x, out []float64) {
	for row := 0; row < w.m; row++ {
		var acc float64
		for col := 0; col < w.n; col++ {
			acc += w.aDense[row*w.n+col] * x[col]
		}
		out[row] = acc
	}
}

func (w *workspace) multiplyAT(dual, out []float64) {
	for col := 0; col < w.n; col++ {
		var acc float64
		for row := 0; row < w.m; row++ {
			acc += w.aDense[row*w.n+col] * dual[row]
		}
		out[col] = acc
	}
}

func computeAtA(a []float64, m, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var acc float64
			for row := 0; row < m; row++ {
				acc += a[row*n+i] * a[row*n+j]
			}
			out[i*n+j] = acc
		}
	}
	return out
}

func multiplyDense(matrix []float64, rows, cols int, x, out []float64) {
	for row := 0; row < rows; row++ {
		var acc float64
		for col := 0; col < cols; col++ {
			acc += matrix[row*cols+col] * x[col]
		}
		out[row] = acc
	}
}
