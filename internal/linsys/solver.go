// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package linsys

// LinearSolver is the KKT solve capability the ADMM engine depends on. The
// only implementation today is dense (DenseKktSolver via DenseAdapter); a
// sparse symbolic factorization could implement this same interface without
// the engine changing.
type LinearSolver interface {
	AnalyzePattern(dim int)
	Factor(dense []float64, dim int) error
	Solve(rhs []float64) error
}

// DenseAdapter satisfies LinearSolver directly over DenseKktSolver.
type DenseAdapter struct {
	solver *DenseKktSolver
}

// NewDenseAdapter returns a LinearSolver backed by the dense LDLᵀ solver.
func NewDenseAdapter() *DenseAdapter {
	return &DenseAdapter{solver: NewDenseKktSolver()}
}

func (a *DenseAdapter) AnalyzePattern(dim int) {
	a.solver.AnalyzePattern(DensePattern{Dimension: dim})
}

func (a *DenseAdapter) Factor(dense []float64, dim int) error {
	return a.solver.Factor(NewDenseKktMatrix(dim, dense))
}

func (a *DenseAdapter) Solve(rhs []float64) error {
	return a.solver.Solve(rhs)
}
