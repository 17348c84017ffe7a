// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package linsys holds the KKT linear-solver capability: a dense LDLᵀ
// factorization behind one interface (via DenseAdapter), so a future sparse
// factorization can replace the dense core without touching the ADMM engine.
// No sparse storage reaches this package; callers pass dense row-major data.
package linsys

import (
	"fmt"
	"math"

	"github.com/cvxgo/solver/pkg/types"
)

// pivotEpsilon is the near-singular threshold applied to every diagonal
// pivot, both during factorization and during the solve's diagonal scaling.
const pivotEpsilon = 1e-12

// DensePattern records the dimension a solver has been analyzed against.
type DensePattern struct {
	Dimension int
}

// DenseKktMatrix is a dense row-major n x n coefficient matrix.
type DenseKktMatrix struct {
	Dimension int
	Data      []float64
}

// NewDenseKktMatrix wraps data (row-major, dimension*dimension entries) as a
// dense KKT matrix. Panics if data's length does not match dimension*dimension.
func NewDenseKktMatrix(dimension int, data []float64) *DenseKktMatrix {
	if len(data) != dimension*dimension {
		panic("linsys: dense matrix data length does not match dimension")
	}
	return &DenseKktMatrix{Dimension: dimension, Data: data}
}

func (m *DenseKktMatrix) entry(row, col int) float64 {
	return m.Data[row*m.Dimension+col]
}

// DenseKktSolver factors a symmetric indefinite-tolerant dense matrix into
// L D Lᵀ using the scalar Bunch-style recurrence without pivoting, and
// solves against the stored factor.
type DenseKktSolver struct {
	dimension int
	l         []float64
	d         []float64
	analyzed  bool
}

// NewDenseKktSolver returns an unanalyzed solver.
func NewDenseKktSolver() *DenseKktSolver {
	return &DenseKktSolver{}
}

func (s *DenseKktSolver) lAt(row, col int) float64 {
	return s.l[row*s.dimension+col]
}

func (s *DenseKktSolver) setL(row, col int, value float64) {
	s.l[row*s.dimension+col] = value
}

// AnalyzePattern allocates L and D for dimension and seeds L with identity.
func (s *DenseKktSolver) AnalyzePattern(pattern DensePattern) {
	s.dimension = pattern.Dimension
	s.l = make([]float64, s.dimension*s.dimension)
	s.d = make([]float64, s.dimension)
	for i := 0; i < s.dimension; i++ {
		s.setL(i, i, 1.0)
	}
	s.analyzed = true
}

// Factor resets L to identity and recomputes L D Lᵀ = matrix. It auto-analyzes
// from matrix's dimension if AnalyzePattern was never called; a dimension
// mismatch against a prior analyze is a hard error.
func (s *DenseKktSolver) Factor(matrix *DenseKktMatrix) error {
	if !s.analyzed {
		s.AnalyzePattern(DensePattern{Dimension: matrix.Dimension})
	}
	if matrix.Dimension != s.dimension {
		return types.NewDimensionMismatchError(
			fmt.Sprintf("matrix dimension %d does not match analyzed dimension %d", matrix.Dimension, s.dimension),
			s.dimension, matrix.Dimension,
		)
	}

	for i := 0; i < s.dimension; i++ {
		for j := 0; j < s.dimension; j++ {
			if i == j {
				s.setL(i, j, 1.0)
			} else {
				s.setL(i, j, 0.0)
			}
		}
	}

	for j := 0; j < s.dimension; j++ {
		dj := matrix.entry(j, j)
		for k := 0; k < j; k++ {
			ljk := s.lAt(j, k)
			dj -= ljk * ljk * s.d[k]
		}
		if math.Abs(dj) <= pivotEpsilon {
			return types.NewNearSingularPivotError(j, math.Abs(dj))
		}
		s.d[j] = dj

		for i := j + 1; i < s.dimension; i++ {
			lij := matrix.entry(i, j)
			for k := 0; k < j; k++ {
				lij -= s.lAt(i, k) * s.lAt(j, k) * s.d[k]
			}
			lij /= s.d[j]
			s.setL(i, j, lij)
		}
	}
	return nil
}

// Solve overwrites rhs in place with the solution to L D Lᵀ x = rhs.
func (s *DenseKktSolver) Solve(rhs []float64) error {
	if len(rhs) != s.dimension {
		return types.NewDimensionMismatchError(
			fmt.Sprintf("rhs length %d does not match dimension %d", len(rhs), s.dimension),
			s.dimension, len(rhs),
		)
	}

	for i := 0; i < s.dimension; i++ {
		for j := 0; j < i; j++ {
			rhs[i] -= s.lAt(i, j) * rhs[j]
		}
	}

	for i := 0; i < s.dimension; i++ {
		if math.Abs(s.d[i]) <= pivotEpsilon {
			return types.NewSingularDiagonalError(i, math.Abs(s.d[i]))
		}
		rhs[i] /= s.d[i]
	}

	for i := s.dimension - 1; i >= 0; i-- {
		for j := i + 1; j < s.dimension; j++ {
			rhs[i] -= s.lAt(j, i) * rhs[j]
		}
	}
	return nil
}
