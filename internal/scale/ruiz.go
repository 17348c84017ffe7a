// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package scale implements Ruiz diagonal equilibration: iterative column
// scaling that conditions a QP/LP in place before the ADMM engine runs, and
// the inverse map back to the caller's original variable space.
package scale

import (
	"math"

	"github.com/cvxgo/solver/pkg/types"
)

// defaultSweeps is the number of equilibration passes performed by a
// RuizScaler constructed with NewDefault.
const defaultSweeps = 5

// RuizScaler holds a per-variable scaling vector that accumulates across
// calls. Construct a fresh scaler per problem unless deliberately reusing
// one across a scale-solve-unscale sequence, since repeated calls compound
// the scaling vector rather than replacing it.
type RuizScaler struct {
	columnScaling []float64
	sweeps        int
}

// NewDefault returns a RuizScaler configured for the default 5 sweeps.
func NewDefault() *RuizScaler {
	return New(defaultSweeps)
}

// New returns a RuizScaler configured for the given number of equilibration sweeps.
func New(sweeps int) *RuizScaler {
	return &RuizScaler{sweeps: sweeps}
}

func equilibrateColumns(matrix *types.CscMatrix, scaling []float64) {
	for col := 0; col < matrix.Ncols; col++ {
		start, end := matrix.Indptr[col], matrix.Indptr[col+1]
		var maxVal float64
		for idx := start; idx < end; idx++ {
			if v := math.Abs(matrix.Data[idx]); v > maxVal {
				maxVal = v
			}
		}
		if maxVal > 0 {
			if factor := math.Sqrt(maxVal); factor > 0 {
				scaling[col] /= factor
			}
		}
	}
}

// applyColumnScaling divides every entry of column j by s_j. When symmetric
// is set (the quadratic term), each entry is also divided by s_i of its row.
func applyColumnScaling(matrix *types.CscMatrix, scaling []float64, symmetric bool) {
	for col := 0; col < matrix.Ncols; col++ {
		start, end := matrix.Indptr[col], matrix.Indptr[col+1]
		colScale := scaling[col]
		if colScale == 0 {
			continue
		}
		invCol := 1.0 / colScale
		for idx := start; idx < end; idx++ {
			row := matrix.Indices[idx]
			invRow := 1.0
			if symmetric && row < len(scaling) {
				invRow = 1.0 / scaling[row]
			}
			matrix.Data[idx] = matrix.Data[idx] * invRow * invCol
		}
	}
}

func applyVectorScaling(vector, scaling []float64) {
	for i, s := range scaling {
		if s != 0 {
			vector[i] /= s
		}
	}
}

func scaleBounds(bounds *types.Bounds, scaling []float64) {
	for i, s := range scaling {
		if s != 0 {
			bounds.Lower[i] = types.BoundValue(float64(bounds.Lower[i]) * s)
			bounds.Upper[i] = types.BoundValue(float64(bounds.Upper[i]) * s)
		}
	}
}

func (r *RuizScaler) ensureSized(n int) {
	if len(r.columnScaling) != n {
		r.columnScaling = make([]float64, n)
		for i := range r.columnScaling {
			r.columnScaling[i] = 1.0
		}
	}
}

// ScaleQP rewrites problem's coefficients in place to equilibrate its column
// norms, accumulating against any scaling already held by this scaler.
func (r *RuizScaler) ScaleQP(problem *types.ProblemQP) {
	n := problem.Nvars()
	r.ensureSized(n)

	for sweep := 0; sweep < r.sweeps; sweep++ {
		equilibrateColumns(&problem.Quadratic, r.columnScaling)
		if problem.Inequalities != nil {
			equilibrateColumns(&problem.Inequalities.Matrix, r.columnScaling)
		}
		if problem.Equalities != nil {
			equilibrateColumns(&problem.Equalities.Matrix, r.columnScaling)
		}
	}

	applyColumnScaling(&problem.Quadratic, r.columnScaling, true)
	applyVectorScaling(problem.Linear, r.columnScaling)
	if problem.Inequalities != nil {
		applyColumnScaling(&problem.Inequalities.Matrix, r.columnScaling, false)
	}
	if problem.Equalities != nil {
		applyColumnScaling(&problem.Equalities.Matrix, r.columnScaling, false)
	}
	if problem.Bounds != nil {
		scaleBounds(problem.Bounds, r.columnScaling)
	}
}

// ScaleLP rewrites problem's coefficients in place, the LP analogue of ScaleQP.
func (r *RuizScaler) ScaleLP(problem *types.ProblemLP) {
	n := problem.Nvars()
	r.ensureSized(n)

	for sweep := 0; sweep < r.sweeps; sweep++ {
		if problem.Inequalities != nil {
			equilibrateColumns(&problem.Inequalities.Matrix, r.columnScaling)
		}
		if problem.Equalities != nil {
			equilibrateColumns(&problem.Equalities.Matrix, r.columnScaling)
		}
	}

	if problem.Inequalities != nil {
		applyColumnScaling(&problem.Inequalities.Matrix, r.columnScaling, false)
	}
	if problem.Equalities != nil {
		applyColumnScaling(&problem.Equalities.Matrix, r.columnScaling, false)
	}
	applyVectorScaling(problem.Cost, r.columnScaling)
	if problem.Bounds != nil {
		scaleBounds(problem.Bounds, r.columnScaling)
	}
}

// UnscalePrimal maps a scaled primal point back into the caller's original
// variable space. A length mismatch against the scaler's dimension is a no-op.
func (r *RuizScaler) UnscalePrimal(primal []float64) {
	if len(primal) != len(r.columnScaling) {
		return
	}
	for i, s := range r.columnScaling {
		if s != 0 {
			primal[i] /= s
		}
	}
}

// ScaleVector returns a copy of the scaler's current per-variable scaling
// vector s, used by round-trip tests (UnscalePrimal(s ∘ x) = x for any x).
func (r *RuizScaler) ScaleVector() []float64 {
	return append([]float64(nil), r.columnScaling...)
}

// UnscaleStats is a no-op: the scaler never rewrites solve statistics.
func (r *RuizScaler) UnscaleStats(*types.SolveStats) {}
