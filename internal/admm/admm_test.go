// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package admm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvxgo/solver/internal/scale"
	"github.com/cvxgo/solver/pkg/testutil"
	"github.com/cvxgo/solver/pkg/types"
)

func diagonalCsc(values []float64) types.CscMatrix {
	n := len(values)
	indptr := make([]int, n+1)
	indices := make([]int, n)
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		indices[i] = i
		data[i] = values[i]
		indptr[i+1] = i + 1
	}
	return types.CscMatrix{Nrows: n, Ncols: n, Indptr: indptr, Indices: indices, Data: data}
}

func boxBounds(lower, upper []float64) *types.Bounds {
	return &types.Bounds{Lower: types.BoundValues(lower), Upper: types.BoundValues(upper)}
}

// denseRowsToCsc converts a row-major dense matrix into CSC form.
func denseRowsToCsc(dense []float64, rows, cols int) types.CscMatrix {
	indptr := make([]int, cols+1)
	var indices []int
	var data []float64
	for col := 0; col < cols; col++ {
		for row := 0; row < rows; row++ {
			v := dense[row*cols+col]
			if v != 0 {
				indices = append(indices, row)
				data = append(data, v)
			}
		}
		indptr[col+1] = len(data)
	}
	return types.CscMatrix{Nrows: rows, Ncols: cols, Indptr: indptr, Indices: indices, Data: data}
}

// adjacentPairInequalities builds rows rows of the form x_i + x_{i+1 mod n} <= rhs,
// a deterministic inequality block over n variables.
func adjacentPairInequalities(rows, n int, rhs float64) (types.CscMatrix, []float64) {
	dense := make([]float64, rows*n)
	for r := 0; r < rows; r++ {
		i, j := r%n, (r+1)%n
		dense[r*n+i] = 1
		dense[r*n+j] = 1
	}
	rhsVec := make([]float64, rows)
	for r := range rhsVec {
		rhsVec[r] = rhs
	}
	return denseRowsToCsc(dense, rows, n), rhsVec
}

// S1 - Box QP: P = diag(4,4), q = (-1,-1), bounds [0,1]^2.
func TestScenarioS1BoxQP(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: diagonalCsc([]float64{4, 4}),
		Linear:    []float64{-1, -1},
		Bounds:    boxBounds([]float64{0, 0}, []float64{1, 1}),
	}
	options := types.DefaultSolveOptions()
	solver := New(options)
	sol, err := solver.SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, sol.Status)
	testutil.AssertSliceAlmostEqual(t, []float64{0.25, 0.25}, sol.Primal, 1e-3, "S1 primal")
	testutil.AssertAlmostEqual(t, -0.25, sol.ObjectiveValue.Float64(), 1e-3, "S1 objective")
}

// S2 - Interior minimum of a diagonal QP.
func TestScenarioS2InteriorMinimum(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: diagonalCsc([]float64{2, 4, 6}),
		Linear:    []float64{-2, -5, -3},
		Bounds:    boxBounds([]float64{0, -1, 0}, []float64{1, 2, 4}),
	}
	options := types.DefaultSolveOptions()
	solver := New(options)
	sol, err := solver.SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, sol.Status)
	testutil.AssertSliceAlmostEqual(t, []float64{1, 1.25, 0.5}, sol.Primal, 1e-2, "S2 primal")
}

// S3 - LP with equality budget constraint.
func TestScenarioS3EqualityBudgetLP(t *testing.T) {
	cost := []float64{2, 3, 1.5, 2.5}
	n := len(cost)
	eqMatrix := types.CscMatrix{
		Nrows: 1, Ncols: n,
		Indptr:  []int{0, 1, 2, 3, 4},
		Indices: []int{0, 0, 0, 0},
		Data:    []float64{1, 1, 1, 1},
	}
	problem := types.ProblemLP{
		Cost:       cost,
		Equalities: &types.EqualityConstraints{Matrix: eqMatrix, Rhs: []float64{1}},
		Bounds:     boxBounds([]float64{0, 0, 0, 0}, []float64{1e6, 1e6, 1e6, 1e6}),
	}
	options := types.DefaultSolveOptions()
	options.MaxIterations = 20000
	solver := New(options)
	sol, err := solver.SolveLP(problem, scale.NewDefault())
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, sol.Status)
	testutil.AssertAlmostEqual(t, 1.5, sol.ObjectiveValue.Float64(), 1e-2, "S3 objective")
}

// S4 - Infeasible bounds must fail validation before solving.
func TestScenarioS4InfeasibleBoundsFailsValidation(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: types.IdentityCsc(2, 1.0),
		Linear:    []float64{0, 0},
		Bounds:    boxBounds([]float64{1, 1}, []float64{0, 0}),
	}
	err := problem.Validate()
	require.Error(t, err)
	var solverErr *types.SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, types.ErrInvalidStructure, solverErr.Kind)
}

// S5 - Near-singular factor must surface NearSingularPivot, not a silent NaN.
func TestScenarioS5NearSingularFactorSurfacesError(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: types.IdentityCsc(2, 0.0),
		Linear:    []float64{0, 0},
	}
	options := types.DefaultSolveOptions()
	options.AdmmRho = 0
	solver := New(options)
	_, err := solver.SolveQP(problem, scale.NewDefault())
	require.Error(t, err)
	var solverErr *types.SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, types.ErrNearSingularPivot, solverErr.Kind)
}

func TestWarmStartDoesNotIncreaseIterationCount(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: diagonalCsc([]float64{4, 4}),
		Linear:    []float64{-1, -1},
		Bounds:    boxBounds([]float64{0, 0}, []float64{1, 1}),
	}
	options := types.DefaultSolveOptions()

	cold, err := New(options).SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)

	warm := types.WarmStart{Primal: []float64{0.25, 0.25}}
	warmSol, err := New(options).WithWarmStart(warm).SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)

	assert.LessOrEqual(t, warmSol.Iterations, cold.Iterations)
}

// S6 - Adaptive rho convergence: a random 50-variable SPD QP with 75
// inequality rows and a unit box must reach Optimal within the default
// iteration budget, refactoring the KKT system at most 40 times.
func TestScenarioS6AdaptiveRhoConvergence(t *testing.T) {
	const n = 50
	const ineqRows = 75

	quadratic := denseRowsToCsc(testutil.RandomSPDDense(n), n, n)
	linear := make([]float64, n)
	for i := range linear {
		linear[i] = -1
	}
	ineqMatrix, ineqRhs := adjacentPairInequalities(ineqRows, n, 1.2)

	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := range upper {
		upper[i] = 1
	}

	problem := types.ProblemQP{
		Quadratic:    quadratic,
		Linear:       linear,
		Inequalities: &types.InequalityConstraints{Matrix: ineqMatrix, Rhs: ineqRhs},
		Bounds:       boxBounds(lower, upper),
	}

	options := types.DefaultSolveOptions()
	options.AdmmAdaptiveRho = true
	solver := New(options)
	sol, err := solver.SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, sol.Status)
	assert.LessOrEqual(t, sol.Stats.Factorizations, 40)
}

func TestUnconstrainedQPConvergesWithSPDQuadratic(t *testing.T) {
	problem := types.ProblemQP{
		Quadratic: diagonalCsc([]float64{2, 2}),
		Linear:    []float64{-4, -4},
	}
	solver := New(types.DefaultSolveOptions())
	sol, err := solver.SolveQP(problem, scale.NewDefault())
	require.NoError(t, err)
	assert.Equal(t, types.StatusOptimal, sol.Status)
	testutil.AssertSliceAlmostEqual(t, []float64{2, 2}, sol.Primal, 1e-2, "unconstrained minimum")
}
