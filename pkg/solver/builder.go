// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package solver is the programmatic surface CLI and GUI front-ends import:
// builders that accumulate a QP/LP's coefficients and validate them, and a
// Solver facade that selects a method, carries options and warm start, and
// runs the scale -> ADMM -> unscale pipeline.
package solver

import "github.com/cvxgo/solver/pkg/types"

// QPBuilder accumulates the coefficients of a quadratic program.
type QPBuilder struct {
	quadratic  *types.CscMatrix
	linear     []float64
	equality   *types.EqualityConstraints
	inequality *types.InequalityConstraints
	bounds     *types.Bounds
}

// NewQPBuilder returns an empty QP builder.
func NewQPBuilder() *QPBuilder {
	return &QPBuilder{}
}

// P sets the quadratic term.
func (b *QPBuilder) P(matrix types.CscMatrix) *QPBuilder {
	b.quadratic = &matrix
	return b
}

// Q sets the linear term.
func (b *QPBuilder) Q(vector []float64) *QPBuilder {
	b.linear = vector
	return b
}

// C sets the equality constraint block C x = d.
func (b *QPBuilder) C(matrix types.CscMatrix, rhs []float64) *QPBuilder {
	b.equality = &types.EqualityConstraints{Matrix: matrix, Rhs: rhs}
	return b
}

// A sets the inequality constraint block A x <= b.
func (b *QPBuilder) A(matrix types.CscMatrix, rhs []float64) *QPBuilder {
	b.inequality = &types.InequalityConstraints{Matrix: matrix, Rhs: rhs}
	return b
}

// Bounds sets the box constraint block.
func (b *QPBuilder) Bounds(bounds types.Bounds) *QPBuilder {
	b.bounds = &bounds
	return b
}

// Build validates the accumulated coefficients and returns an immutable problem.
func (b *QPBuilder) Build() (types.ProblemQP, error) {
	if b.quadratic == nil {
		return types.ProblemQP{}, types.NewInvalidStructureError("quadratic matrix missing", -1)
	}
	if b.linear == nil {
		return types.ProblemQP{}, types.NewInvalidStructureError("linear term missing", -1)
	}
	problem := types.ProblemQP{
		Quadratic:    *b.quadratic,
		Linear:       b.linear,
		Equalities:   b.equality,
		Inequalities: b.inequality,
		Bounds:       b.bounds,
	}
	if err := problem.Validate(); err != nil {
		return types.ProblemQP{}, err
	}
	return problem, nil
}

// LPBuilder accumulates the coefficients of a linear program.
type LPBuilder struct {
	cost       []float64
	equality   *types.EqualityConstraints
	inequality *types.InequalityConstraints
	bounds     *types.Bounds
}

// NewLPBuilder returns an empty LP builder.
func NewLPBuilder() *LPBuilder {
	return &LPBuilder{}
}

// C sets the cost vector.
func (b *LPBuilder) C(cost []float64) *LPBuilder {
	b.cost = cost
	return b
}

// CEq sets the equality constraint block C x = d.
func (b *LPBuilder) CEq(matrix types.CscMatrix, rhs []float64) *LPBuilder {
	b.equality = &types.EqualityConstraints{Matrix: matrix, Rhs: rhs}
	return b
}

// A sets the inequality constraint block A x <= b.
func (b *LPBuilder) A(matrix types.CscMatrix, rhs []float64) *LPBuilder {
	b.inequality = &types.InequalityConstraints{Matrix: matrix, Rhs: rhs}
	return b
}

// Bounds sets the box constraint block.
func (b *LPBuilder) Bounds(bounds types.Bounds) *LPBuilder {
	b.bounds = &bounds
	return b
}

// Build validates the accumulated coefficients and returns an immutable problem.
func (b *LPBuilder) Build() (types.ProblemLP, error) {
	if b.cost == nil {
		return types.ProblemLP{}, types.NewInvalidStructureError("objective vector missing", -1)
	}
	problem := types.ProblemLP{
		Cost:         b.cost,
		Equalities:   b.equality,
		Inequalities: b.inequality,
		Bounds:       b.bounds,
	}
	if err := problem.Validate(); err != nil {
		return types.ProblemLP{}, err
	}
	return problem, nil
}
