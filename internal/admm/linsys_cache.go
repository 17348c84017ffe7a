// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package admm

import (
	"math"

	"github.com/cvxgo/solver/internal/linsys"
)

// rhoRefactorTolerance bounds how close a new ρ must be to the currently
// factored one before the cache treats Factor as a no-op.
const rhoRefactorTolerance = 1e-12

// linearSystemCache owns the dense P baseline, the precomputed G = AᵀA, a
// mutable K buffer, and the currently factored ρ. Factor rebuilds K = P + ρG
// and refactors only when ρ moves beyond rhoRefactorTolerance*(1+|ρ|) from
// the last factored value — this is the single most cost-reducing structural
// choice in the engine, since G never changes across iterations.
type linearSystemCache struct {
	n              int
	base           []float64
	ata            []float64
	buffer         []float64
	solver         linsys.LinearSolver
	currentRho     float64
	hasFactor      bool
	factorizations int
}

func newLinearSystemCache(base, ata []float64, n int) *linearSystemCache {
	solver := linsys.NewDenseAdapter()
	solver.AnalyzePattern(n)
	return &linearSystemCache{
		n:      n,
		base:   base,
		ata:    ata,
		buffer: make([]float64, len(base)),
		solver: solver,
	}
}

// Factor ensures K(rho) = P + rho*G is current, refactoring only when rho
// has moved beyond tolerance from the last factored value.
func (c *linearSystemCache) Factor(rho float64) error {
	if c.hasFactor && math.Abs(c.currentRho-rho) <= rhoRefactorTolerance*(1+math.Abs(rho)) {
		return nil
	}
	for i := range c.buffer {
		c.buffer[i] = c.base[i] + rho*c.ata[i]
	}
	if err := c.solver.Factor(c.buffer, c.n); err != nil {
		return err
	}
	c.currentRho = rho
	c.hasFactor = true
	c.factorizations++
	return nil
}

// Solve forwards rhs to the underlying LDLᵀ solver.
func (c *linearSystemCache) Solve(rhs []float64) error {
	return c.solver.Solve(rhs)
}
