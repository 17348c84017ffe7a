// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package solver

import (
	"github.com/cvxgo/solver/internal/admm"
	"github.com/cvxgo/solver/internal/scale"
	"github.com/cvxgo/solver/pkg/types"
)

// Solver carries a method, options, a scaler, and an optional warm start. It
// is the only thing CLI and GUI front-ends import from this module's core.
type Solver struct {
	method    types.Method
	options   types.SolveOptions
	scaler    *scale.RuizScaler
	warmStart *types.WarmStart
}

// New returns a Solver configured with ADMM and default options.
func New() *Solver {
	return &Solver{
		method:  types.MethodADMM,
		options: types.DefaultSolveOptions(),
		scaler:  scale.NewDefault(),
	}
}

// Method selects the solve backend. MethodInteriorPoint always yields Unsupported.
func (s *Solver) Method(method types.Method) *Solver {
	s.method = method
	return s
}

// Options replaces the solver's tuning.
func (s *Solver) Options(options types.SolveOptions) *Solver {
	s.options = options
	return s
}

// WarmStart attaches a warm start for the next solve.
func (s *Solver) WarmStart(warm types.WarmStart) *Solver {
	s.warmStart = &warm
	return s
}

// Scaler replaces the solver's equilibration instance. Supplying a scaler
// explicitly opts into cross-solve scaling accumulation, since a reused
// RuizScaler compounds its scaling vector across solves; by default each
// Solver owns a fresh one.
func (s *Solver) Scaler(scaler *scale.RuizScaler) *Solver {
	s.scaler = scaler
	return s
}

// SolveQP runs the configured method against problem.
func (s *Solver) SolveQP(problem types.ProblemQP) (types.Solution, error) {
	if s.method == types.MethodInteriorPoint {
		return types.Solution{}, types.NewUnsupportedError(string(types.MethodInteriorPoint))
	}
	engine := admm.New(s.options)
	if s.warmStart != nil {
		engine = engine.WithWarmStart(*s.warmStart)
	}
	return engine.SolveQP(problem, s.scaler)
}

// SolveLP runs the configured method against problem.
func (s *Solver) SolveLP(problem types.ProblemLP) (types.Solution, error) {
	if s.method == types.MethodInteriorPoint {
		return types.Solution{}, types.NewUnsupportedError(string(types.MethodInteriorPoint))
	}
	engine := admm.New(s.options)
	if s.warmStart != nil {
		engine = engine.WithWarmStart(*s.warmStart)
	}
	return engine.SolveLP(problem, s.scaler)
}

// SolveQP constructs a default Solver with options and runs it once.
func SolveQP(problem types.ProblemQP, options types.SolveOptions) (types.Solution, error) {
	return New().Options(options).SolveQP(problem)
}

// SolveLP constructs a default Solver with options and runs it once.
func SolveLP(problem types.ProblemLP, options types.SolveOptions) (types.Solution, error) {
	return New().Options(options).SolveLP(problem)
}
