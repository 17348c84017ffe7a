// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package admm

import (
	"github.com/cvxgo/solver/internal/numeric"
	"github.com/cvxgo/solver/pkg/types"
)

// Scaler is the equilibration capability the engine scales through and
// unscales the result with. internal/scale.RuizScaler satisfies this.
type Scaler interface {
	ScaleQP(problem *types.ProblemQP)
	ScaleLP(problem *types.ProblemLP)
	UnscalePrimal(primal []float64)
	UnscaleStats(stats *types.SolveStats)
}

// Solver runs the ADMM iteration loop over a scaled QP/LP.
type Solver struct {
	options   types.SolveOptions
	warmStart *types.WarmStart
}

// New returns an ADMM solver configured with options and no warm start.
func New(options types.SolveOptions) *Solver {
	return &Solver{options: options}
}

// WithWarmStart attaches a warm start to this solver and returns it for chaining.
func (s *Solver) WithWarmStart(warm types.WarmStart) *Solver {
	s.warmStart = &warm
	return s
}

// SolveQP scales problem in place via scaler, runs the ADMM loop, and
// unscales the resulting primal before returning.
func (s *Solver) SolveQP(problem types.ProblemQP, scaler Scaler) (types.Solution, error) {
	if err := problem.Validate(); err != nil {
		return types.Solution{}, err
	}
	scaler.ScaleQP(&problem)

	ws := newWorkspace(&problem)
	cache := newLinearSystemCache(append([]float64(nil), ws.pBase...), ws.ata, ws.n)
	timer := numeric.StartTimer()
	stats := types.NewSolveStats()

	x := make([]float64, ws.n)
	if s.warmStart != nil && len(s.warmStart.Primal) == ws.n {
		copy(x, s.warmStart.Primal)
	}

	ax := make([]float64, ws.m)
	ws.multiplyA(x, ax)
	z := append([]float64(nil), ax...)
	numeric.ProjectBox(z, ws.lower, ws.upper)

	y := make([]float64, ws.m)
	if s.warmStart != nil {
		if len(s.warmStart.EqualityDual) == ws.mEq {
			copy(y[:ws.mEq], s.warmStart.EqualityDual)
		}
		if len(s.warmStart.InequalityDual) == ws.m-ws.mEq {
			copy(y[ws.mEq:], s.warmStart.InequalityDual)
		}
	}

	tmpDual := make([]float64, ws.m)
	rhs := make([]float64, ws.n)
	dualResidualVec := make([]float64, ws.n)

	tol := s.options.Tolerance
	rho := s.options.AdmmRho
	status := types.StatusMaxIterations
	lastObjective := computeObjective(&problem, ws.pBase, x)
	stride := s.options.ResidualCheckStride
	if stride < 1 {
		stride = 1
	}

	for iter := 0; iter < s.options.MaxIterations; iter++ {
		if err := cache.Factor(rho); err != nil {
			return types.Solution{}, err
		}
		stats.Factorizations = cache.factorizations

		for i := 0; i < ws.m; i++ {
			tmpDual[i] = z[i] - y[i]/rho
		}
		ws.multiplyAT(tmpDual, rhs)
		for i := 0; i < ws.n; i++ {
			rhs[i] = rho*rhs[i] - problem.Linear[i]
		}
		if err := cache.Solve(rhs); err != nil {
			return types.Solution{}, err
		}
		copy(x, rhs)
		stats.LinearSolves++

		ws.multiplyA(x, ax)
		zOld := append([]float64(nil), z...)
		for i := 0; i < ws.m; i++ {
			z[i] = ax[i] + y[i]/rho
		}
		numeric.ProjectBox(z, ws.lower, ws.upper)
		for i := 0; i < ws.m; i++ {
			y[i] += rho * (ax[i] - z[i])
		}

		primalResidual := make([]float64, ws.m)
		for i := 0; i < ws.m; i++ {
			primalResidual[i] = ax[i] - z[i]
		}
		for i := 0; i < ws.m; i++ {
			tmpDual[i] = (zOld[i] - z[i]) * rho
		}
		ws.multiplyAT(tmpDual, dualResidualVec)

		objective := computeObjective(&problem, ws.pBase, x)
		dualObjective := objective - numeric.Dot(y, primalResidual)
		prNorm, duNorm := numeric.ResidualsInf(primalResidual, dualResidualVec)
		gap := numeric.RelativeGap(objective, dualObjective)

		stats.Push(types.IterationRecord{
			Iteration:       iter,
			PrimalResidual:  prNorm,
			DualResidual:    duNorm,
			RelativeGap:     types.JSONFloat64(gap),
			Rho:             rho,
			Relaxation:      s.options.AdmmRelaxation,
			PrimalObjective: types.JSONFloat64(objective),
			DualObjective:   types.JSONFloat64(dualObjective),
			Elapsed:         timer.Elapsed(),
		})
		lastObjective = objective

		checkNow := iter%stride == 0 || iter == s.options.MaxIterations-1
		if checkNow {
			if prNorm <= tol && duNorm <= tol && gap <= tol {
				status = types.StatusOptimal
				break
			}
			if s.options.MaxTime > 0 && timer.Elapsed() > s.options.MaxTime {
				status = types.StatusMaxTime
				break
			}
		}

		if s.options.AdmmAdaptiveRho {
			switch {
			case prNorm > types.AdaptiveRhoRatio*duNorm:
				rho *= types.AdaptiveRhoFactor
			case duNorm > types.AdaptiveRhoRatio*prNorm:
				rho /= types.AdaptiveRhoFactor
			}
		}
	}

	stats.SolveTime = timer.Elapsed()
	equalityDual := make([]float64, ws.mEq)
	copy(equalityDual, y[:ws.mEq])
	inequalityDual := make([]float64, ws.m-ws.mEq)
	copy(inequalityDual, y[ws.mEq:])

	solution := types.Solution{
		Primal:         x,
		EqualityDual:   equalityDual,
		InequalityDual: inequalityDual,
		Status:         status,
		ObjectiveValue: types.JSONFloat64(lastObjective),
		Iterations:     len(stats.History),
		Stats:          stats,
	}
	scaler.UnscalePrimal(solution.Primal)
	scaler.UnscaleStats(&solution.Stats)
	return solution, nil
}

// SolveLP rewrites problem as an unconstrained-quadratic QP (P = 0) and
// defers to SolveQP.
func (s *Solver) SolveLP(problem types.ProblemLP, scaler Scaler) (types.Solution, error) {
	n := problem.Nvars()
	qp := types.ProblemQP{
		Quadratic:    types.IdentityCsc(n, 0.0),
		Linear:       problem.Cost,
		Inequalities: problem.Inequalities,
		Equalities:   problem.Equalities,
		Bounds:       problem.Bounds,
	}
	return s.SolveQP(qp, scaler)
}

func computeObjective(problem *types.ProblemQP, pDense []float64, x []float64) float64 {
	obj := numeric.Dot(problem.Linear, x)
	px := make([]float64, problem.Nvars())
	multiplyDense(pDense, problem.Nvars(), problem.Nvars(), x, px)
	obj += 0.5 * numeric.Dot(x, px)
	return obj
}
