// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import "time"

// IterationRecord captures one ADMM iteration's residuals, objective
// estimates, and penalty state for the solve history.
type IterationRecord struct {
	Iteration       int           `json:"iteration"`
	PrimalResidual  float64       `json:"primal_residual"`
	DualResidual    float64       `json:"dual_residual"`
	RelativeGap     JSONFloat64   `json:"relative_gap"`
	Rho             float64       `json:"rho"`
	Relaxation      float64       `json:"relaxation"`
	PrimalObjective JSONFloat64   `json:"primal_objective"`
	DualObjective   JSONFloat64   `json:"dual_objective"`
	Elapsed         time.Duration `json:"elapsed"`
}

// SolveStats aggregates the iteration history and the engine's
// factorization/linear-solve counters for one solve.
type SolveStats struct {
	History        []IterationRecord `json:"history"`
	SolveTime      time.Duration     `json:"solve_time"`
	Factorizations int               `json:"factorizations"`
	LinearSolves   int               `json:"linear_solves"`
}

// NewSolveStats returns an empty stats accumulator.
func NewSolveStats() SolveStats {
	return SolveStats{History: make([]IterationRecord, 0)}
}

// Push appends an iteration record to the history.
func (s *SolveStats) Push(record IterationRecord) {
	s.History = append(s.History, record)
}
