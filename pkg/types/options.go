// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import "time"

// Method selects the solve backend. Only MethodADMM is implemented; selecting
// MethodInteriorPoint yields an ErrUnsupported error.
type Method string

const (
	MethodADMM          Method = "admm"
	MethodInteriorPoint Method = "ipm"
)

// Adaptive penalty tuning constants used by the ADMM engine (see
// internal/admm). They are named here, not hard-coded at the call site, so a
// future revision can lift them into SolveOptions without an API break.
const (
	AdaptiveRhoRatio  = 10.0
	AdaptiveRhoFactor = 2.0
)

// SolveOptions carries the tolerances, budgets, and ADMM tuning knobs for one solve.
type SolveOptions struct {
	Tolerance           float64       `json:"tolerance"`
	MaxIterations       int           `json:"max_iterations"`
	MaxTime             time.Duration `json:"max_time,omitempty"`
	AdmmRho             float64       `json:"admm_rho"`
	AdmmRelaxation      float64       `json:"admm_relaxation"`
	AdmmAdaptiveRho     bool          `json:"admm_adaptive_rho"`
	ResidualCheckStride int           `json:"check_every"`
	Seed                uint64        `json:"seed"`
}

// DefaultSolveOptions returns the solver's baseline tuning.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Tolerance:           1e-6,
		MaxIterations:       10_000,
		AdmmRho:             1.0,
		AdmmRelaxation:      1.5,
		AdmmAdaptiveRho:     true,
		ResidualCheckStride: 1,
		Seed:                42,
	}
}
