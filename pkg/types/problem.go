// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// Bounds holds the per-variable box constraint ℓ ≤ x ≤ u. Entries may be ±∞.
type Bounds struct {
	Lower []BoundValue `json:"lower"`
	Upper []BoundValue `json:"upper"`
}

// Validate checks that Lower and Upper agree in length and that no lower
// bound exceeds its paired upper bound.
func (b *Bounds) Validate() error {
	if len(b.Lower) != len(b.Upper) {
		return NewDimensionMismatchError("bounds lower/upper length mismatch", len(b.Lower), len(b.Upper))
	}
	for i := range b.Lower {
		if float64(b.Lower[i]) > float64(b.Upper[i]) {
			return NewInvalidStructureError("lower bound exceeds upper bound", i)
		}
	}
	return nil
}

// EqualityConstraints is C x = d.
type EqualityConstraints struct {
	Matrix CscMatrix `json:"matrix"`
	Rhs    []float64 `json:"rhs"`
}

func (e *EqualityConstraints) validate(nvars int) error {
	if err := e.Matrix.Validate(); err != nil {
		return err
	}
	if e.Matrix.Ncols != nvars {
		return NewDimensionMismatchError("equality matrix columns do not match variable count", nvars, e.Matrix.Ncols)
	}
	if e.Matrix.Nrows != len(e.Rhs) {
		return NewDimensionMismatchError("equality row count does not match rhs length", len(e.Rhs), e.Matrix.Nrows)
	}
	return nil
}

// InequalityConstraints is A x ≤ b.
type InequalityConstraints struct {
	Matrix CscMatrix `json:"matrix"`
	Rhs    []float64 `json:"rhs"`
}

func (i *InequalityConstraints) validate(nvars int) error {
	if err := i.Matrix.Validate(); err != nil {
		return err
	}
	if i.Matrix.Ncols != nvars {
		return NewDimensionMismatchError("inequality matrix columns do not match variable count", nvars, i.Matrix.Ncols)
	}
	if i.Matrix.Nrows != len(i.Rhs) {
		return NewDimensionMismatchError("inequality row count does not match rhs length", len(i.Rhs), i.Matrix.Nrows)
	}
	return nil
}

// ProblemQP is a quadratic program: minimize ½xᵀPx + qᵀx subject to the
// optional equality/inequality blocks and box bounds.
type ProblemQP struct {
	Quadratic    CscMatrix              `json:"quadratic"`
	Linear       []float64              `json:"linear"`
	Equalities   *EqualityConstraints   `json:"equalities,omitempty"`
	Inequalities *InequalityConstraints `json:"inequalities,omitempty"`
	Bounds       *Bounds                `json:"bounds,omitempty"`
}

// Nvars returns the number of decision variables.
func (p *ProblemQP) Nvars() int {
	return len(p.Linear)
}

// Validate checks structural consistency across every block of the problem.
func (p *ProblemQP) Validate() error {
	n := p.Nvars()
	if err := p.Quadratic.Validate(); err != nil {
		return err
	}
	if p.Quadratic.Ncols != n || p.Quadratic.Nrows != n {
		return NewDimensionMismatchError("quadratic matrix must be square and match variable count", n, p.Quadratic.Ncols)
	}
	if p.Bounds != nil {
		if len(p.Bounds.Lower) != n {
			return NewDimensionMismatchError("bounds length does not match variable count", n, len(p.Bounds.Lower))
		}
		if err := p.Bounds.Validate(); err != nil {
			return err
		}
	}
	if p.Equalities != nil {
		if err := p.Equalities.validate(n); err != nil {
			return err
		}
	}
	if p.Inequalities != nil {
		if err := p.Inequalities.validate(n); err != nil {
			return err
		}
	}
	return nil
}

// ProblemLP is a linear program: minimize cᵀx subject to the optional
// equality/inequality blocks and box bounds. It is represented internally as
// a ProblemQP with a zero (or tiny-regularized) quadratic term.
type ProblemLP struct {
	Cost         []float64              `json:"cost"`
	Equalities   *EqualityConstraints   `json:"equalities,omitempty"`
	Inequalities *InequalityConstraints `json:"inequalities,omitempty"`
	Bounds       *Bounds                `json:"bounds,omitempty"`
}

// Nvars returns the number of decision variables.
func (p *ProblemLP) Nvars() int {
	return len(p.Cost)
}

// Validate checks structural consistency across every block of the problem.
func (p *ProblemLP) Validate() error {
	n := p.Nvars()
	if p.Bounds != nil {
		if len(p.Bounds.Lower) != n {
			return NewDimensionMismatchError("bounds length does not match variable count", n, len(p.Bounds.Lower))
		}
		if err := p.Bounds.Validate(); err != nil {
			return err
		}
	}
	if p.Equalities != nil {
		if err := p.Equalities.validate(n); err != nil {
			return err
		}
	}
	if p.Inequalities != nil {
		if err := p.Inequalities.validate(n); err != nil {
			return err
		}
	}
	return nil
}

// WarmStart carries a prior iterate to seed a new solve. Primal seeds x when
// its length equals n. EqualityDual and InequalityDual seed the scaled dual
// vector y, stacked onto their matching block (equality rows, then
// inequality+bound rows) only when their length equals that block's size.
// Lengths that do not match are ignored (treated as cold start for that
// component), never rejected.
type WarmStart struct {
	Primal         []float64 `json:"primal,omitempty"`
	EqualityDual   []float64 `json:"equality_dual,omitempty"`
	InequalityDual []float64 `json:"inequality_dual,omitempty"`
}
