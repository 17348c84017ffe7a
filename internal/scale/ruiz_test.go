// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package scale

import (
	"testing"

	"github.com/cvxgo/solver/pkg/testutil"
	"github.com/cvxgo/solver/pkg/types"
)

func TestScaleUnscaleRoundTrip(t *testing.T) {
	problem := &types.ProblemQP{
		Quadratic: types.CscMatrix{
			Nrows: 2, Ncols: 2,
			Indptr:  []int{0, 2, 4},
			Indices: []int{0, 1, 0, 1},
			Data:    []float64{4, 0, 0, 8},
		},
		Linear: []float64{-1, -2},
	}

	scaler := NewDefault()
	scaler.ScaleQP(problem)

	x := []float64{3.5, -2.25}
	xTilde := append([]float64(nil), x...)
	s := scaler.ScaleVector()
	for i := range xTilde {
		xTilde[i] *= s[i]
	}
	scaler.UnscalePrimal(xTilde)
	testutil.AssertSliceAlmostEqual(t, x, xTilde, testutil.DefaultTolerance, "scale/unscale round trip")
}

func TestScaleAccumulatesAcrossCalls(t *testing.T) {
	scaler := NewDefault()
	problem := &types.ProblemQP{
		Quadratic: types.IdentityCsc(2, 100.0),
		Linear:    []float64{1, 1},
	}
	scaler.ScaleQP(problem)
	first := scaler.ScaleVector()

	scaler.ScaleQP(problem)
	second := scaler.ScaleVector()

	for i := range first {
		if second[i] == first[i] {
			t.Fatalf("expected scaling vector to change on repeated scale call at index %d", i)
		}
	}
}
