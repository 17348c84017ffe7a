// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package numeric

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cvxgo/solver/pkg/testutil"
)

func TestDotAndNorms(t *testing.T) {
	v := []float64{3.0, 4.0}
	testutil.AssertAlmostEqual(t, 25.0, Dot(v, v), testutil.DefaultTolerance, "dot")
	testutil.AssertAlmostEqual(t, 5.0, Norm2(v), testutil.DefaultTolerance, "norm2")
	testutil.AssertAlmostEqual(t, 4.0, NormInf(v), testutil.DefaultTolerance, "norm_inf")
}

func TestProjectBoxClampsFiniteBounds(t *testing.T) {
	x := []float64{5.0, -1.0}
	lower := []float64{0.0, 0.0}
	upper := []float64{3.0, 2.0}
	ProjectBox(x, lower, upper)
	testutil.AssertSliceAlmostEqual(t, []float64{3.0, 0.0}, x, testutil.DefaultTolerance, "project_box")
}

func TestProjectBoxIdempotent(t *testing.T) {
	x := []float64{5.0, -7.0, 1.5}
	lower := []float64{0.0, -1.0, math.Inf(-1)}
	upper := []float64{3.0, 1.0, math.Inf(1)}
	ProjectBox(x, lower, upper)
	once := append([]float64(nil), x...)
	ProjectBox(x, lower, upper)
	testutil.AssertSliceAlmostEqual(t, once, x, testutil.DefaultTolerance, "idempotent projection")
}

func TestProjectBoxLeavesFeasiblePointUnchanged(t *testing.T) {
	x := []float64{1.0, 0.5}
	lower := []float64{0.0, 0.0}
	upper := []float64{2.0, 1.0}
	original := append([]float64(nil), x...)
	ProjectBox(x, lower, upper)
	testutil.AssertSliceAlmostEqual(t, original, x, testutil.DefaultTolerance, "feasible point unchanged")
}

func TestProjectBoxInfiniteBoundsLeaveSideUnclamped(t *testing.T) {
	x := []float64{1e9, -1e9}
	lower := []float64{math.Inf(-1), math.Inf(-1)}
	upper := []float64{math.Inf(1), math.Inf(1)}
	ProjectBox(x, lower, upper)
	testutil.AssertSliceAlmostEqual(t, []float64{1e9, -1e9}, x, testutil.DefaultTolerance, "unbounded sides untouched")
}

func TestRelativeGap(t *testing.T) {
	assert.InDelta(t, 0.0, RelativeGap(1.0, 1.0), testutil.DefaultTolerance)
	assert.Greater(t, RelativeGap(2.0, 1.0), 0.0)
}

func TestTimerMonotonicAndNonNegative(t *testing.T) {
	timer := StartTimer()
	first := timer.Elapsed()
	second := timer.Elapsed()
	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, first, time.Duration(0))

	timer.Stop()
	frozen := timer.Elapsed()
	assert.Equal(t, frozen, timer.Elapsed())

	timer.Resume()
	assert.GreaterOrEqual(t, timer.Elapsed(), frozen)
}
