// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package jsonio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvxgo/solver/pkg/types"
)

func writeRaw(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func TestProblemDocumentRoundTripQP(t *testing.T) {
	original := ProblemDocument{
		QP: &types.ProblemQP{
			Quadratic: types.IdentityCsc(2, 1.0),
			Linear:    []float64{-1, -1},
			Bounds: &types.Bounds{
				Lower: types.BoundValues([]float64{0, 0}),
				Upper: types.BoundValues([]float64{1, math.Inf(1)}),
			},
		},
	}

	path := filepath.Join(t.TempDir(), "problem.json")
	require.NoError(t, WriteProblem(path, original))

	decoded, err := ReadProblem(path)
	require.NoError(t, err)
	require.NotNil(t, decoded.QP)
	assert.Equal(t, original.QP.Linear, decoded.QP.Linear)
	assert.Equal(t, original.QP.Bounds.Lower, decoded.QP.Bounds.Lower)
	assert.Equal(t, original.QP.Bounds.Upper, decoded.QP.Bounds.Upper)
}

func TestProblemDocumentRoundTripLP(t *testing.T) {
	original := ProblemDocument{
		LP: &types.ProblemLP{
			Cost: []float64{1, 2, 3},
		},
	}

	path := filepath.Join(t.TempDir(), "lp.json")
	require.NoError(t, WriteProblem(path, original))

	decoded, err := ReadProblem(path)
	require.NoError(t, err)
	require.Nil(t, decoded.QP)
	require.NotNil(t, decoded.LP)
	assert.Equal(t, original.LP.Cost, decoded.LP.Cost)
}

func TestReadProblemRejectsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, writeRaw(path, `{"kind":"qp","problem":{"linear":[1,2]}}`))

	_, err := ReadProblem(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quadratic")
}

func TestReadProblemRejectsUnknownKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-kind.json")
	require.NoError(t, writeRaw(path, `{"kind":"socp","problem":{}}`))

	_, err := ReadProblem(path)
	require.Error(t, err)
}

func TestSolutionRoundTrip(t *testing.T) {
	original := types.NewSolution(2, 0, 1)
	original.Primal = []float64{0.5, 0.5}
	original.Status = types.StatusOptimal
	original.ObjectiveValue = -0.25
	original.Iterations = 7

	path := filepath.Join(t.TempDir(), "nested", "solution.json")
	require.NoError(t, WriteSolution(path, original))

	decoded, err := ReadSolution(path)
	require.NoError(t, err)
	assert.Equal(t, original.Primal, decoded.Primal)
	assert.Equal(t, original.Status, decoded.Status)
	assert.Equal(t, original.ObjectiveValue, decoded.ObjectiveValue)
}

func TestReadMPSProblemIsUnsupported(t *testing.T) {
	_, err := ReadMPSProblem("whatever.mps")
	require.Error(t, err)
	var solverErr *types.SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, types.ErrUnsupported, solverErr.Kind)
}
