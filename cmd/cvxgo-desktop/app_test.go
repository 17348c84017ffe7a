// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package main

import (
	"testing"

	"github.com/cvxgo/solver/pkg/types"
)

func TestSolveProblemQP(t *testing.T) {
	app := &App{}

	document := `{"kind":"qp","problem":{` +
		`"quadratic":{"nrows":2,"ncols":2,"indptr":[0,1,2],"indices":[0,1],"data":[4,4]},` +
		`"linear":[-1,-1],` +
		`"bounds":{"lower":[0,0],"upper":[1,1]}}}`

	response := app.SolveProblem(SolveRequest{Document: document})
	if !response.Success {
		t.Fatalf("expected success but got error: %s", response.Error)
	}
	if response.Solution.Status != types.StatusOptimal {
		t.Errorf("expected Optimal, got %s", response.Solution.Status)
	}
}

func TestSolveProblemRejectsMalformedDocument(t *testing.T) {
	app := &App{}

	response := app.SolveProblem(SolveRequest{Document: `{"kind":"qp","problem":{"linear":[1]}}`})
	if response.Success {
		t.Fatal("expected a schema validation failure")
	}
}

func TestCheckProblemLP(t *testing.T) {
	app := &App{}

	document := `{"kind":"lp","problem":{"cost":[1,2]}}`
	response := app.CheckProblem(document)
	if !response.Valid {
		t.Fatalf("expected valid, got message: %s", response.Message)
	}
}

func TestPendingOpenFileClearsAfterRead(t *testing.T) {
	app := &App{pendingOpen: "problem.json"}

	if got := app.PendingOpenFile(); got != "problem.json" {
		t.Fatalf("expected problem.json, got %s", got)
	}
	if got := app.PendingOpenFile(); got != "" {
		t.Fatalf("expected empty on second read, got %s", got)
	}
}
