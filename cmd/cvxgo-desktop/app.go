// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cvxgo/solver/internal/version"
	"github.com/cvxgo/solver/pkg/jsonio"
	"github.com/cvxgo/solver/pkg/solver"
	"github.com/cvxgo/solver/pkg/types"
)

// App is the struct bound into the Wails runtime; every exported method is
// callable from the frontend.
type App struct {
	ctx         context.Context
	pendingOpen string
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved so later
// calls can use the Wails runtime (dialogs, events) if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// PendingOpenFile returns the path passed via -open, if any, so the
// frontend can load it once the window is ready. It is cleared after one read.
func (a *App) PendingOpenFile() string {
	path := a.pendingOpen
	a.pendingOpen = ""
	return path
}

// SolveRequest is the payload the frontend sends to run a solve.
type SolveRequest struct {
	Document      string  `json:"document"`
	Method        string  `json:"method,omitempty"`
	Tolerance     float64 `json:"tolerance,omitempty"`
	MaxIterations int     `json:"maxIterations,omitempty"`
}

// SolveResponse mirrors the teacher's Success/Error/Result envelope so a
// failed solve reaches the frontend as data, not a thrown JS exception.
type SolveResponse struct {
	Success  bool            `json:"success"`
	Error    string          `json:"error,omitempty"`
	Solution *types.Solution `json:"solution,omitempty"`
}

// SolveProblem decodes a problem document supplied as a JSON string,
// schema-validates it, solves it, and returns the solution.
func (a *App) SolveProblem(req SolveRequest) SolveResponse {
	doc, err := jsonio.DecodeProblem([]byte(req.Document))
	if err != nil {
		return SolveResponse{Success: false, Error: err.Error()}
	}

	options := types.DefaultSolveOptions()
	if req.Tolerance > 0 {
		options.Tolerance = req.Tolerance
	}
	if req.MaxIterations > 0 {
		options.MaxIterations = req.MaxIterations
	}
	method := types.MethodADMM
	if req.Method == string(types.MethodInteriorPoint) {
		method = types.MethodInteriorPoint
	}

	s := solver.New().Method(method).Options(options)

	var solution types.Solution
	switch {
	case doc.QP != nil:
		solution, err = s.SolveQP(*doc.QP)
	case doc.LP != nil:
		solution, err = s.SolveLP(*doc.LP)
	default:
		return SolveResponse{Success: false, Error: "document carries neither a QP nor an LP problem"}
	}
	if err != nil {
		return SolveResponse{Success: false, Error: err.Error()}
	}
	return SolveResponse{Success: true, Solution: &solution}
}

// CheckResponse reports whether a document is structurally valid.
type CheckResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// CheckProblem validates a problem document without solving it.
func (a *App) CheckProblem(document string) CheckResponse {
	doc, err := jsonio.DecodeProblem([]byte(document))
	if err != nil {
		return CheckResponse{Valid: false, Message: err.Error()}
	}
	switch {
	case doc.QP != nil:
		if err := doc.QP.Validate(); err != nil {
			return CheckResponse{Valid: false, Message: err.Error()}
		}
		return CheckResponse{Valid: true, Message: "QP validation succeeded."}
	case doc.LP != nil:
		if err := doc.LP.Validate(); err != nil {
			return CheckResponse{Valid: false, Message: err.Error()}
		}
		return CheckResponse{Valid: true, Message: "LP validation succeeded."}
	default:
		return CheckResponse{Valid: false, Message: "document carries neither a QP nor an LP problem"}
	}
}

// OpenProblemFile reads a problem document from disk and returns it as a
// JSON string for the frontend to display or re-submit to SolveProblem.
func (a *App) OpenProblemFile(path string) (string, error) {
	doc, err := jsonio.ReadProblem(path)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to re-encode problem: %w", err)
	}
	return string(data), nil
}

// SaveSolutionFile writes a solution, supplied as a JSON string, to disk.
func (a *App) SaveSolutionFile(path string, solutionJSON string) error {
	var solution types.Solution
	if err := json.Unmarshal([]byte(solutionJSON), &solution); err != nil {
		return fmt.Errorf("failed to decode solution: %w", err)
	}
	return jsonio.WriteSolution(path, solution)
}

// Version returns the running build's version string for the frontend's
// about dialog.
func (a *App) Version() string {
	return version.Get().String()
}
