// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cvxgo/solver/pkg/jsonio"
	"github.com/cvxgo/solver/pkg/solver"
	"github.com/cvxgo/solver/pkg/types"
)

// SolveOptions holds the flags accepted by the solve subcommand.
type SolveOptions struct {
	Problem   string
	Method    string
	Tolerance float64
	MaxIters  int
	TimeLimit int
	Output    string
	Format    string
}

// NewSolveCommand creates the solve subcommand.
func NewSolveCommand() *cobra.Command {
	opts := &SolveOptions{}

	cmd := &cobra.Command{
		Use:   "solve --problem <file.json>",
		Short: "Solve a persisted QP or LP problem",
		Long: `Read a problem document, run the configured method against it, and
print (or write) the resulting solution.

EXAMPLES:
  cvxgo solve --problem qp.json
  cvxgo solve --problem lp.json --method admm --tol 1e-8 --output solution.json
  cvxgo solve --problem qp.json --format table`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Problem, "problem", "", "path to the problem JSON document (required)")
	cmd.Flags().StringVar(&opts.Method, "method", "admm", "solve method: admm or ipm")
	cmd.Flags().Float64Var(&opts.Tolerance, "tol", 0, "override the convergence tolerance")
	cmd.Flags().IntVar(&opts.MaxIters, "max-iters", 0, "override the iteration budget")
	cmd.Flags().IntVar(&opts.TimeLimit, "time-limit", 0, "override the wall-clock budget, in seconds")
	cmd.Flags().StringVar(&opts.Output, "output", "", "write the solution to this path in addition to stdout")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "stdout format: table or json")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

// parseMethod maps a --method flag value to its types.Method constant.
func parseMethod(raw string) (types.Method, error) {
	switch {
	case raw == "" || strings.EqualFold(raw, "admm"):
		return types.MethodADMM, nil
	case strings.EqualFold(raw, "ipm"):
		return types.MethodInteriorPoint, nil
	default:
		return "", fmt.Errorf("unrecognised method %q: want admm or ipm", raw)
	}
}

func runSolve(opts *SolveOptions) error {
	doc, err := jsonio.ReadProblem(opts.Problem)
	if err != nil {
		return err
	}

	options := types.DefaultSolveOptions()
	if opts.Tolerance > 0 {
		options.Tolerance = opts.Tolerance
	}
	if opts.MaxIters > 0 {
		options.MaxIterations = opts.MaxIters
	}
	if opts.TimeLimit > 0 {
		options.MaxTime = time.Duration(opts.TimeLimit) * time.Second
	}

	method, err := parseMethod(opts.Method)
	if err != nil {
		return err
	}

	s := solver.New().Method(method).Options(options)

	var solution types.Solution
	switch {
	case doc.QP != nil:
		solution, err = s.SolveQP(*doc.QP)
	case doc.LP != nil:
		solution, err = s.SolveLP(*doc.LP)
	default:
		return fmt.Errorf("solve: problem document carries neither a QP nor an LP problem")
	}
	if err != nil {
		return err
	}

	if err := emitSolution(solution, opts.Format); err != nil {
		return err
	}
	if opts.Output != "" {
		if err := jsonio.WriteSolution(opts.Output, solution); err != nil {
			return err
		}
		fmt.Printf("\nSolution written to: %s\n", filepath.Clean(opts.Output))
	}
	return nil
}
