// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cvxgo/solver/pkg/jsonio"
	"github.com/cvxgo/solver/pkg/solver"
	"github.com/cvxgo/solver/pkg/types"
)

// BenchOptions holds the flags accepted by the bench subcommand.
type BenchOptions struct {
	Problem string
	Method  string
	Count   int
}

// NewBenchCommand creates the bench subcommand: a thin repeated wrapper over
// solve that reports per-run iteration count, factorization count, and
// elapsed time. It shares the facade with solve; there is no separate
// numerical path here.
func NewBenchCommand() *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench --problem <file.json>",
		Short: "Run a problem through the solver repeatedly and report timing",
		Long: `Solve the same problem document --count times and report iteration
count, factorization count, and elapsed time per run.

EXAMPLES:
  cvxgo bench --problem qp.json
  cvxgo bench --problem qp.json --count 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Problem, "problem", "", "path to the problem JSON document (required)")
	cmd.Flags().StringVar(&opts.Method, "method", "admm", "solve method: admm or ipm")
	cmd.Flags().IntVar(&opts.Count, "count", 1, "number of repeated solves")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

func runBench(opts *BenchOptions) error {
	doc, err := jsonio.ReadProblem(opts.Problem)
	if err != nil {
		return err
	}

	method, err := parseMethod(opts.Method)
	if err != nil {
		return err
	}
	options := types.DefaultSolveOptions()

	count := opts.Count
	if count < 1 {
		count = 1
	}

	fmt.Printf("%-6s %10s %8s %10s %14s\n", "run", "status", "iters", "factors", "elapsed")
	for run := 1; run <= count; run++ {
		s := solver.New().Method(method).Options(options)

		var solution types.Solution
		switch {
		case doc.QP != nil:
			solution, err = s.SolveQP(*doc.QP)
		case doc.LP != nil:
			solution, err = s.SolveLP(*doc.LP)
		default:
			return fmt.Errorf("bench: problem document carries neither a QP nor an LP problem")
		}
		if err != nil {
			return err
		}

		fmt.Printf("%-6d %10s %8d %10d %14s\n",
			run, solution.Status, solution.Iterations, solution.Stats.Factorizations,
			solution.Stats.SolveTime.Round(time.Microsecond))
	}
	return nil
}
