// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package cobra wires the solver facade into a cobra-based command line:
// solve, check, bench, and version subcommands.
package cobra

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set by internal/cli at startup from internal/version)
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cvxgo",
		Short: "cvxgo - a convex QP/LP solver",
		Long: `cvxgo solves convex quadratic and linear programs with box and
linear constraints using an ADMM (Alternating Direction Method of
Multipliers) engine with Ruiz diagonal equilibration and dense LDLt
factorization of the KKT system.

Problems are read from a persisted JSON document (schema-validated before
decoding) and solutions are written back the same way, so the CLI and the
desktop front-end share one on-disk format.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		NewSolveCommand(),
		NewCheckCommand(),
		NewBenchCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the CLI application.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
