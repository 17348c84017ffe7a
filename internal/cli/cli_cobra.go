// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package cli wires version metadata into the cobra command tree and runs it.
package cli

import (
	"github.com/cvxgo/solver/internal/cobra"
	"github.com/cvxgo/solver/internal/version"
)

// RunCobra executes the Cobra-based CLI application.
func RunCobra() {
	info := version.Get()
	cobra.Version = info.Short()
	cobra.BuildTime = info.BuildDate
	cobra.Commit = info.GitCommit

	cobra.Execute()
}
