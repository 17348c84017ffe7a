// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cvxgo/solver/pkg/jsonio"
)

// NewCheckCommand creates the check subcommand: load and validate a problem
// document without solving it.
func NewCheckCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check --problem <file.json>",
		Short: "Validate a problem document without solving it",
		Long:  `Load a problem document, schema-validate it, and check structural consistency.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(path)
		},
	}

	cmd.Flags().StringVar(&path, "problem", "", "path to the problem JSON document (required)")
	_ = cmd.MarkFlagRequired("problem")

	return cmd
}

func runCheck(path string) error {
	doc, err := jsonio.ReadProblem(path)
	if err != nil {
		return err
	}

	switch {
	case doc.QP != nil:
		if err := doc.QP.Validate(); err != nil {
			return fmt.Errorf("QP validation failed: %w", err)
		}
		fmt.Println("QP validation succeeded.")
	case doc.LP != nil:
		if err := doc.LP.Validate(); err != nil {
			return fmt.Errorf("LP validation failed: %w", err)
		}
		fmt.Println("LP validation succeeded.")
	default:
		return fmt.Errorf("check: problem document carries neither a QP nor an LP problem")
	}
	return nil
}
