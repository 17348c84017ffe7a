// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/cvxgo/solver/pkg/types"
)

// emitSolution prints solution to stdout in the requested format.
func emitSolution(solution types.Solution, format string) error {
	switch strings.ToLower(format) {
	case "json":
		data, err := json.MarshalIndent(solution, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal solution: %w", err)
		}
		fmt.Println(string(data))
	default:
		printSolutionTable(solution)
	}
	return nil
}

func printSolutionTable(solution types.Solution) {
	fmt.Println("\nSolution summary:")
	summary := tablewriter.NewTable(os.Stdout)
	summary.Header([]string{"Field", "Value"})
	summary.Append([]string{"status", string(solution.Status)})
	summary.Append([]string{"objective", fmt.Sprintf("%.6f", solution.ObjectiveValue)})
	summary.Append([]string{"iterations", strconv.Itoa(solution.Iterations)})
	summary.Append([]string{"factorizations", strconv.Itoa(solution.Stats.Factorizations)})
	summary.Append([]string{"linear_solves", strconv.Itoa(solution.Stats.LinearSolves)})
	summary.Append([]string{"solve_time", solution.Stats.SolveTime.String()})
	_ = summary.Render()

	fmt.Println("\nPrimal variables:")
	primal := tablewriter.NewTable(os.Stdout)
	primal.Header([]string{"Index", "Value"})
	for i, v := range solution.Primal {
		primal.Append([]string{strconv.Itoa(i), fmt.Sprintf("%.6f", v)})
	}
	_ = primal.Render()
}
