// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cvxgo/solver/pkg/security"
	"github.com/cvxgo/solver/pkg/types"
)

// WriteSolution validates path, creates any missing parent directory, and
// writes solution as pretty-printed JSON.
func WriteSolution(path string, solution types.Solution) error {
	if parent := filepath.Dir(path); parent != "" && parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("jsonio: failed to create parent directory %s: %w", parent, err)
		}
	}
	if err := security.ValidateOutputPath(path); err != nil {
		return fmt.Errorf("jsonio: %w", err)
	}
	data, err := json.MarshalIndent(solution, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonio: failed to encode solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("jsonio: failed to write %s: %w", path, err)
	}
	return nil
}

// ReadSolution validates and decodes the solution document at path.
func ReadSolution(path string) (types.Solution, error) {
	var solution types.Solution
	if err := security.ValidateInputPath(path); err != nil {
		return solution, fmt.Errorf("jsonio: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return solution, fmt.Errorf("jsonio: failed to read %s: %w", path, err)
	}
	if err := validateAgainst("solution.schema.json", data); err != nil {
		return solution, fmt.Errorf("jsonio: %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &solution); err != nil {
		return solution, fmt.Errorf("jsonio: failed to decode %s: %w", path, err)
	}
	return solution, nil
}
