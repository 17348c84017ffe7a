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
	"strings"

	"github.com/cvxgo/solver/pkg/security"
	"github.com/cvxgo/solver/pkg/types"
)

// ProblemDocument is the persisted, tagged-union form of a problem. Exactly
// one of QP or LP is populated; the wire form carries the discriminator as
// a "kind" field ("qp" or "lp").
type ProblemDocument struct {
	QP *types.ProblemQP
	LP *types.ProblemLP
}

// documentKind mirrors the wire-level "kind" values. These are lowercase
// tokens ("qp", "lp"), distinct from types.Method's solver-method tokens.
type documentKind string

const (
	kindQP documentKind = "qp"
	kindLP documentKind = "lp"
)

type wireDocument struct {
	Kind    documentKind     `json:"kind"`
	Problem *json.RawMessage `json:"problem"`
}

// MarshalJSON implements the discriminated-union encoding: {"kind": "...", "problem": {...}}.
func (d ProblemDocument) MarshalJSON() ([]byte, error) {
	switch {
	case d.QP != nil:
		payload, err := json.Marshal(d.QP)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(payload)
		return json.Marshal(wireDocument{Kind: kindQP, Problem: &raw})
	case d.LP != nil:
		payload, err := json.Marshal(d.LP)
		if err != nil {
			return nil, err
		}
		raw := json.RawMessage(payload)
		return json.Marshal(wireDocument{Kind: kindLP, Problem: &raw})
	default:
		return nil, fmt.Errorf("jsonio: document carries neither a QP nor an LP problem")
	}
}

// UnmarshalJSON implements the discriminated-union decoding.
func (d *ProblemDocument) UnmarshalJSON(data []byte) error {
	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if wire.Problem == nil {
		return fmt.Errorf("jsonio: document is missing the \"problem\" field")
	}
	switch wire.Kind {
	case kindQP:
		var qp types.ProblemQP
		if err := json.Unmarshal(*wire.Problem, &qp); err != nil {
			return fmt.Errorf("jsonio: decoding qp problem: %w", err)
		}
		d.QP = &qp
		d.LP = nil
	case kindLP:
		var lp types.ProblemLP
		if err := json.Unmarshal(*wire.Problem, &lp); err != nil {
			return fmt.Errorf("jsonio: decoding lp problem: %w", err)
		}
		d.LP = &lp
		d.QP = nil
	default:
		return fmt.Errorf("jsonio: unrecognised document kind %q", wire.Kind)
	}
	return nil
}

// ReadProblem validates and decodes the problem document at path. A ".mps"
// extension is recognized and routed to ReadMPSProblem rather than guessed
// at as JSON.
func ReadProblem(path string) (ProblemDocument, error) {
	var doc ProblemDocument
	if strings.EqualFold(filepath.Ext(path), ".mps") {
		return ReadMPSProblem(path)
	}
	if err := security.ValidateInputPath(path); err != nil {
		return doc, fmt.Errorf("jsonio: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("jsonio: failed to read %s: %w", path, err)
	}
	doc, err = DecodeProblem(data)
	if err != nil {
		return doc, fmt.Errorf("jsonio: %s: %w", path, err)
	}
	return doc, nil
}

// DecodeProblem schema-validates and decodes a problem document already in
// memory (e.g. received from a GUI front-end rather than read from disk).
func DecodeProblem(data []byte) (ProblemDocument, error) {
	var doc ProblemDocument
	if err := validateAgainst("problem.schema.json", data); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to decode problem document: %w", err)
	}
	return doc, nil
}

// WriteProblem validates path and writes doc as pretty-printed JSON.
func WriteProblem(path string, doc ProblemDocument) error {
	if err := security.ValidateOutputPath(path); err != nil {
		return fmt.Errorf("jsonio: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonio: failed to encode problem: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("jsonio: failed to write %s: %w", path, err)
	}
	return nil
}

// ReadMPSProblem is a placeholder for the MPS file format. MPS parsing is
// out of scope for this core; callers get an explicit Unsupported error
// rather than a silent no-op.
func ReadMPSProblem(path string) (ProblemDocument, error) {
	return ProblemDocument{}, types.NewUnsupportedError("mps")
}
