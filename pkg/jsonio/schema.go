// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package jsonio reads and writes the persisted problem and solution
// document formats shared by the CLI and GUI front-ends. Documents are
// validated against an embedded JSON Schema before decoding, so a malformed
// file is rejected with a schema error naming the failing path rather than a
// raw decode error.
package jsonio

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/v1/*.json
var schemaFS embed.FS

func loadSchema(name string) (*gojsonschema.Schema, error) {
	data, err := schemaFS.ReadFile("schemas/v1/" + name)
	if err != nil {
		return nil, fmt.Errorf("jsonio: failed to load embedded schema %s: %w", name, err)
	}
	loader := gojsonschema.NewBytesLoader(data)
	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("jsonio: failed to compile embedded schema %s: %w", name, err)
	}
	return schema, nil
}

// validateAgainst checks data against the named embedded schema, returning a
// single error that names every failing path when validation fails.
func validateAgainst(schemaName string, data []byte) error {
	schema, err := loadSchema(schemaName)
	if err != nil {
		return err
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("jsonio: schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		field := e.Field()
		if field == "(root)" {
			field = "document"
		}
		msgs = append(msgs, fmt.Sprintf("  - %s: %s", field, e.Description()))
	}
	return fmt.Errorf("document does not match schema %s:\n%s", schemaName, strings.Join(msgs, "\n"))
}
