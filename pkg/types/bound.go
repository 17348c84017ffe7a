// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

import (
	"encoding/json"
	"fmt"
	"math"
)

// BoundValue is a float64 that marshals ±Inf using the tokens "Infinity" and
// "-Infinity" rather than null, so that unbounded box constraints round-trip
// through JSON without losing the distinction between "unbounded" and "missing".
type BoundValue float64

// MarshalJSON implements the json.Marshaler interface.
func (b BoundValue) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(b), 1):
		return json.Marshal("Infinity")
	case math.IsInf(float64(b), -1):
		return json.Marshal("-Infinity")
	default:
		return json.Marshal(float64(b))
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *BoundValue) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err == nil {
		switch token {
		case "Infinity":
			*b = BoundValue(math.Inf(1))
			return nil
		case "-Infinity":
			*b = BoundValue(math.Inf(-1))
			return nil
		default:
			return fmt.Errorf("unrecognised bound token %q", token)
		}
	}

	var val float64
	if err := json.Unmarshal(data, &val); err != nil {
		return err
	}
	*b = BoundValue(val)
	return nil
}

// Float64 returns the underlying float64 value.
func (b BoundValue) Float64() float64 {
	return float64(b)
}

// BoundValues converts a slice of float64 to BoundValue for JSON encoding.
func BoundValues(values []float64) []BoundValue {
	out := make([]BoundValue, len(values))
	for i, v := range values {
		out[i] = BoundValue(v)
	}
	return out
}

// FloatsFromBounds converts a slice of BoundValue back to float64.
func FloatsFromBounds(values []BoundValue) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
