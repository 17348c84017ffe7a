// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

//go:build !desktop && !wails

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "ERROR: this binary must be built with the 'desktop' or 'wails' build tag")
	fmt.Fprintln(os.Stderr, "Build with: go build -tags desktop")
	fmt.Fprintln(os.Stderr, "Or use: wails build")
	os.Exit(1)
}
