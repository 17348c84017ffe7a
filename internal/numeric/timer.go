// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package numeric

import "time"

// Timer accumulates active wall-clock time across start/stop/resume cycles,
// so a solver can account only for time spent actually iterating.
type Timer struct {
	start   time.Time
	elapsed time.Duration
	running bool
}

// StartTimer returns a running timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now(), running: true}
}

// Stop freezes the accumulated elapsed time. A no-op if already stopped.
func (t *Timer) Stop() {
	if t.running {
		t.elapsed += time.Since(t.start)
		t.running = false
	}
}

// Resume restarts accounting from now. A no-op if already running.
func (t *Timer) Resume() {
	if !t.running {
		t.start = time.Now()
		t.running = true
	}
}

// Elapsed returns the total active duration. Monotonically nondecreasing
// across queries within one active period.
func (t *Timer) Elapsed() time.Duration {
	if t.running {
		return t.elapsed + time.Since(t.start)
	}
	return t.elapsed
}
