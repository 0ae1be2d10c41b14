// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the parallel kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic results: options change scheduling only, never the
//     arithmetic order inside an output element.
//   - No global state.
//   - Invalid values are reported as ErrBadOption by the consuming call
//     instead of panicking at construction.
package matrix

import (
	"fmt"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers requests runtime.GOMAXPROCS(0) goroutines.
	DefaultWorkers = 0

	// DefaultMinRowsPerTask is the smallest row chunk handed to one goroutine.
	// Smaller chunks cost more in scheduling than they gain in parallelism.
	DefaultMinRowsPerTask = 16
)

// Options holds the effective configuration of a parallel kernel.
// Fields are unexported; build values with NewOptions and WithX setters.
type Options struct {
	workers        int  // max concurrent goroutines
	workersSet     bool // WithWorkers was applied
	minRowsPerTask int  // lower bound on rows per task
}

// Option mutates Options during resolution.
type Option func(*Options)

// WithWorkers limits the number of goroutines running concurrently.
// n must be > 0; otherwise the consuming call fails with ErrBadOption.
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers, o.workersSet = n, true }
}

// WithMinRowsPerTask sets the smallest number of result rows computed by one
// task. n must be > 0; otherwise the consuming call fails with ErrBadOption.
func WithMinRowsPerTask(n int) Option {
	return func(o *Options) { o.minRowsPerTask = n }
}

// Workers returns the effective worker limit.
func (o Options) Workers() int { return o.workers }

// MinRowsPerTask returns the effective minimum chunk size.
func (o Options) MinRowsPerTask() int { return o.minRowsPerTask }

// NewOptions resolves option setters against documented defaults.
// Implementation:
//   - Stage 1: start from defaults.
//   - Stage 2: apply opts in order; last-writer-wins.
//   - Stage 3: validate and finalize derived values.
//
// Errors:
//   - ErrBadOption when a setter stored a value outside its domain.
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(opts).
func NewOptions(opts ...Option) (Options, error) {
	return gatherOptions(opts...)
}

// gatherOptions applies setters on top of defaults and finalizes invariants.
func gatherOptions(user ...Option) (Options, error) {
	o := Options{
		workers:        DefaultWorkers,
		minRowsPerTask: DefaultMinRowsPerTask,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	if err := finalizeOptions(&o); err != nil {
		return Options{}, err
	}

	return o, nil
}

// finalizeOptions validates values and derives the effective worker count.
// This function MUST be called after applying all Option setters.
func finalizeOptions(o *Options) error {
	if o.workersSet && o.workers <= 0 {
		return fmt.Errorf("WithWorkers(%d): %w", o.workers, ErrBadOption)
	}
	if o.minRowsPerTask <= 0 {
		return fmt.Errorf("WithMinRowsPerTask(%d): %w", o.minRowsPerTask, ErrBadOption)
	}
	if !o.workersSet {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return nil
}
