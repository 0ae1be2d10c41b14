// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions.

package matrix

import (
	"errors"

	"github.com/katalvlaran/lvmath/numeric"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it is easy to grep.
// Sentinels are returned wrapped as "<Op>: <detail>: <sentinel>"; callers
// match them with errors.Is, never by string comparison.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> dimension mismatch -> index.

var (
	// ErrBadShape is returned when a requested shape is invalid: negative
	// rows/cols, a buffer whose length is not rows*cols, or ragged rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At, Row, Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Multiply where a.Cols != b.Rows.
	// It is the same value as numeric.ErrDimensionMismatch.
	ErrDimensionMismatch = numeric.ErrDimensionMismatch

	// ErrNilMatrix indicates that a nil *Dense was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadOption indicates an option value outside its valid domain
	// (e.g. WithWorkers(0)).
	ErrBadOption = errors.New("matrix: invalid option")
)
