// SPDX-License-Identifier: MIT

package vector

import (
	"errors"

	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	// It is the same value as numeric.ErrDimensionMismatch.
	ErrDimensionMismatch = numeric.ErrDimensionMismatch

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)
