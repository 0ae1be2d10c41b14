// SPDX-License-Identifier: MIT

// Package numeric declares the element constraint shared by the matrix and
// vector packages, together with the single arithmetic error they report.
//
// Every type admitted by Number supports +, +=, * and has a usable zero value
// (var zero T). Overflow and rounding follow Go's operators for that type:
// kernels built on Number never check for overflow themselves.
package numeric

import "errors"

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Complex is a constraint for complex types.
type Complex interface {
	~complex64 | ~complex128
}

// Number is the element constraint for dense matrices and vectors.
type Number interface {
	Integers | Floats | Complex
}

// ErrDimensionMismatch indicates incompatible operand shapes: inner matrix
// dimensions that differ, or vectors of different lengths.
// Packages re-export this value; match it with errors.Is.
var ErrDimensionMismatch = errors.New("numeric: dimension mismatch")
