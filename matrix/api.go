// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points with familiar names for the canonical kernels.
//   - Avoid any logic duplication — each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

import "github.com/katalvlaran/lvmath/numeric"

// NewZeros returns a new zero-initialized matrix of size rows×cols.
// It is a thin alias of Zeros with an intention-revealing name.
func NewZeros[T numeric.Number](rows, cols int) (*Dense[T], error) { return Zeros[T](rows, cols) }

// NewIdentity returns I_n (n×n identity).
func NewIdentity[T numeric.Number](n int) (*Dense[T], error) { return Identity[T](n) }

// Mul is an alias for Multiply.
func Mul[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Multiply(a, b) }

// Product is an alias for Multiply, mirroring Sum/Diff naming.
func Product[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Multiply(a, b) }

// Sum returns A + B. See Add.
func Sum[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff returns A - B. See Sub.
func Diff[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// ScaleBy returns alpha*m. See Scale.
func ScaleBy[T numeric.Number](m *Dense[T], alpha T) (*Dense[T], error) { return Scale(m, alpha) }

// MatVecMul returns m*x. See MatVec.
func MatVecMul[T numeric.Number](m *Dense[T], x []T) ([]T, error) { return MatVec(m, x) }
