// SPDX-License-Identifier: MIT
// Package matrix provides arithmetic on dense matrices: multiplication,
// element-wise addition, subtraction and product, transpose, scalar scaling
// and matrix-vector product. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical kernels and the operation tags used in errors.
//
// Notes:
//   - Every kernel validates before allocating, so a failed call performs no
//     computation and returns no partial result.
//   - Every kernel allocates a fresh result; operands are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Operation name constants for unified error wrapping.
const (
	opMultiply  = "Multiply"
	opParallel  = "MultiplyParallel"
	opAdd       = "Add"
	opSub       = "Sub"
	opHadamard  = "Hadamard"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: allocate C (Ra × Cb) zero-filled.
//   - Stage 3: i→j→k triple loop; each C[i,j] starts at T's zero value and
//     accumulates A[i,k]*B[k,j] for k = 0..Ca-1 in order.
//
// Behavior highlights:
//   - No sparse or identity shortcuts: every product is evaluated, so float
//     NaN/Inf propagate exactly as the arithmetic defines.
//   - Overflow behavior is that of T's operators; nothing is checked here.
//
// Inputs:
//   - a: left matrix with shape (Ra × Ca).
//   - b: right matrix with shape (Rb × Cb).
//
// Returns:
//   - *Dense[T]: new matrix with shape (Ra × Cb).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (Ca != Rb), wrapped as
//     "Multiply: a.cols=Ca != b.rows=Rb: ...".
//
// Complexity:
//   - Time O(Ra*Ca*Cb), Space O(Ra*Cb).
func Multiply[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	mulRows(a, b, res, 0, a.r)

	return res, nil
}

// mulRows fills rows [lo, hi) of res = a × b.
// Shapes are assumed validated; res is assumed a.r × b.c.
func mulRows[T numeric.Number](a, b, res *Dense[T], lo, hi int) {
	var (
		i, j, k    int
		rowA, rowR int
		acc        T
	)
	for i = lo; i < hi; i++ {
		rowA = i * a.c
		rowR = i * b.c
		for j = 0; j < b.c; j++ {
			var zero T
			acc = zero
			for k = 0; k < a.c; k++ {
				acc += a.data[rowA+k] * b.data[k*b.c+j]
			}
			res.data[rowR+j] = acc
		}
	}
}

// elementwise computes out[i] = f(a[i], b[i]) over two same-shape operands.
// Internal helper for Add/Sub/Hadamard to share validation and allocation.
func elementwise[T numeric.Number](a, b *Dense[T], opTag string, f func(x, y T) T) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data))}
	for i := range a.data {
		res.data[i] = f(a.data[i], b.data[i])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Add[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opAdd, func(x, y T) T { return x + y })
}

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Sub[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opSub, func(x, y T) T { return x - y })
}

// Hadamard computes the element-wise product C = A ⊙ B.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ).
// Complexity: O(r*c).
func Hadamard[T numeric.Number](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, opHadamard, func(x, y T) T { return x * y })
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// Complexity: O(r*c).
func Scale[T numeric.Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data))}
	for i, v := range m.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose[T numeric.Number](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order; y[i] accumulates from T's zero value.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec[T numeric.Number](m *Dense[T], x []T) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]T, m.r)
	var i, j, base int
	var acc T
	for i = 0; i < m.r; i++ {
		var zero T
		acc = zero
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
