// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Operation tags for error wrapping.
const (
	opDot      = "Dot"
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opScale    = "Scale"
	opSum      = "Sum"
)

// validatePair checks both operands are non-nil and equally long.
func validatePair[T numeric.Number](op string, a, b *Vector[T]) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", op, ErrNilVector)
	}
	if len(a.data) != len(b.data) {
		return fmt.Errorf("%s: len(a)=%d != len(b)=%d: %w", op, len(a.data), len(b.data), ErrDimensionMismatch)
	}

	return nil
}

// Dot returns Σ a[i]*b[i].
//
// The sum starts at T's zero value and accumulates left to right. Neither
// operand is modified. Overflow and rounding follow T's operators.
//
// Errors: ErrNilVector, ErrDimensionMismatch (len(a) != len(b)), checked
// before any arithmetic.
// Complexity: O(n).
func Dot[T numeric.Number](a, b *Vector[T]) (T, error) {
	var acc T
	if err := validatePair(opDot, a, b); err != nil {
		return acc, err
	}
	for i := range a.data {
		acc += a.data[i] * b.data[i]
	}

	return acc, nil
}

// zipWith computes out[i] = f(a[i], b[i]) after validating the pair.
func zipWith[T numeric.Number](op string, a, b *Vector[T], f func(x, y T) T) (*Vector[T], error) {
	if err := validatePair(op, a, b); err != nil {
		return nil, err
	}
	out := make([]T, len(a.data))
	for i := range a.data {
		out[i] = f(a.data[i], b.data[i])
	}

	return &Vector[T]{data: out}, nil
}

// Add returns the element-wise sum a + b.
func Add[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opAdd, a, b, func(x, y T) T { return x + y })
}

// Sub returns the element-wise difference a - b.
func Sub[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opSub, a, b, func(x, y T) T { return x - y })
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard[T numeric.Number](a, b *Vector[T]) (*Vector[T], error) {
	return zipWith(opHadamard, a, b, func(x, y T) T { return x * y })
}

// Scale returns alpha*v.
func Scale[T numeric.Number](v *Vector[T], alpha T) (*Vector[T], error) {
	if v == nil {
		return nil, fmt.Errorf("%s: %w", opScale, ErrNilVector)
	}
	out := make([]T, len(v.data))
	for i, x := range v.data {
		out[i] = alpha * x
	}

	return &Vector[T]{data: out}, nil
}

// Sum returns the sum of all elements, left to right from T's zero value.
func Sum[T numeric.Number](v *Vector[T]) (T, error) {
	var acc T
	if v == nil {
		return acc, fmt.Errorf("%s: %w", opSum, ErrNilVector)
	}
	for _, x := range v.data {
		acc += x
	}

	return acc, nil
}
