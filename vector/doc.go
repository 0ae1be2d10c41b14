// Package vector provides a generic, immutable numeric vector and the
// dimension-checked dot product.
//
// A Vector exposes its elements read-only: Len, At, All (an iterator) and
// Values (a copy). Dot borrows its operands; neither is modified.
//
//	a := vector.Of(1, 2, 3)
//	b := vector.Of(4, 5, 6)
//	d, err := vector.Dot(a, b) // 32, nil
//
// Operands of different lengths fail with ErrDimensionMismatch, the same
// value as numeric.ErrDimensionMismatch and matrix.ErrDimensionMismatch.
package vector
