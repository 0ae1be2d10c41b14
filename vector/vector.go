// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
)

// Vector is an immutable sequence of T. The zero value and a nil *Vector both
// read as empty through the accessors; arithmetic rejects nil with ErrNilVector.
type Vector[T numeric.Number] struct {
	data []T
}

// New returns a vector holding a copy of data.
func New[T numeric.Number](data []T) *Vector[T] {
	return &Vector[T]{data: slices.Clone(data)}
}

// Of returns a vector of the given values.
func Of[T numeric.Number](values ...T) *Vector[T] {
	return New(values)
}

// elems returns the backing slice; nil for a nil receiver.
func (v *Vector[T]) elems() []T {
	if v == nil {
		return nil
	}

	return v.data
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.elems()) }

// At returns element i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	data := v.elems()
	if i < 0 || i >= len(data) {
		var zero T
		return zero, fmt.Errorf("Vector.At(%d): len=%d: %w", i, len(data), ErrOutOfRange)
	}

	return data[i], nil
}

// All yields (index, value) pairs in order without copying the backing data.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.elems())
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.elems())
}

// Equal reports whether v and o hold the same elements (compared with ==).
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}

	return slices.Equal(v.data, o.data)
}

// String renders the vector as "[1 2 3]".
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.elems() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')

	return b.String()
}
