// SPDX-License-Identifier: MIT

// Package matrix - Dense construction, safe accessors and rendering.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: constructors validate shape and
//     accessors return errors instead of panicking.
//   - Keep values immutable: every constructor copies its input and every
//     accessor returning a slice returns a copy.
//
// Complexity quicksheet:
//   - New/FromRows/Zeros/Identity: O(r*c); At: O(1); Row/Col: O(c)/O(r);
//     Data/Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/samber/lo"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag for New
	ctxFromRows = "FromRows" // ctor tag for FromRows
	ctxZeros    = "Zeros"    // ctor tag for Zeros
	ctxIdentity = "Identity" // ctor tag for Identity
	ctxAt       = "At"       // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtOpen    = "{"
	_fmtClose   = "}"
	_fmtRowSep  = ", "
	_fmtElemSep = " "
	_fmtDebug   = "Matrix { row: %d, col: %d, data: %s }"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// checkShape reports whether rows×cols is non-negative and its element count
// fits in an int.
func checkShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return cols == 0 || rows <= math.MaxInt/cols
}

// New creates a rows×cols matrix from a row-major buffer.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation. The buffer is copied,
//     so later writes to data by the caller never reach the matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0 and that rows*cols fits in an int.
//   - Stage 2: validate len(data) == rows*cols.
//   - Stage 3: copy data into owned storage.
//
// Behavior highlights:
//   - Zero-sized shapes (0×n, n×0) are legal; they multiply and render normally.
//
// Errors:
//   - ErrBadShape (negative dimension, rows*cols overflow or buffer length mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T numeric.Number](data []T, rows, cols int) (*Dense[T], error) {
	if !checkShape(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d): len(data)=%d: %w", ctxNew, rows, cols, len(data), ErrBadShape)
	}

	buf := make([]T, len(data))
	copy(buf, data)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a matrix from a slice of equally long rows.
// An empty input yields a 0×0 matrix; ragged rows yield ErrBadShape.
// Complexity: O(r*c).
func FromRows[T numeric.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return &Dense[T]{}, nil
	}
	cols := len(rows[0])
	if !lo.EveryBy(rows, func(row []T) bool { return len(row) == cols }) {
		return nil, fmt.Errorf("%s: ragged rows: %w", ctxFromRows, ErrBadShape)
	}

	return &Dense[T]{r: len(rows), c: cols, data: lo.Flatten(rows)}, nil
}

// Zeros returns a rows×cols matrix filled with T's zero value.
// Negative dimensions or a rows*cols overflow yield ErrBadShape.
// Complexity: O(r*c).
func Zeros[T numeric.Number](rows, cols int) (*Dense[T], error) {
	if !checkShape(rows, cols) {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxZeros, rows, cols, ErrBadShape)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) for zero-fill, O(n) for the diagonal.
func Identity[T numeric.Number](n int) (*Dense[T], error) {
	m, err := Zeros[T](n, n)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", ctxIdentity, n, ErrBadShape)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = T(1)
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned unwrapped; public methods add method context.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange, wrapped as "Dense.At(row,col): ...".
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return slices.Clone(m.data[i*m.c : (i+1)*m.c]), nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a copy of the row-major buffer.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy with independent storage.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{r: m.r, c: m.c, data: m.Data()}
}

// Equal reports whether m and o have the same shape and elements.
// Elements are compared with ==, so a float NaN never equals itself.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.r == o.r && m.c == o.c && slices.Equal(m.data, o.data)
}

// String renders the matrix as "{1 2 3, 4 5 6}".
// MAIN DESCRIPTION:
//   - Rows are separated by ", ", elements inside a row by a single space,
//     each element formatted with %v. A 0-row matrix renders "{}".
//
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into a strings.Builder with the delimiters above.
//
// Notes:
//   - The format is relied on by callers; there is no parsing counterpart.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtElemSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// GoString renders the debug form used by %#v:
// "Matrix { row: 2, col: 2, data: {22 28, 49 64} }".
func (m *Dense[T]) GoString() string {
	return fmt.Sprintf(_fmtDebug, m.r, m.c, m.String())
}
