// SPDX-License-Identifier: MIT

// Package matrix: the dense storage type.
// Constructors, accessors and rendering live in impl_dense.go; kernels live
// in impl_linear_algebra.go and impl_parallel.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Dense is an immutable row-major matrix of T.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Every constructor enforces len(data) == r*c, and no method mutates a
// Dense after construction, so a *Dense may be shared freely between
// goroutines.
type Dense[T numeric.Number] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = (*Dense[int])(nil)
	_ fmt.GoStringer = (*Dense[float64])(nil)
)
