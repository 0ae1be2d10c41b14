// Package matrix provides a generic, immutable, row-major dense matrix and the
// arithmetic defined on it.
//
// The matrix package provides:
//
//   - Dense[T], generic over numeric.Number (integers, floats, complex).
//   - Multiply (aliases Mul, Product): C = A × B with an O(Ra·Ca·Cb) triple
//     loop; fails with ErrDimensionMismatch when A.Cols() != B.Rows().
//   - MultiplyParallel: the same result computed by row chunks over an
//     errgroup, bounded by WithWorkers and cancellable through a context.
//   - Element-wise Add, Sub, Hadamard, plus Scale, Transpose and MatVec.
//   - String ("{1 2 3, 4 5 6}") and GoString / %#v
//     ("Matrix { row: 2, col: 3, data: {1 2 3, 4 5 6} }") renderings.
//
// A Dense never changes after construction. Constructors copy their input
// and every kernel allocates a fresh result, so matrices may be read from any
// number of goroutines without synchronization.
//
// Errors are package sentinels wrapped with an operation tag; match them with
// errors.Is. ErrDimensionMismatch is shared with the vector package through
// numeric.ErrDimensionMismatch.
package matrix
