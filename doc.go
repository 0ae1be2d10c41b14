// Package lvmath is a small toolkit of generic numeric and concurrency
// primitives.
//
// Under the hood, everything is organized under four subpackages:
//
//	numeric/ — the Number element constraint and ErrDimensionMismatch
//	matrix/  — immutable row-major Dense[T], Multiply, MultiplyParallel,
//	           element-wise kernels, "{1 2 3, 4 5 6}" rendering
//	vector/  — immutable Vector[T], Dot and element-wise kernels
//	metrics/ — Metrics, a sharded concurrent map of int64 counters
//
// Quick example:
//
//	a, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := matrix.New([]int{1, 2, 3, 4, 5, 6}, 3, 2)
//	c, _ := matrix.Multiply(a, b)
//	fmt.Println(c) // {22 28, 49 64}
//
//	d, _ := vector.Dot(vector.Of(1, 2, 3), vector.Of(4, 5, 6)) // 32
//
//	m := metrics.New()
//	m.Inc("x")
//	fmt.Print(m) // x: 1
package lvmath
