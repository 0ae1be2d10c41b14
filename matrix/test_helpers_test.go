// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Bridge to gonum/mat so float64 results can be checked against an
//     independent implementation.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
	"gonum.org/v1/gonum/mat"
)

// mustNew builds a matrix from a row-major buffer or fails the test.
func mustNew[T numeric.Number](tb testing.TB, data []T, r, c int) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.New(data, r, c)
	if err != nil {
		tb.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return m
}

// randIntDense fills an r×c float64 matrix with small integers in [-9, 9].
// Integer-valued entries keep every partial sum exact, so results from
// different summation orders compare with ==.
func randIntDense(tb testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}

	return mustNew(tb, data, r, c)
}

// toGonum copies m into a *mat.Dense. Shapes must be non-empty.
func toGonum(m *matrix.Dense[float64]) *mat.Dense {
	r, c := m.Shape()

	return mat.NewDense(r, c, m.Data())
}

// shapeCase is a conformable (m×n)·(n×p) triple.
type shapeCase struct{ m, n, p int }

// conformableShapes covers square, tall, wide, vector-like and 1×1 products.
var conformableShapes = []shapeCase{
	{1, 1, 1},
	{2, 3, 2},
	{3, 2, 3},
	{1, 5, 1},
	{5, 1, 5},
	{4, 4, 4},
	{7, 3, 11},
	{17, 9, 5},
	{40, 33, 21},
}
