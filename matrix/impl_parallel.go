// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"github.com/katalvlaran/lvmath/numeric"
	"golang.org/x/sync/errgroup"
)

// MultiplyParallel computes C = A × B like Multiply, splitting the rows of C
// into contiguous chunks computed by concurrent goroutines.
// Implementation:
//   - Stage 1: resolve options; validate operands exactly as Multiply does.
//   - Stage 2: size chunks as ceil(Ra/workers), never below MinRowsPerTask.
//   - Stage 3: run one errgroup task per chunk with SetLimit(workers); each
//     task re-checks the context before touching its rows.
//
// Behavior highlights:
//   - Bit-identical to Multiply: every C[i,j] is accumulated by one goroutine
//     in the same k order. Tasks write disjoint row ranges of C.
//   - No partial result: on cancellation the error is returned and C dropped.
//
// Errors:
//   - ErrBadOption, ErrNilMatrix, ErrDimensionMismatch (wrapped with
//     "MultiplyParallel"), or the context error (context.Canceled /
//     context.DeadlineExceeded, also wrapped).
//
// Complexity:
//   - Time O(Ra*Ca*Cb / workers) wall clock, Space O(Ra*Cb).
func MultiplyParallel[T numeric.Number](ctx context.Context, a, b *Dense[T], opts ...Option) (*Dense[T], error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opParallel, err)
	}
	if err = ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opParallel, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, matrixErrorf(opParallel, err)
	}

	res := &Dense[T]{r: a.r, c: b.c, data: make([]T, a.r*b.c)}
	chunk := rowChunk(a.r, o.workers, o.minRowsPerTask)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for lo := 0; lo < a.r; lo += chunk {
		hi := min(lo+chunk, a.r)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			mulRows(a, b, res, lo, hi)

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, matrixErrorf(opParallel, err)
	}

	return res, nil
}

// rowChunk returns the number of rows per task: ceil(rows/workers), at least
// minRows and at least 1.
func rowChunk(rows, workers, minRows int) int {
	chunk := (rows + workers - 1) / workers

	return max(chunk, minRows, 1)
}
