// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape checks here.
//  - Return sentinels wrapped only with the validator tag, so call sites can
//    add their operation tag uniformly. ValidateMulCompatible is the exception:
//    its mismatch message carries no tag, so Multiply reports
//    "Multiply: a.cols=3 != b.rows=2: numeric: dimension mismatch".
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil -> Shape.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every matrix reference is non-nil.
//
// Returns ErrNilMatrix if any operand is nil.
// Complexity: O(len(ms)).
func ValidateNotNil[T numeric.Number](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (naming the differing axis).
// Complexity: O(1).
func ValidateSameShape[T numeric.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: a.rows=%d != b.rows=%d", a.r, b.r), ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: a.cols=%d != b.cols=%d", a.c, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
//
// Errors: ErrNilMatrix (tagged ValidateNotNil), ErrDimensionMismatch as the
// untagged "a.cols=Ca != b.rows=Rb: ..." that Multiply prefixes with its name.
// Complexity: O(1).
func ValidateMulCompatible[T numeric.Number](a, b *Dense[T]) error {
	if err := ValidateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("a.cols=%d != b.rows=%d: %w", a.c, b.r, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
// Time: O(1). Space: O(1).
func ValidateVecLen[T numeric.Number](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len(x)=%d != %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
