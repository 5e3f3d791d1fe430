// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/index checks here.
//  - Return sentinel or typed errors (unwrapped) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and O(1).
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[K scalar.Scalar[K]](m *Matrix[K]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Returns ErrNilMatrix or *ShapeMismatchError.
func ValidateSameShape[K scalar.Scalar[K]](a, b *Matrix[K]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return &ShapeMismatchError{LeftRows: a.r, LeftCols: a.c, RightRows: b.r, RightCols: b.c}
	}

	return nil
}

// ValidateSquare ensures m is non-nil and n×n. Returns ErrNilMatrix or *NotSquareError.
func ValidateSquare[K scalar.Scalar[K]](m *Matrix[K]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return &NotSquareError{Rows: m.r, Cols: m.c}
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows() for the product a×b.
func ValidateMulCompatible[K scalar.Scalar[K]](a, b *Matrix[K]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.c != b.r {
		return &ShapeMismatchError{LeftRows: a.r, LeftCols: a.c, RightRows: b.r, RightCols: b.c}
	}

	return nil
}

// ValidateVecLen ensures len(v) == m.Cols() for M·v.
// Returns ErrNilMatrix, vector.ErrNilVector or *vector.DimensionMismatchError.
func ValidateVecLen[K scalar.Scalar[K]](m *Matrix[K], v *vector.Vector[K]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := vector.ValidateNotNil(v); err != nil {
		return err
	}
	if v.Len() != m.c {
		return &vector.DimensionMismatchError{Expected: m.c, Actual: v.Len()}
	}

	return nil
}

// validateCell checks m != nil, 0 ≤ i < rows and 0 ≤ j < cols.
func validateCell[K scalar.Scalar[K]](m *Matrix[K], i, j int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}

	return nil
}
