// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinels and the typed errors that
// carry shape payloads. All functions MUST return these (optionally wrapped
// with an operation tag) and tests MUST check them via errors.Is / errors.As.
// No function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Typed errors implement Unwrap() so errors.Is(err, ErrX) keeps
// working after any number of fmt.Errorf("ctx: %w", err) layers.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> non-square -> singular.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/SubMatrix) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates construction from rows of unequal length.
	ErrRagged = errors.New("matrix: rows have unequal length")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during inversion.
	// Elimination does not exchange rows, so a zero on the diagonal is reported
	// even when a row swap would have produced an inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrDimensionMismatch is the vector package sentinel, shared so that a single
// errors.Is check matches mismatches raised by row kernels and by matrix shape
// validation alike.
var ErrDimensionMismatch = vector.ErrDimensionMismatch

// RaggedError reports the first row whose length differs from row 0.
// It unwraps to ErrRagged.
type RaggedError struct {
	Row      int // offending row index
	Expected int // length of row 0
	Actual   int // length of Row
}

func (e *RaggedError) Error() string {
	return fmt.Sprintf("matrix: row %d has %d columns, expected %d", e.Row, e.Actual, e.Expected)
}

func (e *RaggedError) Unwrap() error { return ErrRagged }

// ShapeMismatchError reports the shapes of two incompatible operands.
// It unwraps to ErrDimensionMismatch.
type ShapeMismatchError struct {
	LeftRows, LeftCols   int
	RightRows, RightCols int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("matrix: dimension mismatch: %dx%d vs %dx%d",
		e.LeftRows, e.LeftCols, e.RightRows, e.RightCols)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrDimensionMismatch }

// NotSquareError carries the actual shape of a matrix that had to be square.
// It unwraps to ErrNonSquare.
type NotSquareError struct {
	Rows, Cols int
}

func (e *NotSquareError) Error() string {
	return fmt.Sprintf("matrix: matrix must be square, got %dx%d", e.Rows, e.Cols)
}

func (e *NotSquareError) Unwrap() error { return ErrNonSquare }

// SingularError reports the diagonal index where a zero pivot was met.
// It unwraps to ErrSingular.
type SingularError struct {
	Pivot int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("matrix: singular matrix: zero pivot at (%d,%d)", e.Pivot, e.Pivot)
}

func (e *SingularError) Unwrap() error { return ErrSingular }
