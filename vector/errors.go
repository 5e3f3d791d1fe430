// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All functions return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. No function panics on
// user-triggered conditions.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths, or a
	// coefficient count that differs from the number of vectors.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidLength indicates a negative requested length.
	ErrInvalidLength = errors.New("vector: length must be >= 0")

	// ErrNilVector indicates that a nil *Vector was passed.
	ErrNilVector = errors.New("vector: nil vector")
)

// DimensionMismatchError reports the expected and actual lengths (or counts).
// It unwraps to ErrDimensionMismatch.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("vector: dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }

// Operation tags for uniform error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opDot         = "Dot"
	opAt          = "At"
	opSet         = "Set"
	opZeros       = "Zeros"
	opCombination = "LinearCombination"
	opAngleCos    = "AngleCos"
	opLerp        = "Lerp"
)

// vectorErrorf wraps err with an operation tag; err must be non-nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("Vector.%s: %w", tag, err)
}
