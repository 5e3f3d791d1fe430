// SPDX-License-Identifier: MIT
// Package vector: canonical validators.
// Validators return plain sentinels or typed errors; call sites add the
// operation tag.

package vector

import "github.com/katalvlaran/linalg/scalar"

// ValidateNotNil returns ErrNilVector if v is nil.
func ValidateNotNil[K scalar.Scalar[K]](v *Vector[K]) error {
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateSameLen – Composite: NotNil(a) → NotNil(b) → equal lengths.
// Returns *DimensionMismatchError with Expected = a.Len().
func ValidateSameLen[K scalar.Scalar[K]](a, b *Vector[K]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if len(a.data) != len(b.data) {
		return &DimensionMismatchError{Expected: len(a.data), Actual: len(b.data)}
	}

	return nil
}

// ValidateIndex returns ErrOutOfRange unless 0 ≤ i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}
