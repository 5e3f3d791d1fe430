// SPDX-License-Identifier: MIT
// Package scalar: sentinel and typed errors.
// Callers match sentinels with errors.Is and extract payloads with errors.As.

package scalar

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter signals an interpolation factor outside [0, 1] (or NaN).
var ErrInvalidParameter = errors.New("scalar: invalid interpolation parameter")

// InvalidParameterError carries the offending interpolation factor.
// It unwraps to ErrInvalidParameter.
type InvalidParameterError struct {
	T float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("scalar: interpolation parameter t=%g outside [0, 1]", e.T)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// ValidateT returns *InvalidParameterError unless 0 ≤ t ≤ 1.
// NaN fails both comparisons and is rejected.
func ValidateT(t float64) error {
	if !(t >= 0 && t <= 1) {
		return &InvalidParameterError{T: t}
	}

	return nil
}
