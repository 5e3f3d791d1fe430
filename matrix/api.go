// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common compositions of the kernels.
//   - Avoid logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike[K scalar.Scalar[K]](m *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return zeros[K](m.r, m.c), nil
}

// IdentityLike returns I_n with n = m.Rows(); m must be square.
func IdentityLike[K scalar.Scalar[K]](m *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity[K](m.r)
}

// Solve returns x with A·x = b, computed as Inverse(A)·b.
// Inherits Inverse's no-pivoting policy: ErrSingular on a zero diagonal pivot.
func Solve[K scalar.Field[K]](a *Matrix[K], b *vector.Vector[K], opts ...Option) (*vector.Vector[K], error) {
	inv, err := Inverse(a, opts...)
	if err != nil {
		return nil, err
	}

	return inv.MulVec(b)
}
