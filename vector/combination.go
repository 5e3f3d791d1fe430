// SPDX-License-Identifier: MIT

// Package vector - multi-vector algebra: linear combination, angle cosine,
// cross product and interpolation.

package vector

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
)

// LinearCombination returns Σ coefs[i]·vs[i].
//
// Implementation:
//   - Stage 1: len(vs) must equal len(coefs); every vector must be non-nil and
//     have the length of vs[0].
//   - Stage 2: accumulate into a zero vector with AddScaled, in index order.
//
// Returns:
//   - An empty vector when vs is empty (and coefs is empty).
//
// Errors:
//   - *DimensionMismatchError (count mismatch: Expected=len(vs), Actual=len(coefs);
//     length mismatch: Expected=vs[0].Len(), Actual=vs[i].Len()).
//   - ErrNilVector.
//
// Complexity: O(len(vs)·n).
func LinearCombination[K scalar.Scalar[K]](vs []*Vector[K], coefs []K) (*Vector[K], error) {
	if len(vs) != len(coefs) {
		return nil, vectorErrorf(opCombination, &DimensionMismatchError{Expected: len(vs), Actual: len(coefs)})
	}
	if len(vs) == 0 {
		return &Vector[K]{data: []K{}}, nil
	}
	for i, v := range vs {
		if err := ValidateSameLen(vs[0], v); err != nil {
			return nil, vectorErrorf(opCombination, fmt.Errorf("vector %d: %w", i, err))
		}
	}

	out, err := Zeros[K](vs[0].Len())
	if err != nil {
		return nil, vectorErrorf(opCombination, err)
	}
	for i, v := range vs {
		if err = out.AddScaled(coefs[i], v); err != nil {
			return nil, vectorErrorf(opCombination, err) // lengths validated above; not expected
		}
	}

	return out, nil
}

// AngleCos returns cos θ = Re(u·v) / (‖u‖·‖v‖).
//
// Policy:
//   - Returns 0 when either norm is 0 (no division by zero).
//   - The dot product is unconjugated; for complex inputs only its real part
//     contributes.
//
// Errors: ErrNilVector, *DimensionMismatchError.
func AngleCos[K scalar.Scalar[K]](u, v *Vector[K]) (float64, error) {
	dot, err := u.Dot(v)
	if err != nil {
		return 0, vectorErrorf(opAngleCos, err)
	}
	den := u.Norm() * v.Norm()
	if den == 0 {
		return 0, nil
	}

	return dot.Real() / den, nil
}

// CrossProduct returns u × v = [u₂v₃−u₃v₂, u₃v₁−u₁v₃, u₁v₂−u₂v₁].
//
// Quirk (kept for compatibility): when either operand does not have exactly
// three elements the result is a copy of u, without an error.
// A nil u yields nil.
func CrossProduct[K scalar.Scalar[K]](u, v *Vector[K]) *Vector[K] {
	if u == nil {
		return nil
	}
	if v == nil || len(u.data) != 3 || len(v.data) != 3 {
		return u.Clone()
	}
	a, b := u.data, v.data

	return New(
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	)
}

// Lerp returns u·(1−t) + v·t elementwise.
//
// Errors:
//   - *scalar.InvalidParameterError when t ∉ [0, 1] (checked first).
//   - ErrNilVector, *DimensionMismatchError.
func Lerp[K scalar.Scalar[K]](u, v *Vector[K], t float64) (*Vector[K], error) {
	if err := scalar.ValidateT(t); err != nil {
		return nil, vectorErrorf(opLerp, err)
	}

	return zipInto(u, v, false, opLerp, func(x, y K) K {
		return x.Scale(1 - t).Add(y.Scale(t))
	})
}
