// SPDX-License-Identifier: MIT

// Package vector - elementwise kernels, dot product and norms.
//
// Purpose:
//   - Provide the in-place / value-returning pairs (Add/AddNew, Sub/SubNew,
//     Scale/ScaleNew) as thin wrappers over one kernel each, parameterized by
//     the destination (receiver or a fresh vector).
//
// Determinism:
//   - Fixed 0..n-1 loop order; accumulations are sequential.

package vector

import (
	"math"

	"github.com/katalvlaran/linalg/scalar"
)

// zipInto computes dst[i] = f(a[i], b[i]) after validating equal lengths.
// When inPlace is true dst is a (the receiver); otherwise a fresh vector.
//
// Errors:
//   - ErrNilVector, *DimensionMismatchError (wrapped with opTag).
//
// Complexity:
//   - Time O(n), Space O(n) only when !inPlace.
func zipInto[K scalar.Scalar[K]](a, b *Vector[K], inPlace bool, opTag string, f func(x, y K) K) (*Vector[K], error) {
	if err := ValidateSameLen(a, b); err != nil {
		return nil, vectorErrorf(opTag, err)
	}
	dst := a
	if !inPlace {
		dst = &Vector[K]{data: make([]K, len(a.data))}
	}
	for i := range a.data {
		dst.data[i] = f(a.data[i], b.data[i])
	}

	return dst, nil
}

// mapInto computes dst[i] = f(a[i]); dst is a or a fresh vector.
func mapInto[K scalar.Scalar[K]](a *Vector[K], inPlace bool, f func(x K) K) *Vector[K] {
	if a == nil {
		return nil
	}
	dst := a
	if !inPlace {
		dst = &Vector[K]{data: make([]K, len(a.data))}
	}
	for i, x := range a.data {
		dst.data[i] = f(x)
	}

	return dst
}

func add[K scalar.Scalar[K]](x, y K) K { return x.Add(y) }
func sub[K scalar.Scalar[K]](x, y K) K { return x.Sub(y) }

// Add performs v += w in place.
// Errors: ErrNilVector, *DimensionMismatchError.
func (v *Vector[K]) Add(w *Vector[K]) error {
	_, err := zipInto(v, w, true, opAdd, add[K])

	return err
}

// AddNew returns v + w; v and w are unchanged.
func (v *Vector[K]) AddNew(w *Vector[K]) (*Vector[K], error) {
	return zipInto(v, w, false, opAdd, add[K])
}

// Sub performs v −= w in place.
// Errors: ErrNilVector, *DimensionMismatchError.
func (v *Vector[K]) Sub(w *Vector[K]) error {
	_, err := zipInto(v, w, true, opSub, sub[K])

	return err
}

// SubNew returns v − w; v and w are unchanged.
func (v *Vector[K]) SubNew(w *Vector[K]) (*Vector[K], error) {
	return zipInto(v, w, false, opSub, sub[K])
}

// Scale performs v *= k in place.
func (v *Vector[K]) Scale(k K) {
	mapInto(v, true, func(x K) K { return x.Mul(k) })
}

// ScaleNew returns k·v; v is unchanged.
func (v *Vector[K]) ScaleNew(k K) *Vector[K] {
	return mapInto(v, false, func(x K) K { return x.Mul(k) })
}

// AddScaled performs v += alpha·w in place (the classic axpy row operation).
// Errors: ErrNilVector, *DimensionMismatchError.
func (v *Vector[K]) AddScaled(alpha K, w *Vector[K]) error {
	_, err := zipInto(v, w, true, opAdd, func(x, y K) K { return x.Add(alpha.Mul(y)) })

	return err
}

// Dot returns Σ v_i·w_i seeded with the additive identity.
// No conjugation is applied, also for complex scalars.
//
// Errors: ErrNilVector, *DimensionMismatchError.
// Complexity: O(n).
func (v *Vector[K]) Dot(w *Vector[K]) (K, error) {
	acc := scalar.Zero[K]()
	if err := ValidateSameLen(v, w); err != nil {
		return acc, vectorErrorf(opDot, err)
	}
	for i, x := range v.data {
		acc = acc.Add(x.Mul(w.data[i]))
	}

	return acc, nil
}

// Norm1 returns the Manhattan norm Σ|v_i|.
func (v *Vector[K]) Norm1() float64 {
	var sum float64
	for _, x := range v.RawData() {
		sum += x.Magnitude()
	}

	return sum
}

// Norm returns the Euclidean norm √(Σ|v_i|²).
func (v *Vector[K]) Norm() float64 {
	var sum, m float64
	for _, x := range v.RawData() {
		m = x.Magnitude()
		sum += m * m
	}

	return math.Sqrt(sum)
}

// NormInf returns the supremum norm max|v_i| (0 for an empty vector).
func (v *Vector[K]) NormInf() float64 {
	var best float64
	for _, x := range v.RawData() {
		best = max(best, x.Magnitude())
	}

	return best
}
