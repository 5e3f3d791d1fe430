// SPDX-License-Identifier: MIT

// Package scalar: capability constraints.
//
// Purpose:
//   - Describe, as self-referential generic constraints, the operations that
//     vector/matrix kernels are allowed to call on an element type K.
//   - Keep the tiers explicit so a kernel asks for the weakest tier it needs
//     (e.g. Determinant needs Signed, Inverse needs Field).
//
// Notes:
//   - Constraints are only usable as type parameters, never as runtime values.
//   - Zero/One/NegativeOne are methods so that the zero value of K can produce
//     the identities ("var k K; k.One()"); helpers below wrap that idiom.

package scalar

// Scalar is the base capability set for generic linear algebra.
//
// Contract:
//   - Zero() is the additive identity and One() the multiplicative identity.
//   - Magnitude() is non-negative and usable for pivot/threshold comparisons.
//   - Conjugate() is the identity for real scalars.
//   - Real() returns the real part as float64.
//   - Scale(t) multiplies by a real factor (used by interpolation).
type Scalar[K any] interface {
	Add(K) K
	Sub(K) K
	Mul(K) K
	Scale(t float64) K

	Zero() K
	IsZero() bool
	One() K

	Magnitude() float64
	Conjugate() K
	Real() float64
}

// Signed extends Scalar with additive inverses.
// Unsigned integer scalars intentionally do not satisfy it.
type Signed[K any] interface {
	Scalar[K]

	Neg() K
	NegativeOne() K
}

// Field extends Signed with division. Division by a zero scalar is the
// caller's responsibility: kernels check IsZero before dividing.
type Field[K any] interface {
	Signed[K]

	Div(K) K
}

// Zero returns the additive identity of K.
func Zero[K Scalar[K]]() K {
	var k K

	return k.Zero()
}

// One returns the multiplicative identity of K.
func One[K Scalar[K]]() K {
	var k K

	return k.One()
}

// NegativeOne returns −1 in K.
func NegativeOne[K Signed[K]]() K {
	var k K

	return k.NegativeOne()
}
