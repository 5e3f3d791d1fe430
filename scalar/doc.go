// SPDX-License-Identifier: MIT

// Package scalar defines the capability set a number type must provide to
// take part in generic vector and matrix algebra, plus the concrete scalars
// shipped with the module.
//
// Capability tiers:
//
//	Scalar[K] : Add, Sub, Mul, Scale, Zero, IsZero, One, Magnitude, Conjugate, Real
//	Signed[K] : Scalar[K] + Neg, NegativeOne          (excludes unsigned integers)
//	Field[K]  : Signed[K] + Div                       (required by reduction kernels)
//
// Concrete scalars:
//
//	Float32, Float64                 : Field
//	Int, Int8, Int16, Int32, Int64   : Signed (no Div; exact Determinant)
//	Uint, Uint8, Uint16, Uint32, Uint64 : Scalar only (Sub wraps around)
//	Complex                          : Field over (re, im float64)
//
// All methods are pure value operations; no scalar holds references, so
// scalars may be shared freely between goroutines.
//
// Lerp performs linear interpolation u·(1−t) + v·t for t ∈ [0, 1] and
// reports *InvalidParameterError for any other t.
package scalar
