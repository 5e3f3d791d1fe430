// SPDX-License-Identifier: MIT

// Package scalar: real scalar types.
//
// Each type is a named Go numeric so literals convert without ceremony
// (scalar.Float64(2.5), scalar.Int(7)). Methods are value receivers and
// allocation-free.
//
// Policy:
//   - Conjugate is the identity.
//   - Magnitude is |x| computed in float64 (no overflow for the minimum
//     signed value).
//   - Signed integers stop at Signed (no Div); the Field kernels
//     (RowEchelon, Rank, Inverse) reject them at compile time.
//   - Integer Scale truncates toward zero.
//   - Unsigned types implement Scalar only; Sub wraps around on underflow.

package scalar

import "math"

// Compile-time tier conformance.
var (
	_ Field[Float32] = Float32(0)
	_ Field[Float64] = Float64(0)

	_ Signed[Int]   = Int(0)
	_ Signed[Int8]  = Int8(0)
	_ Signed[Int16] = Int16(0)
	_ Signed[Int32] = Int32(0)
	_ Signed[Int64] = Int64(0)

	_ Scalar[Uint]   = Uint(0)
	_ Scalar[Uint8]  = Uint8(0)
	_ Scalar[Uint16] = Uint16(0)
	_ Scalar[Uint32] = Uint32(0)
	_ Scalar[Uint64] = Uint64(0)
)

// Float32 is a float32 scalar.
type Float32 float32

func (x Float32) Add(y Float32) Float32 { return x + y }
func (x Float32) Sub(y Float32) Float32 { return x - y }
func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Scale(t float64) Float32 { return Float32(float64(x) * t) }
func (Float32) Zero() Float32 { return 0 }
func (x Float32) IsZero() bool { return x == 0 }
func (Float32) One() Float32 { return 1 }
func (x Float32) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Float32) Conjugate() Float32 { return x }
func (x Float32) Real() float64 { return float64(x) }
func (x Float32) Neg() Float32 { return -x }
func (Float32) NegativeOne() Float32 { return -1 }
func (x Float32) Div(y Float32) Float32 { return x / y }

// Float64 is a float64 scalar. It is the default element type for real-valued work.
type Float64 float64

func (x Float64) Add(y Float64) Float64 { return x + y }
func (x Float64) Sub(y Float64) Float64 { return x - y }
func (x Float64) Mul(y Float64) Float64 { return x * y }
func (x Float64) Scale(t float64) Float64 { return Float64(float64(x) * t) }
func (Float64) Zero() Float64 { return 0 }
func (x Float64) IsZero() bool { return x == 0 }
func (Float64) One() Float64 { return 1 }
func (x Float64) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Float64) Conjugate() Float64 { return x }
func (x Float64) Real() float64 { return float64(x) }
func (x Float64) Neg() Float64 { return -x }
func (Float64) NegativeOne() Float64 { return -1 }
func (x Float64) Div(y Float64) Float64 { return x / y }

// Int is a int scalar.
type Int int

func (x Int) Add(y Int) Int { return x + y }
func (x Int) Sub(y Int) Int { return x - y }
func (x Int) Mul(y Int) Int { return x * y }
func (x Int) Scale(t float64) Int { return Int(float64(x) * t) }
func (Int) Zero() Int { return 0 }
func (x Int) IsZero() bool { return x == 0 }
func (Int) One() Int { return 1 }
func (x Int) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Int) Conjugate() Int { return x }
func (x Int) Real() float64 { return float64(x) }
func (x Int) Neg() Int { return -x }
func (Int) NegativeOne() Int { return -1 }

// Int8 is a int8 scalar.
type Int8 int8

func (x Int8) Add(y Int8) Int8 { return x + y }
func (x Int8) Sub(y Int8) Int8 { return x - y }
func (x Int8) Mul(y Int8) Int8 { return x * y }
func (x Int8) Scale(t float64) Int8 { return Int8(float64(x) * t) }
func (Int8) Zero() Int8 { return 0 }
func (x Int8) IsZero() bool { return x == 0 }
func (Int8) One() Int8 { return 1 }
func (x Int8) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Int8) Conjugate() Int8 { return x }
func (x Int8) Real() float64 { return float64(x) }
func (x Int8) Neg() Int8 { return -x }
func (Int8) NegativeOne() Int8 { return -1 }

// Int16 is a int16 scalar.
type Int16 int16

func (x Int16) Add(y Int16) Int16 { return x + y }
func (x Int16) Sub(y Int16) Int16 { return x - y }
func (x Int16) Mul(y Int16) Int16 { return x * y }
func (x Int16) Scale(t float64) Int16 { return Int16(float64(x) * t) }
func (Int16) Zero() Int16 { return 0 }
func (x Int16) IsZero() bool { return x == 0 }
func (Int16) One() Int16 { return 1 }
func (x Int16) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Int16) Conjugate() Int16 { return x }
func (x Int16) Real() float64 { return float64(x) }
func (x Int16) Neg() Int16 { return -x }
func (Int16) NegativeOne() Int16 { return -1 }

// Int32 is a int32 scalar.
type Int32 int32

func (x Int32) Add(y Int32) Int32 { return x + y }
func (x Int32) Sub(y Int32) Int32 { return x - y }
func (x Int32) Mul(y Int32) Int32 { return x * y }
func (x Int32) Scale(t float64) Int32 { return Int32(float64(x) * t) }
func (Int32) Zero() Int32 { return 0 }
func (x Int32) IsZero() bool { return x == 0 }
func (Int32) One() Int32 { return 1 }
func (x Int32) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Int32) Conjugate() Int32 { return x }
func (x Int32) Real() float64 { return float64(x) }
func (x Int32) Neg() Int32 { return -x }
func (Int32) NegativeOne() Int32 { return -1 }

// Int64 is a int64 scalar.
type Int64 int64

func (x Int64) Add(y Int64) Int64 { return x + y }
func (x Int64) Sub(y Int64) Int64 { return x - y }
func (x Int64) Mul(y Int64) Int64 { return x * y }
func (x Int64) Scale(t float64) Int64 { return Int64(float64(x) * t) }
func (Int64) Zero() Int64 { return 0 }
func (x Int64) IsZero() bool { return x == 0 }
func (Int64) One() Int64 { return 1 }
func (x Int64) Magnitude() float64 { return math.Abs(float64(x)) }
func (x Int64) Conjugate() Int64 { return x }
func (x Int64) Real() float64 { return float64(x) }
func (x Int64) Neg() Int64 { return -x }
func (Int64) NegativeOne() Int64 { return -1 }

// Uint is a uint scalar.
type Uint uint

func (x Uint) Add(y Uint) Uint { return x + y }
func (x Uint) Sub(y Uint) Uint { return x - y }
func (x Uint) Mul(y Uint) Uint { return x * y }
func (x Uint) Scale(t float64) Uint { return Uint(float64(x) * t) }
func (Uint) Zero() Uint { return 0 }
func (x Uint) IsZero() bool { return x == 0 }
func (Uint) One() Uint { return 1 }
func (x Uint) Magnitude() float64 { return float64(x) }
func (x Uint) Conjugate() Uint { return x }
func (x Uint) Real() float64 { return float64(x) }

// Uint8 is a uint8 scalar.
type Uint8 uint8

func (x Uint8) Add(y Uint8) Uint8 { return x + y }
func (x Uint8) Sub(y Uint8) Uint8 { return x - y }
func (x Uint8) Mul(y Uint8) Uint8 { return x * y }
func (x Uint8) Scale(t float64) Uint8 { return Uint8(float64(x) * t) }
func (Uint8) Zero() Uint8 { return 0 }
func (x Uint8) IsZero() bool { return x == 0 }
func (Uint8) One() Uint8 { return 1 }
func (x Uint8) Magnitude() float64 { return float64(x) }
func (x Uint8) Conjugate() Uint8 { return x }
func (x Uint8) Real() float64 { return float64(x) }

// Uint16 is a uint16 scalar.
type Uint16 uint16

func (x Uint16) Add(y Uint16) Uint16 { return x + y }
func (x Uint16) Sub(y Uint16) Uint16 { return x - y }
func (x Uint16) Mul(y Uint16) Uint16 { return x * y }
func (x Uint16) Scale(t float64) Uint16 { return Uint16(float64(x) * t) }
func (Uint16) Zero() Uint16 { return 0 }
func (x Uint16) IsZero() bool { return x == 0 }
func (Uint16) One() Uint16 { return 1 }
func (x Uint16) Magnitude() float64 { return float64(x) }
func (x Uint16) Conjugate() Uint16 { return x }
func (x Uint16) Real() float64 { return float64(x) }

// Uint32 is a uint32 scalar.
type Uint32 uint32

func (x Uint32) Add(y Uint32) Uint32 { return x + y }
func (x Uint32) Sub(y Uint32) Uint32 { return x - y }
func (x Uint32) Mul(y Uint32) Uint32 { return x * y }
func (x Uint32) Scale(t float64) Uint32 { return Uint32(float64(x) * t) }
func (Uint32) Zero() Uint32 { return 0 }
func (x Uint32) IsZero() bool { return x == 0 }
func (Uint32) One() Uint32 { return 1 }
func (x Uint32) Magnitude() float64 { return float64(x) }
func (x Uint32) Conjugate() Uint32 { return x }
func (x Uint32) Real() float64 { return float64(x) }

// Uint64 is a uint64 scalar.
type Uint64 uint64

func (x Uint64) Add(y Uint64) Uint64 { return x + y }
func (x Uint64) Sub(y Uint64) Uint64 { return x - y }
func (x Uint64) Mul(y Uint64) Uint64 { return x * y }
func (x Uint64) Scale(t float64) Uint64 { return Uint64(float64(x) * t) }
func (Uint64) Zero() Uint64 { return 0 }
func (x Uint64) IsZero() bool { return x == 0 }
func (Uint64) One() Uint64 { return 1 }
func (x Uint64) Magnitude() float64 { return float64(x) }
func (x Uint64) Conjugate() Uint64 { return x }
func (x Uint64) Real() float64 { return float64(x) }
