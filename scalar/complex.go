// SPDX-License-Identifier: MIT

// Package scalar: Complex scalar.
//
// Purpose:
//   - Provide a two-component (re, im) value type that satisfies Field so the
//     same vector/matrix kernels run over complex data.
//
// Numeric policy:
//   - Magnitude is the Euclidean norm via math.Hypot (no intermediate overflow).
//   - Div uses the textbook formula (a+bi)/(c+di) = ((ac+bd) + (bc−ad)i)/(c²+d²).
//     Dividing by the zero complex value yields IEEE Inf/NaN components; callers
//     must check IsZero first (the reduction kernels do).

package scalar

import (
	"math"
	"strconv"
	"strings"
)

var _ Field[Complex] = Complex{}

// Complex is an immutable complex number re + im·i.
// The zero value is 0 + 0i.
type Complex struct {
	re, im float64
}

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex { return Complex{re: re, im: im} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{re: real(z), im: imag(z)} }

// Complex128 converts to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.re, z.im) }

// Real returns the real part.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary part.
func (z Complex) Imag() float64 { return z.im }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex { return Complex{re: z.re + w.re, im: z.im + w.im} }

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex { return Complex{re: z.re - w.re, im: z.im - w.im} }

// Mul returns z·w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z/w. Undefined (Inf/NaN parts) when w is zero.
func (z Complex) Div(w Complex) Complex {
	den := w.re*w.re + w.im*w.im

	return Complex{
		re: (z.re*w.re + z.im*w.im) / den,
		im: (z.im*w.re - z.re*w.im) / den,
	}
}

// Neg returns −z.
func (z Complex) Neg() Complex { return Complex{re: -z.re, im: -z.im} }

// Scale multiplies both components by the real factor t.
func (z Complex) Scale(t float64) Complex { return Complex{re: z.re * t, im: z.im * t} }

// Conjugate returns re − im·i.
func (z Complex) Conjugate() Complex { return Complex{re: z.re, im: -z.im} }

// Magnitude returns |z| = √(re² + im²).
func (z Complex) Magnitude() float64 { return math.Hypot(z.re, z.im) }

func (Complex) Zero() Complex { return Complex{} }
func (z Complex) IsZero() bool { return z.re == 0 && z.im == 0 }
func (Complex) One() Complex { return Complex{re: 1} }
func (Complex) NegativeOne() Complex { return Complex{re: -1} }

// String renders "a + bi" or "a - bi" using the shortest float formatting.
func (z Complex) String() string {
	var sb strings.Builder
	sb.WriteString(formatFloat(z.re))
	if math.Signbit(z.im) {
		sb.WriteString(" - ")
		sb.WriteString(formatFloat(-z.im))
	} else {
		sb.WriteString(" + ")
		sb.WriteString(formatFloat(z.im))
	}
	sb.WriteByte('i')

	return sb.String()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
