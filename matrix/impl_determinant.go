// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Closed-form determinants for square matrices of order 1 through 4.
//
// Notes:
//   - Orders 1..3 use explicit formulas; order 4 expands along row 0 with
//     3×3 minors. Other shapes (non-square, or order ≥ 5) yield the zero
//     scalar rather than an error.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

// maxClosedFormOrder is the largest order with a determinant formula.
const maxClosedFormOrder = 4

// Determinant returns det(m) for square m of order 1..4, else the zero scalar.
// MAIN DESCRIPTION:
//   - Signed (not Field): no division is performed, so integer matrices are exact.
//
// Implementation:
//   - 1×1: a.
//   - 2×2: ad − bc.
//   - 3×3: rule of Sarrus (six products).
//   - 4×4: Σ_j (−1)^j · a_0j · det(minor_0j), the sign carried as a running
//     product with NegativeOne.
//
// Errors:
//   - ErrNilMatrix only. Unsupported shapes are not errors.
//
// Complexity:
//   - O(1) for the fixed orders.
func Determinant[K scalar.Signed[K]](m *Matrix[K]) (K, error) {
	if err := ValidateNotNil(m); err != nil {
		return scalar.Zero[K](), matrixErrorf(opDet, err)
	}
	if !m.IsSquare() || m.r > maxClosedFormOrder {
		return scalar.Zero[K](), nil
	}
	switch m.r {
	case 1:
		return m.rows[0].RawData()[0], nil
	case 2:
		return det2(m), nil
	case 3:
		return det3(m), nil
	default:
		return det4(m)
	}
}

func det2[K scalar.Signed[K]](m *Matrix[K]) K {
	r0, r1 := m.rows[0].RawData(), m.rows[1].RawData()

	return r0[0].Mul(r1[1]).Sub(r0[1].Mul(r1[0]))
}

func det3[K scalar.Signed[K]](m *Matrix[K]) K {
	a, b, c := m.rows[0].RawData(), m.rows[1].RawData(), m.rows[2].RawData()
	pos := a[0].Mul(b[1]).Mul(c[2]).
		Add(a[1].Mul(b[2]).Mul(c[0])).
		Add(a[2].Mul(b[0]).Mul(c[1]))
	neg := a[2].Mul(b[1]).Mul(c[0]).
		Add(a[1].Mul(b[0]).Mul(c[2])).
		Add(a[0].Mul(b[2]).Mul(c[1]))

	return pos.Sub(neg)
}

func det4[K scalar.Signed[K]](m *Matrix[K]) (K, error) {
	sum := scalar.Zero[K]()
	sign := scalar.One[K]()
	for j, a := range m.rows[0].RawData() {
		minor, err := m.SubMatrix(0, j)
		if err != nil {
			return scalar.Zero[K](), matrixErrorf(opDet, err)
		}
		sum = sum.Add(sign.Mul(a).Mul(det3(minor)))
		sign = sign.Mul(scalar.NegativeOne[K]())
	}

	return sum, nil
}
