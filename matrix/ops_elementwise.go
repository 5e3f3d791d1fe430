// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise add/sub/scale in two flavors: in-place on the receiver and
//     allocating (…New) that leave both operands untouched.
//   - Matrix interpolation and tolerance-based comparison.
//
// Design:
//   - Every elementwise op is expressed through the row vectors, so the
//     per-row kernels of package vector are the single implementation.
//   - Shape is validated up front; on error the receiver is never modified.
//
// Determinism & Performance:
//   - Fixed loop order (row i, then the vector kernel over j).
//   - O(r*c) time; the …New flavors allocate one r×c result.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// rowwise runs f on each corresponding row pair of a and b after shape checks.
// If inPlace is false, a is cloned first and the clone is returned.
func rowwise[K scalar.Scalar[K]](a, b *Matrix[K], inPlace bool, opTag string,
	f func(x, y *vector.Vector[K]) error) (*Matrix[K], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	dst := a
	if !inPlace {
		dst = a.Clone()
	}
	for i := range dst.rows {
		if err := f(dst.rows[i], b.rows[i]); err != nil {
			return nil, matrixErrorf(opTag, err) // unreachable after shape check
		}
	}

	return dst, nil
}

func addRow[K scalar.Scalar[K]](x, y *vector.Vector[K]) error { return x.Add(y) }
func subRow[K scalar.Scalar[K]](x, y *vector.Vector[K]) error { return x.Sub(y) }

// Add sets m = m + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (*ShapeMismatchError).
func (m *Matrix[K]) Add(b *Matrix[K]) error {
	_, err := rowwise(m, b, true, opAdd, addRow[K])

	return err
}

// AddNew returns m + b as a new matrix.
func (m *Matrix[K]) AddNew(b *Matrix[K]) (*Matrix[K], error) {
	return rowwise(m, b, false, opAdd, addRow[K])
}

// Sub sets m = m − b.
func (m *Matrix[K]) Sub(b *Matrix[K]) error {
	_, err := rowwise(m, b, true, opSub, subRow[K])

	return err
}

// SubNew returns m − b as a new matrix.
func (m *Matrix[K]) SubNew(b *Matrix[K]) (*Matrix[K], error) {
	return rowwise(m, b, false, opSub, subRow[K])
}

// Scale multiplies every element of m by k in place.
func (m *Matrix[K]) Scale(k K) {
	if m == nil {
		return
	}
	for _, row := range m.rows {
		row.Scale(k)
	}
}

// ScaleNew returns k·m as a new matrix.
func (m *Matrix[K]) ScaleNew(k K) *Matrix[K] {
	out := m.Clone()
	out.Scale(k)

	return out
}

// Lerp returns u·(1−t) + v·t computed row by row.
//
// Errors:
//   - scalar.ErrInvalidParameter when t ∉ [0,1] (checked first),
//   - ErrNilMatrix / ErrDimensionMismatch on shape problems.
func Lerp[K scalar.Scalar[K]](u, v *Matrix[K], t float64) (*Matrix[K], error) {
	if err := scalar.ValidateT(t); err != nil {
		return nil, matrixErrorf(opLerp, err)
	}
	if err := ValidateSameShape(u, v); err != nil {
		return nil, matrixErrorf(opLerp, err)
	}
	out := &Matrix[K]{r: u.r, c: u.c, rows: make([]*vector.Vector[K], u.r)}
	for i := range u.rows {
		row, err := vector.Lerp(u.rows[i], v.rows[i], t)
		if err != nil {
			return nil, matrixErrorf(opLerp, err)
		}
		out.rows[i] = row
	}

	return out, nil
}

// AllClose reports whether every |a_ij − b_ij| ≤ atol (by Magnitude).
// Returns an error (and false) for nil operands or shape mismatch.
func AllClose[K scalar.Scalar[K]](a, b *Matrix[K], atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.rows {
		ar, br := a.rows[i].RawData(), b.rows[i].RawData()
		for j := range ar {
			if ar[j].Sub(br[j]).Magnitude() > atol {
				return false, nil
			}
		}
	}

	return true, nil
}
