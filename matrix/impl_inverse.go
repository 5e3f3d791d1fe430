// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Matrix inverse by Gauss–Jordan elimination on [A | I] without pivoting.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Inverse returns A⁻¹ for a square matrix A.
// MAIN DESCRIPTION:
//   - Reduces a working copy of A to I while applying the same row operations
//     to an identity; the identity becomes A⁻¹.
//
// Implementation:
//   - Stage 1: ValidateSquare (non-square ⇒ *NotSquareError).
//   - Stage 2: for each diagonal index i: the pivot is A[i][i]; a zero pivot
//     ⇒ *SingularError{Pivot: i}.
//   - Stage 3: divide row i of both sides by the pivot.
//   - Stage 4: for every row k ≠ i, subtract A[k][i]·row_i on both sides.
//
// Behavior highlights:
//   - No row exchanges: a zero on the diagonal is reported as singular even
//     when the matrix is invertible after reordering rows (e.g. [[0,1],[1,0]]).
//   - Zero test is exact (IsZero).
//   - Input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (*NotSquareError), ErrSingular (*SingularError).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[K scalar.Field[K]](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)
	n := m.r
	a := m.Clone()
	inv, err := Identity[K](n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	for i := 0; i < n; i++ {
		pivot := a.rows[i].RawData()[i]
		if pivot.IsZero() {
			o.logger.Debug("inverse: zero pivot", "index", i)

			return nil, matrixErrorf(opInverse, &SingularError{Pivot: i})
		}
		div := func(_ int, x K) K { return x.Div(pivot) }
		a.rows[i].Apply(div)
		inv.rows[i].Apply(div)

		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			f := a.rows[k].RawData()[i]
			if f.IsZero() {
				continue
			}
			nf := f.Neg()
			if err = a.rows[k].AddScaled(nf, a.rows[i]); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
			if err = inv.rows[k].AddScaled(nf, inv.rows[i]); err != nil {
				return nil, matrixErrorf(opInverse, err)
			}
		}
	}

	return inv, nil
}
