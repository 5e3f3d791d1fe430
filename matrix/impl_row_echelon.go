// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Reduced row echelon form by Gauss–Jordan elimination without row swaps.
//
// Notes:
//   - A row with no usable pivot ends the reduction: later rows are left as
//     they are, so the result may not be fully reduced when the leading
//     columns of a middle row are zero.
//   - Requires a Field because pivot normalization divides.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

// RowEchelon returns the reduced row echelon form of m as a new matrix.
// MAIN DESCRIPTION:
//   - Normalizes each pivot to One and clears its column in every other row.
//
// Implementation:
//   - Stage 1: clone m (input is never mutated).
//   - Stage 2: for row r = 0..rows-1, the pivot is the first non-zero entry
//     at column ≥ r; if none exists the reduction stops.
//   - Stage 3: divide row r by its pivot.
//   - Stage 4: for every other row i with a non-zero entry f in the pivot
//     column, row_i -= f·row_r.
//
// Behavior highlights:
//   - Exact zero test (IsZero), no tolerance.
//   - Identity stays identity; a zero matrix stays zero.
//
// Inputs:
//   - m: any shape.
//   - opts: WithLogger receives a Debug record per pivot and on early stop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r²·c), Space O(r*c).
func RowEchelon[K scalar.Field[K]](m *Matrix[K], opts ...Option) (*Matrix[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}
	o := gatherOptions(opts...)
	work := m.Clone()

	for r := 0; r < work.r; r++ {
		pivotRow := work.rows[r]
		pc := firstNonZero(pivotRow.RawData(), r)
		if pc < 0 {
			o.logger.Debug("row echelon: no pivot, stopping", "row", r)

			break
		}
		pivot := pivotRow.RawData()[pc]
		o.logger.Debug("row echelon: pivot", "row", r, "col", pc)
		pivotRow.Apply(func(_ int, x K) K { return x.Div(pivot) })

		for i, other := range work.rows {
			if i == r {
				continue
			}
			f := other.RawData()[pc]
			if f.IsZero() {
				continue
			}
			if err := other.AddScaled(f.Neg(), pivotRow); err != nil {
				return nil, matrixErrorf(opRowEchelon, err)
			}
		}
	}

	return work, nil
}

// firstNonZero returns the first index j ≥ from with !row[j].IsZero(), or -1.
func firstNonZero[K scalar.Scalar[K]](row []K, from int) int {
	for j := from; j < len(row); j++ {
		if !row[j].IsZero() {
			return j
		}
	}

	return -1
}
