// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Numerical rank by forward elimination with row swaps and an
//     epsilon pivot threshold.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
)

// Rank returns the number of linearly independent rows of m.
// MAIN DESCRIPTION:
//   - Forward elimination; each accepted pivot contributes one to the rank.
//
// Implementation:
//   - Stage 1: walk columns left to right while unprocessed rows remain.
//   - Stage 2: pick the first row at or below the current row whose entry in
//     this column has Magnitude ≥ eps; none ⇒ skip the column.
//   - Stage 3: swap that row up, normalize it by its pivot and eliminate the
//     column from every row below.
//
// Behavior highlights:
//   - DESTRUCTIVE: m is left in the partially reduced state (rows swapped and
//     rescaled). Clone first if the original is still needed.
//   - Entries with Magnitude < eps (DefaultRankEpsilon unless WithEpsilon) count
//     as zero; an exact zero is never a pivot, even with eps = 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1) extra.
func Rank[K scalar.Field[K]](m *Matrix[K], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	rank, row := 0, 0
	for col := 0; col < m.c && row < m.r; col++ {
		p := -1
		for i := row; i < m.r; i++ {
			if x := m.rows[i].RawData()[col]; !x.IsZero() && x.Magnitude() >= o.eps {
				p = i

				break
			}
		}
		if p < 0 {
			o.logger.Debug("rank: negligible column", "col", col)

			continue
		}
		if p != row {
			m.swapRows(p, row)
		}

		pivotRow := m.rows[row]
		pivot := pivotRow.RawData()[col]
		pivotRow.Apply(func(_ int, x K) K { return x.Div(pivot) })
		for i := row + 1; i < m.r; i++ {
			f := m.rows[i].RawData()[col]
			if f.IsZero() {
				continue
			}
			if err := m.rows[i].AddScaled(f.Neg(), pivotRow); err != nil {
				return 0, matrixErrorf(opRank, err)
			}
		}
		rank++
		row++
	}
	o.logger.Debug("rank: done", "rank", rank, "rows", m.r, "cols", m.c)

	return rank, nil
}
