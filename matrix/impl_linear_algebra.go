// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Structural and product kernels: Transpose, ConjugateTranspose, MulVec,
//     MulMat, Trace, SubMatrix.
//   - All kernels return new matrices/vectors; inputs are never mutated.
//
// Determinism:
//   - Fixed loop orders; products accumulate from the zero scalar in
//     increasing k, so results are bit-stable across runs.

package matrix

import (
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Transpose returns the c×r matrix with T[j][i] = m[i][j] (nil for nil).
// Complexity: O(r*c) time and space.
func (m *Matrix[K]) Transpose() *Matrix[K] {
	return m.transposeWith(func(x K) K { return x })
}

// ConjugateTranspose returns T[j][i] = conj(m[i][j]).
// For real scalars it equals Transpose.
func (m *Matrix[K]) ConjugateTranspose() *Matrix[K] {
	return m.transposeWith(func(x K) K { return x.Conjugate() })
}

func (m *Matrix[K]) transposeWith(f func(K) K) *Matrix[K] {
	if m == nil {
		return nil
	}
	out := zeros[K](m.c, m.r)
	for i, row := range m.rows {
		for j, x := range row.RawData() {
			out.rows[j].RawData()[i] = f(x)
		}
	}

	return out
}

// MulVec returns y = M·v where y_i = Σ_j m[i][j]·v[j] (row i dotted with v).
// MAIN DESCRIPTION:
//   - Matrix–vector product via one vector.Dot per row.
//
// Inputs:
//   - v: vector of length m.Cols().
//
// Returns:
//   - *vector.Vector[K]: length m.Rows().
//
// Errors:
//   - ErrNilMatrix, vector.ErrNilVector, ErrDimensionMismatch (*vector.DimensionMismatchError).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Matrix[K]) MulVec(v *vector.Vector[K]) (*vector.Vector[K], error) {
	if err := ValidateVecLen(m, v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make([]K, m.r)
	for i, row := range m.rows {
		d, err := row.Dot(v)
		if err != nil {
			return nil, matrixErrorf(opMulVec, err)
		}
		out[i] = d
	}

	return vector.FromSlice(out), nil
}

// MulMat returns the product m×b (m.Cols() must equal b.Rows()).
// MAIN DESCRIPTION:
//   - Row-oriented product: result row i accumulates m[i][k]·(row k of b).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible.
//   - Stage 2: allocate r×b.c zeros.
//   - Stage 3: for i, for k: skip a zero coefficient, else AddScaled(m[i][k], b.rows[k]).
//
// Behavior highlights:
//   - i→k→j order reads b row-contiguously.
//   - Skipping zero coefficients is exact (adding 0·x never changes a sum).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (*ShapeMismatchError).
//
// Complexity:
//   - Time O(r*c*b.c), Space O(r*b.c).
func (m *Matrix[K]) MulMat(b *Matrix[K]) (*Matrix[K], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMulMat, err)
	}
	res := zeros[K](m.r, b.c)
	for i, row := range m.rows {
		acc := res.rows[i]
		for k, av := range row.RawData() {
			if av.IsZero() {
				continue
			}
			if err := acc.AddScaled(av, b.rows[k]); err != nil {
				return nil, matrixErrorf(opMulMat, err)
			}
		}
	}

	return res, nil
}

// Trace returns Σ m[i][i], or the zero scalar when m is nil or not square.
func (m *Matrix[K]) Trace() K {
	sum := scalar.Zero[K]()
	if !m.IsSquare() {
		return sum
	}
	for i := 0; i < m.r; i++ {
		sum = sum.Add(m.rows[i].RawData()[i])
	}

	return sum
}

// SubMatrix returns m with row `row` and column `col` removed.
//
// Errors:
//   - ErrOutOfRange if row ∉ [0,r) or col ∉ [0,c),
//   - ErrInvalidDimensions if m has a single row or column (result would be empty).
//
// Complexity: O(r*c).
func (m *Matrix[K]) SubMatrix(row, col int) (*Matrix[K], error) {
	if err := validateCell(m, row, col); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opSubMatrix, ErrInvalidDimensions)
	}
	out := &Matrix[K]{r: m.r - 1, c: m.c - 1, rows: make([]*vector.Vector[K], 0, m.r-1)}
	for i, src := range m.rows {
		if i == row {
			continue
		}
		data := src.RawData()
		dst := make([]K, 0, m.c-1)
		dst = append(dst, data[:col]...)
		dst = append(dst, data[col+1:]...)
		out.rows = append(out.rows, vector.FromSlice(dst))
	}

	return out, nil
}
