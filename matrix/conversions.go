// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Interoperate with gonum.org/v1/gonum/mat: export to *mat.Dense /
//     *mat.CDense, import from any mat.Matrix / mat.CMatrix, and a zero-copy
//     read-only adapter that satisfies mat.Matrix.
//
// Notes:
//   - Real exports use Scalar.Real(); imaginary parts are dropped.
//   - The adapter follows gonum conventions: At panics on bad indices.

package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Gonum is a read-only mat.Matrix view over a Matrix. It shares storage:
// later writes to the underlying Matrix are visible through the view.
type Gonum[K scalar.Scalar[K]] struct {
	m *Matrix[K]
}

var _ mat.Matrix = Gonum[scalar.Float64]{}

// AsGonum wraps m without copying. A nil m yields a 0×0 view.
func AsGonum[K scalar.Scalar[K]](m *Matrix[K]) Gonum[K] { return Gonum[K]{m: m} }

// Dims returns (rows, cols).
func (g Gonum[K]) Dims() (r, c int) { return g.m.Shape() }

// At returns the real part of element (i, j). Panics on out-of-range indices.
func (g Gonum[K]) At(i, j int) float64 {
	if i < 0 || i >= g.m.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= g.m.Cols() {
		panic(mat.ErrColAccess)
	}

	return g.m.rows[i].RawData()[j].Real()
}

// T returns the implicit transpose.
func (g Gonum[K]) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// ToGonum copies the real parts of m into a new *mat.Dense.
func ToGonum[K scalar.Scalar[K]](m *Matrix[K]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, 0, m.r*m.c)
	for _, row := range m.rows {
		for _, x := range row.RawData() {
			data = append(data, x.Real())
		}
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// ToGonumComplex copies a complex matrix into a new *mat.CDense.
func ToGonumComplex(m *Matrix[scalar.Complex]) (*mat.CDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]complex128, 0, m.r*m.c)
	for _, row := range m.rows {
		for _, z := range row.RawData() {
			data = append(data, z.Complex128())
		}
	}

	return mat.NewCDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum real matrix into a Matrix[scalar.Float64].
// Errors: ErrNilMatrix (nil a), ErrInvalidDimensions (empty a).
func FromGonum(a mat.Matrix) (*Matrix[scalar.Float64], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	out := &Matrix[scalar.Float64]{r: r, c: c, rows: make([]*vector.Vector[scalar.Float64], r)}
	for i := 0; i < r; i++ {
		row := make([]scalar.Float64, c)
		for j := range row {
			row[j] = scalar.Float64(a.At(i, j))
		}
		out.rows[i] = vector.FromSlice(row)
	}

	return out, nil
}

// FromGonumComplex copies any gonum complex matrix into a Matrix[scalar.Complex].
func FromGonumComplex(a mat.CMatrix) (*Matrix[scalar.Complex], error) {
	if a == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := a.Dims()
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opFromGonum, ErrInvalidDimensions)
	}
	out := &Matrix[scalar.Complex]{r: r, c: c, rows: make([]*vector.Vector[scalar.Complex], r)}
	for i := 0; i < r; i++ {
		row := make([]scalar.Complex, c)
		for j := range row {
			row[j] = scalar.FromComplex128(a.At(i, j))
		}
		out.rows[i] = vector.FromSlice(row)
	}

	return out, nil
}
