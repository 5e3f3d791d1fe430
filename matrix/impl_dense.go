// SPDX-License-Identifier: MIT

// Package matrix - row storage & safe accessors.
//
// Purpose:
//   - Build matrices from nested slices, row vectors, or by shape (zeros/identity).
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - Kernels in impl_*.go operate on rows[i].RawData() directly; public callers
//     only ever receive copies (Row, ToSlices, Clone).
//
// Complexity quicksheet:
//   - New/Zeros/Identity/Clone: O(r*c); At/Set: O(1); Row: O(c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
	_fmtNewline  = "\n"
)

// New creates a matrix from row-major nested slices (values are copied).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: require at least one row and one column; else ErrInvalidDimensions.
//   - Stage 2: every row must have len(rows[0]) entries; else *RaggedError.
//   - Stage 3: copy each row into an owned vector.
//
// Errors:
//   - ErrInvalidDimensions, ErrRagged (as *RaggedError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[K scalar.Scalar[K]](rows [][]K) (*Matrix[K], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	c := len(rows[0])
	m := &Matrix[K]{r: len(rows), c: c, rows: make([]*vector.Vector[K], len(rows))}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opNew, &RaggedError{Row: i, Expected: c, Actual: len(row)})
		}
		m.rows[i] = vector.FromSlice(row)
	}

	return m, nil
}

// FromVectors creates a matrix whose i-th row is a copy of vs[i].
// Errors: ErrInvalidDimensions (no rows or empty rows), vector.ErrNilVector, ErrRagged.
func FromVectors[K scalar.Scalar[K]](vs ...*vector.Vector[K]) (*Matrix[K], error) {
	if len(vs) == 0 {
		return nil, matrixErrorf(opFromVecs, ErrInvalidDimensions)
	}
	for _, v := range vs {
		if err := vector.ValidateNotNil(v); err != nil {
			return nil, matrixErrorf(opFromVecs, err)
		}
	}
	c := vs[0].Len()
	if c == 0 {
		return nil, matrixErrorf(opFromVecs, ErrInvalidDimensions)
	}
	m := &Matrix[K]{r: len(vs), c: c, rows: make([]*vector.Vector[K], len(vs))}
	for i, v := range vs {
		if v.Len() != c {
			return nil, matrixErrorf(opFromVecs, &RaggedError{Row: i, Expected: c, Actual: v.Len()})
		}
		m.rows[i] = v.Clone()
	}

	return m, nil
}

// Zeros returns an r×c matrix filled with the zero scalar.
func Zeros[K scalar.Scalar[K]](r, c int) (*Matrix[K], error) {
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidDimensions)
	}

	return zeros[K](r, c), nil
}

// Identity returns the n×n identity: One on the diagonal, Zero elsewhere.
func Identity[K scalar.Scalar[K]](n int) (*Matrix[K], error) {
	if n <= 0 {
		return nil, matrixErrorf(opIdentity, ErrInvalidDimensions)
	}
	m := zeros[K](n, n)
	one := scalar.One[K]()
	for i := 0; i < n; i++ {
		m.rows[i].RawData()[i] = one
	}

	return m, nil
}

// zeros allocates without validation; callers guarantee r, c > 0.
func zeros[K scalar.Scalar[K]](r, c int) *Matrix[K] {
	m := &Matrix[K]{r: r, c: c, rows: make([]*vector.Vector[K], r)}
	for i := range m.rows {
		v, _ := vector.Zeros[K](c) // c > 0 cannot fail
		m.rows[i] = v
	}

	return m
}

// Rows returns the number of rows (0 for nil).
func (m *Matrix[K]) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the number of columns (0 for nil).
func (m *Matrix[K]) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape returns (rows, cols).
func (m *Matrix[K]) Shape() (int, int) { return m.Rows(), m.Cols() }

// IsSquare reports whether rows == cols; false for nil.
func (m *Matrix[K]) IsSquare() bool { return m != nil && m.r == m.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Matrix[K]) At(i, j int) (K, error) {
	if err := validateCell(m, i, j); err != nil {
		var zero K

		return zero, matrixErrorf(opAt, err)
	}

	return m.rows[i].RawData()[j], nil
}

// Set assigns x at (i, j) or returns ErrOutOfRange.
func (m *Matrix[K]) Set(i, j int, x K) error {
	if err := validateCell(m, i, j); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.rows[i].RawData()[j] = x

	return nil
}

// Row returns a copy of row i.
func (m *Matrix[K]) Row(i int) (*vector.Vector[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}

	return m.rows[i].Clone(), nil
}

// Col returns a copy of column j.
func (m *Matrix[K]) Col(j int) (*vector.Vector[K], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opCol, err)
	}
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, ErrOutOfRange)
	}
	out := make([]K, m.r)
	for i := range out {
		out[i] = m.rows[i].RawData()[j]
	}

	return vector.FromSlice(out), nil
}

// Clone returns a deep copy; mutating it never affects m.
func (m *Matrix[K]) Clone() *Matrix[K] {
	if m == nil {
		return nil
	}
	out := &Matrix[K]{r: m.r, c: m.c, rows: make([]*vector.Vector[K], m.r)}
	for i, row := range m.rows {
		out.rows[i] = row.Clone()
	}

	return out
}

// ToSlices returns the contents as freshly allocated nested slices.
func (m *Matrix[K]) ToSlices() [][]K {
	if m == nil {
		return nil
	}
	out := make([][]K, m.r)
	for i, row := range m.rows {
		out[i] = row.Slice()
	}

	return out
}

// String renders one bracketed row per line with right-aligned columns.
// Column width is the widest rendered entry of that column:
//
//	[1,  2]
//	[3, 10]
func (m *Matrix[K]) String() string {
	if m == nil {
		return ""
	}
	cells := make([][]string, m.r)
	widths := make([]int, m.c)
	for i, row := range m.rows {
		cells[i] = make([]string, m.c)
		for j, x := range row.RawData() {
			s := fmt.Sprint(x)
			cells[i][j] = s
			widths[j] = max(widths[j], len(s))
		}
	}

	var sb strings.Builder
	for i := range cells {
		if i > 0 {
			sb.WriteString(_fmtNewline)
		}
		sb.WriteString(_fmtRowOpen)
		for j, s := range cells[i] {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strings.Repeat(" ", widths[j]-len(s)))
			sb.WriteString(s)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// swapRows exchanges two row vectors by pointer (no element copies).
func (m *Matrix[K]) swapRows(i, j int) {
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}
