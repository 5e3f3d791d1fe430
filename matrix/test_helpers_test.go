// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Keep numeric comparisons tolerant where floating-point rounding applies.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

type f64 = scalar.Float64

// c is shorthand for scalar.NewComplex.
func c(re, im float64) scalar.Complex { return scalar.NewComplex(re, im) }

// MustNew builds a matrix from nested slices or fails the test.
func MustNew[K scalar.Scalar[K]](t *testing.T, rows [][]K) *matrix.Matrix[K] {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// mf builds a Float64 matrix from plain float64 literals.
func mf(t *testing.T, rows ...[]float64) *matrix.Matrix[f64] {
	t.Helper()
	data := make([][]f64, len(rows))
	for i, row := range rows {
		data[i] = make([]f64, len(row))
		for j, x := range row {
			data[i][j] = f64(x)
		}
	}

	return MustNew(t, data)
}

// vf builds a Float64 vector from plain float64 literals.
func vf(values ...float64) *vector.Vector[f64] {
	data := make([]f64, len(values))
	for i, x := range values {
		data[i] = f64(x)
	}

	return vector.FromSlice(data)
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[K scalar.Scalar[K]](t *testing.T, n int) *matrix.Matrix[K] {
	t.Helper()
	id, err := matrix.Identity[K](n)
	require.NoError(t, err)

	return id
}

// requireAllClose asserts |a_ij − b_ij| ≤ tol everywhere.
func requireAllClose[K scalar.Scalar[K]](t *testing.T, want, got *matrix.Matrix[K], tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\nwant\n%v\ngot\n%v", tol, want, got)
}

// randomDominant returns an n×n matrix with |a_ii| > Σ_{j≠i} |a_ij|,
// which is invertible and has non-zero pivots under elimination without swaps.
func randomDominant(t *testing.T, rng *rand.Rand, n int) *matrix.Matrix[f64] {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		sum := 0.0
		for j := range rows[i] {
			if i == j {
				continue
			}
			x := rng.Float64()*2 - 1
			rows[i][j] = x
			if x < 0 {
				sum -= x
			} else {
				sum += x
			}
		}
		rows[i][i] = sum + 1 + rng.Float64()
	}

	return mf(t, rows...)
}

// randomMatrix returns an r×c matrix with entries in [-5, 5).
func randomMatrix(t *testing.T, rng *rand.Rand, r, c int) *matrix.Matrix[f64] {
	t.Helper()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*10 - 5
		}
	}

	return mf(t, rows...)
}

// liftInts converts an integer matrix to Float64 so Field kernels accept it.
func liftInts(t *testing.T, m *matrix.Matrix[scalar.Int]) *matrix.Matrix[f64] {
	t.Helper()
	src := m.ToSlices()
	rows := make([][]f64, len(src))
	for i, row := range src {
		rows[i] = make([]f64, len(row))
		for j, x := range row {
			rows[i][j] = f64(x)
		}
	}

	return MustNew(t, rows)
}
