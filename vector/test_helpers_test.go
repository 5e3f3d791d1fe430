// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers.
//
// Purpose:
//   - Provide compact constructors for float64/complex fixtures.
//   - Keep numeric comparisons tolerant where floating-point rounding applies.

package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

type f64 = scalar.Float64

// vf builds a Float64 vector from plain float64 literals.
func vf(values ...float64) *vector.Vector[f64] {
	data := make([]f64, len(values))
	for i, x := range values {
		data[i] = f64(x)
	}

	return vector.FromSlice(data)
}

// c is shorthand for scalar.NewComplex.
func c(re, im float64) scalar.Complex { return scalar.NewComplex(re, im) }

// requireClose asserts |got_i − want_i| ≤ tol for every element.
func requireClose(t *testing.T, want []float64, got *vector.Vector[f64], tol float64) {
	t.Helper()
	require.Equal(t, len(want), got.Len(), "length")
	for i, w := range want {
		g, err := got.At(i)
		require.NoError(t, err)
		require.InDeltaf(t, w, float64(g), tol, "element %d", i)
	}
}
