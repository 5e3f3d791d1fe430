// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix[f64] {
		m, err := matrix.Zeros[f64](r, c)
		require.NoError(t, err)

		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[f64]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"same", zeros(2, 3), zeros(2, 3), nil},
		{"rows differ", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"cols differ", zeros(2, 3), zeros(2, 2), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidateSquareAndMul(t *testing.T) {
	t.Parallel()

	sq := mf(t, []float64{1, 2}, []float64{3, 4})
	wide := mf(t, []float64{1, 2, 3})

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(wide), matrix.ErrNonSquare)
	require.ErrorIs(t, matrix.ValidateSquare[f64](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateMulCompatible(wide, wide.Transpose()))
	require.ErrorIs(t, matrix.ValidateMulCompatible(sq, wide), matrix.ErrDimensionMismatch)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	m := mf(t, []float64{1, 2, 3})
	require.NoError(t, matrix.ValidateVecLen(m, vf(1, 2, 3)))
	require.ErrorIs(t, matrix.ValidateVecLen(m, vf(1)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(m, nil), vector.ErrNilVector)
	require.ErrorIs(t, matrix.ValidateVecLen[f64](nil, vf(1)), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(m))
}
