// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vector storage and elementwise kernels.
package vector_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

func TestConstructors(t *testing.T) {
	lit := vector.New[f64](1, 2, 3)
	require.Equal(t, 3, lit.Len())
	require.Equal(t, []f64{1, 2, 3}, lit.Slice())

	src := []f64{4, 5}
	dyn := vector.FromSlice(src)
	src[0] = 99 // FromSlice must copy
	require.Equal(t, []f64{4, 5}, dyn.Slice())

	z, err := vector.Zeros[scalar.Complex](4)
	require.NoError(t, err)
	require.Equal(t, 4, z.Len())
	for _, x := range z.Slice() {
		require.True(t, x.IsZero())
	}

	empty, err := vector.Zeros[f64](0)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = vector.Zeros[f64](-1)
	require.ErrorIs(t, err, vector.ErrInvalidLength)
}

func TestAtSet_Bounds(t *testing.T) {
	v := vf(1, 2, 3)

	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, f64(3), x)

	require.NoError(t, v.Set(0, 10))
	require.Equal(t, []f64{10, 2, 3}, v.Slice())

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(3, 1), vector.ErrOutOfRange)
}

func TestClone_Independent(t *testing.T) {
	v := vf(1, 2)
	w := v.Clone()
	require.NoError(t, w.Set(0, 7))
	require.Equal(t, []f64{1, 2}, v.Slice())
}

func TestAddSubScale_InPlace(t *testing.T) {
	u := vf(2, 3)
	require.NoError(t, u.Add(vf(5, 7)))
	require.Equal(t, []f64{7, 10}, u.Slice())

	require.NoError(t, u.Sub(vf(5, 7)))
	require.Equal(t, []f64{2, 3}, u.Slice())

	u.Scale(2)
	require.Equal(t, []f64{4, 6}, u.Slice())
}

func TestAddSubScale_New_DoesNotMutate(t *testing.T) {
	u, v := vf(2, 3), vf(5, 7)

	sum, err := u.AddNew(v)
	require.NoError(t, err)
	require.Equal(t, []f64{7, 10}, sum.Slice())

	diff, err := u.SubNew(v)
	require.NoError(t, err)
	require.Equal(t, []f64{-3, -4}, diff.Slice())

	require.Equal(t, []f64{4, 6}, u.ScaleNew(2).Slice())
	require.Equal(t, []f64{2, 3}, u.Slice())
	require.Equal(t, []f64{5, 7}, v.Slice())
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	u, v := vf(1, 2), vf(1, 2, 3)

	err := u.Add(v)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	var dme *vector.DimensionMismatchError
	require.True(t, errors.As(err, &dme))
	assert.Equal(t, 2, dme.Expected)
	assert.Equal(t, 3, dme.Actual)

	_, err = u.SubNew(v)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = u.Dot(v)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	// receiver untouched on failure
	require.Equal(t, []f64{1, 2}, u.Slice())
}

func TestAdd_Nil(t *testing.T) {
	require.ErrorIs(t, vf(1).Add(nil), vector.ErrNilVector)
}

func TestAddThenSub_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(8)
		data := make([]float64, n)
		other := make([]float64, n)
		for i := range data {
			data[i] = rng.NormFloat64() * 100
			other[i] = rng.NormFloat64() * 100
		}
		u, v := vf(data...), vf(other...)

		require.NoError(t, u.Add(v))
		require.NoError(t, u.Sub(v))
		requireClose(t, data, u, 1e-9)
	}
}

func TestComplexVector_AddSub(t *testing.T) {
	u := vector.New(c(1, 2), c(3, 4))
	v := vector.New(c(0, 1), c(1, -1))
	require.NoError(t, u.Add(v))
	require.Equal(t, []scalar.Complex{c(1, 3), c(4, 3)}, u.Slice())
}

func TestDot(t *testing.T) {
	d, err := vf(0, 0).Dot(vf(1, 1))
	require.NoError(t, err)
	require.Equal(t, f64(0), d)

	d, err = vf(1, 1).Dot(vf(1, 1))
	require.NoError(t, err)
	require.Equal(t, f64(2), d)

	d, err = vf(-1, 6).Dot(vf(3, 2))
	require.NoError(t, err)
	require.Equal(t, f64(9), d)

	// Unconjugated complex product: (1+2i)(4+i) + (3−i)(−2+2i) = (2+9i) + (−4+8i)
	cd, err := vector.New(c(1, 2), c(3, -1)).Dot(vector.New(c(4, 1), c(-2, 2)))
	require.NoError(t, err)
	require.Equal(t, c(-2, 17), cd)
}

func TestNorms(t *testing.T) {
	cases := []struct {
		v                  *vector.Vector[f64]
		norm1, norm, normI float64
	}{
		{vf(0, 0, 0), 0, 0, 0},
		{vf(1, 2, 3), 6, 3.74165738, 3},
		{vf(-1, -2), 3, 2.236067977, 2},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.norm1, tc.v.Norm1(), 1e-6)
		assert.InDelta(t, tc.norm, tc.v.Norm(), 1e-6)
		assert.InDelta(t, tc.normI, tc.v.NormInf(), 1e-6)
	}
}

func TestNorms_Complex(t *testing.T) {
	v := vector.New(c(3, 4), c(1, 0), c(0, 2)) // |z| = 5, 1, 2
	assert.InDelta(t, 8.0, v.Norm1(), 1e-12)
	assert.InDelta(t, 5.477225575, v.Norm(), 1e-6)
	assert.InDelta(t, 5.0, v.NormInf(), 1e-12)
}

func TestIntegerVector(t *testing.T) {
	u := vector.New[scalar.Int](1, -2, 3)
	d, err := u.Dot(vector.New[scalar.Int](4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, scalar.Int(12), d)
	require.Equal(t, 6.0, u.Norm1())

	w := vector.New[scalar.Uint8](1, 2)
	require.NoError(t, w.Add(vector.New[scalar.Uint8](3, 4)))
	require.Equal(t, []scalar.Uint8{4, 6}, w.Slice())
}

func TestApply(t *testing.T) {
	v := vf(1, 2, 3)
	v.Apply(func(i int, x f64) f64 { return x * f64(i) })
	require.Equal(t, []f64{0, 2, 6}, v.Slice())
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2.5, -3]", vf(1, 2.5, -3).String())
	require.Equal(t, "[]", vf().String())
	require.Equal(t, "[1 + 2i, 0 - 1i]", vector.New(c(1, 2), c(0, -1)).String())
}

func TestEqual(t *testing.T) {
	require.True(t, vf(1, 2).Equal(vf(1, 2)))
	require.False(t, vf(1, 2).Equal(vf(1, 3)))
	require.False(t, vf(1, 2).Equal(vf(1, 2, 3)))
	require.False(t, vf(1).Equal(nil))
	require.True(t, vector.New(c(1, -1)).Equal(vector.New(c(1, -1))))
}

func TestNilReceiver_ReadsAsEmpty(t *testing.T) {
	var v *vector.Vector[scalar.Float64]

	require.Equal(t, 0, v.Len())
	require.True(t, v.IsEmpty())
	require.Nil(t, v.RawData())
	require.Empty(t, v.Slice())
	require.Nil(t, v.Clone())
	require.Nil(t, v.ScaleNew(2))
	require.Equal(t, "[]", v.String())
	require.Zero(t, v.Norm1())
	require.Zero(t, v.Norm())
	require.Zero(t, v.NormInf())
	require.NotPanics(t, func() {
		v.Scale(2)
		v.Apply(func(_ int, x scalar.Float64) scalar.Float64 { return x })
	})

	_, err := v.At(0)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(0, 1), vector.ErrOutOfRange)
	_, err = v.Dot(vector.New[scalar.Float64](1))
	require.ErrorIs(t, err, vector.ErrNilVector)
	require.ErrorIs(t, v.Add(vector.New[scalar.Float64](1)), vector.ErrNilVector)
}
