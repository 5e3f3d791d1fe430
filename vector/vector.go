// SPDX-License-Identifier: MIT

// Package vector - storage & safe accessors.
//
// Purpose:
//   - Own a contiguous []K whose length is fixed at construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose RawData for kernels in sibling packages that have already validated shapes.
//
// Complexity quicksheet:
//   - New/FromSlice/Zeros/Clone: O(n) copy; Len/At/Set: O(1).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/scalar"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered, fixed-length sequence of scalars.
// The zero value is an empty vector of length 0. A nil *Vector reads as
// empty too: accessors report length 0, in-place ops are no-ops, and
// package functions return ErrNilVector.
type Vector[K scalar.Scalar[K]] struct {
	data []K
}

var _ fmt.Stringer = (*Vector[scalar.Float64])(nil)

// New returns a vector holding a copy of values.
// Use it with literal sequences: vector.New[scalar.Float64](1, 2, 3).
func New[K scalar.Scalar[K]](values ...K) *Vector[K] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of values; values is not retained.
func FromSlice[K scalar.Scalar[K]](values []K) *Vector[K] {
	data := make([]K, len(values))
	copy(data, values)

	return &Vector[K]{data: data}
}

// Zeros returns a vector of length n filled with the zero scalar.
// Errors: ErrInvalidLength when n < 0.
func Zeros[K scalar.Scalar[K]](n int) (*Vector[K], error) {
	if n < 0 {
		return nil, vectorErrorf(opZeros, ErrInvalidLength)
	}
	data := make([]K, n)
	zero := scalar.Zero[K]()
	for i := range data {
		data[i] = zero // K's zero value need not be its additive identity
	}

	return &Vector[K]{data: data}, nil
}

// Len returns the number of elements. O(1).
func (v *Vector[K]) Len() int { return len(v.RawData()) }

// IsEmpty reports whether Len() == 0.
func (v *Vector[K]) IsEmpty() bool { return v.Len() == 0 }

// At returns element i or ErrOutOfRange.
func (v *Vector[K]) At(i int) (K, error) {
	if err := ValidateIndex(i, v.Len()); err != nil {
		var zero K

		return zero, vectorErrorf(opAt, fmt.Errorf("(%d): %w", i, err))
	}

	return v.data[i], nil
}

// Set assigns element i or returns ErrOutOfRange.
func (v *Vector[K]) Set(i int, x K) error {
	if err := ValidateIndex(i, v.Len()); err != nil {
		return vectorErrorf(opSet, fmt.Errorf("(%d): %w", i, err))
	}
	v.data[i] = x

	return nil
}

// Slice returns a copy of the elements.
func (v *Vector[K]) Slice() []K {
	out := make([]K, v.Len())
	copy(out, v.RawData())

	return out
}

// RawData returns the backing slice without copying.
//
// Notes:
//   - Writes through the returned slice mutate v; appends must not be used.
//   - Intended for kernels (e.g. matrix rows) that validated lengths up front.
func (v *Vector[K]) RawData() []K {
	if v == nil {
		return nil
	}

	return v.data
}

// Equal reports whether v and w have the same length and every v_i − w_i is zero.
func (v *Vector[K]) Equal(w *Vector[K]) bool {
	if v == nil || w == nil || len(v.data) != len(w.data) {
		return v == nil && w == nil
	}
	for i, x := range v.data {
		if !x.Sub(w.data[i]).IsZero() {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of v (nil for a nil v).
func (v *Vector[K]) Clone() *Vector[K] {
	if v == nil {
		return nil
	}

	return FromSlice(v.data)
}

// Apply replaces every element x_i with fn(i, x_i), in index order.
// Complexity: O(n).
func (v *Vector[K]) Apply(fn func(i int, x K) K) {
	for i, x := range v.RawData() {
		v.data[i] = fn(i, x)
	}
}

// String renders the vector as "[a, b, c]".
func (v *Vector[K]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i, x := range v.RawData() {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}
