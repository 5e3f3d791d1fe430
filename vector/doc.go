// SPDX-License-Identifier: MIT

// Package vector provides Vector[K], a fixed-length ordered sequence of
// scalars, and the vector-level algebra built on it.
//
// The package provides:
//
//   - Construction from a literal sequence (New), a dynamic slice (FromSlice)
//     or a length with zero-filled elements (Zeros).
//   - Safe indexed access (At/Set return ErrOutOfRange instead of panicking).
//   - Elementwise Add/Sub/Scale in two flavours: in-place on the receiver and
//     value-returning (*New). Both delegate to a single kernel.
//   - Dot product, 1-norm, 2-norm and ∞-norm (via scalar Magnitude).
//   - LinearCombination, AngleCos, CrossProduct and Lerp.
//
// Length policy: pairwise operations require equal lengths and report
// *DimensionMismatchError (matching ErrDimensionMismatch) otherwise. No
// operation panics on user input.
//
// Concurrency: a Vector is not safe for concurrent mutation. Read-only
// operations on distinct vectors may run in parallel.
package vector
