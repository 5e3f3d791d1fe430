// Package matrix provides a generic rows×cols matrix over any scalar.Scalar
// and the reduction engine built on it.
//
// The matrix package provides:
//
//   - Construction from nested slices or row vectors, zeros and identity,
//     with errors (never panics) on empty, ragged or out-of-range input.
//   - Elementwise Add/Sub/Scale (in place and allocating), Lerp, AllClose.
//   - Transpose, ConjugateTranspose, MulVec, MulMat, Trace and SubMatrix.
//   - The reduction engine: RowEchelon, Rank, Determinant and Inverse,
//     each constrained to the weakest scalar tier it needs.
//   - Conversions to and from gonum's mat.Dense / mat.CDense.
//
// Rows are stored as independent vector.Vector values; row operations
// (swap, scale, axpy) reuse the vector kernels.
//
// See the examples in this package for usage patterns.
package matrix
