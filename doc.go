// Package linalg is a small generic linear-algebra kernel: vectors and
// matrices over any scalar that satisfies a capability set, plus a
// reduction engine (row echelon form, rank, determinant, inverse).
//
// 🚀 What is in linalg?
//
//	• Scalars: Float32/64, signed and unsigned integers, Complex, each
//	  exposing Add, Mul, Zero, One, Magnitude, Conjugate and friends
//	• Vectors: in-place and allocating elementwise ops, dot, norms,
//	  linear combination, cosine of angle, cross product, lerp
//	• Matrices: construction, transpose, products, trace, submatrix
//	• Reduction: RowEchelon, Rank, Determinant, Inverse
//	• Interop: gonum mat.Dense / mat.CDense conversions
//
// ✨ Design notes
//
//   - Generic over scalar.Scalar; each kernel asks for the weakest tier it
//     needs (Scalar, Signed, Field), so integer matrices get exact
//     determinants and unsigned types are rejected at compile time where
//     negation is required.
//   - No panics on user input: every failure is a sentinel or typed error
//     usable with errors.Is / errors.As.
//   - Single-threaded and deterministic: fixed loop orders, no global state.
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/ : capability constraints, concrete scalar types, Lerp
//	vector/ : Vector[K] and vector algorithms
//	matrix/ : Matrix[K], reduction engine, gonum conversions
//
// Quick example:
//
//	a, _ := matrix.New([][]scalar.Float64{{2, 1}, {1, 1}})
//	inv, _ := matrix.Inverse(a) // [[1, -1], [-1, 2]]
//
//	go get github.com/katalvlaran/linalg
package linalg
