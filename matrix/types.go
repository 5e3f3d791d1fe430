// SPDX-License-Identifier: MIT

// Package matrix: the Matrix container type.
// This file intentionally contains ONLY the type definition, its compile-time
// assertions and the shared operation tags; constructors and accessors live in
// impl_dense.go, kernels in impl_*.go and ops_*.go.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/linalg/scalar"
	"github.com/katalvlaran/linalg/vector"
)

// Matrix is a rows×cols rectangular grid of scalars stored as rows
// independent vectors of length cols (row-major).
//
// Invariants:
//   - len(rows) == r and every rows[i].Len() == c, with r, c > 0.
//   - Shape never changes after construction; reduction kernels swap and
//     rescale rows but never resize them.
//   - A Matrix exclusively owns its row vectors; no two matrices alias.
//
// Nil receivers:
//   - Read-only accessors treat a nil *Matrix as 0×0 (IsSquare is false), and
//     derived copies (Clone, Transpose, ScaleNew) are nil.
//   - Methods returning an error report ErrNilMatrix.
type Matrix[K scalar.Scalar[K]] struct {
	r, c int                // row and column counts
	rows []*vector.Vector[K] // one owned vector per row
}

var _ fmt.Stringer = (*Matrix[scalar.Float64])(nil)

// Operation name constants for unified error wrapping.
const (
	opNew        = "New"
	opFromVecs   = "FromVectors"
	opZeros      = "Zeros"
	opIdentity   = "Identity"
	opAt         = "At"
	opSet        = "Set"
	opRow        = "Row"
	opCol        = "Col"
	opAdd        = "Add"
	opSub        = "Sub"
	opMulVec     = "MulVec"
	opMulMat     = "MulMat"
	opSubMatrix  = "SubMatrix"
	opLerp       = "Lerp"
	opAllClose   = "AllClose"
	opRowEchelon = "RowEchelon"
	opRank       = "Rank"
	opDet        = "Determinant"
	opInverse    = "Inverse"
	opFromGonum  = "FromGonum"
	opToGonum    = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
