// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition, subtraction and matrix multiplication. All functions
// perform strict fail-fast validation and return clear errors on nil operands
// and dimension mismatches. Operands are never mutated; every result is a
// freshly allocated *Dense.

package matrix

import (
	"fmt"
)

// zeroSum is the initial value of every accumulated product cell.
const zeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Nothing is computed before it passes.
//   - Stage 2: allocate result Dense(rows, cols).
//   - Stage 3: fast-path if both are *Dense - single flat loop 0..n-1;
//     otherwise fallback At/Set with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (*MatrixError), ErrInvalidDimensions
//     (both operands are zero-value 0×0), element access failures from foreign
//     Matrix implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// mul computes C = A × B into a fresh Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil → shape of A → inner dimension).
//   - Stage 2: if A and B are *Dense, use i→k→j over row-major strides;
//     otherwise use i→j→k through At.
//
// Both paths add the products of a cell in increasing k starting from zeroSum,
// so they produce bit-identical results. Zero entries are not skipped:
// 0·Inf must still yield NaN.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = zeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (either operand absent), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (Matrix, error) {
	res, err := addSub(a, b, +1, opAdd)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// All validation happens before the first element is computed.
//
// Errors:
//   - ErrNilMatrix (either operand absent), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (Matrix, error) {
	res, err := addSub(a, b, -1, opSub)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// C has shape A.Rows() × B.Cols() and C[i,j] = Σ_k A[i,k]·B[k,j].
//
// Errors:
//   - ErrNilMatrix (either operand absent), ErrInvalidDimensions (A is 0×0),
//     ErrDimensionMismatch (A.Cols() != B.Rows()).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	res, err := mul(a, b)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Add returns m + b as a new Dense. A nil receiver reports ErrNilMatrix.
func (m *Dense) Add(b Matrix) (*Dense, error) { return addSub(m, b, +1, opAdd) }

// Subtract returns m - b as a new Dense. A nil receiver reports ErrNilMatrix.
func (m *Dense) Subtract(b Matrix) (*Dense, error) { return addSub(m, b, -1, opSub) }

// Multiply returns m × b as a new Dense. A nil receiver reports ErrNilMatrix.
func (m *Dense) Multiply(b Matrix) (*Dense, error) { return mul(m, b) }
