// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil checks here.
//  - Return tagged errors so call sites can wrap uniformly with an op tag.
//
// Note:
//  - Each composite validator follows a fixed sequence: NotNil(a) → NotNil(b) → Shape.
//  - All checks are pure, O(1) and allocate only on failure.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is absent: a nil interface or a typed nil *Dense
// stored in a non-nil interface.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return true
	}

	return false
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// ValidateNotNil ensures the matrix reference is present.
// A typed nil *Dense counts as absent.
// Returns ErrNilMatrix.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// maxElements bounds rows*cols so that the float64 buffer size in bytes fits an int.
const maxElements = math.MaxInt / 8

// ValidateShape ensures rows > 0, cols > 0 and rows*cols <= maxElements.
// Returns ErrInvalidDimensions.
func ValidateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > maxElements/cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Returns a *MatrixError (ErrDimensionMismatch) on violation.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return newMismatch("ValidateSameShape", a, b)
	}

	return nil
}

// ValidateBinarySameShape is a composite check: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible is a composite check: NotNil(a) → NotNil(b) → Shape(a) → a.Cols == b.Rows.
//
// The Shape(a) step only fires for a zero-value Dense{}, which is 0×0;
// constructors never produce such a matrix.
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateShape(a.Rows(), a.Cols()); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", newMismatch("Mul", a, b))
	}

	return nil
}

// validateGrid checks a [][]float64 for presence, non-emptiness and
// rectangularity, returning its shape.
// Errors: ErrNilMatrix (nil grid), ErrInvalidDimensions (no rows / empty
// first row), ErrBadShape (ragged row).
func validateGrid(grid [][]float64) (rows, cols int, err error) {
	if grid == nil {
		return 0, 0, validatorErrorf("validateGrid", ErrNilMatrix)
	}
	rows = len(grid)
	if rows == 0 {
		return 0, 0, validatorErrorf("validateGrid", ErrInvalidDimensions)
	}
	cols = len(grid[0])
	if cols == 0 {
		return 0, 0, validatorErrorf("validateGrid", ErrInvalidDimensions)
	}
	for i := 1; i < rows; i++ {
		if len(grid[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("validateGrid: row %d has %d columns, want %d", i, len(grid[i]), cols), ErrBadShape)
		}
	}

	return rows, cols, nil
}

// validateFinite returns ErrNaNInf at the first non-finite value in data.
func validateFinite(data []float64, cols int) error {
	for idx, v := range data {
		if isNonFinite(v) {
			return validatorErrorf(fmt.Sprintf("validateFinite(%d,%d)", idx/cols, idx%cols), ErrNaNInf)
		}
	}

	return nil
}
