// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the dimension-mismatch carrier.
// Every failure returned by this package either IS one of the sentinels below
// or wraps one of them; callers match with errors.Is / errors.As.
// No function panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped with fmt.Errorf("ctx: %w", ErrX) at detection sites; errors.Is still
// matches through the chain.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> invalid dimensions -> dimension mismatch.

var (
	// ErrNilMatrix indicates that a required matrix (receiver, argument or
	// source grid/slice) was absent.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested or current dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrBadShape is returned when source data cannot form a rectangle:
	// ragged rows, or a flat slice whose length is not rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value rejected by the finite-only policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// MatrixError reports two operands whose shapes are incompatible for Op.
// It unwraps to ErrDimensionMismatch.
type MatrixError struct {
	Op  string // validator or operation tag that detected the mismatch
	Msg string // human-readable description including both shapes
}

// newMismatch builds a *MatrixError describing the shapes of a and b.
// Both operands must be non-nil.
func newMismatch(op string, a, b Matrix) *MatrixError {
	return &MatrixError{
		Op: op,
		Msg: fmt.Sprintf("%dx%d and %dx%d have the wrong dimensions for the operation",
			a.Rows(), a.Cols(), b.Rows(), b.Cols()),
	}
}

// Error implements the error interface.
func (e *MatrixError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, ErrDimensionMismatch)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *MatrixError) Unwrap() error { return ErrDimensionMismatch }
