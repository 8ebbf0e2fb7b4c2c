// Package matrix offers a small dense float64 matrix value type.
//
// The matrix package provides:
//
//   - Dense: a row-major R×C matrix (R, C ≥ 1) with bounds-checked At/Set
//     and deep Clone.
//   - Add, Sub, Mul: non-destructive arithmetic returning fresh matrices,
//     also available as methods on *Dense (Add, Subtract, Multiply).
//   - Equal and Hash: exact element-wise equality and a value hash
//     consistent with it.
//   - Construction in copy mode (default) or borrow mode
//     (WithBorrowedStorage) over caller data.
//   - ToGonum/FromGonum for handing data to gonum.org/v1/gonum/mat.
//
// Failures are sentinel errors (ErrNilMatrix, ErrInvalidDimensions,
// ErrOutOfRange, ErrDimensionMismatch, ...) matched with errors.Is;
// shape mismatches additionally carry a *MatrixError.
//
// A *Dense is not safe for concurrent mutation.
package matrix
