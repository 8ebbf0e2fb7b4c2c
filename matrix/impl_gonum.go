// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// Conversions always copy; no storage is shared with gonum values.

package matrix

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxToGonum   = "ToGonum"
	ctxFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense of the same shape.
//
// Errors:
//   - ErrNilMatrix on a nil receiver, ErrInvalidDimensions for the zero value
//     (gonum panics on empty shapes).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(ctxToGonum, ErrNilMatrix)
	}
	if err := ValidateShape(m.r, m.c); err != nil {
		return nil, matrixErrorf(ctxToGonum, err)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Options apply as in NewDense (storage mode is irrelevant: the data is copied).
//
// Errors:
//   - ErrNilMatrix (src is nil, including a typed nil pointer such as
//     (*mat.Dense)(nil)), ErrInvalidDimensions (empty src),
//     ErrNaNInf (policy on, non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if isNilGonum(src) {
		return nil, matrixErrorf(ctxFromGonum, ErrNilMatrix)
	}
	rows, cols := src.Dims()
	out, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromGonum, err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(ctxFromGonum, err)
			}
		}
	}

	return out, nil
}

// isNilGonum reports whether src is a nil interface or wraps a nil pointer.
// gonum types are consumed through mat.Matrix, so the pointer kind is not known statically.
func isNilGonum(src mat.Matrix) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
