// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep ownership explicit: constructors copy by default, borrow only on request.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     NewDenseFromRows: O(r*c) copy; NewDenseFromData: O(r*c) copy or O(1) borrow.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"  // method tag used in error wrappers
	ctxSet      = "Set" // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
	ctxFromData = "NewDenseFromData"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both > 0 for every constructed Dense.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - borrowed marks a buffer that aliases caller-owned memory.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
//
// The zero value is a 0×0 matrix: every index is out of range and Mul reports
// ErrInvalidDimensions for it.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	borrowed       bool      // data aliases a caller slice (WithBorrowedStorage)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols cannot overflow;
//     else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: apply numeric policy from options.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a rectangular grid, copying every value.
// The shape is derived from the grid: len(grid) rows, len(grid[0]) columns.
//
// Implementation:
//   - Stage 1: validate presence, non-emptiness and rectangularity.
//   - Stage 2: flatten rows into a fresh row-major buffer.
//   - Stage 3: enforce the numeric policy when enabled.
//
// Behavior highlights:
//   - The grid is never retained; later writes to it do not reach the Dense.
//   - WithBorrowedStorage is ignored here: a [][]float64 cannot back a flat buffer.
//
// Errors:
//   - ErrNilMatrix (nil grid), ErrInvalidDimensions (no rows or empty rows),
//     ErrBadShape (ragged rows), ErrNaNInf (policy on, non-finite value).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	rows, cols, err := validateGrid(grid)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	o := gatherOptions(opts...)

	data := make([]float64, 0, rows*cols)
	for _, row := range grid {
		data = append(data, row...)
	}
	if o.validateNaNInf {
		if err = validateFinite(data, cols); err != nil {
			return nil, matrixErrorf(ctxFromRows, err)
		}
	}

	return &Dense{r: rows, c: cols, data: data, validateNaNInf: o.validateNaNInf}, nil
}

// NewDenseFromData builds an r×c Dense over row-major data.
//
// By default the data is copied. With WithBorrowedStorage the Dense uses data
// as its buffer directly; see WithBorrowedStorage for the sharing hazard.
//
// Errors:
//   - ErrInvalidDimensions (rows<=0, cols<=0 or oversized), ErrNilMatrix (nil data),
//     ErrBadShape (len(data) != rows*cols), ErrNaNInf (policy on, non-finite value).
//
// Complexity:
//   - Time O(r*c) when copying or validating, O(1) otherwise.
func NewDenseFromData(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFromData, err)
	}
	if data == nil {
		return nil, matrixErrorf(ctxFromData, ErrNilMatrix)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len(data)=%d, want %d: %w", ctxFromData, len(data), rows*cols, ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(data, cols); err != nil {
			return nil, matrixErrorf(ctxFromData, err)
		}
	}

	buf := data
	if !o.borrow {
		buf = make([]float64, len(data))
		copy(buf, data)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		borrowed:       o.borrow,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. A nil *Dense has 0 rows.
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count. A nil *Dense has 0 columns.
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsBorrowed reports whether the buffer aliases caller-owned memory.
func (m *Dense) IsBorrowed() bool { return m != nil && m.borrowed }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; At/Set wrap it with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when out of bounds, ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col). Only the addressed cell changes.
//
// Errors:
//   - ErrOutOfRange for bounds, ErrNaNInf for non-finite v when the policy is
//     on, ErrNilMatrix on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if m == nil {
		return denseErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// The copy always owns its buffer, also when m is borrowed.
// A nil receiver yields a nil Matrix.
func (m *Dense) Clone() Matrix {
	if m == nil {
		return nil
	}

	return m.clone()
}

// clone is the typed form of Clone used inside the package.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// ToRows returns the contents as a freshly allocated [][]float64.
func (m *Dense) ToRows() [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders rows as lines of comma-separated %g values, e.g.
// "[1, 2]\n[3, 4]\n". Intended for logs and debugging.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
