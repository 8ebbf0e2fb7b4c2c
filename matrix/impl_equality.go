// SPDX-License-Identifier: MIT

// Package matrix - exact equality and value hashing.
//
// Equality is exact float64 == over every cell; there is no tolerance.
// Hash folds the shape and every cell value in row-major order, so two
// matrices that are Equal always hash identically.

package matrix

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b have the same shape and exactly equal
// elements. It never fails: an absent operand or an unreadable element makes
// the result false. NaN elements are never equal, as with ==.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}

	// Dense fast-path: compare flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if da.data[idx] != db.data[idx] {
					return false
				}
			}

			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// Equals reports whether x is a Matrix equal to m (see Equal).
// It returns false, never an error, when x is nil, a typed nil, or not a
// Matrix at all.
func (m *Dense) Equals(x any) bool {
	other, ok := x.(Matrix)
	if !ok {
		return false
	}

	return Equal(m, other)
}

// Hash returns a 64-bit hash of the shape and element values of m,
// consistent with Equal. A nil matrix hashes to 0.
//
// Implementation:
//   - Stage 1: feed rows and cols as little-endian uint64.
//   - Stage 2: feed every element's IEEE-754 bits in row-major order,
//     with -0 folded into +0 because they compare equal.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Hash(m Matrix) uint64 {
	if isNil(m) {
		return 0
	}

	d := xxhash.New()
	var buf [8]byte
	write := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:]) // Digest.Write never fails
	}

	rows, cols := m.Rows(), m.Cols()
	write(uint64(rows))
	write(uint64(cols))

	if dm, ok := m.(*Dense); ok {
		for _, v := range dm.data {
			write(hashBits(v))
		}

		return d.Sum64()
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j) // in range by construction of the loop
			write(hashBits(v))
		}
	}

	return d.Sum64()
}

// Hash is the method form of Hash(m).
func (m *Dense) Hash() uint64 { return Hash(m) }

// hashBits maps v to the bit pattern hashed for it; ±0 share one pattern.
func hashBits(v float64) uint64 {
	if v == 0 {
		return 0
	}

	return math.Float64bits(v)
}
