// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(nilDense), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(1, 1))
	require.ErrorIs(t, matrix.ValidateShape(0, 1), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(1, -1), matrix.ErrInvalidDimensions)

	// rows*cols must not overflow the buffer size.
	require.ErrorIs(t, matrix.ValidateShape(1<<32, 1<<32), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(1<<31, 1<<31), matrix.ErrInvalidDimensions)
	require.ErrorIs(t, matrix.ValidateShape(math.MaxInt, 2), matrix.ErrInvalidDimensions)
}

func TestValidateSameShape(t *testing.T) {
	a := MustDense(t, 2, 3)
	require.NoError(t, matrix.ValidateSameShape(a, MustDense(t, 2, 3)))

	err := matrix.ValidateSameShape(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.EqualError(t, err,
		"ValidateSameShape: 2x3 and 3x2 have the wrong dimensions for the operation: matrix: dimension mismatch")
}

func TestValidateBinarySameShape_Priority(t *testing.T) {
	// nil beats mismatch regardless of which side is absent.
	err := matrix.ValidateBinarySameShape(nil, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	err = matrix.ValidateBinarySameShape(MustDense(t, 1, 2), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.ValidateBinarySameShape(MustDense(t, 1, 2), MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.False(t, errors.Is(err, matrix.ErrNilMatrix))
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))

	err := matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var empty matrix.Dense
	err = matrix.ValidateMulCompatible(&empty, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	err = matrix.ValidateMulCompatible(MustDense(t, 1, 1), nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
