package recurgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recurgo/matrix"
)

func identityFilter(args ...any) (matrix.Matrix, error) {
	return args[0].(matrix.Matrix), nil
}

func TestWrapLagFilterRoundTrip(t *testing.T) {
	for _, pad := range []bool{false, true} {
		m := fourByFour()

		wrapped := WrapLagFilter(identityFilter, pad, 0)
		out, err := wrapped(m)
		require.NoError(t, err)

		assert.Equal(t, m.NNZ(), out.NNZ())
		m.NonZero(func(i, j int, v float64) {
			assert.Equal(t, v, out.At(i, j), "pad=%v cell (%d,%d)", pad, i, j)
		})
	}
}

func TestWrapLagFilterRunsInLagDomain(t *testing.T) {
	m := matrix.NewSparse(4, 4)
	m.Set(0, 2, 1)

	t.Run("Unpadded", func(t *testing.T) {
		var seen matrix.Matrix
		wrapped := WrapLagFilter(func(args ...any) (matrix.Matrix, error) {
			seen = args[0].(matrix.Matrix)
			return seen, nil
		}, false, 0)

		_, err := wrapped(m)
		require.NoError(t, err)
		// (0,2) sits at lag (0-2) mod 4 = 2.
		assert.Equal(t, 1.0, seen.At(2, 2))
	})

	t.Run("Padded", func(t *testing.T) {
		var seen matrix.Matrix
		wrapped := WrapLagFilter(func(args ...any) (matrix.Matrix, error) {
			seen = args[0].(matrix.Matrix)
			return seen, nil
		}, true, 0)

		_, err := wrapped(m)
		require.NoError(t, err)
		rows, _ := seen.Dims()
		assert.Equal(t, 8, rows)
		// Negative lag -2 maps to padded row 6.
		assert.Equal(t, 1.0, seen.At(6, 2))
	})
}

func TestWrapLagFilterArgumentPosition(t *testing.T) {
	m := fourByFour()

	var gotSize int
	wrapped := WrapLagFilter(func(args ...any) (matrix.Matrix, error) {
		gotSize = args[0].(int)
		return args[1].(matrix.Matrix), nil
	}, true, 1)

	out, err := wrapped(3, m)
	require.NoError(t, err)
	assert.Equal(t, 3, gotSize)
	assert.Equal(t, m.NNZ(), out.NNZ())
}

func TestWrapLagFilterErrors(t *testing.T) {
	m := fourByFour()

	t.Run("IndexOutOfRange", func(t *testing.T) {
		wrapped := WrapLagFilter(identityFilter, false, 2)
		_, err := wrapped(m)
		require.Error(t, err)
		assert.True(t, IsParameterError(err))
	})

	t.Run("NotAMatrix", func(t *testing.T) {
		wrapped := WrapLagFilter(identityFilter, false, 0)
		_, err := wrapped("not a matrix")
		require.Error(t, err)
		assert.True(t, IsParameterError(err))
	})

	t.Run("FilterErrorPropagates", func(t *testing.T) {
		sentinel := errors.New("filter failed")
		wrapped := WrapLagFilter(func(...any) (matrix.Matrix, error) {
			return nil, sentinel
		}, false, 0)
		_, err := wrapped(m)
		assert.ErrorIs(t, err, sentinel)
	})
}
