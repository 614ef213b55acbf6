package recurgo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recurgo/matrix"
)

func fourByFour() *matrix.Sparse {
	m := matrix.NewSparse(4, 4)
	m.Set(0, 2, 1)
	m.Set(2, 0, 1)
	return m
}

func TestToLagHandComputed(t *testing.T) {
	m := fourByFour()

	lag, err := ToLag(m, false, 1)
	require.NoError(t, err)

	rows, cols := lag.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 4, cols)

	// lag[i, j] == m[(i+j) mod 4, j] for every cell.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, m.At((i+j)%4, j), lag.At(i, j), "cell (%d,%d)", i, j)
		}
	}

	// Explicit expected positions: (0,2) lands on lag (2,2), (2,0)
	// stays at (2,0).
	assert.Equal(t, 1.0, lag.At(2, 2))
	assert.Equal(t, 1.0, lag.At(2, 0))
	assert.Equal(t, 2, lag.NNZ())
}

func TestToLagPaddedShape(t *testing.T) {
	m := fourByFour()

	lag, err := ToLag(m, true, 1)
	require.NoError(t, err)
	rows, cols := lag.Dims()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 4, cols)

	// (0,2) has negative lag and lands in the padded half.
	assert.Equal(t, 1.0, lag.At(6, 2))
	assert.Equal(t, 1.0, lag.At(2, 0))

	lag0, err := ToLag(m, true, 0)
	require.NoError(t, err)
	rows, cols = lag0.Dims()
	assert.Equal(t, 4, rows)
	assert.Equal(t, 8, cols)
}

func TestToLagAxisZero(t *testing.T) {
	m := fourByFour()

	lag, err := ToLag(m, false, 0)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, m.At(i, (i+j)%4), lag.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}

func TestLagRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	newRandomSparse := func(n int) *matrix.Sparse {
		m := matrix.NewSparse(n, n)
		for e := 0; e < n*2; e++ {
			m.Set(rng.Intn(n), rng.Intn(n), rng.Float64()+0.1)
		}
		return m
	}

	t.Run("PaddedSparse", func(t *testing.T) {
		for _, axis := range []int{0, 1, -1} {
			m := newRandomSparse(13)
			lag, err := ToLag(m, true, axis)
			require.NoError(t, err)
			back, err := FromLag(lag, axis)
			require.NoError(t, err)

			assert.Equal(t, m.NNZ(), back.NNZ())
			m.NonZero(func(i, j int, v float64) {
				assert.Equal(t, v, back.At(i, j), "cell (%d,%d)", i, j)
			})
		}
	})

	t.Run("PaddedDense", func(t *testing.T) {
		m := newRandomSparse(9).ToDense()
		lag, err := ToLag(m, true, 1)
		require.NoError(t, err)
		back, err := FromLag(lag, 1)
		require.NoError(t, err)

		for i := 0; i < 9; i++ {
			for j := 0; j < 9; j++ {
				assert.Equal(t, m.At(i, j), back.At(i, j))
			}
		}
	})

	t.Run("UnpaddedSquare", func(t *testing.T) {
		// Without padding the transform wraps, and the round trip is
		// an identity by construction.
		m := newRandomSparse(11)
		lag, err := ToLag(m, false, 1)
		require.NoError(t, err)
		back, err := FromLag(lag, 1)
		require.NoError(t, err)

		assert.Equal(t, m.NNZ(), back.NNZ())
		m.NonZero(func(i, j int, v float64) {
			assert.Equal(t, v, back.At(i, j))
		})
	})
}

func TestLagFormatPreserved(t *testing.T) {
	sparse := fourByFour()
	lag, err := ToLag(sparse, true, 1)
	require.NoError(t, err)
	assert.IsType(t, &matrix.Sparse{}, lag)

	dense := sparse.ToDense()
	lagDense, err := ToLag(dense, true, 1)
	require.NoError(t, err)
	assert.IsType(t, &matrix.Dense{}, lagDense)
}

func TestLagErrors(t *testing.T) {
	t.Run("NonSquareToLag", func(t *testing.T) {
		_, err := ToLag(matrix.NewSparse(3, 4), true, 1)
		assert.True(t, IsParameterError(err))
	})

	t.Run("InvalidAxis", func(t *testing.T) {
		_, err := ToLag(matrix.NewSparse(3, 3), true, 2)
		assert.True(t, IsParameterError(err))

		_, err = FromLag(matrix.NewSparse(3, 3), -2)
		assert.True(t, IsParameterError(err))
	})

	t.Run("MalformedFromLagShape", func(t *testing.T) {
		_, err := FromLag(matrix.NewSparse(5, 4), 1)
		assert.True(t, IsParameterError(err))

		_, err = FromLag(matrix.NewSparse(4, 7), 0)
		assert.True(t, IsParameterError(err))
	})
}
