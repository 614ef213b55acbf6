package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestWindows(t *testing.T) {
	t.Run("HannEndpointsAndPeak", func(t *testing.T) {
		w := Hann(5)
		require.Len(t, w, 5)
		assert.InDelta(t, 0, w[0], 1e-12)
		assert.InDelta(t, 0.5, w[1], 1e-12)
		assert.InDelta(t, 1, w[2], 1e-12)
		assert.InDelta(t, 0.5, w[3], 1e-12)
		assert.InDelta(t, 0, w[4], 1e-12)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		assert.Equal(t, []float64{1}, Hann(1))
		assert.Equal(t, []float64{1}, Hamming(1))
		assert.Equal(t, []float64{1}, Triangular(1))
	})

	t.Run("HammingEndpoints", func(t *testing.T) {
		w := Hamming(5)
		assert.InDelta(t, 0.08, w[0], 1e-12)
		assert.InDelta(t, 1, w[2], 1e-12)
	})

	t.Run("Boxcar", func(t *testing.T) {
		assert.Equal(t, []float64{1, 1, 1}, Boxcar(3))
	})

	t.Run("TriangularSymmetry", func(t *testing.T) {
		w := Triangular(5)
		assert.InDelta(t, w[0], w[4], 1e-12)
		assert.InDelta(t, w[1], w[3], 1e-12)
		assert.InDelta(t, 1, w[2], 1e-12)
	})
}

func TestDiagonal(t *testing.T) {
	t.Run("UnitSlopeIsDiagonal", func(t *testing.T) {
		kernel, err := Diagonal(Boxcar, 3, 1, false)
		require.NoError(t, err)
		expected := mat.NewDense(3, 3, []float64{
			1.0 / 3, 0, 0,
			0, 1.0 / 3, 0,
			0, 0, 1.0 / 3,
		})
		assert.True(t, mat.EqualApprox(kernel, expected, 1e-12))
	})

	t.Run("SumsToOne", func(t *testing.T) {
		for _, slope := range []float64{0.5, 1, 1.3333, 2} {
			kernel, err := Diagonal(Hann, 9, slope, false)
			require.NoError(t, err)
			assert.InDelta(t, 1, mat.Sum(kernel), 1e-9, "slope %v", slope)
		}
	})

	t.Run("ZeroMeanSumsToZero", func(t *testing.T) {
		kernel, err := Diagonal(Hann, 9, 2, true)
		require.NoError(t, err)
		assert.InDelta(t, 0, mat.Sum(kernel), 1e-9)
	})

	t.Run("ShallowSlopeSpreadsRows", func(t *testing.T) {
		kernel, err := Diagonal(Boxcar, 5, 0.5, false)
		require.NoError(t, err)
		// At slope 1/2 the line spans only the central rows.
		for j := 0; j < 5; j++ {
			assert.InDelta(t, 0, kernel.At(0, j), 1e-12)
			assert.InDelta(t, 0, kernel.At(4, j), 1e-12)
		}
		assert.InDelta(t, 1, mat.Sum(kernel), 1e-12)
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := Diagonal(nil, 3, 1, false)
		assert.Error(t, err)

		_, err = Diagonal(Hann, 0, 1, false)
		assert.Error(t, err)

		_, err = Diagonal(Hann, 3, 0, false)
		assert.Error(t, err)

		_, err = Diagonal(Hann, 3, -1, false)
		assert.Error(t, err)
	})
}
