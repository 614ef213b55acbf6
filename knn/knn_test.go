package knn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExact(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := NewExact(nil, MetricEuclidean)
		assert.Error(t, err)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := NewExact([][]float64{{1, 2}, {1}}, MetricEuclidean)
		assert.Error(t, err)
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		_, err := NewExact([][]float64{{1}}, Metric(99))
		assert.Error(t, err)
	})
}

func TestKNearestGraph(t *testing.T) {
	points := [][]float64{{0}, {1}, {3}, {7}}
	e, err := NewExact(points, MetricEuclidean)
	require.NoError(t, err)

	t.Run("InvalidK", func(t *testing.T) {
		_, err := e.KNearestGraph(0)
		assert.ErrorIs(t, err, ErrInvalidK)
	})

	t.Run("TwoNeighbors", func(t *testing.T) {
		graph, err := e.KNearestGraph(2)
		require.NoError(t, err)
		require.Len(t, graph, 4)

		assert.Equal(t, []Neighbor{{ID: 1, Distance: 1}, {ID: 2, Distance: 3}}, graph[0])
		assert.Equal(t, []Neighbor{{ID: 0, Distance: 1}, {ID: 2, Distance: 2}}, graph[1])
		assert.Equal(t, []Neighbor{{ID: 1, Distance: 2}, {ID: 0, Distance: 3}}, graph[2])
		assert.Equal(t, []Neighbor{{ID: 2, Distance: 4}, {ID: 1, Distance: 6}}, graph[3])
	})

	t.Run("KExceedsPoints", func(t *testing.T) {
		graph, err := e.KNearestGraph(10)
		require.NoError(t, err)
		for _, row := range graph {
			assert.Len(t, row, 3)
		}
	})
}

func TestKNearestGraphTies(t *testing.T) {
	// Points 1 and 2 are equidistant from point 0; ties resolve by
	// ascending ID.
	points := [][]float64{{0}, {1}, {-1}}
	e, err := NewExact(points, MetricEuclidean)
	require.NoError(t, err)

	graph, err := e.KNearestGraph(2)
	require.NoError(t, err)
	assert.Equal(t, []Neighbor{{ID: 1, Distance: 1}, {ID: 2, Distance: 1}}, graph[0])
}

func TestKNearestGraphDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([][]float64, 50)
	for i := range points {
		points[i] = make([]float64, 8)
		for j := range points[i] {
			points[i][j] = rng.Float64()
		}
	}

	e, err := NewExact(points, MetricEuclidean)
	require.NoError(t, err)

	first, err := e.KNearestGraph(5)
	require.NoError(t, err)
	second, err := e.KNearestGraph(5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
