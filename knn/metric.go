package knn

import (
	"fmt"
	"math"
)

// Metric identifies the distance used for neighbor ranking.
type Metric int

const (
	// MetricEuclidean is the L2 distance.
	MetricEuclidean Metric = iota
	// MetricSquaredEuclidean is the squared L2 distance. It ranks
	// identically to MetricEuclidean but skips the square root.
	MetricSquaredEuclidean
	// MetricCosine is 1 minus the cosine similarity.
	MetricCosine
	// MetricManhattan is the L1 distance.
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricSquaredEuclidean:
		return "SquaredEuclidean"
	case MetricCosine:
		return "Cosine"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// DistanceFunc computes the distance between two vectors.
// Vectors are assumed to have the same length.
type DistanceFunc func(a, b []float64) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (DistanceFunc, error) {
	switch m {
	case MetricEuclidean:
		return Euclidean, nil
	case MetricSquaredEuclidean:
		return SquaredEuclidean, nil
	case MetricCosine:
		return Cosine, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("knn: unsupported metric: %v", m)
	}
}

// SquaredEuclidean calculates the squared L2 distance between a and b.
func SquaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Euclidean calculates the L2 distance between a and b.
func Euclidean(a, b []float64) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// Dot calculates the dot product of a and b.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Cosine calculates the cosine distance between a and b.
// A zero-magnitude operand yields distance 1.
func Cosine(a, b []float64) float64 {
	dot := Dot(a, b)
	magA := math.Sqrt(Dot(a, a))
	magB := math.Sqrt(Dot(b, b))
	if magA == 0 || magB == 0 {
		return 1
	}
	return 1 - dot/(magA*magB)
}

// Manhattan calculates the L1 distance between a and b.
func Manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}
