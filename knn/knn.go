package knn

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidK is returned when a neighbor count is not positive.
var ErrInvalidK = errors.New("knn: k must be positive")

// Neighbor is one edge of a k-nearest-neighbor graph.
type Neighbor struct {
	// ID is the index of the neighboring point in the fitted set.
	ID int

	// Distance is the metric distance to that point.
	Distance float64
}

// Index produces nearest-neighbor graphs over a fitted point set.
//
// Implementations must be deterministic: repeated calls with the same k
// return the same neighbors in the same order.
type Index interface {
	// KNearestGraph returns, for every fitted point, its k nearest
	// neighbors excluding the point itself, ordered by ascending
	// distance with ties broken by ascending ID. If fewer than k
	// other points exist, all of them are returned.
	KNearestGraph(k int) ([][]Neighbor, error)
}

// Compile-time check that Exact satisfies the Index interface.
var _ Index = (*Exact)(nil)

// Exact is a brute-force Index over an in-memory point set. Search is
// O(n^2 * d) and exact; rows are scanned in parallel.
type Exact struct {
	points   [][]float64
	distance DistanceFunc
}

// NewExact fits a brute-force index over points using the given metric.
// All points must share the same dimension.
func NewExact(points [][]float64, m Metric) (*Exact, error) {
	distance, err := Provider(m)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, errors.New("knn: empty point set")
	}
	dim := len(points[0])
	for i, p := range points {
		if len(p) != dim {
			return nil, fmt.Errorf("knn: dimension mismatch at point %d: expected %d, got %d", i, dim, len(p))
		}
	}
	return &Exact{points: points, distance: distance}, nil
}

// KNearestGraph implements Index.
func (e *Exact) KNearestGraph(k int) ([][]Neighbor, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	n := len(e.points)
	graph := make([][]Neighbor, n)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			row := make([]Neighbor, 0, n-1)
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				row = append(row, Neighbor{ID: j, Distance: e.distance(e.points[i], e.points[j])})
			}
			sort.SliceStable(row, func(a, b int) bool {
				if row[a].Distance != row[b].Distance {
					return row[a].Distance < row[b].Distance
				}
				return row[a].ID < row[b].ID
			})
			if len(row) > k {
				row = row[:k]
			}
			graph[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return graph, nil
}
