package recurgo

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Clusterer is the clustering collaborator consumed by Agglomerative
// and Subsegment. Fit receives one observation per row and returns a
// label per observation from a temporally-constrained clustering, so
// labels form contiguous runs.
type Clusterer interface {
	Fit(data *mat.Dense, nClusters int) ([]int, error)
}

// Agglomerative partitions a feature sequence into k contiguous
// segments using the injected clusterer and returns the left boundary
// index of every segment. The first boundary is always 0.
func Agglomerative(data *mat.Dense, k int, c Clusterer, optFns ...SegmentOption) ([]int, error) {
	o := applySegmentOptions(optFns)

	axis, err := normalizeAxis(o.axis)
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, paramErrorf("invalid cluster count k=%d: must be at least 1", k)
	}
	if c == nil {
		return nil, paramErrorf("nil clusterer")
	}

	obs := observations(data, axis)
	n, _ := obs.Dims()

	labels, err := c.Fit(obs, k)
	if err != nil {
		return nil, fmt.Errorf("clusterer: %w", err)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("clusterer returned %d labels for %d observations", len(labels), n)
	}

	boundaries := []int{0}
	for i := 1; i < n; i++ {
		if labels[i] != labels[i-1] {
			boundaries = append(boundaries, i)
		}
	}
	return boundaries, nil
}

// Subsegment subdivides a segmentation by feature clustering: each
// interval between successive frame boundaries is partitioned into at
// most nSegments contiguous sub-segments. Intervals shorter than
// nSegments degrade to one sub-segment per frame.
func Subsegment(data *mat.Dense, frames []int, nSegments int, c Clusterer, optFns ...SegmentOption) ([]int, error) {
	o := applySegmentOptions(optFns)

	axis, err := normalizeAxis(o.axis)
	if err != nil {
		return nil, err
	}
	if nSegments < 1 {
		return nil, paramErrorf("invalid nSegments=%d: must be at least 1", nSegments)
	}
	if c == nil {
		return nil, paramErrorf("nil clusterer")
	}
	for _, f := range frames {
		if f < 0 {
			return nil, paramErrorf("invalid frame index %d: must be non-negative", f)
		}
	}

	n := lengthAlongAxis(data, axis)
	fixed := fixFrames(frames, n)

	var boundaries []int
	for i := 0; i+1 < len(fixed); i++ {
		start, end := fixed[i], fixed[i+1]
		if end <= start {
			continue
		}

		sub, err := Agglomerative(sliceAlongAxis(data, axis, start, end), min(end-start, nSegments), c, optFns...)
		if err != nil {
			return nil, err
		}
		for _, b := range sub {
			boundaries = append(boundaries, start+b)
		}
	}
	return boundaries, nil
}

// fixFrames clamps frame indices to [0, n], adds both endpoints, sorts
// and deduplicates.
func fixFrames(frames []int, n int) []int {
	seen := map[int]bool{0: true, n: true}
	for _, f := range frames {
		if f > n {
			f = n
		}
		seen[f] = true
	}
	out := make([]int, 0, len(seen))
	for f := range seen {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

// observations returns data with one observation per row, copying only
// when the axis requires a transpose.
func observations(data *mat.Dense, axis int) *mat.Dense {
	if axis == 0 {
		return data
	}
	var t mat.Dense
	t.CloneFrom(data.T())
	return &t
}

func lengthAlongAxis(data *mat.Dense, axis int) int {
	rows, cols := data.Dims()
	if axis == 0 {
		return rows
	}
	return cols
}

// sliceAlongAxis returns the [start, end) interval of observations as a
// view of data.
func sliceAlongAxis(data *mat.Dense, axis int, start, end int) *mat.Dense {
	rows, cols := data.Dims()
	if axis == 0 {
		return data.Slice(start, end, 0, cols).(*mat.Dense)
	}
	return data.Slice(0, rows, start, end).(*mat.Dense)
}
