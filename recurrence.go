package recurgo

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/recurgo/knn"
	"github.com/hupe1980/recurgo/matrix"
)

// BuildRecurrenceMatrix computes a recurrence matrix from a feature
// matrix. Entry (i, j) is nonzero when frames i and j are k-nearest
// neighbors and |i-j| >= width; its value depends on the configured
// Mode.
//
// The search itself runs against a knn.Index: the built-in exact
// searcher by default, or any injected implementation (see WithIndex).
func BuildRecurrenceMatrix(data *mat.Dense, optFns ...RecurrenceOption) (*SimilarityMatrix, error) {
	o := applyRecurrenceOptions(optFns)

	axis, err := normalizeAxis(o.axis)
	if err != nil {
		return nil, err
	}

	points := pointsAlongAxis(data, axis)
	n := len(points)

	if o.width < 1 || o.width > n {
		return nil, paramErrorf("width=%d must be at least 1 and at most the observation count %d", o.width, n)
	}
	if n < 2 {
		return nil, paramErrorf("need at least 2 observations, got %d", n)
	}
	switch o.mode {
	case ModeConnectivity, ModeDistance, ModeAffinity:
	default:
		return nil, paramErrorf("invalid mode=%v: must be one of Connectivity, Distance, Affinity", o.mode)
	}
	if o.bandwidthSet && o.bandwidth <= 0 {
		return nil, paramErrorf("invalid bandwidth=%v: must be strictly positive", o.bandwidth)
	}
	if o.k < 0 {
		return nil, paramErrorf("invalid k=%d: must be positive", o.k)
	}

	k := o.k
	if k == 0 {
		if n > 2*o.width+1 {
			k = 2 * int(math.Ceil(math.Sqrt(float64(n-2*o.width+1))))
		} else {
			k = 2
		}
	}

	index := o.index
	if index == nil {
		index, err = knn.NewExact(points, o.metric)
		if err != nil {
			return nil, err
		}
	}

	// Query with slack so enough neighbors survive the exclusion band.
	numNeighbors := min(n-1, k+2*o.width)
	graph, err := index.KNearestGraph(numNeighbors)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("recurrence graph queried",
		"observations", n,
		"k", k,
		"neighbors", numNeighbors,
		"mode", o.mode.String(),
	)

	rec := matrix.NewSparse(n, n)
	for i, neighbors := range graph {
		kept := 0
		for _, nb := range neighbors {
			if abs(i-nb.ID) < o.width {
				continue
			}
			if kept == k {
				break
			}
			if o.mode == ModeConnectivity {
				rec.Set(i, nb.ID, 1)
			} else {
				rec.Set(i, nb.ID, nb.Distance)
			}
			kept++
		}
	}

	// Self-loop policy. Connectivity diagonals go in before
	// symmetrization; affinity diagonals stay pending until after the
	// bandwidth estimate so they do not disturb it; distance diagonals
	// are 0, which the sparse backend cannot store.
	selfPending := false
	if o.selfLoops {
		switch o.mode {
		case ModeConnectivity:
			for i := 0; i < n; i++ {
				rec.Set(i, i, 1)
			}
		case ModeAffinity:
			selfPending = true
		}
	}

	var out matrix.Matrix = rec
	if o.symmetric {
		out, err = matrix.Minimum(out, out.T())
		if err != nil {
			return nil, err
		}
	}

	if o.mode == ModeAffinity {
		out = finalizeAffinity(out.(*matrix.Sparse), o.bandwidth, selfPending, o.logger)
	}

	if !o.sparse {
		out = out.ToDense()
	}
	return &SimilarityMatrix{Matrix: out, Mode: o.mode}, nil
}

// finalizeAffinity maps raw neighbor distances to exp(-d/bandwidth).
// When no bandwidth is given it is estimated as the median over rows of
// each row's largest stored distance, with pending self-loops counting
// as -1 so rows whose only link is the self-loop still contribute. An
// empty matrix yields a NaN bandwidth, which propagates into the
// affinities rather than raising.
func finalizeAffinity(rec *matrix.Sparse, bandwidth float64, selfPending bool, logger *Logger) *matrix.Sparse {
	n, _ := rec.Dims()

	if bandwidth == 0 {
		maxes := make([]float64, 0, n)
		for i := 0; i < n; i++ {
			rowMax := math.Inf(-1)
			empty := true
			rec.Row(i, func(_ int, v float64) {
				empty = false
				if v > rowMax {
					rowMax = v
				}
			})
			if selfPending {
				empty = false
				if rowMax == math.Inf(-1) {
					rowMax = -1
				}
			}
			if !empty {
				maxes = append(maxes, rowMax)
			}
		}
		bandwidth = median(maxes)
		logger.Debug("estimated affinity bandwidth", "bandwidth", bandwidth)
	}

	type cell struct {
		i, j int
		v    float64
	}
	var cells []cell
	rec.NonZero(func(i, j int, v float64) {
		cells = append(cells, cell{i, j, v})
	})
	for _, c := range cells {
		rec.Set(c.i, c.j, math.Exp(-c.v/bandwidth))
	}

	if selfPending {
		diag := math.Exp(-0.0 / bandwidth)
		for i := 0; i < n; i++ {
			rec.Set(i, i, diag)
		}
	}
	return rec
}

// median returns the middle value of xs, averaging the two central
// values for even lengths, or NaN for an empty slice.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// normalizeAxis maps -1 to 1 and rejects anything outside {0, 1, -1}.
func normalizeAxis(axis int) (int, error) {
	switch axis {
	case 0:
		return 0, nil
	case 1, -1:
		return 1, nil
	default:
		return 0, paramErrorf("invalid target axis: %d", axis)
	}
}

// pointsAlongAxis extracts the observation vectors: rows when axis is
// 0, columns when axis is 1.
func pointsAlongAxis(data *mat.Dense, axis int) [][]float64 {
	rows, cols := data.Dims()
	if axis == 0 {
		points := make([][]float64, rows)
		for i := range points {
			points[i] = mat.Row(nil, i, data)
		}
		return points
	}
	points := make([][]float64, cols)
	for j := range points {
		points[j] = mat.Col(nil, j, data)
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
