package recurgo

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/recurgo/conv"
	"github.com/hupe1980/recurgo/filters"
)

// PathEnhance smooths a dense self- or cross-similarity matrix with
// diagonal kernels at several tempo ratios and aggregates the responses
// by elementwise maximum, so at every cell the best-fitting tempo
// hypothesis dominates. n is the smoothing kernel length.
//
// Ratios are spaced uniformly in log2 space between the configured
// bounds; with the default symmetric bounds an odd filter count
// includes the undistorted diagonal (ratio 1).
//
// When building the input with BuildRecurrenceMatrix, include the main
// diagonal via WithSelfLoops: a suppressed diagonal produces
// discontinuities that pollute the smoothing response.
func PathEnhance(r *mat.Dense, n int, optFns ...PathEnhanceOption) (*mat.Dense, error) {
	o := applyPathEnhanceOptions(optFns)

	if r == nil {
		return nil, paramErrorf("nil similarity matrix")
	}
	if n < 1 {
		return nil, paramErrorf("invalid filter length n=%d: must be at least 1", n)
	}
	if o.nFilters < 1 {
		return nil, paramErrorf("invalid nFilters=%d: must be at least 1", o.nFilters)
	}
	if o.maxRatio <= 0 {
		return nil, paramErrorf("invalid maxRatio=%v: must be strictly positive", o.maxRatio)
	}
	minRatio := o.minRatio
	if !o.minRatioSet {
		minRatio = 1 / o.maxRatio
	}
	if minRatio <= 0 {
		return nil, paramErrorf("invalid minRatio=%v: must be strictly positive", minRatio)
	}
	if minRatio > o.maxRatio {
		return nil, paramErrorf("minRatio=%v cannot exceed maxRatio=%v", minRatio, o.maxRatio)
	}

	ratios := logRatios(minRatio, o.maxRatio, o.nFilters)
	o.logger.Debug("path enhancement", "n", n, "ratios", ratios, "zero_mean", o.zeroMean)

	var smooth *mat.Dense
	for _, ratio := range ratios {
		kernel, err := filters.Diagonal(o.window, n, ratio, o.zeroMean)
		if err != nil {
			return nil, err
		}

		response, err := conv.Convolve2D(r, kernel, o.convOpts...)
		if err != nil {
			return nil, err
		}

		if smooth == nil {
			smooth = response
		} else {
			elementwiseMax(smooth, response)
		}
	}

	if o.clip {
		smooth.Apply(func(_, _ int, v float64) float64 {
			return math.Max(v, 0)
		}, smooth)
	}
	return smooth, nil
}

// logRatios returns num values spaced uniformly in log2 space over
// [lo, hi]. A single value is lo, matching logspace conventions.
func logRatios(lo, hi float64, num int) []float64 {
	ratios := make([]float64, num)
	if num == 1 {
		ratios[0] = lo
		return ratios
	}
	l2lo, l2hi := math.Log2(lo), math.Log2(hi)
	step := (l2hi - l2lo) / float64(num-1)
	for i := range ratios {
		ratios[i] = math.Exp2(l2lo + float64(i)*step)
	}
	return ratios
}

// elementwiseMax accumulates the running maximum of dst and src into
// dst. Shapes must match.
func elementwiseMax(dst, src *mat.Dense) {
	rows, cols := dst.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := src.At(i, j); v > dst.At(i, j) {
				dst.Set(i, j, v)
			}
		}
	}
}
