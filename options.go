package recurgo

import (
	"github.com/hupe1980/recurgo/conv"
	"github.com/hupe1980/recurgo/filters"
	"github.com/hupe1980/recurgo/knn"
)

type recurrenceOptions struct {
	k            int // 0 means "use the default heuristic"
	width        int
	metric       knn.Metric
	symmetric    bool
	sparse       bool
	mode         Mode
	bandwidth    float64
	bandwidthSet bool
	selfLoops    bool
	axis         int
	index        knn.Index
	logger       *Logger
}

// RecurrenceOption configures BuildRecurrenceMatrix.
type RecurrenceOption func(*recurrenceOptions)

// WithK fixes the number of nearest neighbors linked per frame. By
// default k = 2*ceil(sqrt(n - 2*width + 1)), or 2 for short sequences.
func WithK(k int) RecurrenceOption {
	return func(o *recurrenceOptions) { o.k = k }
}

// WithWidth sets the exclusion band: frames i and j are only linked
// when |i-j| >= width. The default is 1, which excludes only the main
// diagonal.
func WithWidth(width int) RecurrenceOption {
	return func(o *recurrenceOptions) { o.width = width }
}

// WithMetric selects the distance metric for neighbor ranking. The
// default is knn.MetricEuclidean. Ignored when an index is injected
// with WithIndex.
func WithMetric(m knn.Metric) RecurrenceOption {
	return func(o *recurrenceOptions) { o.metric = m }
}

// WithSymmetric keeps only mutual nearest-neighbor links, making the
// output equal to its own transpose.
func WithSymmetric(symmetric bool) RecurrenceOption {
	return func(o *recurrenceOptions) { o.symmetric = symmetric }
}

// WithSparseOutput returns the matrix in the sparse backend instead of
// materializing it densely.
func WithSparseOutput(sparse bool) RecurrenceOption {
	return func(o *recurrenceOptions) { o.sparse = sparse }
}

// WithMode selects connectivity, distance or affinity entries. The
// default is ModeConnectivity.
func WithMode(m Mode) RecurrenceOption {
	return func(o *recurrenceOptions) { o.mode = m }
}

// WithBandwidth fixes the affinity kernel bandwidth. It must be
// strictly positive. When unset, the bandwidth is estimated as the
// median over rows of each row's largest neighbor distance.
func WithBandwidth(bandwidth float64) RecurrenceOption {
	return func(o *recurrenceOptions) {
		o.bandwidth = bandwidth
		o.bandwidthSet = true
	}
}

// WithSelfLoops populates the main diagonal: 1 in connectivity and
// affinity modes, 0 in distance mode. Without it the diagonal is left
// empty.
func WithSelfLoops(selfLoops bool) RecurrenceOption {
	return func(o *recurrenceOptions) { o.selfLoops = selfLoops }
}

// WithAxis selects which axis of the feature matrix indexes
// observations: 0 for rows, 1 (or -1) for columns. The default is 1.
func WithAxis(axis int) RecurrenceOption {
	return func(o *recurrenceOptions) { o.axis = axis }
}

// WithIndex injects a nearest-neighbor index built over the same
// observations, replacing the built-in brute-force search. The injected
// index must already be fitted and must rank by the same metric the
// caller wants reflected in distance or affinity values.
func WithIndex(index knn.Index) RecurrenceOption {
	return func(o *recurrenceOptions) { o.index = index }
}

// WithRecurrenceLogger configures structured logging for the build.
// The default discards all output.
func WithRecurrenceLogger(logger *Logger) RecurrenceOption {
	return func(o *recurrenceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyRecurrenceOptions(optFns []RecurrenceOption) recurrenceOptions {
	o := recurrenceOptions{
		width:  1,
		metric: knn.MetricEuclidean,
		mode:   ModeConnectivity,
		axis:   1,
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type pathEnhanceOptions struct {
	window      filters.Window
	maxRatio    float64
	minRatio    float64
	minRatioSet bool
	nFilters    int
	zeroMean    bool
	clip        bool
	convOpts    []conv.Option
	logger      *Logger
}

// PathEnhanceOption configures PathEnhance.
type PathEnhanceOption func(*pathEnhanceOptions)

// WithWindow selects the smoothing window shape. The default is
// filters.Hann.
func WithWindow(w filters.Window) PathEnhanceOption {
	return func(o *pathEnhanceOptions) {
		if w != nil {
			o.window = w
		}
	}
}

// WithMaxRatio sets the largest tempo ratio to support. The default is
// 2.
func WithMaxRatio(r float64) PathEnhanceOption {
	return func(o *pathEnhanceOptions) { o.maxRatio = r }
}

// WithMinRatio sets the smallest tempo ratio to support. The default is
// 1/maxRatio, which makes the ratio range symmetric in log space.
func WithMinRatio(r float64) PathEnhanceOption {
	return func(o *pathEnhanceOptions) {
		o.minRatio = r
		o.minRatioSet = true
	}
}

// WithNumFilters sets how many smoothing orientations to aggregate,
// spaced uniformly in log2 space between the ratio bounds. With the
// default symmetric bounds an odd count includes the undistorted
// diagonal. The default is 7.
func WithNumFilters(n int) PathEnhanceOption {
	return func(o *pathEnhanceOptions) { o.nFilters = n }
}

// WithZeroMean makes each smoothing kernel sum to zero instead of one,
// suppressing constant blocks while enhancing diagonals.
func WithZeroMean(zeroMean bool) PathEnhanceOption {
	return func(o *pathEnhanceOptions) { o.zeroMean = zeroMean }
}

// WithClip controls clamping of negative output values to 0. Clipping
// is on by default.
func WithClip(clip bool) PathEnhanceOption {
	return func(o *pathEnhanceOptions) { o.clip = clip }
}

// WithConvolveOptions passes options through to the convolution
// primitive, e.g. a boundary mode.
func WithConvolveOptions(opts ...conv.Option) PathEnhanceOption {
	return func(o *pathEnhanceOptions) { o.convOpts = opts }
}

// WithEnhanceLogger configures structured logging for the enhancement.
// The default discards all output.
func WithEnhanceLogger(logger *Logger) PathEnhanceOption {
	return func(o *pathEnhanceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyPathEnhanceOptions(optFns []PathEnhanceOption) pathEnhanceOptions {
	o := pathEnhanceOptions{
		window:   filters.Hann,
		maxRatio: 2,
		nFilters: 7,
		clip:     true,
		logger:   NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type segmentOptions struct {
	axis int
}

// SegmentOption configures Agglomerative and Subsegment.
type SegmentOption func(*segmentOptions)

// WithSegmentAxis selects which axis of the data matrix indexes
// observations: 0 for rows, 1 (or -1) for columns. The default is 1.
func WithSegmentAxis(axis int) SegmentOption {
	return func(o *segmentOptions) { o.axis = axis }
}

func applySegmentOptions(optFns []SegmentOption) segmentOptions {
	o := segmentOptions{axis: 1}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
