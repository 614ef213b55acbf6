package conv

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// BoundaryMode selects how input values beyond the matrix edge are
// synthesized.
type BoundaryMode int

const (
	// BoundaryReflect extends by reflection about the edge, repeating
	// the edge sample: (d c b a | a b c d | d c b a).
	BoundaryReflect BoundaryMode = iota
	// BoundaryConstant extends with a constant value.
	BoundaryConstant
	// BoundaryNearest extends by repeating the edge sample.
	BoundaryNearest
	// BoundaryMirror extends by reflection about the edge sample
	// itself: (d c b | a b c d | c b a).
	BoundaryMirror
	// BoundaryWrap extends periodically.
	BoundaryWrap
)

func (b BoundaryMode) String() string {
	switch b {
	case BoundaryReflect:
		return "Reflect"
	case BoundaryConstant:
		return "Constant"
	case BoundaryNearest:
		return "Nearest"
	case BoundaryMirror:
		return "Mirror"
	case BoundaryWrap:
		return "Wrap"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

type options struct {
	boundary BoundaryMode
	constant float64
	workers  int
}

// Option configures Convolve2D.
type Option func(*options)

// WithBoundary selects the boundary mode. The default is
// BoundaryReflect.
func WithBoundary(b BoundaryMode) Option {
	return func(o *options) { o.boundary = b }
}

// WithConstantValue sets the fill value used by BoundaryConstant.
func WithConstantValue(v float64) Option {
	return func(o *options) { o.constant = v }
}

// WithWorkers caps the number of concurrent row workers. Values below 1
// fall back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Convolve2D convolves m with kernel and returns a matrix of the same
// shape as m. The kernel is flipped, as in true convolution, and
// anchored at its center cell.
func Convolve2D(m, kernel *mat.Dense, optFns ...Option) (*mat.Dense, error) {
	o := options{boundary: BoundaryReflect}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if m == nil || kernel == nil {
		return nil, errors.New("conv: nil matrix or kernel")
	}
	rows, cols := m.Dims()
	kr, kc := kernel.Dims()
	if rows == 0 || cols == 0 || kr == 0 || kc == 0 {
		return nil, errors.New("conv: empty matrix or kernel")
	}

	switch o.boundary {
	case BoundaryReflect, BoundaryConstant, BoundaryNearest, BoundaryMirror, BoundaryWrap:
	default:
		return nil, fmt.Errorf("conv: unknown boundary mode: %v", o.boundary)
	}

	cr, cc := kr/2, kc/2
	out := mat.NewDense(rows, cols, nil)

	workers := o.workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < rows; i++ {
		i := i
		g.Go(func() error {
			row := make([]float64, cols)
			for j := 0; j < cols; j++ {
				var sum float64
				for u := 0; u < kr; u++ {
					for v := 0; v < kc; v++ {
						w := kernel.At(u, v)
						if w == 0 {
							continue
						}
						sum += w * sample(m, i+cr-u, j+cc-v, rows, cols, o)
					}
				}
				row[j] = sum
			}
			out.SetRow(i, row)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// sample reads m at (i, j), synthesizing out-of-range positions per the
// configured boundary mode.
func sample(m *mat.Dense, i, j, rows, cols int, o options) float64 {
	if o.boundary == BoundaryConstant {
		if i < 0 || i >= rows || j < 0 || j >= cols {
			return o.constant
		}
		return m.At(i, j)
	}
	return m.At(extend(i, rows, o.boundary), extend(j, cols, o.boundary))
}

// extend maps an out-of-range index into [0, n) per the boundary mode.
func extend(i, n int, b BoundaryMode) int {
	if i >= 0 && i < n {
		return i
	}
	switch b {
	case BoundaryNearest:
		if i < 0 {
			return 0
		}
		return n - 1
	case BoundaryWrap:
		return ((i % n) + n) % n
	case BoundaryMirror:
		if n == 1 {
			return 0
		}
		p := 2 * (n - 1)
		i = ((i % p) + p) % p
		if i >= n {
			i = p - i
		}
		return i
	default: // BoundaryReflect
		p := 2 * n
		i = ((i % p) + p) % p
		if i >= n {
			i = p - 1 - i
		}
		return i
	}
}
