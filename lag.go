package recurgo

import (
	"github.com/hupe1980/recurgo/matrix"
)

// ToLag converts a square recurrence matrix into lag coordinates. The
// given axis stays the time axis; the other axis becomes lag. With the
// default axis 1,
//
//	lag[i, j] == rec[(i+j) mod n, j]
//
// With pad the lag axis is extended to length 2n before shifting, which
// makes the transform injective and removes the implicit assumption
// that the sequence repeats periodically. Without pad the output stays
// n x n and wraps around.
//
// Sparse inputs produce sparse outputs and only nonzero cells are
// touched.
func ToLag(m matrix.Matrix, pad bool, axis int) (matrix.Matrix, error) {
	axis, err := normalizeAxis(axis)
	if err != nil {
		return nil, err
	}

	rows, cols := m.Dims()
	if rows != cols {
		return nil, paramErrorf("non-square recurrence matrix shape: %dx%d", rows, cols)
	}
	n := rows

	span := n
	if pad {
		span = 2 * n
	}

	var outRows, outCols int
	if axis == 1 {
		outRows, outCols = span, n
	} else {
		outRows, outCols = n, span
	}

	out := newLike(m, outRows, outCols)
	m.NonZero(func(i, j int, v float64) {
		if axis == 1 {
			out.Set(mod(i-j, span), j, v)
		} else {
			out.Set(i, mod(j-i, span), v)
		}
	})
	return out, nil
}

// FromLag converts a lag matrix back into time-time coordinates. It is
// the exact inverse of ToLag with pad for any square input; the
// unpadded round trip only matches when the underlying sequence really
// is periodic.
func FromLag(l matrix.Matrix, axis int) (matrix.Matrix, error) {
	axis, err := normalizeAxis(axis)
	if err != nil {
		return nil, err
	}

	rows, cols := l.Dims()
	var t, span int
	if axis == 1 {
		t, span = cols, rows
	} else {
		t, span = rows, cols
	}
	if span != t && span != 2*t {
		return nil, paramErrorf("invalid lag matrix shape: %dx%d", rows, cols)
	}

	out := newLike(l, t, t)
	l.NonZero(func(i, j int, v float64) {
		if axis == 1 {
			if r := mod(i+j, span); r < t {
				out.Set(r, j, v)
			}
		} else {
			if c := mod(j+i, span); c < t {
				out.Set(i, c, v)
			}
		}
	})
	return out, nil
}

// newLike allocates an empty matrix in the same backing format as m.
func newLike(m matrix.Matrix, rows, cols int) matrix.Matrix {
	if sm, ok := m.(*SimilarityMatrix); ok {
		m = sm.Matrix
	}
	if _, ok := m.(*matrix.Sparse); ok {
		return matrix.NewSparse(rows, cols)
	}
	return matrix.NewDense(rows, cols)
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}
