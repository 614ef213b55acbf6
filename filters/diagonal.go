package filters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Diagonal builds an n x n smoothing kernel whose mass traces the
// window win along the line through the kernel center with the given
// slope (vertical step over horizontal step).
//
// The window is deposited sample by sample along the line, split
// linearly between the two cells it straddles on the minor axis, so a
// slope of exactly 1 yields diag(win(n)) up to normalization.
//
// The kernel is normalized to sum to 1. With zeroMean the cell mean is
// then subtracted from every cell, making the kernel sum to 0, which
// suppresses constant blocks while still enhancing diagonals.
func Diagonal(win Window, n int, slope float64, zeroMean bool) (*mat.Dense, error) {
	if win == nil {
		return nil, errors.New("filters: nil window")
	}
	if n < 1 {
		return nil, fmt.Errorf("filters: kernel length must be at least 1, got %d", n)
	}
	if slope <= 0 {
		return nil, fmt.Errorf("filters: slope must be strictly positive, got %v", slope)
	}

	w := win(n)
	if len(w) != n {
		return nil, fmt.Errorf("filters: window produced %d samples, want %d", len(w), n)
	}

	kernel := mat.NewDense(n, n, nil)
	c := float64(n-1) / 2

	// Walk the major axis one cell at a time so no window sample is
	// skipped, and interpolate the position on the minor axis.
	for t := 0; t < n; t++ {
		var i, j float64
		if slope <= 1 {
			j = float64(t)
			i = c + (j-c)*slope
		} else {
			i = float64(t)
			j = c + (i-c)/slope
		}
		deposit(kernel, i, j, w[t])
	}

	clampNegatives(kernel)

	sum := mat.Sum(kernel)
	if sum <= 0 {
		return nil, errors.New("filters: window has no positive mass")
	}
	kernel.Scale(1/sum, kernel)

	if zeroMean {
		shift := mat.Sum(kernel) / float64(n*n)
		kernel.Apply(func(_, _ int, v float64) float64 { return v - shift }, kernel)
	}
	return kernel, nil
}

// deposit splits mass w at the fractional position (i, j) between the
// straddled integer cells with bilinear weights.
func deposit(kernel *mat.Dense, i, j, w float64) {
	n, _ := kernel.Dims()
	i0, j0 := int(math.Floor(i)), int(math.Floor(j))
	fi, fj := i-float64(i0), j-float64(j0)

	add := func(r, c int, v float64) {
		if r < 0 || r >= n || c < 0 || c >= n || v == 0 {
			return
		}
		kernel.Set(r, c, kernel.At(r, c)+v)
	}
	add(i0, j0, w*(1-fi)*(1-fj))
	add(i0+1, j0, w*fi*(1-fj))
	add(i0, j0+1, w*(1-fi)*fj)
	add(i0+1, j0+1, w*fi*fj)
}

func clampNegatives(m *mat.Dense) {
	m.Apply(func(_, _ int, v float64) float64 {
		if v < 0 {
			return 0
		}
		return v
	}, m)
}
