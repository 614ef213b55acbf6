package filters

import (
	"math"
)

// Window generates an n-point symmetric window.
type Window func(n int) []float64

// Hann generates a symmetric Hann window.
func Hann(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}

// Hamming generates a symmetric Hamming window.
func Hamming(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.54 - 0.46*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}
	return w
}

// Boxcar generates a rectangular window.
func Boxcar(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// Triangular generates a symmetric triangular window with nonzero
// endpoints.
func Triangular(n int) []float64 {
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	c := float64(n-1) / 2
	var denom float64
	if n%2 == 0 {
		denom = float64(n) / 2
	} else {
		denom = float64(n+1) / 2
	}
	for i := range w {
		w[i] = 1 - math.Abs(float64(i)-c)/denom
	}
	return w
}
