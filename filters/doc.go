// Package filters provides window functions and diagonal smoothing
// kernels for path enhancement of self-similarity matrices.
//
// A diagonal kernel traces a window function along a line of a given
// slope through the kernel center. Convolving a similarity matrix with
// kernels at several slopes smooths repetitions that run at slightly
// different tempi.
package filters
