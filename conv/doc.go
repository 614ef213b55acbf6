// Package conv provides a same-shape 2-D convolution primitive with
// selectable boundary handling, used to apply diagonal smoothing
// kernels to similarity matrices.
//
// Output rows are computed in parallel; callers see a plain synchronous
// function with a freshly allocated result.
package conv
