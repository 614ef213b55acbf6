// Package matrix provides the square-matrix representations used by
// recurgo: a dense backend built on gonum and a sparse backend built on
// Roaring bitmaps.
//
// Both backends implement the Matrix interface, so recurrence matrices,
// lag matrices and intermediate results can move between formats without
// the calling code branching on representation. Setting a cell to zero on
// the sparse backend removes it, which keeps the nonzero structure
// compact at all times.
package matrix
