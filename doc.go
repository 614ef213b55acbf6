// Package recurgo analyzes the self-similarity structure of ordered
// feature-vector sequences, such as audio feature frames.
//
// # Quick Start
//
// Build a recurrence matrix from a d x n feature matrix (one feature
// vector per column):
//
//	R, _ := recurgo.BuildRecurrenceMatrix(features,
//	    recurgo.WithK(5),
//	    recurgo.WithWidth(3),
//	    recurgo.WithMode(recurgo.ModeAffinity),
//	    recurgo.WithSelfLoops(true))
//
// Convert between time-time and time-lag coordinates, which turns
// diagonal repetition stripes into axis-aligned bands:
//
//	lag, _ := recurgo.ToLag(R, true, 1)
//	back, _ := recurgo.FromLag(lag, 1)
//
// Smooth a similarity matrix across a range of tempo hypotheses:
//
//	smooth, _ := recurgo.PathEnhance(R.ToDense().Raw(), 51,
//	    recurgo.WithNumFilters(7))
//
// # Components
//
//   - BuildRecurrenceMatrix: k-NN recurrence, affinity and distance
//     matrices with exclusion band, mutual-neighbor symmetrization and
//     dense or sparse output
//   - ToLag / FromLag: exact, sparsity-preserving coordinate transforms
//   - WrapLagFilter: lift any rectangular 2-D filter into lag space
//   - PathEnhance: multi-orientation diagonal smoothing with max
//     aggregation
//   - Agglomerative / Subsegment: boundary detection on top of an
//     injected temporally-constrained clusterer
//
// Nearest-neighbor search is abstracted behind knn.Index; a
// deterministic brute-force implementation is provided for moderate
// sequence lengths.
package recurgo
