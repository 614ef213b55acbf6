// Package knn defines the nearest-neighbor surface consumed when
// building recurrence matrices: distance metrics, the Index interface,
// and Exact, a deterministic brute-force searcher.
//
// Approximate index structures (HNSW, IVF and friends) are out of scope
// here; any implementation of Index can be injected instead of Exact
// when the sequence is long enough to warrant one.
package knn
