package matrix

import (
	"fmt"
)

// Matrix is the capability set shared by the dense and sparse backends:
// indexed read/write, row replacement, nonzero iteration, transposition
// and format conversion.
//
// Implementations are not safe for concurrent mutation.
type Matrix interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)

	// At returns the value at (i, j). Absent sparse cells read as 0.
	At(i, j int) float64

	// Set writes the value at (i, j). On the sparse backend a zero
	// value removes the cell.
	Set(i, j int, v float64)

	// SetRow replaces row i. len(row) must equal the column count.
	SetRow(i int, row []float64)

	// NonZero calls fn for every stored nonzero cell, in row-major
	// order. fn must not mutate the matrix.
	NonZero(fn func(i, j int, v float64))

	// NNZ returns the number of stored nonzero cells.
	NNZ() int

	// Clone returns a deep copy with the same backing format.
	Clone() Matrix

	// T returns a transposed copy with the same backing format.
	T() Matrix

	// ToDense converts to the dense backend. The receiver is unchanged.
	ToDense() *Dense

	// ToSparse converts to the sparse backend. The receiver is unchanged.
	ToSparse() *Sparse
}

// Minimum returns the elementwise minimum of a and b. The result uses
// the backing format of a. Shapes must match.
//
// For sparse operands a cell survives only if it is nonzero in both
// inputs, which is exactly the mutual-neighbor constraint used when
// symmetrizing a recurrence matrix.
func Minimum(a, b Matrix) (Matrix, error) {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return nil, fmt.Errorf("matrix: dimension mismatch: %dx%d vs %dx%d", ar, ac, br, bc)
	}

	if as, ok := a.(*Sparse); ok {
		bs := b.ToSparse()
		return as.minimum(bs), nil
	}

	out := NewDense(ar, ac)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			av, bv := a.At(i, j), b.At(i, j)
			if bv < av {
				out.Set(i, j, bv)
			} else {
				out.Set(i, j, av)
			}
		}
	}
	return out, nil
}
