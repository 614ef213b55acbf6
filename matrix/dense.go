package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Compile-time check that Dense satisfies the Matrix interface.
var _ Matrix = (*Dense)(nil)

// Dense is a gonum-backed dense matrix. Zeros are stored explicitly.
type Dense struct {
	m *mat.Dense
}

// NewDense creates a zero-filled rows x cols dense matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{m: mat.NewDense(rows, cols, nil)}
}

// WrapDense adopts an existing gonum matrix without copying.
func WrapDense(m *mat.Dense) *Dense {
	return &Dense{m: m}
}

// Raw exposes the underlying gonum matrix. Mutating it mutates the
// receiver.
func (d *Dense) Raw() *mat.Dense { return d.m }

// Dims returns the number of rows and columns.
func (d *Dense) Dims() (int, int) { return d.m.Dims() }

// At returns the value at (i, j).
func (d *Dense) At(i, j int) float64 { return d.m.At(i, j) }

// Set writes the value at (i, j).
func (d *Dense) Set(i, j int, v float64) { d.m.Set(i, j, v) }

// SetRow replaces row i.
func (d *Dense) SetRow(i int, row []float64) { d.m.SetRow(i, row) }

// NonZero calls fn for every nonzero cell in row-major order.
func (d *Dense) NonZero(fn func(i, j int, v float64)) {
	rows, cols := d.m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := d.m.At(i, j); v != 0 {
				fn(i, j, v)
			}
		}
	}
}

// NNZ returns the number of nonzero cells.
func (d *Dense) NNZ() int {
	count := 0
	d.NonZero(func(int, int, float64) { count++ })
	return count
}

// Clone returns a deep dense copy.
func (d *Dense) Clone() Matrix {
	var out mat.Dense
	out.CloneFrom(d.m)
	return &Dense{m: &out}
}

// T returns a transposed dense copy.
func (d *Dense) T() Matrix {
	var out mat.Dense
	out.CloneFrom(d.m.T())
	return &Dense{m: &out}
}

// ToDense returns a deep dense copy of the receiver.
func (d *Dense) ToDense() *Dense {
	return d.Clone().(*Dense)
}

// ToSparse converts to the sparse backend, dropping zeros.
func (d *Dense) ToSparse() *Sparse {
	rows, cols := d.m.Dims()
	out := NewSparse(rows, cols)
	d.NonZero(func(i, j int, v float64) {
		out.Set(i, j, v)
	})
	return out
}
