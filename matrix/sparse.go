package matrix

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Compile-time check that Sparse satisfies the Matrix interface.
var _ Matrix = (*Sparse)(nil)

// Sparse is a row-oriented sparse matrix. Each row keeps its occupied
// columns in a Roaring bitmap, which gives ordered iteration and cheap
// intersection, and the values in a companion map.
//
// Zero values are never stored: Set(i, j, 0) removes the cell.
type Sparse struct {
	rows, cols int
	data       []sparseRow
}

type sparseRow struct {
	cols *roaring.Bitmap
	vals map[uint32]float64
}

// NewSparse creates an empty rows x cols sparse matrix.
func NewSparse(rows, cols int) *Sparse {
	data := make([]sparseRow, rows)
	for i := range data {
		data[i] = sparseRow{
			cols: roaring.New(),
			vals: make(map[uint32]float64),
		}
	}
	return &Sparse{rows: rows, cols: cols, data: data}
}

// Dims returns the number of rows and columns.
func (s *Sparse) Dims() (int, int) { return s.rows, s.cols }

// At returns the value at (i, j), or 0 if the cell is absent.
func (s *Sparse) At(i, j int) float64 {
	return s.data[i].vals[uint32(j)]
}

// Set writes the value at (i, j). A zero value removes the cell.
func (s *Sparse) Set(i, j int, v float64) {
	c := uint32(j)
	if v == 0 {
		if s.data[i].cols.Contains(c) {
			s.data[i].cols.Remove(c)
			delete(s.data[i].vals, c)
		}
		return
	}
	s.data[i].cols.Add(c)
	s.data[i].vals[c] = v
}

// SetRow replaces row i. len(row) must equal the column count.
func (s *Sparse) SetRow(i int, row []float64) {
	s.data[i] = sparseRow{
		cols: roaring.New(),
		vals: make(map[uint32]float64),
	}
	for j, v := range row {
		if v != 0 {
			s.Set(i, j, v)
		}
	}
}

// Row calls fn for every nonzero cell of row i in ascending column
// order.
func (s *Sparse) Row(i int, fn func(j int, v float64)) {
	it := s.data[i].cols.Iterator()
	for it.HasNext() {
		c := it.Next()
		fn(int(c), s.data[i].vals[c])
	}
}

// NonZero calls fn for every nonzero cell in row-major order.
func (s *Sparse) NonZero(fn func(i, j int, v float64)) {
	for i := 0; i < s.rows; i++ {
		s.Row(i, func(j int, v float64) {
			fn(i, j, v)
		})
	}
}

// NNZ returns the number of stored cells.
func (s *Sparse) NNZ() int {
	count := 0
	for i := range s.data {
		count += int(s.data[i].cols.GetCardinality())
	}
	return count
}

// Clone returns a deep sparse copy.
func (s *Sparse) Clone() Matrix {
	out := NewSparse(s.rows, s.cols)
	s.NonZero(func(i, j int, v float64) {
		out.Set(i, j, v)
	})
	return out
}

// T returns a transposed sparse copy.
func (s *Sparse) T() Matrix {
	out := NewSparse(s.cols, s.rows)
	s.NonZero(func(i, j int, v float64) {
		out.Set(j, i, v)
	})
	return out
}

// ToDense materializes the matrix densely. Absent cells become 0.
func (s *Sparse) ToDense() *Dense {
	out := NewDense(s.rows, s.cols)
	s.NonZero(func(i, j int, v float64) {
		out.Set(i, j, v)
	})
	return out
}

// ToSparse returns a deep sparse copy of the receiver.
func (s *Sparse) ToSparse() *Sparse {
	return s.Clone().(*Sparse)
}

// minimum computes the elementwise minimum with o. Only cells present
// in both inputs survive; shapes are checked by the caller.
func (s *Sparse) minimum(o *Sparse) *Sparse {
	out := NewSparse(s.rows, s.cols)
	for i := 0; i < s.rows; i++ {
		common := roaring.And(s.data[i].cols, o.data[i].cols)
		it := common.Iterator()
		for it.HasNext() {
			c := it.Next()
			sv, ov := s.data[i].vals[c], o.data[i].vals[c]
			if ov < sv {
				sv = ov
			}
			out.Set(i, int(c), sv)
		}
	}
	return out
}
