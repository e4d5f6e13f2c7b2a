package pointset

import (
	"gonum.org/v1/gonum/mat"
)

// PointSet is a row-major R×C matrix of float64 values: R points in C
// spatial dimensions. r is the point count, c the dimension count, and
// data holds r*c elements in row-major order (point i occupies
// data[i*c : (i+1)*c]).
//
// A PointSet is immutable after construction: constructors copy their
// input, and accessors hand out copies. This keeps a set safe to share
// between concurrent estimator calls.
type PointSet struct {
	r, c int       // number of points and dimensions
	data []float64 // flat backing storage, length == r*c
}

// FromRows builds a PointSet from nested row-major data: one inner slice
// per point, every inner slice the same length.
//
// Returns ErrBadShape if rows is empty or the first row is empty, and
// ErrLengthMismatch if any later row differs in length from the first.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*PointSet, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	c := len(rows[0])
	data := make([]float64, 0, len(rows)*c)
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrLengthMismatch
		}
		data = append(data, row...)
	}

	return &PointSet{r: len(rows), c: c, data: data}, nil
}

// FromSlice builds a PointSet from a flat row-major slice of exactly
// rows*cols values: flat index i maps to row i/cols, column i%cols.
//
// Returns ErrBadShape if rows <= 0 or cols <= 0, and ErrLengthMismatch if
// len(data) != rows*cols — an empty slice mismatches every positive
// shape. The slice is copied; later mutation of the caller's slice does
// not affect the PointSet.
// Complexity: O(r*c) time and memory.
func FromSlice(rows, cols int, data []float64) (*PointSet, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrLengthMismatch
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &PointSet{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of points. Complexity: O(1).
func (p *PointSet) Rows() int { return p.r }

// Cols returns the number of spatial dimensions. Complexity: O(1).
func (p *PointSet) Cols() int { return p.c }

// At returns the j-th coordinate of point i. It panics if the indices are
// out of range, matching gonum matrix access semantics — a well-formed
// PointSet cannot be indexed out of range by correct code.
func (p *PointSet) At(i, j int) float64 {
	if i < 0 || i >= p.r || j < 0 || j >= p.c {
		panic("pointset: index out of range")
	}

	return p.data[i*p.c+j]
}

// Dense returns the point set as a freshly allocated *mat.Dense, the form
// umeyama.Estimate consumes. The backing data is copied so the PointSet
// stays immutable regardless of what the caller does with the matrix.
// Complexity: O(r*c).
func (p *PointSet) Dense() *mat.Dense {
	buf := make([]float64, len(p.data))
	copy(buf, p.data)

	return mat.NewDense(p.r, p.c, buf)
}

// Raw returns a copy of the flat row-major backing data.
// Complexity: O(r*c).
func (p *PointSet) Raw() []float64 {
	buf := make([]float64, len(p.data))
	copy(buf, p.data)

	return buf
}
