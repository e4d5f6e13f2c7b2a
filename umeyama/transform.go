package umeyama

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Apply transforms every row of an R×C point set pts by the homogeneous
// (C+1)×(C+1) matrix t, returning a new R×C matrix:
//
//	out_i = t[0:C,0:C] · pts_i + t[0:C,C]
//
// Returns ErrEmptyPointSet for a zero-sized pts and ErrDimensionMismatch
// when t is not square of size C+1.
// Complexity: O(R·C²).
func Apply(t, pts mat.Matrix) (*mat.Dense, error) {
	n, c := pts.Dims()
	if n == 0 || c == 0 {
		return nil, ErrEmptyPointSet
	}
	if tr, tc := t.Dims(); tr != tc || tr != c+1 {
		return nil, ErrDimensionMismatch
	}

	out := mat.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		for r := 0; r < c; r++ {
			sum := t.At(r, c) // translation column
			for j := 0; j < c; j++ {
				sum += t.At(r, j) * pts.At(i, j)
			}
			out.Set(i, r, sum)
		}
	}

	return out, nil
}

// ScaleOf extracts the uniform scale factor encoded in the top-left C×C
// block of a homogeneous transform: the C-th root of the absolute block
// determinant. For transforms produced by Estimate the block is c·R with
// det(R) = ±1, so this recovers c; for a degenerate block the result is 0.
func ScaleOf(t mat.Matrix) float64 {
	b := linearBlock(t)
	c, _ := b.Dims()

	return math.Pow(math.Abs(mat.Det(b)), 1/float64(c))
}

// RotationOf extracts the rotation block of a homogeneous transform: the
// top-left C×C block divided by ScaleOf. For transforms produced by
// Estimate this is the proper rotation M. A zero-scale block is returned
// as-is, since there is no rotation to normalize out.
func RotationOf(t mat.Matrix) *mat.Dense {
	b := linearBlock(t)
	s := ScaleOf(t)
	if s != 0 {
		b.Scale(1/s, b)
	}

	return b
}

// TranslationOf extracts the translation column of a homogeneous
// transform: column C, rows 0..C.
func TranslationOf(t mat.Matrix) []float64 {
	tr, _ := t.Dims()
	out := make([]float64, tr-1)
	for i := range out {
		out[i] = t.At(i, tr-1)
	}

	return out
}

// linearBlock copies the top-left C×C block of a (C+1)×(C+1) matrix.
func linearBlock(t mat.Matrix) *mat.Dense {
	tr, _ := t.Dims()
	c := tr - 1
	b := mat.NewDense(c, c, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			b.Set(i, j, t.At(i, j))
		}
	}

	return b
}
