// Package pointset provides the validated point-set container consumed by
// the umeyama estimator.
//
// A PointSet is an R×C row-major matrix of float64 values: R points, C
// spatial dimensions (typically 2 or 3, but any C ≥ 1 works). Row i holds
// point i; flat index i maps to row i/C, column i%C.
//
// Construction paths:
//
//   - FromRows — nested row-major slices, every row the same length
//   - FromSlice — a flat slice of exactly rows*cols values; a fixed-size
//     array ingests the same way via arr[:]
//
// Both constructors copy their input and validate shape up front, so a
// PointSet is immutable after construction and a successfully built value
// is always well-formed. Shape violations surface as the sentinel errors
// ErrBadShape and ErrLengthMismatch, matched with errors.Is.
//
// The package carries no algorithmic logic. Its single job is to get
// caller data into the dense matrix form the estimator consumes, via the
// Dense method.
//
// Example:
//
//	ps, err := pointset.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	if err != nil {
//	  // handle ErrLengthMismatch or ErrBadShape
//	}
//	m := ps.Dense() // *mat.Dense view for umeyama.Estimate
package pointset
