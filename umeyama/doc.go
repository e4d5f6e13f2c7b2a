// Package umeyama estimates the similarity transformation (rotation,
// optional uniform scale, translation) that best aligns two paired point
// sets, minimizing the mean-squared point-pair distance.
//
// 🚀 What is umeyama?
//
//	The closed-form Kabsch-Umeyama estimator:
//	  • demean both point sets
//	  • form the cross-covariance matrix
//	  • factor it with a singular value decomposition
//	  • correct the SVD's reflection ambiguity so the result is a proper rotation
//	  • assemble a homogeneous (C+1)×(C+1) transform
//
// ✨ Key properties:
//   - Dimension-generic — C = 2, 3 or higher, R points each
//   - Reflection-safe — the rotation block has determinant +1 whenever the
//     correspondence geometry has enough rank to determine one
//   - Rank-aware — coincident or otherwise rank-0 inputs return
//     ErrNoSolution instead of a garbage transform
//   - Pure — no state between calls, safe from concurrent goroutines
//
// ⚙️ Usage:
//
//	import "github.com/geomalign/umeyama/umeyama"
//
//	tf, err := umeyama.Estimate(src, dst, true)
//	if errors.Is(err, umeyama.ErrNoSolution) {
//	  // degenerate geometry: fall back (identity, re-sample, report)
//	}
//	aligned, _ := umeyama.Apply(tf, src)
//
// Inputs are any gonum mat.Matrix with matching R×C dimensions; the
// pointset package provides validated construction from caller data.
//
// Complexity: O(R·C² + C³) per call, dominated by the SVD of the C×C
// covariance matrix.
//
// Reference:
// "Least-Squares Estimation of Transformation Parameters Between Two Point
// Patterns" by Shinji Umeyama, IEEE PAMI 13(4), 1991.
package umeyama
