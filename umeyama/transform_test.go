package umeyama_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/geomalign/umeyama/umeyama"
)

// homogeneous2D builds the (3×3) homogeneous matrix for s·R(theta) + t.
func homogeneous2D(s, theta float64, t [2]float64) *mat.Dense {
	cos, sin := math.Cos(theta), math.Sin(theta)

	return mat.NewDense(3, 3, []float64{
		s * cos, -s * sin, t[0],
		s * sin, s * cos, t[1],
		0, 0, 1,
	})
}

// TestApply_KnownTransform checks the per-point action of a hand-built
// homogeneous transform.
func TestApply_KnownTransform(t *testing.T) {
	// Pure translation by (1, -2).
	tf := homogeneous2D(1, 0, [2]float64{1, -2})
	pts := mat.NewDense(2, 2, []float64{0, 0, 3, 4})

	out, err := umeyama.Apply(tf, pts)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{1, -2, 4, 2})
	assert.True(t, mat.EqualApprox(want, out, 1e-12))

	// Quarter turn, scale 2, no translation: (1,0) -> (0,2).
	tf = homogeneous2D(2, math.Pi/2, [2]float64{0, 0})
	out, err = umeyama.Apply(tf, mat.NewDense(1, 2, []float64{1, 0}))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out.At(0, 0), 1e-12)
	assert.InDelta(t, 2.0, out.At(0, 1), 1e-12)
}

// TestApply_DimensionMismatch rejects transforms whose size does not match
// the point dimensionality.
func TestApply_DimensionMismatch(t *testing.T) {
	pts := mat.NewDense(2, 3, nil)

	_, err := umeyama.Apply(mat.NewDense(3, 3, nil), pts)
	assert.ErrorIs(t, err, umeyama.ErrDimensionMismatch, "3x3 transform against 3D points must error")

	_, err = umeyama.Apply(mat.NewDense(4, 3, nil), pts)
	assert.ErrorIs(t, err, umeyama.ErrDimensionMismatch, "non-square transform must error")
}

// TestDecomposition verifies ScaleOf, RotationOf and TranslationOf against
// a hand-built transform.
func TestDecomposition(t *testing.T) {
	const s, theta = 2.0, 0.5
	shift := [2]float64{1, -2}
	tf := homogeneous2D(s, theta, shift)

	assert.InDelta(t, s, umeyama.ScaleOf(tf), 1e-12)

	rot := umeyama.RotationOf(tf)
	assert.InDelta(t, math.Cos(theta), rot.At(0, 0), 1e-12)
	assert.InDelta(t, -math.Sin(theta), rot.At(0, 1), 1e-12)
	assert.InDelta(t, 1.0, mat.Det(rot), 1e-12)

	assert.Equal(t, []float64{1, -2}, umeyama.TranslationOf(tf))
}

// TestRoundTripThroughApply closes the loop: estimate from generated
// correspondences, apply the result and land on the destination.
func TestRoundTripThroughApply(t *testing.T) {
	src := spread2D()
	dst := similarity2D(src, 0.8, -1.1, [2]float64{-3, 2})

	tf, err := umeyama.Estimate(src, dst, true)
	require.NoError(t, err)

	aligned, err := umeyama.Apply(tf, src)
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(dst, aligned, 1e-9), "estimate+apply must reproduce dst")
}
