package umeyama_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/geomalign/umeyama/umeyama"
)

// ExampleEstimate recovers a quarter turn with scale 2 and translation
// (4, -3) from three 2D point correspondences.
func ExampleEstimate() {
	src := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
	})
	// dst_i = 2·R(π/2)·src_i + (4, -3)
	dst := mat.NewDense(3, 2, []float64{
		4, -3,
		4, -1,
		2, -3,
	})

	tf, err := umeyama.Estimate(src, dst, true)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	shift := umeyama.TranslationOf(tf)
	fmt.Printf("scale: %.2f\n", umeyama.ScaleOf(tf))
	fmt.Printf("rotation: %.2f rad\n", math.Atan2(tf.At(1, 0), tf.At(0, 0)))
	fmt.Printf("translation: (%.2f, %.2f)\n", shift[0], shift[1])
	// Output:
	// scale: 2.00
	// rotation: 1.57 rad
	// translation: (4.00, -3.00)
}

// ExampleEstimate_noSolution shows the degenerate outcome: coincident
// points carry no directional information.
func ExampleEstimate_noSolution() {
	collapsed := mat.NewDense(3, 2, []float64{5, 5, 5, 5, 5, 5})

	_, err := umeyama.Estimate(collapsed, collapsed, true)
	fmt.Println(err)
	// Output:
	// umeyama: no solution, covariance is rank deficient or not factorizable
}
