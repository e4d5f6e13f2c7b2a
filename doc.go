// Package umeyama aligns labeled point clouds with the Kabsch-Umeyama
// algorithm — the closed-form, least-squares estimator for the rotation,
// optional uniform scale and translation between two paired point sets.
//
// 🚀 What is geomalign/umeyama?
//
//	A small, focused registration library that brings together:
//		• Estimator: closed-form similarity transform between paired point sets
//		• Adapter: validated point-set construction from nested rows or flat slices
//		• Helpers: apply a homogeneous transform, extract scale / rotation / translation
//
// ✨ Why choose geomalign?
//
//   - Exact Umeyama semantics – reflection-safe rotations, rank-aware degeneracy handling
//   - Dimension-generic – 2D, 3D or any C, driven by gonum's SVD
//   - Pure functions – no shared state, safe from concurrent goroutines
//   - Explicit failure modes – sentinel errors, never panics on user input
//
// Everything is organized under two subpackages:
//
//	pointset/ — row-major R×C point-set type with validated constructors
//	umeyama/  — the estimator, transform application and decomposition helpers
//
// Quick sketch:
//
//	    src ───► demean ───► cov ───► SVD ───► R, c, t ───► (C+1)×(C+1)
//	    dst ───► demean ──────┘
//
// See examples/ for runnable demos (2D scatter alignment with plots,
// rigid 3D scan registration).
//
//	go get github.com/geomalign/umeyama
package umeyama
