package umeyama

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Estimate — Kabsch-Umeyama similarity transform
//
// Description:
//
//	Estimate computes the similarity transformation (rotation R, uniform
//	scale c, translation t) that minimizes the mean-squared distance
//	between paired point sets:
//
//	    dst_i ≈ c · R · src_i + t,   i = 0..n-1
//
//	Point sets are R×C matrices: row i of src corresponds to row i of dst.
//	The result is a homogeneous (C+1)×(C+1) matrix: top-left C×C block is
//	c·R, column C holds t, the bottom row is [0,...,0,1].
//
// Algorithm Outline:
//  1. Compute per-column means of src and dst once; demean local copies
//     (the inputs are never mutated).
//  2. Cross-covariance A = (1/n) · dstDemeanᵀ · srcDemean, a C×C matrix.
//  3. Sign vector d = ones(C); if det(A) < 0 set d[C-1] = -1. This happens
//     before the SVD and fixes which reflection-correction branch fires.
//  4. Full SVD: A = U · diag(S) · Vᵀ. Factorization failure → ErrNoSolution.
//  5. rank = number of singular values above 1e-5.
//     rank == 0          → ErrNoSolution (no directional information).
//     rank == C-1        → if det(U)·det(Vᵀ) > 0, M = U·Vᵀ; otherwise
//     flip d[C-1] to -1 for M = U·diag(d)·Vᵀ and
//     restore it afterwards (the restored d feeds
//     the scale in step 6).
//     rank == C          → M = U·diag(d)·Vᵀ with d from step 3.
//     M is a proper rotation (det +1) whenever the rank permits one.
//  6. scale = estimateScale ? dot(S, d) / Σ popVar(srcDemean columns) : 1.
//     Population variance, divisor n. Zero variance implies a zero
//     covariance matrix and is caught as rank 0 in step 5.
//  7. translation = dstMean - scale · M · srcMean.
//  8. Assemble the homogeneous matrix.
//
// Complexity:
//
//	Time   = O(R·C² + C³)
//	Memory = O(R·C + C²)
//
// Errors:
//   - ErrEmptyPointSet     — src has zero rows or zero columns.
//   - ErrDimensionMismatch — src and dst dimensions differ.
//   - ErrNoSolution        — rank-0 covariance or SVD failure.
func Estimate(src, dst mat.Matrix, estimateScale bool) (*mat.Dense, error) {
	n, c := src.Dims()
	if n == 0 || c == 0 {
		return nil, ErrEmptyPointSet
	}
	if rd, cd := dst.Dims(); rd != n || cd != c {
		return nil, ErrDimensionMismatch
	}

	// Per-column means, and the summed population variance of src used by
	// the scale estimate. Means are computed once, before demeaning.
	srcMean := make([]float64, c)
	dstMean := make([]float64, c)
	col := make([]float64, n)
	var varSum float64
	for j := 0; j < c; j++ {
		mat.Col(col, j, src)
		mean, variance := stat.PopMeanVariance(col, nil)
		srcMean[j] = mean
		varSum += variance
		mat.Col(col, j, dst)
		dstMean[j] = stat.Mean(col, nil)
	}

	// Demean into local copies; the caller's matrices stay untouched.
	srcDemean := mat.NewDense(n, c, nil)
	dstDemean := mat.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			srcDemean.Set(i, j, src.At(i, j)-srcMean[j])
			dstDemean.Set(i, j, dst.At(i, j)-dstMean[j])
		}
	}

	// Cross-covariance A = (1/n) · dstDemeanᵀ · srcDemean.
	cov := mat.NewDense(c, c, nil)
	cov.Mul(dstDemean.T(), srcDemean)
	cov.Scale(1/float64(n), cov)

	// Reflection guard, decided by det(A) before the SVD.
	d := make([]float64, c)
	for i := range d {
		d[i] = 1
	}
	if mat.Det(cov) < 0 {
		d[c-1] = -1
	}

	var svd mat.SVD
	if !svd.Factorize(cov, mat.SVDFull) {
		return nil, ErrNoSolution
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sv := svd.Values(nil)

	// Numerical rank of A: singular values above the fixed tolerance.
	rank := 0
	for _, s := range sv {
		if s > rankTol {
			rank++
		}
	}
	if rank == 0 {
		return nil, ErrNoSolution
	}

	// Rotation assembly with Umeyama's correction for the SVD's sign
	// ambiguity. The rank C-1 case is the classic reflection-ambiguous
	// configuration and gets its own determinant test.
	rot := mat.NewDense(c, c, nil)
	if rank == c-1 {
		if mat.Det(&u)*mat.Det(v.T()) > 0 {
			rot.Mul(&u, v.T())
		} else {
			last := d[c-1]
			d[c-1] = -1
			rot.Product(&u, mat.NewDiagDense(c, d), v.T())
			d[c-1] = last
		}
	} else {
		rot.Product(&u, mat.NewDiagDense(c, d), v.T())
	}

	scale := 1.0
	if estimateScale {
		scale = floats.Dot(sv, d) / varSum
	}

	// translation = dstMean - scale · M · srcMean, so the transformed
	// source mean lands exactly on the destination mean.
	rotMean := mat.NewVecDense(c, nil)
	rotMean.MulVec(rot, mat.NewVecDense(c, srcMean))

	t := mat.NewDense(c+1, c+1, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			t.Set(i, j, scale*rot.At(i, j))
		}
		t.Set(i, c, dstMean[i]-scale*rotMean.AtVec(i))
	}
	t.Set(c, c, 1)

	return t, nil
}

// rankTol is the fixed tolerance for the numerical rank of the
// cross-covariance matrix: singular values at or below it count as zero.
const rankTol = 1e-5
