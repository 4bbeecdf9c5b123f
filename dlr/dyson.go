// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"gonum.org/v1/gonum/mat"
)

// DysonSolve solves the Dyson equation G = G0 + β·(G0 * Σ * G) for the
// DLR coefficients of the dressed propagator G, given the DLR
// coefficients of the non-interacting propagator g0 and the self-energy
// sigma (both r×1, single-orbital, spec.md §5). basis must be the Basis
// imtime was built from. For matrix-valued (N-orbital) self-energies,
// see DysonSolveBlock.
//
// Rather than solving the full integral equation directly, this follows
// the standard reduction: convolution by Σ is linear in the convolved
// function's DLR coefficients, so ConvTensor(basis,imtime,stat).Matrix(beta,sigma)
// gives the r×r matrix representation of "convolve with Σ", and the
// Dyson equation becomes the r×r linear system (I - M)·G = G0.
func DysonSolve(beta float64, g0, sigma *mat.Dense, basis *Basis, imtime *ImTimeOps, stat Statistic) (*mat.Dense, error) {
	r := basis.Rank()
	g0r, g0c := g0.Dims()
	if g0r != r || g0c != 1 {
		return nil, ErrShape
	}
	if sr, sc := sigma.Dims(); sr != r || sc != 1 {
		return nil, ErrShape
	}

	tensor := ConvTensor(basis, imtime, stat)
	m := tensor.Matrix(beta, sigma)

	lhs := mat.NewDense(r, r, nil)
	lhs.Sub(identity(r), m)

	var lu mat.LU
	lu.Factorize(lhs)
	if lu.Cond() > 1/basis.Eps {
		return nil, InternalError("Dyson system matrix is ill-conditioned")
	}

	g := mat.NewDense(r, 1, nil)
	if err := lu.SolveTo(g, false, g0); err != nil {
		return nil, InternalError("Dyson solve: " + err.Error())
	}
	return g, nil
}

func identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// DysonSolveBlock is DysonSolve generalized to an N×N-orbital self-energy
// that factorizes as Σ_ab(τ) = orbital[a,b]·f(τ) (spec.md §4.6, "Matrix-
// valued Green's functions are handled by block-Kronecker expansion of
// the r×r convolution matrix into (rN)×(rN) for N×N orbital blocks").
// g0 is the (rN)×N-orbital non-interacting propagator flattened to rN×N
// by stacking orbital columns (the multi-RHS convention of spec.md §4.5);
// f is the shared r×1 time-dependence and orbital the N×N coupling.
// The returned G is rN×N in the same flattened layout.
func DysonSolveBlock(beta float64, g0, f, orbital *mat.Dense, basis *Basis, imtime *ImTimeOps, stat Statistic) (*mat.Dense, error) {
	r := basis.Rank()
	n, n2 := orbital.Dims()
	if n != n2 {
		return nil, ErrShape
	}
	if fr, fc := f.Dims(); fr != r || fc != 1 {
		return nil, ErrShape
	}
	g0r, g0c := g0.Dims()
	if g0r != r*n || g0c != n {
		return nil, ErrShape
	}

	tensor := ConvTensor(basis, imtime, stat)
	m := tensor.BlockMatrix(beta, f, orbital)

	lhs := mat.NewDense(r*n, r*n, nil)
	lhs.Sub(identity(r*n), m)

	var lu mat.LU
	lu.Factorize(lhs)
	if lu.Cond() > 1/basis.Eps {
		return nil, InternalError("block Dyson system matrix is ill-conditioned")
	}

	g := mat.NewDense(r*n, n, nil)
	if err := lu.SolveTo(g, false, g0); err != nil {
		return nil, InternalError("block Dyson solve: " + err.Error())
	}
	return g, nil
}
