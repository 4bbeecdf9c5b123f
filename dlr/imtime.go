// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/internal/mrhs"
	"github.com/sparseir/godlr/kernel"
	"github.com/sparseir/godlr/pivrgs"
)

// ImTimeOps is the imaginary-time transform operator: it holds the DLR
// imaginary-time sampling nodes (relative format, spec.md §6) and the
// coefficient<->value transformation matrices for a fixed Basis.
type ImTimeOps struct {
	basis *Basis

	tauDLR []float64 // length r, relative format
	cf2it  *mat.Dense
	it2cf  mat.LU
}

// NewImTimeOps selects the DLR imaginary-time nodes and builds the
// coefficient<->value transform for basis (spec.md §4.4 "Selecting DLR
// imaginary-time nodes"): build K(τ_fine, ω) (n_τ×r), run PivRGS on its
// rows with a near-machine-precision tolerance (the rank is already fixed
// at r; the tolerance only guards against pathological input), sort the
// selected row indices, and store K(τ_dlr,ω) with its LU factorization.
func NewImTimeOps(basis *Basis) *ImTimeOps {
	r := basis.Rank()
	fine := basis.Fine
	nTau := len(fine.TauFine)

	kMat := mat.NewDense(nTau, r, nil)
	for i, tau := range fine.TauFine {
		for j, omega := range basis.Omega {
			kMat.Set(i, j, kernel.KTime(tau, omega))
		}
	}

	res := pivrgs.Run(kMat, pivrgs.Options{Tol: 1e-100, RTarget: r})
	if len(res.Piv) != r {
		panic(InternalError("PivRGS failed to select r imaginary-time nodes"))
	}
	piv := append([]int(nil), res.Piv...)
	sort.Ints(piv)

	tauDLR := make([]float64, r)
	for i, idx := range piv {
		tauDLR[i] = fine.TauFine[idx]
	}

	cf2it := mat.NewDense(r, r, nil)
	for i, tau := range tauDLR {
		for j, omega := range basis.Omega {
			cf2it.Set(i, j, kernel.KTime(tau, omega))
		}
	}

	ops := &ImTimeOps{basis: basis, tauDLR: tauDLR, cf2it: cf2it}
	ops.it2cf.Factorize(cf2it)
	if ops.it2cf.Cond() > 1/basis.Eps {
		panic(InternalError("imaginary-time value->coefficient matrix is ill-conditioned"))
	}
	return ops
}

// Rank returns r.
func (o *ImTimeOps) Rank() int { return o.basis.Rank() }

// Lambda returns Λ.
func (o *ImTimeOps) Lambda() float64 { return o.basis.Lambda }

// Nodes returns the DLR imaginary-time sampling nodes in relative format.
func (o *ImTimeOps) Nodes() []float64 {
	out := make([]float64, len(o.tauDLR))
	copy(out, o.tauDLR)
	return out
}

// Omega returns the DLR real frequencies.
func (o *ImTimeOps) Omega() []float64 {
	out := make([]float64, len(o.basis.Omega))
	copy(out, o.basis.Omega)
	return out
}

// CF2IT returns the stored coefficient->value matrix K(τ_dlr,ω).
func (o *ImTimeOps) CF2IT() *mat.Dense {
	return mat.DenseCopyOf(o.cf2it)
}

// Vals2Coefs converts values on the DLR τ-grid to DLR coefficients
// (spec.md §4.5). The leading dimension of g must equal Rank(); trailing
// "multi-RHS" columns (flattened orbital indices) are carried through
// untouched. Imaginary time carries no β factor (spec.md §3 invariants).
func (o *ImTimeOps) Vals2Coefs(beta float64, g *mat.Dense) *mat.Dense {
	gr, gc := g.Dims()
	mrhs.CheckLeadingDim(o.Rank(), gr)
	c := mat.NewDense(gr, gc, nil)
	if err := o.it2cf.SolveTo(c, false, g); err != nil {
		panic(InternalError("imaginary-time vals2coefs: " + err.Error()))
	}
	return c
}

// Coefs2Vals converts DLR coefficients to values on the DLR τ-grid.
func (o *ImTimeOps) Coefs2Vals(beta float64, c *mat.Dense) *mat.Dense {
	cr, cc := c.Dims()
	mrhs.CheckLeadingDim(o.Rank(), cr)
	g := mat.NewDense(cr, cc, nil)
	g.Mul(o.cf2it, c)
	return g
}

// Coefs2Eval evaluates Σ_l c_l K(tau, ω_l) at an arbitrary relative time
// tau, for every trailing "multi-RHS" column of c.
func (o *ImTimeOps) Coefs2Eval(beta float64, c *mat.Dense, tau float64) []float64 {
	cr, cc := c.Dims()
	mrhs.CheckLeadingDim(o.Rank(), cr)
	out := make([]float64, cc)
	for j := 0; j < cc; j++ {
		var sum float64
		for l, omega := range o.basis.Omega {
			sum += c.At(l, j) * kernel.KTime(tau, omega)
		}
		out[j] = sum
	}
	return out
}
