// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/internal/clinalg"
	"github.com/sparseir/godlr/internal/mrhs"
	"github.com/sparseir/godlr/kernel"
	"github.com/sparseir/godlr/pivrgs"
)

// ImFreqOps is the imaginary-frequency transform operator. In the general
// case it holds r Matsubara indices and a square r×r complex C→V matrix
// with its LU factorization. In the symmetrized-bosonic case (basis.
// Symmetrize && stat==Boson) it holds r+1 indices and an over-determined
// (r+1)×r C→V matrix solved in the least-squares sense via QR, per
// spec.md §4.4.
type ImFreqOps struct {
	basis *Basis
	stat  Statistic

	nIF   []int
	cf2if *mat.CDense

	symBosonic bool
	lu         clinalg.LU
	qr         clinalg.QR
}

// NewImFreqOps selects the DLR imaginary-frequency nodes and builds the
// coefficient<->value transform for basis and statistic stat.
func NewImFreqOps(basis *Basis, stat Statistic) *ImFreqOps {
	r := basis.Rank()
	nMax := basis.Fine.Params.NMax

	var nList []int
	if stat == Fermion {
		for n := -nMax; n <= nMax-1; n++ {
			nList = append(nList, n)
		}
	} else {
		for n := -nMax; n <= nMax; n++ {
			nList = append(nList, n)
		}
	}

	kIF := mat.NewCDense(len(nList), r, nil)
	for i, n := range nList {
		for j, omega := range basis.Omega {
			kIF.Set(i, j, kernel.KFreq(n, omega, stat))
		}
	}

	symBosonic := basis.Symmetrize && stat == Boson
	rTarget := r
	if symBosonic {
		rTarget = r + 1
	}

	var res pivrgs.ResultComplex
	if basis.Symmetrize {
		res = pivrgs.RunSymComplex(kIF, pivrgs.Options{Tol: 1e-100, RTarget: rTarget})
	} else {
		res = pivrgs.RunComplex(kIF, pivrgs.Options{Tol: 1e-100, RTarget: rTarget})
	}
	if len(res.Piv) != rTarget {
		panic(InternalError("PivRGS failed to select the target number of imaginary-frequency nodes"))
	}

	piv := append([]int(nil), res.Piv...)
	sort.Ints(piv)

	nIF := make([]int, len(piv))
	for i, idx := range piv {
		nIF[i] = nList[idx]
	}

	cf2if := mat.NewCDense(len(nIF), r, nil)
	for i, n := range nIF {
		for j, omega := range basis.Omega {
			cf2if.Set(i, j, kernel.KFreq(n, omega, stat))
		}
	}
	if symBosonic {
		for j, omega := range basis.Omega {
			scale := complex(math.Tanh(omega/2), 0)
			for i := 0; i < len(nIF); i++ {
				cf2if.Set(i, j, cf2if.At(i, j)*scale)
			}
		}
	}

	ops := &ImFreqOps{basis: basis, stat: stat, nIF: nIF, cf2if: cf2if, symBosonic: symBosonic}
	if symBosonic {
		ops.qr.Factorize(cf2if)
	} else {
		ops.lu.Factorize(cf2if)
		if ops.lu.Singular() {
			panic(InternalError("imaginary-frequency value->coefficient matrix is singular"))
		}
	}
	return ops
}

// Rank returns r, the DLR coefficient-space rank.
func (o *ImFreqOps) Rank() int { return o.basis.Rank() }

// NumNodes returns the number of imaginary-frequency sampling nodes: r in
// general, r+1 in the symmetrized-bosonic case.
func (o *ImFreqOps) NumNodes() int { return len(o.nIF) }

// Lambda returns Λ.
func (o *ImFreqOps) Lambda() float64 { return o.basis.Lambda }

// Statistic returns the statistic this operator was built for.
func (o *ImFreqOps) Statistic() Statistic { return o.stat }

// Nodes returns the selected Matsubara indices n_if.
func (o *ImFreqOps) Nodes() []int {
	out := make([]int, len(o.nIF))
	copy(out, o.nIF)
	return out
}

// Omega returns the DLR real frequencies.
func (o *ImFreqOps) Omega() []float64 {
	out := make([]float64, len(o.basis.Omega))
	copy(out, o.basis.Omega)
	return out
}

// CF2IF returns the stored coefficient->value matrix.
func (o *ImFreqOps) CF2IF() *mat.CDense {
	r, c := o.cf2if.Dims()
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, o.cf2if.At(i, j))
		}
	}
	return out
}

// Vals2Coefs converts values on the DLR Matsubara grid to DLR
// coefficients. The β factor enters as a divide on input, per standard
// Matsubara convention (spec.md §4.5).
func (o *ImFreqOps) Vals2Coefs(beta float64, g *mat.CDense) *mat.CDense {
	gr, gc := g.Dims()
	mrhs.CheckLeadingDim(o.NumNodes(), gr)
	scaled := mat.NewCDense(gr, gc, nil)
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			scaled.Set(i, j, g.At(i, j)/complex(beta, 0))
		}
	}
	if o.symBosonic {
		return o.qr.Solve(scaled)
	}
	return o.lu.Solve(scaled)
}

// Coefs2Vals converts DLR coefficients to values on the DLR Matsubara
// grid. The β factor is applied as a multiply on output.
func (o *ImFreqOps) Coefs2Vals(beta float64, c *mat.CDense) *mat.CDense {
	cr, cc := c.Dims()
	mrhs.CheckLeadingDim(o.Rank(), cr)
	nr, _ := o.cf2if.Dims()
	out := mat.NewCDense(nr, cc, nil)
	for i := 0; i < nr; i++ {
		for j := 0; j < cc; j++ {
			var sum complex128
			for k := 0; k < cr; k++ {
				sum += o.cf2if.At(i, k) * c.At(k, j)
			}
			out.Set(i, j, sum*complex(beta, 0))
		}
	}
	return out
}

// Coefs2Eval evaluates β·Σ_l c_l K(n,ω_l,s) at an arbitrary Matsubara
// index n, for every trailing "multi-RHS" column of c.
func (o *ImFreqOps) Coefs2Eval(beta float64, c *mat.CDense, n int) []complex128 {
	cr, cc := c.Dims()
	mrhs.CheckLeadingDim(o.Rank(), cr)
	out := make([]complex128, cc)
	for j := 0; j < cc; j++ {
		var sum complex128
		for l, omega := range o.basis.Omega {
			sum += c.At(l, j) * kernel.KFreq(n, omega, o.stat)
		}
		out[j] = sum * complex(beta, 0)
	}
	return out
}
