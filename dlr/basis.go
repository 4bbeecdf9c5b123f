// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/discretize"
	"github.com/sparseir/godlr/kernel"
	"github.com/sparseir/godlr/pivrgs"
)

// Basis is the shared, statistic-independent part of a DLR expansion: the
// selected real frequencies ω[0..r-1], sorted ascending, together with the
// fine-grid data they were selected from. It is constructed once per
// (Λ, ε, symmetrize) and is immutable afterwards (spec.md §3 "Lifecycle").
type Basis struct {
	Lambda     float64
	Eps        float64
	Symmetrize bool
	Order      int

	Omega []float64 // length r, ascending
	Fine  *discretize.FineGrid
}

// NewBasis selects the DLR frequencies for cutoff lambda and tolerance eps
// (spec.md §4.4 "Selecting DLR frequencies"): build the fine kernel matrix
// K_fine (n_τ × n_ω) with rows scaled by √w so the L² inner product on τ
// becomes Euclidean, run PivRGS (symmetric variant if requested) on its
// transpose, sort the selected columns ascending, and read off ω_fine at
// those indices. p==0 selects discretize.DefaultOrder; p<0 returns ErrOrder.
func NewBasis(lambda, eps float64, symmetrize bool, p int) (*Basis, error) {
	if lambda <= 0 {
		return nil, ErrLambda
	}
	if eps <= 0 || eps >= 1 {
		return nil, ErrEps
	}
	if eps <= 1e-14 {
		warnf("dlr: eps=%g at or below 1e-14, accuracy may not be achieved", eps)
	}
	if lambda >= 1e5 {
		warnf("dlr: lambda=%g is extreme, construction may take seconds", lambda)
	}
	if p < 0 {
		return nil, ErrOrder
	}

	fine := discretize.NewFineGrid(lambda, p)
	nTau, nOmega := len(fine.TauFine), len(fine.OmegaFine)

	kFine := mat.NewDense(nTau, nOmega, nil)
	for i, tau := range fine.TauFine {
		for j, omega := range fine.OmegaFine {
			kFine.Set(i, j, fine.Weight[i]*kernel.KTime(tau, omega))
		}
	}

	var res pivrgs.Result
	transposed := mat.DenseCopyOf(kFine.T())
	if symmetrize {
		res = pivrgs.RunSym(transposed, pivrgs.Options{Tol: eps})
	} else {
		res = pivrgs.Run(transposed, pivrgs.Options{Tol: eps})
	}

	piv := append([]int(nil), res.Piv...)
	sort.Ints(piv)

	omega := make([]float64, len(piv))
	for i, idx := range piv {
		omega[i] = fine.OmegaFine[idx]
	}

	return &Basis{
		Lambda:     lambda,
		Eps:        eps,
		Symmetrize: symmetrize,
		Order:      fine.Params.Order,
		Omega:      omega,
		Fine:       fine,
	}, nil
}

// Rank returns r, the number of DLR frequencies.
func (b *Basis) Rank() int { return len(b.Omega) }
