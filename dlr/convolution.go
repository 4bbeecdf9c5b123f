// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/kernel"
)

// ConvolutionTensor is the dense r×r×r tensor C[i][j][k] that answers
// "what is the value, at DLR τ-node i, of the imaginary-time convolution
// of basis function ω_j against basis function ω_k" (spec.md §4.6). It
// depends only on (basis, statistic); DysonSolve and DysonSolveBlock
// build a new one on every call.
type ConvolutionTensor struct {
	basis *Basis
	stat  Statistic
	tau   []float64
	c     [][][]float64 // [node i][column j][column k]
}

// relToPhys and physToRel convert between the relative τ format (spec.md
// §6: negative values encode proximity to β) and the physical τ/β ∈ [0,1)
// used internally by the convolution quadrature below.
func relToPhys(tau float64) float64 {
	if tau >= 0 {
		return tau
	}
	return 1 + tau
}

func physToRel(t float64) float64 {
	if t <= 0.5 {
		return t
	}
	return t - 1
}

// ConvTensor builds the convolution tensor for basis and statistic stat,
// using imtime's DLR τ-nodes as the output grid.
//
// The defining integral
//
//	C_i(ω_j,ω_k) = ∫₀^1 A(t_i-t', ω_j) K(t', ω_k) dt'
//
// where A continues K antiperiodically (fermion) or periodically (boson)
// outside [0,1), has a textbook closed form for ω_j≠ω_k and a removable
// singularity at ω_j=ω_k that must be handled as a limit. Both branches
// are smooth in t', so rather than transcribe that closed form (and its
// delicate limit) this evaluates the integral directly by composite
// Gauss-Legendre quadrature on the fine τ grid already built for exactly
// this purpose (discretize.FineGrid, §4.2) — it resolves the kernel to
// the same accuracy ε the basis itself was selected to, without a
// separate singularity-handling code path. See DESIGN.md for the
// rationale.
func ConvTensor(basis *Basis, imtime *ImTimeOps, stat Statistic) *ConvolutionTensor {
	r := basis.Rank()
	tauDLR := imtime.Nodes()
	fine := basis.Fine

	zeta := 1.0
	if stat == Fermion {
		zeta = -1.0
	}

	c := make([][][]float64, r)
	for i, tauI := range tauDLR {
		tI := relToPhys(tauI)
		c[i] = make([][]float64, r)
		for j := range basis.Omega {
			c[i][j] = make([]float64, r)
		}
		for m, tauM := range fine.TauFine {
			w := fine.Weight[m] * fine.Weight[m]
			tM := relToPhys(tauM)
			diff := tI - tM

			var aRel float64
			var sign float64
			if diff >= 0 {
				aRel, sign = physToRel(diff), 1
			} else {
				aRel, sign = physToRel(diff+1), zeta
			}

			for j, omegaJ := range basis.Omega {
				aVal := sign * kernel.KTime(aRel, omegaJ)
				for k, omegaK := range basis.Omega {
					bVal := kernel.KTime(tauM, omegaK)
					c[i][j][k] += w * aVal * bVal
				}
			}
		}
	}

	return &ConvolutionTensor{basis: basis, stat: stat, tau: tauDLR, c: c}
}

// Matrix specializes the tensor against a single-channel DLR coefficient
// vector sigma (r×1), producing the r×r matrix M such that M·g gives the
// DLR values, at the τ-nodes the tensor was built on, of β·(sigma * g)
// where * is imaginary-time convolution (spec.md §4.6, §5 Dyson).
func (t *ConvolutionTensor) Matrix(beta float64, sigma *mat.Dense) *mat.Dense {
	r := t.basis.Rank()
	sr, sc := sigma.Dims()
	if sr != r || sc != 1 {
		panic(ErrShape)
	}
	m := mat.NewDense(r, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			var sum float64
			for k := 0; k < r; k++ {
				sum += t.c[i][j][k] * sigma.At(k, 0)
			}
			m.Set(i, j, beta*sum)
		}
	}
	return m
}

// BlockMatrix handles matrix-valued (N×N orbital) self-energies whose
// imaginary-time dependence factorizes as Σ_ab(τ) = orbital[a,b]·f(τ)
// for a single shared time-dependence f (DLR coefficients, r×1) and a
// real N×N orbital coupling matrix — the common case of a time-independent
// orbital coupling dressed by one frequency structure. Per spec.md §4.6
// ("Matrix-valued Green's functions are handled by block-Kronecker
// expansion of the r×r convolution matrix into (rN)×(rN) for N×N orbital
// blocks"), the (rN)×(rN) result is the Kronecker product of the orbital
// matrix with the single-channel convolution matrix t.Matrix(beta,f).
func (t *ConvolutionTensor) BlockMatrix(beta float64, f *mat.Dense, orbital *mat.Dense) *mat.Dense {
	n, n2 := orbital.Dims()
	if n != n2 {
		panic(ErrShape)
	}
	m := t.Matrix(beta, f)
	full := mat.NewDense(n*t.basis.Rank(), n*t.basis.Rank(), nil)
	full.Kronecker(orbital, m)
	return full
}
