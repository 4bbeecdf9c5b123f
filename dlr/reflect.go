// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/kernel"
)

// Reflect builds the fixed r×r matrix implementing τ → β−τ on DLR
// coefficients for the imaginary-time operator ops (spec.md §4.6). In
// relative format τ → β−τ is exactly τ_rel → −τ_rel (see SPEC_FULL.md §6),
// and K(−τ,ω) = K(τ,−ω) by the kernel's own recursive definition, so the
// reflected function Σ_l c_l K(τ,−ω_l) is re-expressed in the same DLR
// basis by solving the usual value→coefficient system at the unchanged
// DLR τ-nodes. The statistic-dependent sign convention (fermionic Green's
// functions pick up an overall minus sign under β−τ relative to bosonic
// ones) is the Open Question resolution recorded in DESIGN.md.
func Reflect(ops *ImTimeOps, stat Statistic) *mat.Dense {
	r := ops.Rank()
	sign := 1.0
	if stat == Fermion {
		sign = -1.0
	}
	vals := mat.NewDense(r, r, nil)
	for i, tau := range ops.tauDLR {
		for l, omega := range ops.basis.Omega {
			vals.Set(i, l, sign*kernel.KTime(tau, -omega))
		}
	}
	return ops.Vals2Coefs(1, vals)
}
