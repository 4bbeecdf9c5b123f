// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discretize builds the fine composite-polynomial discretization of
// the analytic-continuation kernel: panel counts, polynomial order, and the
// resulting composite Chebyshev (ω) and Gauss-Legendre (τ) grids, accurate
// to double precision per spec.md §4.2.
package discretize

import "math"

// DefaultOrder is the default per-panel polynomial order p.
const DefaultOrder = 24

// Params holds the fine-grid sizing derived from Λ and the panel order.
type Params struct {
	Lambda    float64
	Order     int
	NMax      int // imaginary-frequency truncation
	NPanelsW  int // dyadic panels on (0, Λ), mirrored to (-Λ,0)
	NPanelsT  int // dyadic panels on (0, 1/2), mirrored to (1/2,1)
	NOmega    int // = 2*Order*NPanelsW
	NTau      int // = 2*Order*NPanelsT
}

// NewParams derives the fine-grid sizing for cutoff lambda and panel order
// p (p<=0 selects DefaultOrder). Panics if lambda<=0.
func NewParams(lambda float64, p int) Params {
	if lambda <= 0 {
		panic("discretize: lambda must be positive")
	}
	if p <= 0 {
		p = DefaultOrder
	}
	nMax := int(math.Ceil(lambda))
	if nMax < 20 {
		nMax = 20
	}
	nPanelsW := int(math.Ceil(math.Log2(lambda)))
	if nPanelsW < 1 {
		nPanelsW = 1
	}
	nPanelsT := int(math.Ceil(math.Log2(lambda))) - 2
	if nPanelsT < 1 {
		nPanelsT = 1
	}
	return Params{
		Lambda:   lambda,
		Order:    p,
		NMax:     nMax,
		NPanelsW: nPanelsW,
		NPanelsT: nPanelsT,
		NOmega:   2 * p * nPanelsW,
		NTau:     2 * p * nPanelsT,
	}
}
