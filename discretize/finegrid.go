// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"math"
	"sort"
)

// FineGrid is the composite discretization of the kernel domain: a
// dyadic-refined composite Chebyshev grid in ω and a dyadic-refined
// composite Gauss-Legendre grid in τ (relative format), each resolved to
// double precision by order-p panels per spec.md §4.2.
type FineGrid struct {
	Params Params

	OmegaFine []float64 // length Params.NOmega, ascending
	TauFine   []float64 // length Params.NTau, relative format, ascending
	Weight    []float64 // length Params.NTau, sqrt(quadrature weight) per node
}

// dyadicEdges returns n+1 panel edges geometrically refining toward 0 on
// (0, hi]: 0, hi/2^(n-1), hi/2^(n-2), ..., hi/2, hi.
func dyadicEdges(n int, hi float64) []float64 {
	edges := make([]float64, n+1)
	edges[0] = 0
	for k := 1; k <= n; k++ {
		edges[k] = hi / math.Pow(2, float64(n-k))
	}
	return edges
}

// NewFineGrid builds the fine ω and τ grids and τ quadrature weights for
// the given Λ and panel order p (p<=0 selects DefaultOrder).
func NewFineGrid(lambda float64, p int) *FineGrid {
	params := NewParams(lambda, p)
	order := params.Order

	chebNodes, _ := ChebyshevNodes(order)
	edgesW := dyadicEdges(params.NPanelsW, lambda)
	omegaPos := make([]float64, 0, params.NPanelsW*order)
	for k := 0; k < params.NPanelsW; k++ {
		a, b := edgesW[k], edgesW[k+1]
		for _, x := range chebNodes {
			omegaPos = append(omegaPos, 0.5*(a+b)+0.5*(b-a)*x)
		}
	}
	omegaFine := make([]float64, 0, params.NOmega)
	for _, w := range omegaPos {
		omegaFine = append(omegaFine, -w)
	}
	omegaFine = append(omegaFine, omegaPos...)
	sort.Float64s(omegaFine)

	legNodes, legWeights := LegendreNodes(order)
	edgesT := dyadicEdges(params.NPanelsT, 0.5)
	tauPos := make([]float64, 0, params.NPanelsT*order)
	wPos := make([]float64, 0, params.NPanelsT*order)
	for k := 0; k < params.NPanelsT; k++ {
		a, b := edgesT[k], edgesT[k+1]
		half := 0.5 * (b - a)
		for i, x := range legNodes {
			tauPos = append(tauPos, 0.5*(a+b)+half*x)
			wPos = append(wPos, math.Sqrt(half*legWeights[i]))
		}
	}

	type node struct{ tau, w float64 }
	nodes := make([]node, 0, params.NTau)
	for i, t := range tauPos {
		nodes = append(nodes, node{tau: -t, w: wPos[i]})
	}
	for i, t := range tauPos {
		nodes = append(nodes, node{tau: t, w: wPos[i]})
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].tau < nodes[j].tau })

	tauFine := make([]float64, len(nodes))
	weight := make([]float64, len(nodes))
	for i, nd := range nodes {
		tauFine[i] = nd.tau
		weight[i] = nd.w
	}

	return &FineGrid{Params: params, OmegaFine: omegaFine, TauFine: tauFine, Weight: weight}
}
