// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxInterpError computes the pointwise max error between fn evaluated
// directly and fn reconstructed by barycentric interpolation from
// (nodes, weights) sampled at a grid of double the resolution of nodes.
// This bounds the discretization error used to pick panel defaults
// (spec.md §4.2's "verification helper").
func MaxInterpError(nodes, weights []float64, fn func(float64) float64) float64 {
	lo, hi := floats.Min(nodes), floats.Max(nodes)
	n := 2 * len(nodes)
	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = fn(x)
	}
	errs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		got := BarycentricInterp(nodes, weights, values, x)
		want := fn(x)
		errs = append(errs, math.Abs(got-want))
	}
	return floats.Max(errs)
}
