// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import "math"

// ChebyshevNodes returns the n second-kind Chebyshev points on [-1,1]
// (x_k = cos(kπ/(n-1))) in descending order, together with the barycentric
// interpolation weights (w_k = (-1)^k δ_k, δ_0=δ_{n-1}=1/2, else 1). These
// have a closed form and need no eigensolver or external dependency, unlike
// the Gauss-Legendre nodes in legendre.go — see DESIGN.md.
func ChebyshevNodes(n int) (nodes, weights []float64) {
	if n < 2 {
		panic("discretize: chebyshev order must be at least 2")
	}
	nodes = make([]float64, n)
	weights = make([]float64, n)
	for k := 0; k < n; k++ {
		nodes[k] = math.Cos(float64(k) * math.Pi / float64(n-1))
		delta := 1.0
		if k == 0 || k == n-1 {
			delta = 0.5
		}
		sign := 1.0
		if k%2 == 1 {
			sign = -1.0
		}
		weights[k] = sign * delta
	}
	return nodes, weights
}

// BarycentricInterp evaluates the degree-(n-1) polynomial interpolating
// (nodes[i], values[i]) at x, using the barycentric formula with the given
// barycentric weights. Falls back to exact value if x coincides with a node.
func BarycentricInterp(nodes, weights, values []float64, x float64) float64 {
	var num, den float64
	for i, xi := range nodes {
		d := x - xi
		if d == 0 {
			return values[i]
		}
		t := weights[i] / d
		num += t * values[i]
		den += t
	}
	return num / den
}
