// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discretize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LegendreNodes returns the n-point Gauss-Legendre quadrature nodes and
// weights on [-1,1], computed by the Golub-Welsch method: the nodes are
// the eigenvalues of the symmetric tridiagonal Jacobi matrix for the
// Legendre recurrence, and the weights are 2 times the squared first
// component of the corresponding normalized eigenvectors. This reuses
// gonum's own mat.EigenSym (see mat/eigen.go in the teacher) rather than
// hand-rolling a tridiagonal eigensolver.
func LegendreNodes(n int) (nodes, weights []float64) {
	if n < 1 {
		panic("discretize: legendre order must be positive")
	}
	if n == 1 {
		return []float64{0}, []float64{2}
	}
	jacobi := mat.NewSymDense(n, nil)
	for k := 1; k < n; k++ {
		b := float64(k) / math.Sqrt(4*float64(k)*float64(k)-1)
		jacobi.SetSym(k-1, k, b)
	}

	var eig mat.EigenSym
	ok := eig.Factorize(jacobi, true)
	if !ok {
		panic("discretize: Jacobi eigendecomposition failed")
	}
	vals := eig.Values(nil)

	var vecs mat.Dense
	vecs.EigenvectorsSym(&eig)

	nodes = make([]float64, n)
	weights = make([]float64, n)
	type pair struct {
		node, weight float64
	}
	pairs := make([]pair, n)
	for i := 0; i < n; i++ {
		v0 := vecs.At(0, i)
		pairs[i] = pair{node: vals[i], weight: 2 * v0 * v0}
	}
	// Sort ascending by node; EigenSym does not guarantee order.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && pairs[j].node < pairs[j-1].node; j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
	for i, pr := range pairs {
		nodes[i] = pr.node
		weights[i] = pr.weight
	}
	return nodes, weights
}
