// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clinalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// QR is a complex128 Householder QR factorization of an m×n matrix,
// m>=n, used for the least-squares solve of the over-determined
// symmetrized-bosonic imaginary-frequency system (spec.md §4.4, Open
// Question resolved in favor of QR over normal equations — see
// DESIGN.md). There is no column pivoting, so the factorization does not
// reveal rank. Shaped after gonum's own mat.QR (Factorize/Solve),
// specialized to complex128 Householder reflectors.
type QR struct {
	m, n int
	a    [][]complex128 // m×n, upper triangle holds R, lower holds reflector vectors
	tau  []complex128    // length n, reflector scale factors
}

// Factorize computes the Householder QR factorization of a (m×n, m>=n).
func (qr *QR) Factorize(a *mat.CDense) {
	m, n := a.Dims()
	if m < n {
		panic("clinalg: QR requires m >= n")
	}
	qr.m, qr.n = m, n
	qr.a = make([][]complex128, m)
	for i := 0; i < m; i++ {
		qr.a[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			qr.a[i][j] = a.At(i, j)
		}
	}
	qr.tau = make([]complex128, n)

	for k := 0; k < n; k++ {
		// Householder vector for column k, rows k..m-1, following LAPACK's
		// ZLARFG convention: beta is chosen real with |beta| equal to the
		// full column norm (including alpha) and opposite sign to Re(alpha)
		// to avoid cancellation.
		alpha := qr.a[k][k]
		var xnormSq float64
		for i := k + 1; i < m; i++ {
			xnormSq += real(qr.a[i][k])*real(qr.a[i][k]) + imag(qr.a[i][k])*imag(qr.a[i][k])
		}
		norm := math.Sqrt(real(alpha)*real(alpha)+imag(alpha)*imag(alpha) + xnormSq)
		if norm == 0 {
			qr.tau[k] = 0
			continue
		}
		beta := norm
		if real(alpha) >= 0 {
			beta = -norm
		}
		betaC := complex(beta, 0)
		tau := (betaC - alpha) / betaC
		scale := 1 / (alpha - betaC)

		v := make([]complex128, m-k)
		v[0] = 1
		for i := k + 1; i < m; i++ {
			v[i-k] = qr.a[i][k] * scale
		}

		// Apply H^H = I - conj(tau)*v*v^H to columns k..n-1; H^H maps
		// (alpha, x) to (beta, 0).
		for j := k; j < n; j++ {
			var dot complex128
			for i := k; i < m; i++ {
				dot += cmplx.Conj(v[i-k]) * qr.a[i][j]
			}
			s := cmplx.Conj(tau) * dot
			for i := k; i < m; i++ {
				qr.a[i][j] -= s * v[i-k]
			}
		}
		qr.tau[k] = tau
		for i := k + 1; i < m; i++ {
			qr.a[i][k] = v[i-k]
		}
	}
}

// applyQH applies Q^H to b in place (b is m×bc), used to form Q^H*b before
// the triangular back-solve.
func (qr *QR) applyQH(b [][]complex128) {
	m, n := qr.m, qr.n
	bc := len(b[0])
	for k := 0; k < n; k++ {
		if qr.tau[k] == 0 {
			continue
		}
		v := make([]complex128, m-k)
		v[0] = 1
		for i := k + 1; i < m; i++ {
			v[i-k] = qr.a[i][k]
		}
		for j := 0; j < bc; j++ {
			var dot complex128
			for i := k; i < m; i++ {
				dot += cmplx.Conj(v[i-k]) * b[i][j]
			}
			s := cmplx.Conj(qr.tau[k]) * dot
			for i := k; i < m; i++ {
				b[i][j] -= s * v[i-k]
			}
		}
	}
}

// Solve finds the least-squares solution X minimizing ||A*X - B||_2 for
// the m×n (m>=n) factorized A. B has m rows.
func (qr *QR) Solve(b *mat.CDense) *mat.CDense {
	m, n := qr.m, qr.n
	br, bc := b.Dims()
	if br != m {
		panic("clinalg: QR.Solve dimension mismatch")
	}
	rhs := make([][]complex128, m)
	for i := 0; i < m; i++ {
		rhs[i] = make([]complex128, bc)
		for j := 0; j < bc; j++ {
			rhs[i][j] = b.At(i, j)
		}
	}
	qr.applyQH(rhs)

	x := make([][]complex128, n)
	for i := range x {
		x[i] = make([]complex128, bc)
	}
	for k := n - 1; k >= 0; k-- {
		for j := 0; j < bc; j++ {
			sum := rhs[k][j]
			for i := k + 1; i < n; i++ {
				sum -= qr.a[k][i] * x[i][j]
			}
			x[k][j] = sum / qr.a[k][k]
		}
	}

	out := mat.NewCDense(n, bc, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < bc; j++ {
			out.Set(i, j, x[i][j])
		}
	}
	return out
}
