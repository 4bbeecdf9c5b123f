// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clinalg provides the complex128 linear-algebra primitives the
// imaginary-frequency DLR operator needs (LU factorization/solve for the
// square C→V system, Householder QR for the over-determined symmetrized-
// bosonic system) that the retrieved gonum snapshot does not expose for
// complex128 (no Zgetrf/Zgetrs/Zgeqrf binding was present in the pack —
// see DESIGN.md). Both types follow the Factorize-then-Solve shape of
// gonum's own real LU and QR; they expose no pivot, Q or R accessors.
package clinalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// LU is a complex128 analogue of mat.LU: LU factorization with partial
// pivoting of a square matrix, computed by Gaussian elimination.
type LU struct {
	n     int
	lu    [][]complex128 // row-major n×n, combined L (unit diag implicit) and U
	pivot []int          // pivot[i] = row swapped into position i
	sign  float64
}

// Factorize computes the LU factorization (with partial pivoting) of the
// square complex matrix a (row-major, n×n as a.At(i,j)).
func (f *LU) Factorize(a *mat.CDense) {
	n, c := a.Dims()
	if n != c {
		panic("clinalg: LU requires a square matrix")
	}
	f.n = n
	f.lu = make([][]complex128, n)
	for i := range f.lu {
		f.lu[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			f.lu[i][j] = a.At(i, j)
		}
	}
	f.pivot = make([]int, n)
	for i := range f.pivot {
		f.pivot[i] = i
	}
	f.sign = 1

	for k := 0; k < n; k++ {
		// Partial pivot: largest magnitude in column k, rows >= k.
		maxRow, maxAbs := k, cmplx.Abs(f.lu[k][k])
		for i := k + 1; i < n; i++ {
			if a := cmplx.Abs(f.lu[i][k]); a > maxAbs {
				maxAbs = a
				maxRow = i
			}
		}
		if maxRow != k {
			f.lu[k], f.lu[maxRow] = f.lu[maxRow], f.lu[k]
			f.pivot[k] = maxRow
			f.sign = -f.sign
		} else {
			f.pivot[k] = k
		}

		pivotVal := f.lu[k][k]
		if pivotVal == 0 {
			continue // singular; detected by Det()==0 at solve time
		}
		for i := k + 1; i < n; i++ {
			factor := f.lu[i][k] / pivotVal
			f.lu[i][k] = factor
			for j := k + 1; j < n; j++ {
				f.lu[i][j] -= factor * f.lu[k][j]
			}
		}
	}
}

// Det returns the determinant of the factorized matrix.
func (f *LU) Det() complex128 {
	det := complex(f.sign, 0)
	for i := 0; i < f.n; i++ {
		det *= f.lu[i][i]
	}
	return det
}

// Singular reports whether the factorized matrix is (numerically) singular.
func (f *LU) Singular() bool {
	d := f.Det()
	return math.IsNaN(real(d)) || cmplx.Abs(d) == 0
}

// Solve solves A*X = B for X, where A is the factorized matrix and B has
// n rows and any number of columns (multi-RHS). Returns a new matrix of
// the same shape as B.
func (f *LU) Solve(b *mat.CDense) *mat.CDense {
	n := f.n
	br, bc := b.Dims()
	if br != n {
		panic("clinalg: LU.Solve dimension mismatch")
	}
	if f.Singular() {
		panic("clinalg: LU.Solve on singular matrix")
	}

	// Apply pivoting to a copy of b.
	x := make([][]complex128, n)
	for i := 0; i < n; i++ {
		x[i] = make([]complex128, bc)
		for j := 0; j < bc; j++ {
			x[i][j] = b.At(i, j)
		}
	}
	for k := 0; k < n; k++ {
		if f.pivot[k] != k {
			x[k], x[f.pivot[k]] = x[f.pivot[k]], x[k]
		}
	}

	// Forward substitution, unit lower triangular.
	for k := 0; k < n; k++ {
		for i := k + 1; i < n; i++ {
			factor := f.lu[i][k]
			for j := 0; j < bc; j++ {
				x[i][j] -= factor * x[k][j]
			}
		}
	}
	// Back substitution, upper triangular.
	for k := n - 1; k >= 0; k-- {
		for j := 0; j < bc; j++ {
			x[k][j] /= f.lu[k][k]
		}
		for i := 0; i < k; i++ {
			factor := f.lu[i][k]
			for j := 0; j < bc; j++ {
				x[i][j] -= factor * x[k][j]
			}
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
