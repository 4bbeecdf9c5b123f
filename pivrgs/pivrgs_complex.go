// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pivrgs

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ResultComplex is the complex analogue of Result.
type ResultComplex struct {
	Q     *mat.CDense
	Piv   []int
	Norms []float64
}

func complexRow(m *mat.CDense, i int) []complex128 {
	_, n := m.Dims()
	row := make([]complex128, n)
	for j := 0; j < n; j++ {
		row[j] = m.At(i, j)
	}
	return row
}

func complexNorm(row []complex128) float64 {
	var sum float64
	for _, v := range row {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(sum)
}

func complexDot(a, b []complex128) complex128 {
	var sum complex128
	for i := range a {
		sum += cmplx.Conj(a[i]) * b[i]
	}
	return sum
}

func appendComplexRow(q *mat.CDense, row []complex128) *mat.CDense {
	r, n := q.Dims()
	out := mat.NewCDense(r+1, n, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, q.At(i, j))
		}
	}
	for j, v := range row {
		out.Set(r, j, v)
	}
	return out
}

// RunComplex performs PivRGS on the complex matrix a (m×n).
func RunComplex(a *mat.CDense, opts Options) ResultComplex {
	m, n := a.Dims()
	residual := mat.NewCDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			residual.Set(i, j, a.At(i, j))
		}
	}
	q := mat.NewCDense(0, n, nil)
	var piv []int
	var norms []float64

	remaining := make([]int, m)
	for i := range remaining {
		remaining[i] = i
	}

	var firstNorm float64
	for step := 0; ; step++ {
		if opts.RTarget > 0 && step >= opts.RTarget {
			break
		}
		if len(remaining) == 0 {
			break
		}
		bestIdx, bestNorm := 0, -1.0
		for k, i := range remaining {
			nrm := complexNorm(complexRow(residual, i))
			if nrm > bestNorm {
				bestNorm = nrm
				bestIdx = k
			}
		}
		if step == 0 {
			firstNorm = bestNorm
		}
		if firstNorm > 0 && bestNorm < opts.Tol*firstNorm {
			break
		}

		pivRow := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		qRow := complexRow(residual, pivRow)
		if bestNorm > 0 {
			for j := range qRow {
				qRow[j] /= complex(bestNorm, 0)
			}
		}

		for pass := 0; pass < 2; pass++ {
			for _, i := range remaining {
				row := complexRow(residual, i)
				proj := complexDot(qRow, row)
				for j := range row {
					row[j] -= proj * qRow[j]
				}
				for j := 0; j < n; j++ {
					residual.Set(i, j, row[j])
				}
			}
		}
		piv = append(piv, pivRow)
		norms = append(norms, bestNorm)
		q = appendComplexRow(q, qRow)
	}

	return ResultComplex{Q: q, Piv: piv, Norms: norms}
}

// FrobeniusOrthogonalityErrorComplex returns ||Q Q* - I||_F for a complex
// row-orthonormal matrix.
func FrobeniusOrthogonalityErrorComplex(q *mat.CDense) float64 {
	r, n := q.Dims()
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			var g complex128
			for k := 0; k < n; k++ {
				g += cmplx.Conj(q.At(i, k)) * q.At(j, k)
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			d := g - want
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}
