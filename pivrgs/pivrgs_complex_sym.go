// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pivrgs

import "gonum.org/v1/gonum/mat"

// RunSymComplex is the complex analogue of RunSym, used to select DLR
// imaginary-frequency nodes symmetric under n ↔ -n-s (spec.md §4.3, §4.4).
func RunSymComplex(a *mat.CDense, opts Options) ResultComplex {
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

	partner := func(i int) int { return m - 1 - i }

	remaining := make([]int, m)
	for i := range remaining {
		remaining[i] = i
	}
	inRemaining := func(i int) bool {
		for _, r := range remaining {
			if r == i {
				return true
			}
		}
		return false
	}
	removeFromRemaining := func(i int) {
		for k, r := range remaining {
			if r == i {
				remaining = append(remaining[:k], remaining[k+1:]...)
				return
			}
		}
	}

	var firstNorm float64
	step := 0
	for {
		if opts.RTarget > 0 && len(piv) >= opts.RTarget {
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
		step++

		pivRow := remaining[bestIdx]
		p := partner(pivRow)

		if p == pivRow {
			qRow := complexRow(residual, pivRow)
			if bestNorm > 0 {
				for j := range qRow {
					qRow[j] /= complex(bestNorm, 0)
				}
			}
			removeFromRemaining(pivRow)
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
			continue
		}

		if !inRemaining(p) {
			removeFromRemaining(pivRow)
			continue
		}

		rowA := complexRow(residual, pivRow)
		rowB := complexRow(residual, p)
		sym := make([]complex128, n)
		antisym := make([]complex128, n)
		for j := range rowA {
			sym[j] = rowA[j] + rowB[j]
			antisym[j] = rowA[j] - rowB[j]
		}
		normSym := complexNorm(sym)
		normAntisym := complexNorm(antisym)

		removeFromRemaining(pivRow)
		removeFromRemaining(p)

		addVector := func(v []complex128, nrm float64) {
			if nrm <= 0 {
				return
			}
			for j := range v {
				v[j] /= complex(nrm, 0)
			}
			for pass := 0; pass < 2; pass++ {
				for _, i := range remaining {
					row := complexRow(residual, i)
					proj := complexDot(v, row)
					for j := range row {
						row[j] -= proj * v[j]
					}
					for j := 0; j < n; j++ {
						residual.Set(i, j, row[j])
					}
				}
			}
			q = appendComplexRow(q, v)
		}

		addVector(sym, normSym)
		piv = append(piv, pivRow)
		norms = append(norms, bestNorm)

		addVector(antisym, normAntisym)
		piv = append(piv, p)
		norms = append(norms, bestNorm)
	}

	return ResultComplex{Q: q, Piv: piv, Norms: norms}
}
