// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pivrgs implements pivoted reorthogonalized Gram-Schmidt
// (PivRGS), a rank-revealing row-selection factorization used to pick DLR
// frequencies and DLR sampling nodes from a dense kernel matrix (spec.md
// §4.3). Two passes of classical Gram-Schmidt are taken at each step (the
// "reorthogonalized" in the name); a single pass is numerically inadequate
// at the tolerances this library targets.
package pivrgs

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Result holds the output of a PivRGS run: Q is a row-orthonormal r×n
// matrix, Piv holds the r selected row indices of the input A in
// selection order, and Norms[i] is the residual pivot norm at step i
// (non-increasing).
type Result struct {
	Q     *mat.Dense
	Piv   []int
	Norms []float64
}

// Options controls the stopping rule: Tol is interpreted as a relative
// tolerance against the first pivot norm, RTarget (if >0) additionally
// caps the selected rank.
type Options struct {
	Tol     float64
	RTarget int
}

// Run performs PivRGS on the real matrix a (m×n), selecting rows.
func Run(a *mat.Dense, opts Options) Result {
	m, n := a.Dims()
	residual := mat.DenseCopyOf(a)
	q := mat.NewDense(0, n, nil)
	var piv []int
	var norms []float64

	rowNorm := func(i int) float64 {
		return floats.Norm(residual.RawRowView(i), 2)
	}

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
			nrm := rowNorm(i)
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

		qRow := make([]float64, n)
		copy(qRow, residual.RawRowView(pivRow))
		if bestNorm > 0 {
			floats.Scale(1/bestNorm, qRow)
		}

		// Two passes of classical Gram-Schmidt of every remaining row
		// against the newly formed qRow; earlier q rows were already
		// projected out of the residual at their own steps.
		for pass := 0; pass < 2; pass++ {
			for _, i := range remaining {
				row := residual.RawRowView(i)
				proj := floats.Dot(row, qRow)
				floats.AddScaled(row, -proj, qRow)
			}
		}
		piv = append(piv, pivRow)
		norms = append(norms, bestNorm)
		q = appendRow(q, qRow)
	}

	return Result{Q: q, Piv: piv, Norms: norms}
}

func appendRow(q *mat.Dense, row []float64) *mat.Dense {
	r, n := q.Dims()
	out := mat.NewDense(r+1, n, nil)
	out.Copy(q)
	out.SetRow(r, row)
	return out
}

// RunSym performs the pair-symmetric variant of PivRGS on a real matrix
// whose rows come in paired indices (i, m-1-i), as described in spec.md
// §4.3. At each step it either selects a self-symmetric centre pivot (when
// the largest-norm row's pair partner is itself) or jointly selects and
// orthogonalizes against a pair.
func RunSym(a *mat.Dense, opts Options) Result {
	m, n := a.Dims()
	residual := mat.DenseCopyOf(a)
	q := mat.NewDense(0, n, nil)
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

	rowNorm := func(i int) float64 { return floats.Norm(residual.RawRowView(i), 2) }

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
			nrm := rowNorm(i)
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
			// Self-symmetric centre pivot.
			qRow := make([]float64, n)
			copy(qRow, residual.RawRowView(pivRow))
			if bestNorm > 0 {
				floats.Scale(1/bestNorm, qRow)
			}
			removeFromRemaining(pivRow)
			for pass := 0; pass < 2; pass++ {
				for _, i := range remaining {
					row := residual.RawRowView(i)
					proj := floats.Dot(row, qRow)
					floats.AddScaled(row, -proj, qRow)
				}
			}
			piv = append(piv, pivRow)
			norms = append(norms, bestNorm)
			q = appendRow(q, qRow)
			continue
		}

		if !inRemaining(p) {
			// Partner already consumed (shouldn't normally happen given
			// joint selection below, but guard for safety).
			removeFromRemaining(pivRow)
			continue
		}

		// Jointly select the symmetric pair, forming two orthonormal
		// combinations: the symmetric and antisymmetric sums.
		rowA := append([]float64(nil), residual.RawRowView(pivRow)...)
		rowB := append([]float64(nil), residual.RawRowView(p)...)

		sym := make([]float64, n)
		antisym := make([]float64, n)
		for j := range rowA {
			sym[j] = rowA[j] + rowB[j]
			antisym[j] = rowA[j] - rowB[j]
		}
		normSym := floats.Norm(sym, 2)
		normAntisym := floats.Norm(antisym, 2)

		removeFromRemaining(pivRow)
		removeFromRemaining(p)

		addVector := func(v []float64, nrm float64) {
			if nrm <= 0 {
				return
			}
			floats.Scale(1/nrm, v)
			for pass := 0; pass < 2; pass++ {
				for _, i := range remaining {
					row := residual.RawRowView(i)
					proj := floats.Dot(row, v)
					floats.AddScaled(row, -proj, v)
				}
			}
			q = appendRow(q, v)
		}

		addVector(sym, normSym)
		piv = append(piv, pivRow)
		norms = append(norms, bestNorm)

		addVector(antisym, normAntisym)
		piv = append(piv, p)
		norms = append(norms, bestNorm)
	}

	return Result{Q: q, Piv: piv, Norms: norms}
}

// FrobeniusOrthogonalityError returns ||Q Qᵀ - I||_F, the diagnostic used
// to test PivRGS's orthonormality guarantee (spec.md §8).
func FrobeniusOrthogonalityError(q *mat.Dense) float64 {
	r, _ := q.Dims()
	var gram mat.Dense
	gram.Mul(q, q.T())
	var sum float64
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			d := gram.At(i, j) - want
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}
