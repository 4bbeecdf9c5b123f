// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pivrgs

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/mat"
)

// lowRankMatrix builds an m×n matrix with prescribed singular values
// sigma (len(sigma) <= min(m,n)) by random orthogonal sandwiching.
func lowRankMatrix(m, n int, sigma []float64, rnd *rand.Rand) *mat.Dense {
	u := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			u.Set(i, j, rnd.NormFloat64())
		}
	}
	var qu mat.QR
	qu.Factorize(u)
	var Qu mat.Dense
	qu.QTo(&Qu)

	v := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v.Set(i, j, rnd.NormFloat64())
		}
	}
	var qv mat.QR
	qv.Factorize(v)
	var Qv mat.Dense
	qv.QTo(&Qv)

	s := mat.NewDense(m, n, nil)
	for i := 0; i < len(sigma) && i < m && i < n; i++ {
		s.Set(i, i, sigma[i])
	}
	var tmp, out mat.Dense
	tmp.Mul(&Qu, s)
	out.Mul(&tmp, Qv.T())
	return &out
}

func TestRunOrthonormality(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	sigma := make([]float64, 20)
	for i := range sigma {
		sigma[i] = math.Pow(2, -float64(i))
	}
	a := lowRankMatrix(20, 20, sigma, rnd)
	res := Run(a, Options{Tol: 1e-12})
	if err := FrobeniusOrthogonalityError(res.Q); err > 1e-10 {
		t.Errorf("orthogonality error = %v, want <= 1e-10", err)
	}
}

func TestRunRankCalibration(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	sigma := make([]float64, 40)
	for i := range sigma {
		sigma[i] = math.Pow(2, -float64(i))
	}
	a := lowRankMatrix(40, 40, sigma, rnd)
	eps := 1e-8
	res := Run(a, Options{Tol: eps})
	want := int(math.Ceil(math.Log2(1 / eps)))
	if diff := res.Piv; len(diff) == 0 {
		t.Fatal("no pivots selected")
	}
	if got := len(res.Piv); math.Abs(float64(got-want)) > 3 {
		t.Errorf("rank = %d, want within 3 of %d", got, want)
	}
}

func TestRunPivotIdempotence(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	sigma := make([]float64, 15)
	for i := range sigma {
		sigma[i] = math.Pow(2, -float64(i))
	}
	a := lowRankMatrix(15, 15, sigma, rnd)
	res := Run(a, Options{Tol: 1e-9})

	r := len(res.Piv)
	sub := mat.NewDense(r, 15, nil)
	for i, p := range res.Piv {
		sub.SetRow(i, a.RawRowView(p))
	}
	res2 := Run(sub, Options{Tol: 1e-9})
	wantPiv := make([]int, r)
	for i := range wantPiv {
		wantPiv[i] = i
	}
	if diff := cmp.Diff(wantPiv, res2.Piv); diff != "" {
		t.Errorf("pivot idempotence mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSymProducesOrthonormalBasis(t *testing.T) {
	n := 16
	a := mat.NewDense(n, n, nil)
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < n/2; i++ {
		row := make([]float64, n)
		for j := range row {
			row[j] = rnd.NormFloat64() * math.Pow(2, -float64(i))
		}
		a.SetRow(i, row)
		mirrored := make([]float64, n)
		copy(mirrored, row)
		a.SetRow(n-1-i, mirrored)
	}
	res := RunSym(a, Options{Tol: 1e-10})
	if err := FrobeniusOrthogonalityError(res.Q); err > 1e-9 {
		t.Errorf("RunSym orthogonality error = %v, want <= 1e-9", err)
	}
}

func TestRunComplexOrthonormality(t *testing.T) {
	n := 10
	a := mat.NewCDense(n, n, nil)
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scale := math.Pow(2, -float64(i))
			a.Set(i, j, complex(rnd.NormFloat64()*scale, rnd.NormFloat64()*scale))
		}
	}
	res := RunComplex(a, Options{Tol: 1e-12})
	if err := FrobeniusOrthogonalityErrorComplex(res.Q); err > 1e-9 {
		t.Errorf("orthogonality error = %v, want <= 1e-9", err)
	}
}
