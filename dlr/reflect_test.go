// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func TestReflectIsInvolution(t *testing.T) {
	basis := buildTestBasis(t)
	ops := NewImTimeOps(basis)
	r := basis.Rank()

	for _, stat := range []Statistic{Fermion, Boson} {
		R := Reflect(ops, stat)
		var R2 mat.Dense
		R2.Mul(R, R)
		for i := 0; i < r; i++ {
			for j := 0; j < r; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				if !floats.EqualWithinAbs(R2.At(i, j), want, 1e-5) {
					t.Errorf("stat=%v: R^2[%d][%d]=%g, want %g", stat, i, j, R2.At(i, j), want)
				}
			}
		}
	}
}

func TestReflectOppositeSignBetweenStatistics(t *testing.T) {
	basis := buildTestBasis(t)
	ops := NewImTimeOps(basis)

	rf := Reflect(ops, Fermion)
	rb := Reflect(ops, Boson)

	r, c := rf.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if !floats.EqualWithinAbs(rf.At(i, j), -rb.At(i, j), 1e-6) {
				t.Errorf("(%d,%d): fermion=%g boson=%g, want opposite sign", i, j, rf.At(i, j), rb.At(i, j))
			}
		}
	}
}
