// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"math"
	"math/cmplx"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestKTimeBounded(t *testing.T) {
	omegas := []float64{-1000, -10, -1, -0.001, 0, 0.001, 1, 10, 1000}
	taus := []float64{-1, -0.75, -0.5, -0.001, 0.001, 0.5, 0.75, 1}
	for _, omega := range omegas {
		for _, tau := range taus {
			k := KTime(tau, omega)
			if math.IsNaN(k) || math.IsInf(k, 0) {
				t.Fatalf("KTime(%v, %v) = %v, want finite", tau, omega, k)
			}
			if k < 0 || k > 1+1e-12 {
				t.Fatalf("KTime(%v, %v) = %v, want in [0,1]", tau, omega, k)
			}
		}
	}
}

func TestKTimeOddSymmetry(t *testing.T) {
	for _, tau := range []float64{0.1, 0.3, 0.9} {
		for _, omega := range []float64{0.2, -0.4, 5.0, -5.0} {
			got := KTime(-tau, -omega)
			want := KTime(tau, omega)
			if !floats.EqualWithinAbs(got, want, 1e-14) {
				t.Errorf("KTime(%v,%v) = %v, want K(%v,%v) = %v", -tau, -omega, got, tau, omega, want)
			}
		}
	}
}

func TestKTimeContinuousAtZero(t *testing.T) {
	// Across omega=0 the two branches must agree at tau fixed.
	for _, tau := range []float64{0.1, 0.5, 0.9} {
		left := KTime(tau, -1e-9)
		right := KTime(tau, 1e-9)
		if !floats.EqualWithinAbs(left, right, 1e-6) {
			t.Errorf("KTime discontinuous at omega=0 for tau=%v: %v vs %v", tau, left, right)
		}
	}
}

func TestKFreqMatchesDefinition(t *testing.T) {
	for _, n := range []int{-5, -1, 0, 1, 5} {
		for _, omega := range []float64{-3, -0.1, 0, 0.1, 3} {
			for _, s := range []Statistic{Fermion, Boson} {
				got := KFreq(n, omega, s)
				denom := complex(0, (2*float64(n)+s.sign())*math.Pi) - complex(omega, 0)
				want := -1 / denom
				if cmplx.Abs(got-want) > 1e-14 {
					t.Errorf("KFreq(%d,%v,%v) = %v, want %v", n, omega, s, got, want)
				}
			}
		}
	}
}
