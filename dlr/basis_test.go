// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"sort"
	"testing"
)

func TestNewBasisRejectsBadParams(t *testing.T) {
	if _, err := NewBasis(-1, 1e-10, false, 0); err != ErrLambda {
		t.Errorf("lambda<=0: got err %v, want ErrLambda", err)
	}
	if _, err := NewBasis(20, 0, false, 0); err != ErrEps {
		t.Errorf("eps<=0: got err %v, want ErrEps", err)
	}
	if _, err := NewBasis(20, 1.5, false, 0); err != ErrEps {
		t.Errorf("eps>=1: got err %v, want ErrEps", err)
	}
	if _, err := NewBasis(20, 1e-10, false, -1); err != ErrOrder {
		t.Errorf("order<0: got err %v, want ErrOrder", err)
	}
}

func TestNewBasisFrequenciesSortedAndBounded(t *testing.T) {
	b, err := NewBasis(20, 1e-8, false, 0)
	if err != nil {
		t.Fatalf("NewBasis: %v", err)
	}
	if b.Rank() == 0 {
		t.Fatal("rank is zero")
	}
	if !sort.Float64sAreSorted(b.Omega) {
		t.Error("Omega is not sorted ascending")
	}
	for _, w := range b.Omega {
		if w < -20-1e-9 || w > 20+1e-9 {
			t.Errorf("omega=%g outside [-Lambda,Lambda]", w)
		}
	}
}

func TestNewBasisRankGrowsWithLambda(t *testing.T) {
	small, err := NewBasis(10, 1e-8, false, 0)
	if err != nil {
		t.Fatalf("NewBasis(10): %v", err)
	}
	large, err := NewBasis(100, 1e-8, false, 0)
	if err != nil {
		t.Fatalf("NewBasis(100): %v", err)
	}
	if large.Rank() <= small.Rank() {
		t.Errorf("rank did not grow with Lambda: r(10)=%d r(100)=%d", small.Rank(), large.Rank())
	}
}

// TestNewBasisAtSpecScenarioScale is end-to-end scenario 1: build DLR
// frequencies for Λ=1000, ε=1e-10 unsymmetrized. Expect 30≤r≤80, the
// first and last ω within [-1000,1000], and both signs present.
func TestNewBasisAtSpecScenarioScale(t *testing.T) {
	b, err := NewBasis(1000, 1e-10, false, 0)
	if err != nil {
		t.Fatalf("NewBasis: %v", err)
	}
	r := b.Rank()
	if r < 30 || r > 80 {
		t.Errorf("rank=%d, want 30<=r<=80", r)
	}
	if b.Omega[0] < -1000 || b.Omega[r-1] > 1000 {
		t.Errorf("omega range [%g,%g] outside [-1000,1000]", b.Omega[0], b.Omega[r-1])
	}
	var hasNeg, hasPos bool
	for _, w := range b.Omega {
		if w < 0 {
			hasNeg = true
		}
		if w > 0 {
			hasPos = true
		}
	}
	if !hasNeg || !hasPos {
		t.Error("expected both signs of omega present")
	}
}

func TestNewBasisSymmetrizedSameOrderOfMagnitudeRank(t *testing.T) {
	plain, err := NewBasis(20, 1e-8, false, 0)
	if err != nil {
		t.Fatalf("NewBasis plain: %v", err)
	}
	sym, err := NewBasis(20, 1e-8, true, 0)
	if err != nil {
		t.Fatalf("NewBasis symmetrized: %v", err)
	}
	ratio := float64(sym.Rank()) / float64(plain.Rank())
	if ratio < 0.5 || ratio > 2 {
		t.Errorf("symmetrized rank %d far from plain rank %d", sym.Rank(), plain.Rank())
	}
}
