// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/dlrio"
)

func TestImTimeOpsSaveLoadRoundTrip(t *testing.T) {
	basis := buildTestBasis(t)
	ops := NewImTimeOps(basis)

	g := dlrio.NewJSONGroup()
	SaveImTimeOps(ops, g)

	loaded, err := LoadImTimeOps(g)
	if err != nil {
		t.Fatalf("LoadImTimeOps: %v", err)
	}
	if loaded.Rank() != ops.Rank() {
		t.Fatalf("rank mismatch: got %d want %d", loaded.Rank(), ops.Rank())
	}
	if !floats.Equal(loaded.Omega(), ops.Omega()) {
		t.Errorf("omega mismatch")
	}
	if !floats.Equal(loaded.Nodes(), ops.Nodes()) {
		t.Errorf("nodes mismatch")
	}

	c := mat.NewDense(ops.Rank(), 1, nil)
	for i := 0; i < ops.Rank(); i++ {
		c.Set(i, 0, 1/float64(i+1))
	}
	want := ops.Coefs2Vals(1, c)
	got := loaded.Coefs2Vals(1, c)
	for i := 0; i < ops.Rank(); i++ {
		if !floats.EqualWithinAbs(want.At(i, 0), got.At(i, 0), 1e-9) {
			t.Errorf("row %d: got %g want %g", i, got.At(i, 0), want.At(i, 0))
		}
	}
}

func TestLoadImTimeOpsRejectsWrongFormat(t *testing.T) {
	g := dlrio.NewJSONGroup()
	g.SetAttr("format", "dlr::imfreq_ops")
	if _, err := LoadImTimeOps(g); err == nil {
		t.Error("expected error loading wrong format tag")
	}
}
