// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlrio

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestJSONGroupScalarRoundTrip(t *testing.T) {
	g := NewJSONGroup()
	g.WriteFloat64("lambda", 20.5)
	g.WriteInt("rank", 42)
	g.SetAttr("format", "dlr::test")

	lambda, err := g.ReadFloat64("lambda")
	if err != nil || lambda != 20.5 {
		t.Errorf("lambda: got %v, %v", lambda, err)
	}
	rank, err := g.ReadInt("rank")
	if err != nil || rank != 42 {
		t.Errorf("rank: got %v, %v", rank, err)
	}
	tag, err := g.Attr("format")
	if err != nil || tag != "dlr::test" {
		t.Errorf("format: got %v, %v", tag, err)
	}
}

func TestJSONGroupMatrixRoundTrip(t *testing.T) {
	g := NewJSONGroup()
	data := []float64{1, 2, 3, 4, 5, 6}
	g.WriteMatrix("m", 2, 3, data)

	rows, cols, got, err := g.ReadMatrix("m")
	if err != nil {
		t.Fatalf("ReadMatrix: %v", err)
	}
	if rows != 2 || cols != 3 {
		t.Errorf("dims: got (%d,%d), want (2,3)", rows, cols)
	}
	if !floats.Equal(got, data) {
		t.Errorf("data: got %v, want %v", got, data)
	}
}

func TestJSONGroupComplexMatrixRoundTrip(t *testing.T) {
	g := NewJSONGroup()
	data := []complex128{1 + 2i, 3 - 1i, 0 + 0i, -5 + 5i}
	g.WriteComplexMatrix("c", 2, 2, data)

	rows, cols, got, err := g.ReadComplexMatrix("c")
	if err != nil {
		t.Fatalf("ReadComplexMatrix: %v", err)
	}
	if rows != 2 || cols != 2 {
		t.Errorf("dims: got (%d,%d), want (2,2)", rows, cols)
	}
	for i := range data {
		if got[i] != data[i] {
			t.Errorf("entry %d: got %v, want %v", i, got[i], data[i])
		}
	}
}

func TestJSONGroupMissingFieldErrors(t *testing.T) {
	g := NewJSONGroup()
	if _, err := g.ReadFloat64("nope"); err == nil {
		t.Error("expected error reading missing field")
	}
	if _, err := g.Attr("nope"); err == nil {
		t.Error("expected error reading missing attribute")
	}
}

func TestJSONGroupSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "group.json")

	g := NewJSONGroup()
	g.WriteFloat64("lambda", 7.25)
	g.WriteFloat64Slice("rf", []float64{-1, 0, 1})
	g.SetAttr("format", "dlr::test")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadJSONGroup(path)
	if err != nil {
		t.Fatalf("LoadJSONGroup: %v", err)
	}
	lambda, err := loaded.ReadFloat64("lambda")
	if err != nil || lambda != 7.25 {
		t.Errorf("lambda: got %v, %v", lambda, err)
	}
	rf, err := loaded.ReadFloat64Slice("rf")
	if err != nil || !floats.Equal(rf, []float64{-1, 0, 1}) {
		t.Errorf("rf: got %v, %v", rf, err)
	}
}
