// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlrio persists DLR operators to disk. Upstream DLR
// implementations use HDF5 groups keyed by a fixed set of field names
// (spec.md §6); no HDF5 binding is available in this module's
// dependency pack, so Group is instead backed by a single JSON document
// whose top-level keys are exactly those field names, under a
// "format" tag identifying which operator it holds.
package dlrio

import (
	"encoding/json"
	"fmt"
	"os"
)

// Group is a named bag of fields, modeled after an HDF5 group: each
// field is written and read by name, plus a single string attribute
// (the format tag) identifying the group's schema.
type Group interface {
	WriteFloat64(name string, v float64)
	WriteInt(name string, v int)
	WriteFloat64Slice(name string, v []float64)
	WriteIntSlice(name string, v []int)
	WriteMatrix(name string, rows, cols int, data []float64)
	WriteComplexMatrix(name string, rows, cols int, data []complex128)

	ReadFloat64(name string) (float64, error)
	ReadInt(name string) (int, error)
	ReadFloat64Slice(name string) ([]float64, error)
	ReadIntSlice(name string) ([]int, error)
	ReadMatrix(name string) (rows, cols int, data []float64, err error)
	ReadComplexMatrix(name string) (rows, cols int, data []complex128, err error)

	SetAttr(name, value string)
	Attr(name string) (string, error)
}

// matrixField is the JSON-serializable shape WriteMatrix/ReadMatrix
// round-trip through, carrying the row/column dims alongside the
// row-major data that gonum's mat.Dense also stores internally.
type matrixField struct {
	Rows, Cols int
	Data       []float64
}

// complexMatrixField stores a complex matrix as parallel real/imag arrays
// since encoding/json has no native complex128 support.
type complexMatrixField struct {
	Rows, Cols int
	Re, Im     []float64
}

// JSONGroup is the concrete, file-backed Group implementation. The zero
// value is a valid, empty group ready for writing.
type JSONGroup struct {
	Fields map[string]json.RawMessage
	Attrs  map[string]string
}

// NewJSONGroup returns an empty group.
func NewJSONGroup() *JSONGroup {
	return &JSONGroup{Fields: map[string]json.RawMessage{}, Attrs: map[string]string{}}
}

// LoadJSONGroup reads a group previously written by Save from path.
func LoadJSONGroup(path string) (*JSONGroup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Fields map[string]json.RawMessage
		Attrs  map[string]string
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Fields == nil {
		doc.Fields = map[string]json.RawMessage{}
	}
	if doc.Attrs == nil {
		doc.Attrs = map[string]string{}
	}
	return &JSONGroup{Fields: doc.Fields, Attrs: doc.Attrs}, nil
}

// Save writes the group to path as a single JSON document.
func (g *JSONGroup) Save(path string) error {
	doc := struct {
		Fields map[string]json.RawMessage
		Attrs  map[string]string
	}{g.Fields, g.Attrs}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (g *JSONGroup) write(name string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("dlrio: marshal field %q: %v", name, err))
	}
	g.Fields[name] = data
}

func (g *JSONGroup) read(name string, v any) error {
	data, ok := g.Fields[name]
	if !ok {
		return fmt.Errorf("dlrio: missing field %q", name)
	}
	return json.Unmarshal(data, v)
}

func (g *JSONGroup) WriteFloat64(name string, v float64)         { g.write(name, v) }
func (g *JSONGroup) WriteInt(name string, v int)                 { g.write(name, v) }
func (g *JSONGroup) WriteFloat64Slice(name string, v []float64)  { g.write(name, v) }
func (g *JSONGroup) WriteIntSlice(name string, v []int)          { g.write(name, v) }

func (g *JSONGroup) WriteMatrix(name string, rows, cols int, data []float64) {
	g.write(name, matrixField{Rows: rows, Cols: cols, Data: data})
}

func (g *JSONGroup) WriteComplexMatrix(name string, rows, cols int, data []complex128) {
	re := make([]float64, len(data))
	im := make([]float64, len(data))
	for i, v := range data {
		re[i], im[i] = real(v), imag(v)
	}
	g.write(name, complexMatrixField{Rows: rows, Cols: cols, Re: re, Im: im})
}

func (g *JSONGroup) ReadFloat64(name string) (float64, error) {
	var v float64
	err := g.read(name, &v)
	return v, err
}

func (g *JSONGroup) ReadInt(name string) (int, error) {
	var v int
	err := g.read(name, &v)
	return v, err
}

func (g *JSONGroup) ReadFloat64Slice(name string) ([]float64, error) {
	var v []float64
	err := g.read(name, &v)
	return v, err
}

func (g *JSONGroup) ReadIntSlice(name string) ([]int, error) {
	var v []int
	err := g.read(name, &v)
	return v, err
}

func (g *JSONGroup) ReadMatrix(name string) (rows, cols int, data []float64, err error) {
	var m matrixField
	if err = g.read(name, &m); err != nil {
		return 0, 0, nil, err
	}
	return m.Rows, m.Cols, m.Data, nil
}

func (g *JSONGroup) ReadComplexMatrix(name string) (rows, cols int, data []complex128, err error) {
	var m complexMatrixField
	if err = g.read(name, &m); err != nil {
		return 0, 0, nil, err
	}
	data = make([]complex128, len(m.Re))
	for i := range data {
		data[i] = complex(m.Re[i], m.Im[i])
	}
	return m.Rows, m.Cols, data, nil
}

func (g *JSONGroup) SetAttr(name, value string) { g.Attrs[name] = value }

func (g *JSONGroup) Attr(name string) (string, error) {
	v, ok := g.Attrs[name]
	if !ok {
		return "", fmt.Errorf("dlrio: missing attribute %q", name)
	}
	return v, nil
}
