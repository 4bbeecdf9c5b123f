// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/dlrio"
)

const imFreqFormat = "dlr::imfreq_ops"

// SaveImFreqOps writes ops to g under spec.md §6's field-name contract:
// "lambda", "statistic" (1=fermion, 0=boson), "rf", "if" (Matsubara
// indices), and "cf2if". As with ImTimeOps the factorization of cf2if
// is rebuilt on load rather than persisted; see SaveImTimeOps.
func SaveImFreqOps(ops *ImFreqOps, g dlrio.Group) {
	g.SetAttr("format", imFreqFormat)
	g.WriteFloat64("lambda", ops.Lambda())
	stat := 1
	if ops.Statistic() == Boson {
		stat = 0
	}
	g.WriteInt("statistic", stat)
	g.WriteFloat64Slice("rf", ops.Omega())
	g.WriteIntSlice("if", ops.Nodes())

	r := ops.Rank()
	n := ops.NumNodes()
	data := make([]complex128, 0, n*r)
	for i := 0; i < n; i++ {
		for j := 0; j < r; j++ {
			data = append(data, ops.cf2if.At(i, j))
		}
	}
	g.WriteComplexMatrix("cf2if", n, r, data)
}

// LoadImFreqOps reconstructs an ImFreqOps from a group previously
// written by SaveImFreqOps.
func LoadImFreqOps(g dlrio.Group) (*ImFreqOps, error) {
	if tag, err := g.Attr("format"); err != nil || tag != imFreqFormat {
		return nil, fmt.Errorf("dlr: not an %s group", imFreqFormat)
	}
	lambda, err := g.ReadFloat64("lambda")
	if err != nil {
		return nil, err
	}
	statInt, err := g.ReadInt("statistic")
	if err != nil {
		return nil, err
	}
	stat := Boson
	if statInt == 1 {
		stat = Fermion
	}
	omega, err := g.ReadFloat64Slice("rf")
	if err != nil {
		return nil, err
	}
	nIF, err := g.ReadIntSlice("if")
	if err != nil {
		return nil, err
	}
	rows, cols, data, err := g.ReadComplexMatrix("cf2if")
	if err != nil {
		return nil, err
	}
	if cols != len(omega) || rows != len(nIF) {
		return nil, ErrShape
	}

	cf2if := mat.NewCDense(rows, cols, data)
	basis := &Basis{Lambda: lambda, Omega: omega}
	ops := &ImFreqOps{basis: basis, stat: stat, nIF: nIF, cf2if: cf2if}
	ops.symBosonic = rows == cols+1
	if ops.symBosonic {
		ops.qr.Factorize(cf2if)
	} else {
		if rows != cols {
			return nil, ErrShape
		}
		ops.lu.Factorize(cf2if)
		if ops.lu.Singular() {
			return nil, InternalError("reloaded imaginary-frequency value->coefficient matrix is singular")
		}
	}
	return ops, nil
}
