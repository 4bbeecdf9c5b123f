// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sparseir/godlr/dlrio"
)

const imTimeFormat = "dlr::imtime_ops"

// SaveImTimeOps writes ops to g under the field-name contract of
// spec.md §6: "lambda", "rf" (DLR frequencies), "it" (DLR τ-nodes), and
// "cf2it" (the coefficient->value matrix). The value->coefficient LU
// factorization is not persisted — it is refactorized from cf2it on
// load, which costs O(r³) but is negligible at DLR ranks and avoids
// serializing gonum's internal LAPACK-compact pivot representation
// (see DESIGN.md).
func SaveImTimeOps(ops *ImTimeOps, g dlrio.Group) {
	g.SetAttr("format", imTimeFormat)
	g.WriteFloat64("lambda", ops.Lambda())
	g.WriteFloat64Slice("rf", ops.Omega())
	g.WriteFloat64Slice("it", ops.Nodes())

	r := ops.Rank()
	data := make([]float64, 0, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			data = append(data, ops.cf2it.At(i, j))
		}
	}
	g.WriteMatrix("cf2it", r, r, data)
}

// LoadImTimeOps reconstructs an ImTimeOps from a group previously
// written by SaveImTimeOps.
func LoadImTimeOps(g dlrio.Group) (*ImTimeOps, error) {
	if tag, err := g.Attr("format"); err != nil || tag != imTimeFormat {
		return nil, fmt.Errorf("dlr: not an %s group", imTimeFormat)
	}
	lambda, err := g.ReadFloat64("lambda")
	if err != nil {
		return nil, err
	}
	omega, err := g.ReadFloat64Slice("rf")
	if err != nil {
		return nil, err
	}
	tauDLR, err := g.ReadFloat64Slice("it")
	if err != nil {
		return nil, err
	}
	rows, cols, data, err := g.ReadMatrix("cf2it")
	if err != nil {
		return nil, err
	}
	if rows != cols || rows != len(omega) || rows != len(tauDLR) {
		return nil, ErrShape
	}

	cf2it := mat.NewDense(rows, cols, data)
	basis := &Basis{Lambda: lambda, Omega: omega}
	ops := &ImTimeOps{basis: basis, tauDLR: tauDLR, cf2it: cf2it}
	ops.it2cf.Factorize(cf2it)
	if ops.it2cf.Cond() > 1e15 {
		return nil, InternalError("reloaded imaginary-time value->coefficient matrix is singular")
	}
	return ops, nil
}
