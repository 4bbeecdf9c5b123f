// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mrhs holds the small "multi right-hand-side" shape helpers the
// transform operators use: matrix-valued Green's functions carry a
// leading DLR axis of size r and arbitrary trailing orbital axes, which
// callers flatten into the trailing (column) axis of a *mat.Dense/*mat.CDense
// before calling into the operators (spec.md §4.5, §9). This package only
// validates that contract; the actual reshape is "free" because mat.Dense
// already stores data row-major with a stride, so no copy is needed to
// treat a flattened multi-RHS matrix as r×(N1*N2*...).
package mrhs

// CheckLeadingDim panics if got != want, reporting a caller contract
// violation per spec.md §4.5 ("leading dimension of the input not equal
// to r").
func CheckLeadingDim(want, got int) {
	if got != want {
		panic(leadingDimError{want: want, got: got})
	}
}

type leadingDimError struct {
	want, got int
}

func (e leadingDimError) Error() string {
	return "mrhs: leading dimension mismatch"
}

// Dims reports the expected and actual leading dimensions, for callers
// that recover the panic value.
func (e leadingDimError) Dims() (want, got int) { return e.want, e.got }
