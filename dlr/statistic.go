// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlr constructs and operates on the Discrete Lehmann
// Representation (DLR) of imaginary-time Green's functions: basis
// construction (NewBasis), the imaginary-time and imaginary-frequency
// transform operators (ImTimeOps, ImFreqOps), and the higher-level
// convolution/Dyson/reflection operations built on top of them.
package dlr

import "github.com/sparseir/godlr/kernel"

// Statistic selects the fermionic or bosonic sign convention, s=1 or s=0
// in the Matsubara index 2n+s.
type Statistic = kernel.Statistic

// Fermion and Boson are the two supported statistics.
const (
	Fermion = kernel.Fermion
	Boson   = kernel.Boson
)
