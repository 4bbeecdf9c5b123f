// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel evaluates the analytic-continuation kernel K(τ,ω) and its
// Matsubara-frequency counterpart K(iω_n,ω). Both are pure, allocation-free
// scalar functions; every branch is chosen so that neither the numerator
// nor the denominator can overflow for any finite ω.
package kernel

import (
	"math"
)

// Statistic selects the sign convention in the Matsubara index 2n+s.
type Statistic int

const (
	// Fermion is the s=1 statistic.
	Fermion Statistic = iota
	// Boson is the s=0 statistic.
	Boson
)

func (s Statistic) sign() float64 {
	if s == Fermion {
		return 1
	}
	return 0
}

func (s Statistic) String() string {
	if s == Fermion {
		return "fermion"
	}
	return "boson"
}

// KTime evaluates the imaginary-time kernel at relative time tau ∈ [-1,1]
// and real frequency omega. The three branches mirror spec.md §4.1: the
// tau<0 half-plane is folded onto tau>=0 via K(-τ,-ω) = K(τ,ω), and the
// τ>=0 half is split on the sign of ω so that exp() never receives an
// argument that can overflow.
func KTime(tau, omega float64) float64 {
	if tau < 0 {
		return KTime(-tau, -omega)
	}
	if omega >= 0 {
		return math.Exp(-tau*omega) / (1 + math.Exp(-omega))
	}
	return math.Exp((1-tau)*omega) / (1 + math.Exp(omega))
}

// KFreq evaluates the Matsubara-frequency kernel K(n,ω,s) = -1/((2n+s)πi - ω)
// for integer n and statistic s.
func KFreq(n int, omega float64, s Statistic) complex128 {
	denom := complex(-omega, (2*float64(n)+s.sign())*math.Pi)
	return -1 / denom
}
