// Copyright ©2026 The godlr Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlr

import "log"

// Error represents a caller contract violation: a bad parameter or a
// shape mismatch at a call site. Following mat64's Error convention
// (see the teacher's mat64/matrix.go), these are typed string constants
// so callers can compare against them directly. NewBasis, DysonSolve,
// DysonSolveBlock and the Load functions return them as error values;
// ConvolutionTensor.Matrix and BlockMatrix panic with ErrShape.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrLambda reports a non-positive Λ.
	ErrLambda = Error("dlr: lambda must be positive")
	// ErrEps reports an ε outside (0,1).
	ErrEps = Error("dlr: eps must be in (0,1)")
	// ErrOrder reports a negative panel order (0 selects the default).
	ErrOrder = Error("dlr: panel order must not be negative")
	// ErrShape reports any other matrix shape mismatch at a call site,
	// including a value/coefficient leading dimension that does not
	// equal the basis rank r (see internal/mrhs.CheckLeadingDim, which
	// panics its own typed error for that specific case).
	ErrShape = Error("dlr: shape mismatch")
)

// InternalError signals a library bug rather than a caller error: PivRGS
// produced a degenerate node set and the LU/QR factorization of a
// value<->coefficient matrix that should have been well-conditioned
// reports singularity (spec.md §7, "Unreachable").
type InternalError string

func (e InternalError) Error() string { return "dlr: internal error: " + string(e) }

// Logger is the diagnostic sink for numerical warnings (spec.md §7): ε at
// or below 1e-14, or an extreme Λ. Construction proceeds regardless; the
// caller may not achieve the requested accuracy.
type Logger interface {
	Printf(format string, args ...any)
}

// stdLogger wraps the standard library log package, exactly as
// xtaci-kcptun's client/server main.go configure and use log.Printf for
// their own diagnostics rather than pulling in a structured-logging
// dependency.
type stdLogger struct{}

func (stdLogger) Printf(format string, args ...any) { log.Printf(format, args...) }

// DefaultLogger receives the warnings emitted by NewBasis. Assign another
// Logger to redirect them, or nil to discard them.
var DefaultLogger Logger = stdLogger{}

func warnf(format string, args ...any) {
	if DefaultLogger != nil {
		DefaultLogger.Printf(format, args...)
	}
}
