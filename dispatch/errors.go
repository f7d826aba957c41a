// SPDX-License-Identifier: MIT
// Package dispatch: sentinel error set. Resolution and backend checks MUST
// return these sentinels (wrapped with operation/signature context) and
// callers MUST match them via errors.Is. Panics are reserved for init-time
// registration bugs.

package dispatch

import "errors"

var (
	// ErrUnsupportedSignature is returned when a coordinate-kind combination
	// has no entry in an operation's table. The wrapped message names the
	// operation and the exact combination.
	ErrUnsupportedSignature = errors.New("dispatch: unsupported coordinate signature")

	// ErrBackendMismatch is returned when a binary operation is invoked on
	// two operands whose math backends differ. Backends are never silently
	// coerced: mixing, say, single- and double-precision evaluation would
	// silently change results.
	ErrBackendMismatch = errors.New("dispatch: operands use different math backends")
)
