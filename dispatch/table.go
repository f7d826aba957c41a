// SPDX-License-Identifier: MIT
package dispatch

import (
	"fmt"

	"github.com/katalvlaran/hepvec/mathlib"
)

// Key constrains table keys to comparable signature types that can describe
// themselves in error messages.
type Key interface {
	comparable
	fmt.Stringer
}

// entry pairs a kernel with its declared result description. Kernels do not
// self-describe their output kinds, so the description is supplied at
// registration and handed back verbatim on resolution.
type entry[F any, R any] struct {
	kernel  F
	returns R
}

// Table is the per-operation dispatch map from a coordinate-kind signature
// to (kernel, declared result). K is the signature type, F the kernel
// function type, R the result description (coords.ScalarKind for scalar
// kernels, per-axis kind structs for vector-valued ones).
//
// Lifecycle: Register during package init only; read-only thereafter.
// Lookups never mutate, so a fully built Table is safe for concurrent use.
type Table[K Key, F any, R any] struct {
	op      string
	entries map[K]entry[F, R]
}

// NewTable creates an empty table for the operation named op. The name is
// used verbatim in resolution errors ("planar.dot", "lorentz.boostZ", ...).
func NewTable[K Key, F any, R any](op string) *Table[K, F, R] {
	return &Table[K, F, R]{
		op:      op,
		entries: make(map[K]entry[F, R]),
	}
}

// Op returns the operation name the table was created with.
func (t *Table[K, F, R]) Op() string { return t.op }

// Register adds a kernel under key with its declared result description.
// Double registration is an init-time programmer error and panics: the
// generation pass must never overwrite a hand-written specialization.
func (t *Table[K, F, R]) Register(key K, kernel F, returns R) {
	if _, dup := t.entries[key]; dup {
		panic(fmt.Sprintf("dispatch: %s: duplicate registration for signature %s", t.op, key))
	}
	t.entries[key] = entry[F, R]{kernel: kernel, returns: returns}
}

// Resolve looks up the kernel and declared result for key. Exact match
// only; a miss returns an error wrapping ErrUnsupportedSignature that names
// the operation and the signature.
func (t *Table[K, F, R]) Resolve(key K) (F, R, error) {
	e, ok := t.entries[key]
	if !ok {
		var zeroF F
		var zeroR R

		return zeroF, zeroR, fmt.Errorf("%w: operation %q has no kernel for signature [%s]",
			ErrUnsupportedSignature, t.op, key)
	}

	return e.kernel, e.returns, nil
}

// Kernel resolves key and panics on a miss. It exists for init-time table
// generation, where one operation's wrappers are composed from another
// operation's already-registered kernels and a miss is a registration-order
// bug.
func (t *Table[K, F, R]) Kernel(key K) (F, R) {
	fn, ret, err := t.Resolve(key)
	if err != nil {
		panic(err)
	}

	return fn, ret
}

// Has reports whether key is registered. Generation passes use it to skip
// combinations already covered by a native kernel or a hand-written
// specialization.
func (t *Table[K, F, R]) Has(key K) bool {
	_, ok := t.entries[key]

	return ok
}

// Len reports the number of registered signatures.
func (t *Table[K, F, R]) Len() int { return len(t.entries) }

// Keys returns every registered signature, in no particular order. Intended
// for exhaustiveness checks; fresh slice per call.
func (t *Table[K, F, R]) Keys() []K {
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}

	return keys
}

// SharedLib verifies both operands of a binary operation use the same math
// backend and returns it. Differing backends yield ErrBackendMismatch — the
// caller decides which operand to convert, never this layer.
func SharedLib(a, b mathlib.Lib) (mathlib.Lib, error) {
	if a != b {
		return nil, fmt.Errorf("%w: %T vs %T", ErrBackendMismatch, a, b)
	}

	return a, nil
}
