// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// options.go — order mode, NaN policy and functional options.
//
// Contract (strict):
//   • Options are functional (type Option[T] func(*Heap[T])).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     heap operations themselves never panic at runtime.
//   • Defaults are deterministic and documented; no globals.
//   • Options are applied in order by New; later options override earlier.
//
// AI-Hints:
//   • Every heap needs a key projection: pass WithKeyFunc, or construct via
//     NewNumeric for element types that are their own keys.
//   • WithVerifyEvery(N) arms the sampled self-check, a fail-fast backstop
//     for sift regressions. Keep N small in tests, 0 (off) on hot paths.
//   • WithItems seeds the heap and triggers one linear rebuild inside New.

package heap

import "strconv"

// Mode selects which side of a comparison is preferred at the root.
type Mode uint8

const (
	// MinHeap prefers smaller keys: the root holds a minimal element.
	MinHeap Mode = iota
	// MaxHeap prefers larger keys: the root holds a maximal element.
	MaxHeap
)

// String returns "min" or "max"; unknown values render as "mode(N)".
func (m Mode) String() string {
	switch m {
	case MinHeap:
		return "min"
	case MaxHeap:
		return "max"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// NaNPolicy governs how a NaN-valued key is normalized before comparison.
type NaNPolicy uint8

const (
	// NaNRaise rejects NaN keys with ErrInvalidKey.
	NaNRaise NaNPolicy = iota
	// NaNCoerceMin maps NaN to -Inf: most preferred under MinHeap,
	// least preferred under MaxHeap.
	NaNCoerceMin
	// NaNCoerceMax maps NaN to +Inf: least preferred under MinHeap,
	// most preferred under MaxHeap.
	NaNCoerceMax
)

// String returns "raise", "min" or "max"; unknown values render as "nan(N)".
func (p NaNPolicy) String() string {
	switch p {
	case NaNRaise:
		return "raise"
	case NaNCoerceMin:
		return "min"
	case NaNCoerceMax:
		return "max"
	default:
		return "nan(" + strconv.Itoa(int(p)) + ")"
	}
}

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultMode orders the heap as a min-heap.
	DefaultMode = MinHeap
	// DefaultNaNPolicy rejects NaN keys outright.
	DefaultNaNPolicy = NaNRaise
	// DefaultVerifyEvery disables the sampled self-check.
	DefaultVerifyEvery uint64 = 0
)

// Panic messages for option misuse (programmer errors, surfaced early).
const (
	panicNilKeyFunc  = "heap: WithKeyFunc(nil)"
	panicNilKeyBy    = "heap: KeyBy(nil)"
	panicNilObserver = "heap: WithObserver(nil)"
	panicBadMode     = "heap: WithMode: unknown Mode"
	panicBadNaN      = "heap: WithNaNPolicy: unknown NaNPolicy"
	panicNoKeyFunc   = "heap: New: no key projection; use WithKeyFunc or NewNumeric"
)

// Option customizes a Heap during construction by New.
// Complexity: applying N options costs O(N) time, O(1) space
// (WithItems additionally copies its batch).
type Option[T comparable] func(*Heap[T])

// WithMode sets the order mode. Panics on values outside {MinHeap, MaxHeap}.
// Complexity: O(1).
func WithMode[T comparable](m Mode) Option[T] {
	if m != MinHeap && m != MaxHeap {
		// Fail fast: option constructors validate and panic.
		panic(panicBadMode)
	}
	return func(h *Heap[T]) {
		h.mode = m
	}
}

// WithKeyFunc sets the key projection used by every comparison.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithKeyFunc[T comparable](fn KeyFunc[T]) Option[T] {
	if fn == nil {
		panic(panicNilKeyFunc)
	}
	return func(h *Heap[T]) {
		h.key = fn
	}
}

// WithNaNPolicy sets the NaN normalization policy.
// Panics on values outside the NaNPolicy enumeration.
// Complexity: O(1).
func WithNaNPolicy[T comparable](p NaNPolicy) Option[T] {
	if p != NaNRaise && p != NaNCoerceMin && p != NaNCoerceMax {
		panic(panicBadNaN)
	}
	return func(h *Heap[T]) {
		h.nanPolicy = p
	}
}

// WithVerifyEvery arms the sampled invariant check: after every n-th
// completed mutating operation the full invariant is scanned and a failure
// surfaces as ErrInvariantViolation from that operation. n == 0 disables
// sampling (the default).
// Complexity: O(1) here; each triggered scan costs O(size) keyed comparisons.
func WithVerifyEvery[T comparable](n uint64) Option[T] {
	return func(h *Heap[T]) {
		h.verifyEvery = n
	}
}

// WithObserver registers the notification sink receiving every structural
// event. Panics on nil; use SetObserver(nil) to detach later.
// Complexity: O(1).
func WithObserver[T comparable](o Observer) Option[T] {
	if o == nil {
		panic(panicNilObserver)
	}
	return func(h *Heap[T]) {
		h.observer = o
	}
}

// WithItems seeds the heap with an initial batch. New copies the batch and
// runs one linear rebuild over it, so construction from n items costs O(n),
// not O(n log n). A batch whose keys cannot be computed panics inside New —
// the same class of programmer error as a nil key projection.
// Complexity: O(len(items)) copy at option time.
func WithItems[T comparable](items ...T) Option[T] {
	return func(h *Heap[T]) {
		h.data = append(h.data[:0], items...)
	}
}
