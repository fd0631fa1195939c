// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// heap.go — the Heap type, key projections, constructors and pure accessors.
//
// Design contract (strict):
//   • The heap owns its backing slice exclusively; query methods return
//     copies, never the live buffer.
//   • Single-threaded by contract: no locking, no suspension points. The
//     only concurrency concern is re-entrancy, handled by the mutation
//     guard (guard.go).
//   • Keys are float64: the NaN policy is only expressible on floats, and
//     every ordering the visualizer needs projects onto the real line.

package heap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number constrains element types that act as their own keys.
type Number interface {
	constraints.Integer | constraints.Float
}

// KeyFunc projects an element onto its comparison key. A returned error marks
// the element unkeyable and surfaces as ErrInvalidKey with context attached.
type KeyFunc[T any] func(T) (float64, error)

// NumericKey returns the identity projection for numeric element types.
// Every call yields the same underlying function, so heaps built by separate
// NewNumeric calls stay Merge-compatible.
// Complexity: O(1) per call.
func NumericKey[T Number]() KeyFunc[T] {
	return numericIdent[T]
}

func numericIdent[T Number](v T) (float64, error) {
	return float64(v), nil
}

// KeyBy adapts an infallible projection to a KeyFunc. Panics on nil.
// Complexity: O(1) per call.
func KeyBy[T any](fn func(T) float64) KeyFunc[T] {
	if fn == nil {
		panic(panicNilKeyBy)
	}
	return func(v T) (float64, error) {
		return fn(v), nil
	}
}

// Heap is an array-backed complete binary tree: index 0 is the root, the
// children of i sit at 2i+1 and 2i+2, the parent of i at (i-1)/2. Every
// structural mutation maintains the invariant that each parent is
// preferred-or-equal to its children under the configured mode, key
// projection and NaN policy, and reports itself to the registered observer
// one comparison and one exchange at a time.
//
// The zero value is not usable; construct with New or NewNumeric.
type Heap[T comparable] struct {
	data        []T        // tree layout, exclusively owned
	mode        Mode       // which key dominates
	key         KeyFunc[T] // element → comparison key
	nanPolicy   NaNPolicy  // NaN normalization
	busy        bool       // mutation guard flag
	ops         uint64     // completed mutating operations
	verifyEvery uint64     // sampled self-check period, 0 = off
	observer    Observer   // notification sink, may be nil
}

// New constructs a heap from the given options. A key projection is
// mandatory: pass WithKeyFunc, or use NewNumeric for self-keyed element
// types. New panics on a missing key projection and on a WithItems batch
// whose keys cannot be computed — both are programmer errors, surfaced at
// construction like invalid option arguments.
//
// With an initial batch the heap is built by one linear rebuild, observable
// through the registered observer and counted as one operation.
// Complexity: O(len(opts)) plus O(n) for an n-element initial batch.
func New[T comparable](opts ...Option[T]) *Heap[T] {
	// 1) Deterministic defaults, then options in order (last wins).
	h := &Heap[T]{
		mode:        DefaultMode,
		nanPolicy:   DefaultNaNPolicy,
		verifyEvery: DefaultVerifyEvery,
	}
	for _, opt := range opts {
		opt(h)
	}

	// 2) A heap without a key projection cannot compare anything.
	if h.key == nil {
		panic(panicNoKeyFunc)
	}

	// 3) Establish the invariant over the initial batch, if any.
	if len(h.data) > 0 {
		if err := h.Heapify(); err != nil {
			panic(fmt.Sprintf("heap: initial batch: %v", err))
		}
	}

	return h
}

// NewNumeric constructs a heap whose elements are their own keys.
// Options may still override any setting, including the key projection.
// Complexity: as New.
func NewNumeric[T Number](opts ...Option[T]) *Heap[T] {
	return New(append([]Option[T]{WithKeyFunc(NumericKey[T]())}, opts...)...)
}

// Len reports the number of stored elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Peek returns the root element without mutating the heap; ok is false on an
// empty heap. Pure read: no guard, no events, no operation counted.
// Complexity: O(1).
func (h *Heap[T]) Peek() (v T, ok bool) {
	if len(h.data) == 0 {
		return v, false
	}

	return h.data[0], true
}

// ToSlice returns a copy of the storage in tree layout (level order).
// Complexity: O(n).
func (h *Heap[T]) ToSlice() []T {
	return append([]T(nil), h.data...)
}

// Mode reports the current order mode. Complexity: O(1).
func (h *Heap[T]) Mode() Mode { return h.mode }

// NaNPolicy reports the configured NaN policy. Complexity: O(1).
func (h *Heap[T]) NaNPolicy() NaNPolicy { return h.nanPolicy }

// Operations reports the number of completed mutating operations.
// Complexity: O(1).
func (h *Heap[T]) Operations() uint64 { return h.ops }

// VerifyEvery reports the sampled self-check period (0 = disabled).
// Complexity: O(1).
func (h *Heap[T]) VerifyEvery() uint64 { return h.verifyEvery }

// SetObserver replaces the notification sink; nil detaches it.
// Complexity: O(1).
func (h *Heap[T]) SetObserver(o Observer) { h.observer = o }

// Clone returns an independent heap with the same configuration and
// contents. The observer is NOT carried over and the operation counter
// starts at zero: a clone is a fresh heap that happens to share history
// with its source, not a recording of it.
// Complexity: O(n).
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		data:        append([]T(nil), h.data...),
		mode:        h.mode,
		key:         h.key,
		nanPolicy:   h.nanPolicy,
		verifyEvery: h.verifyEvery,
	}
}

// String renders the heap as "<MinHeap [1 3 5]>" (or MaxHeap), with the
// storage in tree layout. Intended for logs and debugging, not parsing.
func (h *Heap[T]) String() string {
	label := "MinHeap"
	if h.mode == MaxHeap {
		label = "MaxHeap"
	}

	return fmt.Sprintf("<%s %v>", label, h.data)
}

// snapshot captures the storage for rollback on a failed mutation.
// Complexity: O(n).
func (h *Heap[T]) snapshot() []T {
	return append([]T(nil), h.data...)
}
