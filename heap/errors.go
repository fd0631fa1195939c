// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// errors.go — sentinel errors for the heap package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Call sites attach context via `%w` (operation name, offending value).
//   • Expected-empty conditions (Pop/Peek on an empty heap) are NOT errors;
//     they surface as (zero, false). Errors are reserved for invalid keys,
//     re-entrancy, incompatible merges and invariant breakage.
//
// AI-Hints (practical guidance for implementers and LLMs):
//   • Branch with errors.Is in tests and production code; never match strings.
//   • ErrInvalidKey covers both a failing key projection and a NaN key under
//     the Raise policy — one class, two origins, both wrapped with context.
//   • ErrInvariantViolation is fail-fast: it signals a latent sift bug, not a
//     user mistake. Do not catch-and-continue in production use.

package heap

import "errors"

// ErrInvalidKey indicates that the key projection failed for an element, or
// produced a NaN while the heap's policy is NaNRaise.
// Classification: Validation error (element keys).
// Typical origins: Push/PushPop/Replace eager checks, any comparison inside
// sift walks, NLargest precomputation.
// Usage: if errors.Is(err, ErrInvalidKey) { /* reject the element */ }.
var ErrInvalidKey = errors.New("heap: invalid key")

// ErrReentrantMutation indicates that a mutating operation was invoked while
// another mutation was already in flight — almost always a notification sink
// calling back into the heap mid-operation.
// Classification: Programming error (caller or sink).
// Usage: if errors.Is(err, ErrReentrantMutation) { /* fix the sink */ }.
var ErrReentrantMutation = errors.New("heap: re-entrant mutation")

// ErrEmptyHeap indicates that Replace was called on an empty heap, where no
// root exists to exchange. Callers should Push instead.
// Usage: if errors.Is(err, ErrEmptyHeap) { /* fall back to Push */ }.
var ErrEmptyHeap = errors.New("heap: empty heap")

// ErrIncompatibleHeaps indicates that Merge was attempted between heaps whose
// configuration differs (order mode, key projection identity, or NaN policy).
// No partial merge occurs.
// Usage: if errors.Is(err, ErrIncompatibleHeaps) { /* align configs first */ }.
var ErrIncompatibleHeaps = errors.New("heap: incompatible heaps")

// ErrInvariantViolation indicates that a full invariant scan found a parent
// that does not dominate one of its children. Raised only by Validate and by
// the sampled self-check wired into the mutation guard.
// Classification: Internal consistency failure (fail-fast).
// Usage: if errors.Is(err, ErrInvariantViolation) { /* report a bug */ }.
var ErrInvariantViolation = errors.New("heap: invariant violated")

// ErrInvalidMode indicates that SetMode received a Mode value outside the
// {MinHeap, MaxHeap} enumeration. Option constructors panic on the same
// input instead; SetMode is a runtime path and returns an error.
// Usage: if errors.Is(err, ErrInvalidMode) { /* pass MinHeap or MaxHeap */ }.
var ErrInvalidMode = errors.New("heap: invalid mode")
