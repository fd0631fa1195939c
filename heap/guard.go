// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// guard.go — the scoped mutation guard and the sampled self-check.
//
// Every mutating operation follows one shape:
//
//	func (h *Heap[T]) Op(...) (err error) {
//	    if err = h.acquire(opOp); err != nil {
//	        return err
//	    }
//	    defer h.release(&err)
//	    ... body ...
//	}
//
// acquire rejects re-entrant calls (a notification sink calling back into
// the heap mid-mutation) before any state changes. release runs on every
// exit path: it frees the guard, counts the operation, and on the sampling
// boundary scans the full invariant, promoting a violation into the
// operation's error only when the body itself succeeded.

package heap

import "fmt"

// Operation names used in guard errors, matching the public method names.
const (
	opPush     = "Push"
	opPop      = "Pop"
	opClear    = "Clear"
	opExtend   = "Extend"
	opHeapify  = "Heapify"
	opToggle   = "ToggleMode"
	opSetMode  = "SetMode"
	opRemove   = "Remove"
	opRemoveAt = "RemoveAt"
	opPushPop  = "PushPop"
	opReplace  = "Replace"
	opMerge    = "Merge"
)

// acquire claims the mutation guard for the named operation.
// Fails with ErrReentrantMutation when a mutation is already in flight;
// no state is touched in that case, so the outer operation proceeds intact.
// Complexity: O(1).
func (h *Heap[T]) acquire(op string) error {
	if h.busy {
		return fmt.Errorf("%s: %w", op, ErrReentrantMutation)
	}
	h.busy = true

	return nil
}

// release frees the guard, counts the completed operation and runs the
// sampled invariant scan. The scan fires when verifyEvery > 0 and the
// operation counter lands on a sampling boundary; its failure is assigned
// to *err only if the operation did not already fail on its own.
// Must be deferred with the operation's named error.
// Complexity: O(1), plus O(n) keyed comparisons on sampling boundaries.
func (h *Heap[T]) release(err *error) {
	h.busy = false
	h.ops++
	if h.verifyEvery > 0 && h.ops%h.verifyEvery == 0 {
		if verr := h.Validate(); verr != nil && *err == nil {
			*err = verr
		}
	}
}
