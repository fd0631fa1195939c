// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// ops.go — the primary mutating operations: Push, Pop, Clear, Extend,
// Heapify, ToggleMode, SetMode, Drain.
//
// Failure atomicity: Push, Pop and Extend snapshot the storage before their
// risky portion and restore it verbatim when any error propagates from key
// computation or a sift walk, then return that original error. Clear has no
// fallible step after the guard, so its rollback is the trivial one. Callers
// observe full success or full no-op, never a half-mutated heap.

package heap

import "fmt"

// Push inserts one element. The element's key is validated eagerly, before
// any mutation; an unkeyable element fails with ErrInvalidKey and leaves the
// heap untouched. Event order: insert_start, insert (post-append), the sift's
// compare/swap stream, push_done — or insert_error on any failure.
// Complexity: O(log n) keyed comparisons, O(n) for the rollback snapshot.
func (h *Heap[T]) Push(v T) (err error) {
	if err = h.acquire(opPush); err != nil {
		return err
	}
	defer h.release(&err)

	// 1) Announce the attempt, then validate the key before mutating.
	h.notify(EventInsertStart, Attrs{"value": v})
	if _, err = h.computeKey(v); err != nil {
		h.notify(EventInsertError, Attrs{"error": err.Error()})
		return err
	}

	// 2) Append and restore the invariant from the new leaf.
	snap := h.snapshot()
	h.data = append(h.data, v)
	h.notify(EventInsert, Attrs{"index": len(h.data) - 1, "value": v})
	if err = h.siftUp(len(h.data) - 1); err != nil {
		h.data = snap
		h.notify(EventInsertError, Attrs{"error": err.Error()})
		return err
	}
	h.notify(EventPushDone, Attrs{"size": len(h.data)})

	return nil
}

// Pop removes and returns the root element; ok is false on an empty heap,
// which is not an error (the pop_empty event still fires and the operation
// still counts). Event order on success: pop_start, pop_root, move (when
// elements remain), the sift's compare/swap stream, pop_done.
// Complexity: O(log n) keyed comparisons, O(n) for the rollback snapshot.
func (h *Heap[T]) Pop() (v T, ok bool, err error) {
	if err = h.acquire(opPop); err != nil {
		return v, false, err
	}
	defer h.release(&err)

	// 1) Empty heap: report and return the zero value.
	if len(h.data) == 0 {
		h.notify(EventPopEmpty, Attrs{"size": 0})
		return v, false, nil
	}
	h.notify(EventPopStart, Attrs{"size": len(h.data)})

	// 2) Detach the root and the last leaf.
	snap := h.snapshot()
	n := len(h.data)
	root := h.data[0]
	last := h.data[n-1]
	h.data = h.data[:n-1]
	h.notify(EventPopRoot, Attrs{"value": root, "size": n})

	// 3) Promote the last leaf into the vacated root and sift it home.
	if len(h.data) > 0 {
		h.data[0] = last
		h.notify(EventMove, Attrs{"src": n - 1, "dst": 0, "value": last})
		if err = h.siftDown(0); err != nil {
			h.data = snap
			h.notify(EventPopError, Attrs{"error": err.Error()})
			var zero T
			return zero, false, err
		}
	}
	h.notify(EventPopDone, Attrs{"value": root, "size": len(h.data)})

	return root, true, nil
}

// Clear empties the storage and reports the prior element count. Clearing
// an empty heap fires the event with size 0 and changes nothing.
// Complexity: O(1).
func (h *Heap[T]) Clear() (err error) {
	if err = h.acquire(opClear); err != nil {
		return err
	}
	defer h.release(&err)

	prior := len(h.data)
	h.data = h.data[:0]
	h.notify(EventClear, Attrs{"size": prior})

	return nil
}

// Extend inserts a batch. An empty batch is a complete no-op: no guard, no
// counted operation. A single element delegates to Push. A larger batch is
// appended wholesale and heapified by one linear rebuild — not n sifted
// inserts — then announced via one extend event carrying the added count.
// The whole batch rolls back if any key fails during the rebuild.
// Complexity: O(n + k) for k added elements (linear rebuild bound).
func (h *Heap[T]) Extend(items ...T) (err error) {
	// 1) Trivial sizes first: nothing, or exactly one ordinary push.
	if len(items) == 0 {
		return nil
	}
	if len(items) == 1 {
		return h.Push(items[0])
	}

	if err = h.acquire(opExtend); err != nil {
		return err
	}
	defer h.release(&err)

	// 2) Append the whole batch, then rebuild in linear time.
	snap := h.snapshot()
	h.data = append(h.data, items...)
	if err = h.rebuild(); err != nil {
		h.data = snap
		return err
	}
	h.notify(EventExtend, Attrs{"added": len(items)})

	return nil
}

// Heapify rebuilds the invariant in place over the current storage and
// announces heapify_done. Useful after SetObserver to replay structure, and
// as the shared rebuild entry for batch construction.
// Complexity: O(n) keyed comparisons.
func (h *Heap[T]) Heapify() (err error) {
	if err = h.acquire(opHeapify); err != nil {
		return err
	}
	defer h.release(&err)

	return h.rebuild()
}

// ToggleMode flips Min↔Max ordering and rebuilds, since the preference
// relation inverted under every node. Event order: toggle_mode (with the
// new min_heap flag), then the rebuild's stream.
// Complexity: O(n) keyed comparisons.
func (h *Heap[T]) ToggleMode() (err error) {
	if err = h.acquire(opToggle); err != nil {
		return err
	}
	defer h.release(&err)

	if h.mode == MinHeap {
		h.mode = MaxHeap
	} else {
		h.mode = MinHeap
	}
	h.notify(EventToggleMode, Attrs{"min_heap": h.mode == MinHeap})

	return h.rebuild()
}

// SetMode sets the ordering explicitly. Setting the current mode is an
// intentional no-op: the guard still runs (so the operation counts), but no
// event fires, no rebuild happens and the storage order stays bit-identical.
// Unknown mode values fail with ErrInvalidMode before the guard.
// Complexity: O(n) keyed comparisons on an actual change, O(1) otherwise.
func (h *Heap[T]) SetMode(m Mode) (err error) {
	if m != MinHeap && m != MaxHeap {
		return fmt.Errorf("%s(%d): %w", opSetMode, m, ErrInvalidMode)
	}
	if err = h.acquire(opSetMode); err != nil {
		return err
	}
	defer h.release(&err)

	if h.mode == m {
		return nil
	}
	h.mode = m
	h.notify(EventSetMode, Attrs{"min_heap": m == MinHeap})

	return h.rebuild()
}

// Drain pops every element in preference order and returns them. Each step
// is one ordinary Pop — separately guarded, separately counted, with the
// full event stream — so a drain of n elements is n operations, exactly as
// a caller's own pop loop would be. On a failing pop the elements drained
// so far are returned alongside the error; the failing step itself rolled
// back, so the heap still holds everything not yet returned.
// Complexity: O(n log n) keyed comparisons.
func (h *Heap[T]) Drain() ([]T, error) {
	out := make([]T, 0, len(h.data))
	for len(h.data) > 0 {
		v, ok, err := h.Pop()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out, nil
}
