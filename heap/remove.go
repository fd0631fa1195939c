// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// remove.go — removal by structural equality and by position.
//
// Arbitrary-position removal swaps the last leaf into the vacated slot and
// then restores the invariant in whichever direction the replacement
// violates it. A mid-tree replacement by an arbitrary element can sit wrong
// against its parent or against its subtree, never both, so one parent
// comparison picks the single walk that is needed.

package heap

// Remove deletes the first element equal to v (by ==) and reports how many
// were removed (0 or 1). A successful removal fires remove_value with the
// count after the structural events of the removal itself.
// Complexity: O(n) scan plus O(log n) for the removal.
func (h *Heap[T]) Remove(v T) (int, error) {
	return h.removeMatching(v, false)
}

// RemoveAll deletes every element equal to v (by ==) and reports the count.
// The element swapped into a vacated slot is re-examined at the same index,
// so equal elements arriving from the tail are never skipped.
// Complexity: O(n log n) worst case over the matches.
func (h *Heap[T]) RemoveAll(v T) (int, error) {
	return h.removeMatching(v, true)
}

// removeMatching is the shared scan behind Remove and RemoveAll.
func (h *Heap[T]) removeMatching(v T, all bool) (removed int, err error) {
	if err = h.acquire(opRemove); err != nil {
		return 0, err
	}
	defer h.release(&err)

	// 1) Linear scan; the index only advances past non-matching slots.
	i := 0
	for i < len(h.data) {
		if h.data[i] != v {
			i++
			continue
		}
		if err = h.removeAt(i); err != nil {
			return removed, err
		}
		removed++
		if !all {
			break
		}
	}

	// 2) One summary event for the whole scan, only if something happened.
	if removed > 0 {
		h.notify(EventRemoveValue, Attrs{"value": v, "count": removed})
	}

	return removed, nil
}

// RemoveAt deletes the element at index i. An out-of-range index is a
// silent no-op, mirroring the tolerance of the scan-driven callers; the
// operation is still guarded and counted.
// Complexity: O(log n).
func (h *Heap[T]) RemoveAt(i int) (err error) {
	if err = h.acquire(opRemoveAt); err != nil {
		return err
	}
	defer h.release(&err)

	return h.removeAt(i)
}

// removeAt is the unguarded positional removal shared by RemoveAt and the
// equality scan. Event order: remove_at (with the removed value), then for
// a mid-tree slot one move (the relocated last leaf) and the chosen sift
// walk's compare/swap stream.
func (h *Heap[T]) removeAt(i int) error {
	n := len(h.data)
	if i < 0 || i >= n {
		return nil
	}

	// 1) Detach the victim and the last leaf.
	val := h.data[i]
	last := h.data[n-1]
	h.data = h.data[:n-1]
	h.notify(EventRemoveAt, Attrs{"index": i, "value": val})

	// 2) Removing the last leaf needs no repair.
	if i == n-1 {
		return nil
	}

	// 3) Relocate the last leaf into the hole.
	h.data[i] = last
	h.notify(EventMove, Attrs{"src": n - 1, "dst": i, "value": last})

	// 4) Repair upward when the replacement beats its parent, else downward.
	if i > 0 {
		up, err := h.prefer(h.data[i], h.data[(i-1)/2])
		if err != nil {
			return err
		}
		if up {
			return h.siftUp(i)
		}
	}

	return h.siftDown(i)
}
