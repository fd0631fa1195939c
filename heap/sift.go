// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// sift.go — the two invariant-restoration walks and the linear rebuild.
//
// These are written by hand rather than layered over container/heap: the
// visualization contract requires one compare event per pairwise test and
// one swap event per exchange, in exact program order (left child examined
// before right), and container/heap's Less/Swap interface cannot carry the
// indices and element values those events need.

package heap

// siftUp walks the element at index i toward the root, swapping with its
// parent while the element is preferred, and stops at the first parent that
// dominates it (or at the root). One compare event fires per parent test,
// one swap event per exchange, both with the pre-exchange values.
// Complexity: O(log n) keyed comparisons.
func (h *Heap[T]) siftUp(i int) error {
	for i > 0 {
		parent := (i - 1) / 2

		// 1) Announce the test, then evaluate it.
		h.notify(EventCompare, Attrs{"i": i, "j": parent, "ai": h.data[i], "aj": h.data[parent]})
		pref, err := h.prefer(h.data[i], h.data[parent])
		if err != nil {
			return err
		}
		if !pref {
			break
		}

		// 2) Announce the exchange, then perform it and climb.
		h.notify(EventSwap, Attrs{"i": i, "j": parent, "ai": h.data[i], "aj": h.data[parent]})
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}

	return nil
}

// siftDown walks the element at index i toward the leaves. At every level
// the left child is examined before the right; each examination fires one
// compare event against the current candidate, ties keep the earlier
// candidate, and a winning child triggers one swap event and the descent
// continues from the child's former position.
// Complexity: O(log n) keyed comparisons, two per level.
func (h *Heap[T]) siftDown(i int) error {
	n := len(h.data)
	for {
		left, right, candidate := 2*i+1, 2*i+2, i

		// 1) Left child first: evaluation order is part of the contract.
		if left < n {
			h.notify(EventCompare, Attrs{"i": left, "j": candidate, "ai": h.data[left], "aj": h.data[candidate]})
			pref, err := h.prefer(h.data[left], h.data[candidate])
			if err != nil {
				return err
			}
			if pref {
				candidate = left
			}
		}

		// 2) Right child against whoever leads now.
		if right < n {
			h.notify(EventCompare, Attrs{"i": right, "j": candidate, "ai": h.data[right], "aj": h.data[candidate]})
			pref, err := h.prefer(h.data[right], h.data[candidate])
			if err != nil {
				return err
			}
			if pref {
				candidate = right
			}
		}

		// 3) Neither child preferred: the subtree is settled.
		if candidate == i {
			return nil
		}

		// 4) Exchange with the winning child and continue from its slot.
		h.notify(EventSwap, Attrs{"i": i, "j": candidate, "ai": h.data[i], "aj": h.data[candidate]})
		h.data[i], h.data[candidate] = h.data[candidate], h.data[i]
		i = candidate
	}
}

// rebuild restores the invariant over arbitrary storage by sifting down
// every internal node from the last parent to the root, then announces
// heapify_done. Callers hold the mutation guard; rebuild never takes it.
// Complexity: O(n) keyed comparisons (the classic bottom-up bound).
func (h *Heap[T]) rebuild() error {
	n := len(h.data)
	for i := (n - 2) / 2; i >= 0; i-- {
		if err := h.siftDown(i); err != nil {
			return err
		}
	}
	h.notify(EventHeapifyDone, Attrs{"size": n})

	return nil
}
