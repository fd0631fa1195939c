// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// verify.go — structural self-verification and pure derived queries.

package heap

import (
	"fmt"
	"math/bits"
)

// Validate scans every internal node against both children and returns nil
// when the heap property holds everywhere. A violation is reported with the
// offending indices and values, wrapped around ErrInvariantViolation; a key
// failure during the scan surfaces as its own error.
// Pure read: no guard, no events.
// Complexity: O(n) keyed comparisons.
func (h *Heap[T]) Validate() error {
	n := len(h.data)
	for i := 0; i <= (n-2)/2; i++ {
		left, right := 2*i+1, 2*i+2
		if left < n {
			pref, err := h.prefer(h.data[left], h.data[i])
			if err != nil {
				return err
			}
			if pref {
				return fmt.Errorf("parent %d (%v) vs left child %d (%v): %w",
					i, h.data[i], left, h.data[left], ErrInvariantViolation)
			}
		}
		if right < n {
			pref, err := h.prefer(h.data[right], h.data[i])
			if err != nil {
				return err
			}
			if pref {
				return fmt.Errorf("parent %d (%v) vs right child %d (%v): %w",
					i, h.data[i], right, h.data[right], ErrInvariantViolation)
			}
		}
	}

	return nil
}

// IsValid reports whether the heap property holds everywhere. A key failure
// during the scan reports false — an unverifiable heap is not a valid one.
// Complexity: O(n) keyed comparisons.
func (h *Heap[T]) IsValid() bool {
	return h.Validate() == nil
}

// Depth reports the number of tree levels: 0 for an empty heap, otherwise
// floor(log2(n)) + 1, which is exactly the bit length of n.
// Complexity: O(1).
func (h *Heap[T]) Depth() int {
	return bits.Len(uint(len(h.data)))
}

// IsPerfect reports whether every tree level is completely filled, i.e. the
// size is 2^h − 1 for some h. The empty heap is perfect (h = 0).
// Complexity: O(1).
func (h *Heap[T]) IsPerfect() bool {
	n := uint(len(h.data))

	return n&(n+1) == 0
}

// Stats aggregates the diagnostic snapshot a front end renders alongside
// the tree.
type Stats struct {
	// Size is the stored element count.
	Size int
	// Depth is the tree level count (0 when empty).
	Depth int
	// Mode is the current order mode.
	Mode Mode
	// Valid reports the invariant scan outcome at snapshot time.
	Valid bool
	// Perfect reports whether every level is completely filled.
	Perfect bool
	// Operations is the completed mutating operation count.
	Operations uint64
}

// Stats returns the current diagnostic snapshot. Pure read; the validity
// field runs one full invariant scan.
// Complexity: O(n) keyed comparisons.
func (h *Heap[T]) Stats() Stats {
	return Stats{
		Size:       len(h.data),
		Depth:      h.Depth(),
		Mode:       h.mode,
		Valid:      h.IsValid(),
		Perfect:    h.IsPerfect(),
		Operations: h.ops,
	}
}
