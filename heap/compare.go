// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// compare.go — key normalization and the preference predicate.
//
// There is exactly one comparison path: every structural algorithm funnels
// through prefer, which funnels through computeKey, which funnels through
// normalizeKey. No other ordering source exists in the package.

package heap

import (
	"fmt"
	"math"
)

// normalizeKey applies the NaN policy to a raw key. Non-NaN keys pass
// through unchanged. A NaN key is rejected (NaNRaise), coerced to -Inf
// (NaNCoerceMin) or to +Inf (NaNCoerceMax). Out-of-range policy values
// behave as NaNCoerceMax, so a corrupted policy degrades the ordering
// instead of the comparison itself.
// Complexity: O(1).
func (h *Heap[T]) normalizeKey(k float64) (float64, error) {
	if !math.IsNaN(k) {
		return k, nil
	}
	switch h.nanPolicy {
	case NaNRaise:
		return 0, fmt.Errorf("NaN key: %w", ErrInvalidKey)
	case NaNCoerceMin:
		return math.Inf(-1), nil
	default:
		return math.Inf(+1), nil
	}
}

// computeKey projects an element through the key function and normalizes
// the result. A failing projection and a rejected NaN both surface as
// ErrInvalidKey, wrapped with the offending element.
// Complexity: O(1) plus the key function itself.
func (h *Heap[T]) computeKey(v T) (float64, error) {
	raw, err := h.key(v)
	if err != nil {
		return 0, fmt.Errorf("key func failed for %v: %v: %w", v, err, ErrInvalidKey)
	}
	k, err := h.normalizeKey(raw)
	if err != nil {
		return 0, fmt.Errorf("key for %v: %w", v, err)
	}

	return k, nil
}

// prefer reports whether a should sit above b in the tree: strictly smaller
// key under MinHeap, strictly larger under MaxHeap. Equal keys prefer
// neither direction, which keeps sift walks from swapping equals forever.
// Complexity: two key computations.
func (h *Heap[T]) prefer(a, b T) (bool, error) {
	ka, err := h.computeKey(a)
	if err != nil {
		return false, err
	}
	kb, err := h.computeKey(b)
	if err != nil {
		return false, err
	}
	if h.mode == MinHeap {
		return ka < kb, nil
	}

	return ka > kb, nil
}
