// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// derived.go — combined and cross-heap operations: PushPop, Replace, Merge,
// and the diagnostic NLargest query.

package heap

import (
	"fmt"
	"reflect"
	"sort"
)

// PushPop inserts v and pops the most preferred element in one step, without
// growing the storage. The result is exactly push-then-pop: when the heap is
// empty, or v itself is the most preferred (it beats the current root), v
// comes straight back and the heap is untouched; otherwise v takes the root's
// slot (replace_root event), sifts down, and the old root is returned. The
// key of v is validated eagerly either way.
// Complexity: O(log n) keyed comparisons.
func (h *Heap[T]) PushPop(v T) (out T, err error) {
	if err = h.acquire(opPushPop); err != nil {
		return out, err
	}
	defer h.release(&err)

	// 1) Eager key check: push-then-pop would reject v before mutating.
	if _, err = h.computeKey(v); err != nil {
		return out, err
	}
	if len(h.data) == 0 {
		return v, nil
	}

	// 2) When v beats the root it would bubble to the top and pop right out.
	pref, err := h.prefer(v, h.data[0])
	if err != nil {
		return out, err
	}
	if pref {
		return v, nil
	}

	// 3) Otherwise the root pops and v takes its place.
	old := h.data[0]
	h.notify(EventReplaceRoot, Attrs{"old": old, "new": v})
	h.data[0] = v
	if err = h.siftDown(0); err != nil {
		return out, err
	}

	return old, nil
}

// Replace pops the root and pushes v in one step. Unlike PushPop it always
// extracts the current root, so it fails with ErrEmptyHeap when there is
// nothing to extract — callers holding a possibly-empty heap should Push.
// Complexity: O(log n) keyed comparisons.
func (h *Heap[T]) Replace(v T) (old T, err error) {
	if err = h.acquire(opReplace); err != nil {
		return old, err
	}
	defer h.release(&err)

	if len(h.data) == 0 {
		return old, fmt.Errorf("%s: %w", opReplace, ErrEmptyHeap)
	}
	if _, err = h.computeKey(v); err != nil {
		return old, err
	}

	old = h.data[0]
	h.notify(EventReplaceRoot, Attrs{"old": old, "new": v})
	h.data[0] = v
	if err = h.siftDown(0); err != nil {
		var zero T
		return zero, err
	}

	return old, nil
}

// Merge absorbs every element of other. The two heaps must agree on order
// mode, NaN policy and key projection identity — a mismatch fails with
// ErrIncompatibleHeaps before anything mutates, and a mid-rebuild key
// failure rolls the whole merge back, so no partial merge is ever visible.
// A nil or empty other is a complete no-op (no guard, no counted operation).
// The donor heap is read, never modified.
// Complexity: O(n + k) for k absorbed elements (linear rebuild bound).
func (h *Heap[T]) Merge(other *Heap[T]) (err error) {
	// 1) Trivial donors and configuration checks, all before the guard.
	if other == nil || len(other.data) == 0 {
		return nil
	}
	if h.mode != other.mode {
		return fmt.Errorf("%s: order mode differs: %w", opMerge, ErrIncompatibleHeaps)
	}
	if h.nanPolicy != other.nanPolicy {
		return fmt.Errorf("%s: NaN policy differs: %w", opMerge, ErrIncompatibleHeaps)
	}
	if !sameKeyFunc(h.key, other.key) {
		return fmt.Errorf("%s: key projection differs: %w", opMerge, ErrIncompatibleHeaps)
	}

	if err = h.acquire(opMerge); err != nil {
		return err
	}
	defer h.release(&err)

	// 2) Absorb wholesale, rebuild once, announce once.
	snap := h.snapshot()
	added := len(other.data)
	h.data = append(h.data, other.data...)
	if err = h.rebuild(); err != nil {
		h.data = snap
		return err
	}
	h.notify(EventMerge, Attrs{"added": added, "size": len(h.data)})

	return nil
}

// sameKeyFunc reports whether two key projections are the same function.
// Identity is by code pointer: two closures built from the same source are
// distinct even when behaviorally equal. Share the KeyFunc value between
// heaps that should merge.
func sameKeyFunc[T any](a, b KeyFunc[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// NLargest returns up to n elements ordered by decreasing preference — the
// root-most element first — regardless of mode. The heap is not mutated and
// no events fire: this is a diagnostic topology query computed by fully
// sorting a copy, not a partial selection. Ties keep their storage order.
// n <= 0 yields nil.
// Complexity: O(size log size) on precomputed keys.
func (h *Heap[T]) NLargest(n int) ([]T, error) {
	if n <= 0 || len(h.data) == 0 {
		return nil, nil
	}

	// 1) Key every element once up front; an unkeyable element fails the
	//    whole query the same way it would fail a comparison.
	keys := make([]float64, len(h.data))
	for i, v := range h.data {
		k, err := h.computeKey(v)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	// 2) Sort storage indices by preference on the cached keys.
	idx := make([]int, len(h.data))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if h.mode == MinHeap {
			return keys[idx[a]] < keys[idx[b]]
		}
		return keys[idx[a]] > keys[idx[b]]
	})

	// 3) Copy out the leading run.
	if n > len(idx) {
		n = len(idx)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = h.data[idx[i]]
	}

	return out, nil
}
