// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/trace
//
// steps.go — step-by-step extraction traces for a full heap sort.
//
// Contract (strict):
//   • The source heap is never touched: extraction runs on a clone, so the
//     source observer stays silent and its operation counter stays put.
//   • Each step pairs one extracted element with exactly the notifications
//     its removal produced, in dispatch order.

package trace

import "github.com/mrggrmexe/HeapVisualizer/heap"

// Step is one extraction of a destructive sort: the element that left the
// heap and the event trail of its removal, pop_start through pop_done.
type Step[T comparable] struct {
	Value  T
	Events []Record
}

// SortSteps drains a clone of h and returns one Step per element, in the
// order a destructive sort would emit them (ascending for a min-heap,
// descending for a max-heap). On a removal failure the steps gathered so
// far are returned together with the error.
//
// Complexity: O(n log n) pops plus O(total events) bookkeeping.
func SortSteps[T comparable](h *heap.Heap[T]) ([]Step[T], error) {
	if h == nil || h.Len() == 0 {
		return nil, nil
	}

	c := h.Clone()
	rec := NewRecorder(0)
	c.SetObserver(rec)

	steps := make([]Step[T], 0, c.Len())
	for !c.IsEmpty() {
		mark := rec.Len()
		v, ok, err := c.Pop()
		if err != nil {
			return steps, err
		}
		if !ok {
			break
		}
		steps = append(steps, Step[T]{Value: v, Events: rec.Since(mark)})
	}

	return steps, nil
}

// Sorted is the plain-value projection of SortSteps: the heap's contents
// in extraction order, without the event trails.
func Sorted[T comparable](h *heap.Heap[T]) ([]T, error) {
	steps, err := SortSteps(h)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(steps))
	for i, s := range steps {
		out[i] = s.Value
	}

	return out, nil
}
