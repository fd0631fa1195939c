// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/trace

// Package trace captures and presents what a heap does: it journals the
// notification stream, draws storage as a plain-text tree and replays a
// full extraction one element at a time.
//
// # Recording
//
// Recorder implements heap.Observer. Attach it and every notification is
// journaled with a monotonic sequence number:
//
//	rec := trace.NewRecorder(0) // 0 = unbounded
//	h := heap.NewNumeric[int](heap.WithObserver[int](rec))
//	_ = h.Push(5)
//	moves := rec.Filter(heap.EventCompare, heap.EventSwap, heap.EventMove)
//
// A positive capacity turns the journal into a ring that keeps only the
// newest records, which suits long-running instrumentation.
//
// # Rendering
//
// Render returns a summary line plus the storage drawn as a rooted tree,
// left branch before right. Tree does the same for a bare slice.
//
// # Sort walkthroughs
//
// SortSteps drains a clone of the heap and pairs every extracted element
// with the events its removal produced. The source heap is not modified
// and its observer never fires. Sorted keeps just the values.
//
// See: docs/TRACE.md for rendering samples and replay recipes.
package trace
