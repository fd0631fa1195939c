// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// events.go — the notification contract: event names, attributes, observer
// plumbing and the dispatch path with attribute truncation.
//
// Contract (strict):
//   • Events fire synchronously, in program order, during the operation that
//     caused them. compare/swap fire once per pairwise comparison/exchange
//     inside sift walks — never batched, never elided.
//   • A failing (panicking) observer is recovered and dropped; it must never
//     corrupt or abort a heap operation.
//   • Attribute values whose rendering exceeds attrTruncateLimit runes are
//     replaced by a truncated string with a trailing ellipsis; shorter values
//     pass through with their original type.
//   • Observers must not assume attribute keys beyond the documented set:
//     i/j/ai/aj (compare, swap), src/dst/value (move), index/value (insert,
//     remove_at), value/count (remove_value).

package heap

import (
	"fmt"
	"unicode/utf8"
)

// Event names a structural heap event. The set below is closed: front ends
// may switch exhaustively over it.
type Event string

// Canonical events, in rough lifecycle order.
const (
	// EventInsertStart opens a push attempt; attrs: value.
	EventInsertStart Event = "insert_start"
	// EventInsert reports the appended element; attrs: index, value.
	EventInsert Event = "insert"
	// EventPushDone closes a successful push; attrs: size.
	EventPushDone Event = "push_done"
	// EventInsertError closes a failed push; attrs: error.
	EventInsertError Event = "insert_error"

	// EventPopStart opens a pop of a non-empty heap; attrs: size.
	EventPopStart Event = "pop_start"
	// EventPopEmpty reports a pop of an empty heap; attrs: size (0).
	EventPopEmpty Event = "pop_empty"
	// EventPopRoot reports the extracted root; attrs: value, size (pre-pop).
	EventPopRoot Event = "pop_root"
	// EventMove reports an element relocation; attrs: src, dst, value.
	EventMove Event = "move"
	// EventPopDone closes a successful pop; attrs: value, size (post-pop).
	EventPopDone Event = "pop_done"
	// EventPopError closes a failed pop; attrs: error.
	EventPopError Event = "pop_error"

	// EventClear reports storage reset; attrs: size (prior element count).
	EventClear Event = "clear"
	// EventExtend closes a multi-element batch insert; attrs: added.
	EventExtend Event = "extend"
	// EventHeapifyDone closes a full rebuild; attrs: size.
	EventHeapifyDone Event = "heapify_done"
	// EventToggleMode reports an order flip; attrs: min_heap.
	EventToggleMode Event = "toggle_mode"
	// EventSetMode reports an explicit order change; attrs: min_heap.
	EventSetMode Event = "set_mode"

	// EventRemoveValue closes a successful removal by value; attrs: value, count.
	EventRemoveValue Event = "remove_value"
	// EventRemoveAt reports a positional removal; attrs: index, value.
	EventRemoveAt Event = "remove_at"

	// EventCompare reports one pairwise comparison; attrs: i, j, ai, aj.
	EventCompare Event = "compare"
	// EventSwap reports one pairwise exchange; attrs: i, j, ai, aj.
	EventSwap Event = "swap"

	// EventReplaceRoot reports a root exchange (PushPop/Replace); attrs: old, new.
	EventReplaceRoot Event = "replace_root"
	// EventMerge closes a successful merge; attrs: added, size.
	EventMerge Event = "merge"
)

// Attrs carries the per-event payload. The map is freshly built for every
// dispatch; observers may retain it.
type Attrs map[string]any

// Observer consumes structural events for visualization or tracing.
// It runs inline during mutations and must not call back into any mutating
// heap operation (the mutation guard rejects such calls).
type Observer interface {
	OnHeapEvent(event Event, attrs Attrs)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(event Event, attrs Attrs)

// OnHeapEvent implements Observer.
func (f ObserverFunc) OnHeapEvent(event Event, attrs Attrs) { f(event, attrs) }

// Attribute rendering bounds for notify.
const (
	// attrTruncateLimit caps the rendered length of one attribute value.
	attrTruncateLimit = 200
	// attrEllipsis marks a truncated rendering.
	attrEllipsis = "…"
)

// notify dispatches one event to the registered observer, if any.
// Oversized attribute renderings are truncated in place before dispatch;
// a panic escaping the observer is recovered and dropped.
// Complexity: O(len(attrs)) renderings + observer cost.
func (h *Heap[T]) notify(event Event, attrs Attrs) {
	if h.observer == nil {
		return
	}
	for k, v := range attrs {
		s := fmt.Sprint(v)
		if utf8.RuneCountInString(s) > attrTruncateLimit {
			r := []rune(s)
			attrs[k] = string(r[:attrTruncateLimit]) + attrEllipsis
		}
	}
	defer func() {
		// Sink failures are swallowed: recover and drop.
		_ = recover()
	}()
	h.observer.OnHeapEvent(event, attrs)
}
