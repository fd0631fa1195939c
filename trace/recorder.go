// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/trace
//
// recorder.go — an in-memory event journal with an optional size bound.
//
// Contract (strict):
//   • Arrival order is preserved; every record carries a 1-based sequence
//     number that keeps counting across ring eviction and Reset.
//   • A bounded recorder keeps the newest capacity records and discards
//     from the front.
//   • Attribute maps are retained as delivered, not copied; the heap builds
//     a fresh map per dispatch, so retention is safe.

package trace

import "github.com/mrggrmexe/HeapVisualizer/heap"

// Record is one captured notification.
type Record struct {
	// Seq is the 1-based arrival number, stable across eviction.
	Seq uint64
	// Event is the notification name.
	Event heap.Event
	// Attrs is the payload as delivered.
	Attrs heap.Attrs
}

// Recorder is a heap.Observer that journals events for inspection, replay
// or rendering. The zero value is an unbounded recorder.
type Recorder struct {
	capacity int
	seq      uint64
	recs     []Record
}

// NewRecorder returns a recorder keeping at most capacity records;
// capacity <= 0 means unbounded.
func NewRecorder(capacity int) *Recorder {
	if capacity < 0 {
		capacity = 0
	}

	return &Recorder{capacity: capacity}
}

// OnHeapEvent implements heap.Observer.
// Complexity: O(1) unbounded, O(capacity) on a full ring (front shift).
func (r *Recorder) OnHeapEvent(e heap.Event, a heap.Attrs) {
	r.seq++
	rec := Record{Seq: r.seq, Event: e, Attrs: a}
	if r.capacity > 0 && len(r.recs) == r.capacity {
		copy(r.recs, r.recs[1:])
		r.recs[len(r.recs)-1] = rec

		return
	}
	r.recs = append(r.recs, rec)
}

// Len reports the number of retained records.
func (r *Recorder) Len() int { return len(r.recs) }

// Events returns a copy of the retained records in arrival order.
func (r *Recorder) Events() []Record {
	return append([]Record(nil), r.recs...)
}

// Since returns a copy of the retained records starting at retention index
// n (not sequence number). An out-of-range n yields nil.
func (r *Recorder) Since(n int) []Record {
	if n < 0 || n >= len(r.recs) {
		return nil
	}

	return append([]Record(nil), r.recs[n:]...)
}

// Last returns the newest record; ok is false on an empty journal.
func (r *Recorder) Last() (Record, bool) {
	if len(r.recs) == 0 {
		return Record{}, false
	}

	return r.recs[len(r.recs)-1], true
}

// Filter returns the retained records whose event is among names, in
// arrival order. No names selects nothing.
func (r *Recorder) Filter(names ...heap.Event) []Record {
	if len(names) == 0 {
		return nil
	}
	keep := make(map[heap.Event]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}

	var out []Record
	for _, rec := range r.recs {
		if _, ok := keep[rec.Event]; ok {
			out = append(out, rec)
		}
	}

	return out
}

// Reset discards the retained records. Sequence numbering continues, so
// records from before and after a reset never share a Seq.
func (r *Recorder) Reset() {
	r.recs = nil
}
