// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/trace

package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrggrmexe/HeapVisualizer/heap"
	"github.com/mrggrmexe/HeapVisualizer/trace"
)

// TestRecorder_CapturesArrivalOrder attaches a recorder to a live heap and
// checks that every notification lands in dispatch order with consecutive
// sequence numbers.
func TestRecorder_CapturesArrivalOrder(t *testing.T) {
	h := heap.NewNumeric[int]()
	rec := trace.NewRecorder(0)
	h.SetObserver(rec)

	assert.NoError(t, h.Push(5)) // insert_start, insert, push_done
	assert.NoError(t, h.Push(2)) // + compare and swap on the climb

	got := rec.Events()
	assert.Len(t, got, 8)
	for i, r := range got {
		assert.Equal(t, uint64(i+1), r.Seq)
	}
	assert.Equal(t, heap.EventInsertStart, got[0].Event)
	assert.Equal(t, heap.EventCompare, got[5].Event)
	assert.Equal(t, heap.EventSwap, got[6].Event)
	assert.Equal(t, heap.EventPushDone, got[7].Event)
}

// TestRecorder_RingKeepsNewest fills a bounded recorder past capacity and
// checks that the oldest records fall off the front while sequence numbers
// keep counting.
func TestRecorder_RingKeepsNewest(t *testing.T) {
	rec := trace.NewRecorder(3)
	for i := 0; i < 5; i++ {
		rec.OnHeapEvent(heap.EventCompare, heap.Attrs{"i": i})
	}

	assert.Equal(t, 3, rec.Len())
	got := rec.Events()
	assert.Equal(t, uint64(3), got[0].Seq)
	assert.Equal(t, uint64(5), got[2].Seq)
	assert.Equal(t, 2, got[0].Attrs["i"])
}

// TestRecorder_FilterSelectsNamed pushes and pops through an observed heap
// and filters the journal down to the structural moves.
func TestRecorder_FilterSelectsNamed(t *testing.T) {
	h := heap.NewNumeric[int]()
	rec := trace.NewRecorder(0)
	h.SetObserver(rec)

	assert.NoError(t, h.Push(5))
	assert.NoError(t, h.Push(2))
	_, _, err := h.Pop()
	assert.NoError(t, err)

	moves := rec.Filter(heap.EventCompare, heap.EventSwap, heap.EventMove)
	assert.Len(t, moves, 3)
	assert.Equal(t, heap.EventCompare, moves[0].Event)
	assert.Equal(t, heap.EventSwap, moves[1].Event)
	assert.Equal(t, heap.EventMove, moves[2].Event)

	assert.Nil(t, rec.Filter())
	assert.Empty(t, rec.Filter(heap.EventMerge))
}

// TestRecorder_ResetKeepsSequence clears the journal and checks that the
// next record does not reuse an old sequence number.
func TestRecorder_ResetKeepsSequence(t *testing.T) {
	rec := trace.NewRecorder(0)
	rec.OnHeapEvent(heap.EventInsert, nil)
	rec.OnHeapEvent(heap.EventInsert, nil)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
	_, ok := rec.Last()
	assert.False(t, ok)

	rec.OnHeapEvent(heap.EventSwap, nil)
	last, ok := rec.Last()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), last.Seq)
	assert.Equal(t, heap.EventSwap, last.Event)
}

// TestRecorder_ZeroValueIsUnbounded verifies the zero value journals
// without a cap.
func TestRecorder_ZeroValueIsUnbounded(t *testing.T) {
	var rec trace.Recorder
	for i := 0; i < 100; i++ {
		rec.OnHeapEvent(heap.EventInsert, nil)
	}

	assert.Equal(t, 100, rec.Len())
}

// TestRecorder_EventsIsACopy mutates a returned slice and checks the
// journal is unharmed.
func TestRecorder_EventsIsACopy(t *testing.T) {
	rec := trace.NewRecorder(0)
	rec.OnHeapEvent(heap.EventInsert, nil)

	got := rec.Events()
	got[0].Event = heap.EventSwap

	assert.Equal(t, heap.EventInsert, rec.Events()[0].Event)
}

// TestRecorder_SinceSlices checks the retention-index tail view and its
// out-of-range behavior.
func TestRecorder_SinceSlices(t *testing.T) {
	rec := trace.NewRecorder(0)
	for i := 0; i < 4; i++ {
		rec.OnHeapEvent(heap.EventCompare, nil)
	}

	tail := rec.Since(2)
	assert.Len(t, tail, 2)
	assert.Equal(t, uint64(3), tail[0].Seq)

	assert.Nil(t, rec.Since(4))
	assert.Nil(t, rec.Since(-1))
}
