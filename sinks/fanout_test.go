package sinks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrggrmexe/HeapVisualizer/heap"
	"github.com/mrggrmexe/HeapVisualizer/sinks"
)

// taggedSink appends "tag:event" to a shared journal, exposing dispatch order.
type taggedSink struct {
	tag     string
	journal *[]string
}

func (s taggedSink) OnHeapEvent(e heap.Event, _ heap.Attrs) {
	*s.journal = append(*s.journal, s.tag+":"+string(e))
}

// TestFanout_DispatchesInOrder verifies per-event member order and that
// nil members are dropped at construction.
func TestFanout_DispatchesInOrder(t *testing.T) {
	var journal []string
	f := sinks.NewFanout(
		taggedSink{tag: "a", journal: &journal},
		nil,
		taggedSink{tag: "b", journal: &journal},
	)
	assert.Len(t, f, 2, "nil sinks are dropped")

	h := heap.NewNumeric[int]()
	h.SetObserver(f)
	assert.NoError(t, h.Push(1))

	assert.Equal(t, []string{
		"a:insert_start", "b:insert_start",
		"a:insert", "b:insert",
		"a:push_done", "b:push_done",
	}, journal)
}

// TestFanout_EmptyIsANoOp verifies that an empty fanout swallows events.
func TestFanout_EmptyIsANoOp(t *testing.T) {
	f := sinks.NewFanout()

	h := heap.NewNumeric[int]()
	h.SetObserver(f)
	assert.NoError(t, h.Push(1))
	assert.Equal(t, 1, h.Len())
}
