// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/sinks
//
// fanout.go — composing several sinks behind one Observer.

package sinks

import "github.com/mrggrmexe/HeapVisualizer/heap"

// Fanout dispatches every event to each member sink, in slice order. All
// members receive the same attribute map; sinks must treat it as read-only.
type Fanout []heap.Observer

// NewFanout builds a Fanout from the given sinks, dropping nils.
func NewFanout(sinks ...heap.Observer) Fanout {
	f := make(Fanout, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			f = append(f, s)
		}
	}

	return f
}

// OnHeapEvent implements heap.Observer.
func (f Fanout) OnHeapEvent(e heap.Event, a heap.Attrs) {
	for _, s := range f {
		s.OnHeapEvent(e, a)
	}
}
