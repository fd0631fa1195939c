// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/sinks
//
// metrics.go — a Prometheus sink: per-event counters, a live size gauge and
// a batch-size histogram.
//
// Contract (strict):
//   • heapviz_events_total counts every event by name, unconditionally.
//   • heapviz_heap_size follows the size-carrying events (push_done,
//     pop_done, pop_empty, heapify_done, merge); clear zeroes it — the
//     clear event's size attribute is the PRIOR element count, not the new
//     one.
//   • heapviz_batch_added_elements observes the added count of extend and
//     merge events.

package sinks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mrggrmexe/HeapVisualizer/heap"
)

// MetricsSink exports heap activity as Prometheus series.
type MetricsSink struct {
	events *prometheus.CounterVec
	size   prometheus.Gauge
	batch  prometheus.Histogram
}

// NewMetricsSink registers the heap series on reg and returns the sink.
// A nil reg falls back to the default registry. Registering two sinks on
// one registry panics, as duplicate collectors always do; use one sink per
// registry (a Fanout can feed it from several heaps).
func NewMetricsSink(reg prometheus.Registerer) *MetricsSink {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &MetricsSink{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "heapviz_events_total",
				Help: "Total number of heap events by event name",
			},
			[]string{"event"},
		),
		size: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "heapviz_heap_size",
				Help: "Current number of stored heap elements",
			},
		),
		batch: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "heapviz_batch_added_elements",
				Help:    "Elements added per extend or merge batch",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

// OnHeapEvent implements heap.Observer.
func (m *MetricsSink) OnHeapEvent(e heap.Event, a heap.Attrs) {
	m.events.WithLabelValues(string(e)).Inc()

	switch e {
	case heap.EventPushDone, heap.EventPopDone, heap.EventPopEmpty,
		heap.EventHeapifyDone, heap.EventMerge:
		if n, ok := intAttr(a, "size"); ok {
			m.size.Set(float64(n))
		}
	case heap.EventClear:
		m.size.Set(0)
	}

	if e == heap.EventExtend || e == heap.EventMerge {
		if n, ok := intAttr(a, "added"); ok {
			m.batch.Observe(float64(n))
		}
	}
}

// intAttr extracts an integer attribute, tolerating absence and foreign types.
func intAttr(a heap.Attrs, key string) (int, bool) {
	n, ok := a[key].(int)

	return n, ok
}
