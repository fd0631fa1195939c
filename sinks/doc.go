// Package sinks provides ready-made heap.Observer implementations for the
// two plumbing concerns every visualization host ends up needing: structured
// logging and metrics export. Heap events arrive synchronously inside heap
// mutations, so each sink here does a small constant amount of work per
// event and never calls back into the heap.
//
// The sinks offered are:
//
//   - LogSink
//
//   - Renders one logrus line per event, attributes as structured fields.
//
//   - Level is fixed per sink (Debug by default); routing and filtering
//     stay on the wrapped logger.
//
//   - MetricsSink
//
//   - Exports Prometheus series: per-event counters, a live element-count
//     gauge and a batch-size histogram.
//
//   - Registers on a caller-supplied prometheus.Registerer, so tests and
//     multi-heap hosts can keep registries separate.
//
//   - Fanout
//
//   - Composes several sinks behind one Observer, dispatching in order.
//
// # Usage
//
//	reg := prometheus.NewRegistry()
//	h := heap.NewNumeric[int]()
//	h.SetObserver(sinks.NewFanout(
//	    sinks.NewLogSink(sinks.WithLevel(logrus.InfoLevel)),
//	    sinks.NewMetricsSink(reg),
//	))
//
// A panicking sink is recovered and ignored by the heap's dispatch, so a
// misbehaving exporter cannot corrupt or abort a mutation.
//
// See: docs/SINKS.md for the full walkthrough.
package sinks
