// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/sinks
//
// logger.go — a structured-logging sink backed by logrus.
//
// Contract (strict):
//   • One log line per heap event, at one configurable level.
//   • Every attribute passes through as a structured field; the event name
//     rides in the "event" field.
//   • The sink never filters, samples or reorders; level thresholds and
//     output routing belong to the logger it wraps.

package sinks

import (
	log "github.com/sirupsen/logrus"

	"github.com/mrggrmexe/HeapVisualizer/heap"
)

// DefaultLogLevel is the level event lines are logged at unless WithLevel
// overrides it. Heap events are high-volume structural detail, hence Debug.
const DefaultLogLevel = log.DebugLevel

// logMessage is the fixed message of every event line; the payload lives in
// the fields.
const logMessage = "heap event"

// LogOption customizes a LogSink.
type LogOption func(*LogSink)

// WithLogger routes event lines to l instead of the process-wide standard
// logger. Panics on nil.
func WithLogger(l log.FieldLogger) LogOption {
	if l == nil {
		panic("sinks: WithLogger requires a non-nil logger")
	}

	return func(s *LogSink) { s.log = l }
}

// WithLevel sets the level every event line is logged at.
func WithLevel(lvl log.Level) LogOption {
	return func(s *LogSink) { s.level = lvl }
}

// LogSink renders every heap event as one structured log line.
type LogSink struct {
	log   log.FieldLogger
	level log.Level
}

// NewLogSink builds a sink around the standard logger at DefaultLogLevel,
// then applies opts in order.
func NewLogSink(opts ...LogOption) *LogSink {
	s := &LogSink{
		log:   log.StandardLogger(),
		level: DefaultLogLevel,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// OnHeapEvent implements heap.Observer.
func (s *LogSink) OnHeapEvent(e heap.Event, a heap.Attrs) {
	s.log.WithFields(log.Fields(a)).WithField("event", string(e)).Log(s.level, logMessage)
}
