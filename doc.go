// Package heapvisualizer is your in-memory playground for watching a
// binary heap think — every comparison, swap and move narrated live.
//
// 🚀 What is HeapVisualizer?
//
//	An instrumented, self-verifying binary heap plus everything needed
//	to observe it:
//		• Core container: min/max ordering, custom key projections, NaN policy
//		• Event stream: every structural step reported synchronously, in order
//		• Atomicity: failed mutations roll back to the pre-call storage
//		• Self-checks: full invariant scans, on demand or sampled every N ops
//		• Sinks: logrus logging and Prometheus metrics, composable via Fanout
//		• Trace: journals, plain-text tree rendering, step-by-step sort replays
//
// ✨ Why choose HeapVisualizer?
//
//   - Teaching-friendly – the event stream shows exactly what the algorithm did
//   - Honest failures – rollback on error, sentinel errors for errors.Is
//   - Pure data structure – single-threaded, no hidden goroutines
//   - Extensible – one small Observer interface, bring your own canvas
//
// Under the hood, everything is organized under three subpackages:
//
//	heap/  — the container: Push/Pop/Extend, derived ops, verification, events
//	sinks/ — ready-made observers: logrus one-liners, Prometheus collectors
//	trace/ — recording, ASCII tree rendering and sort walkthroughs
//
// Quick ASCII example:
//
//	    1
//	   ╱ ╲
//	  4   2
//	 ╱ ╲
//	8   5
//
//	represents the storage slice [1 4 2 8 5] in complete-binary-tree layout.
//
// Dive into docs/HEAP.md for the event catalogue and worked sift traces.
//
//	go get github.com/mrggrmexe/HeapVisualizer
package heapvisualizer
