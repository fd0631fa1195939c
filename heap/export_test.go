// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// export_test.go — test-bridge (white-box) for the external heap_test
// package. Exposes just enough internals to corrupt storage deliberately
// and to reference panic messages without magic strings in tests. Compiles
// only with the test binary; invisible in production builds.

package heap

// CorruptAt_TestOnly overwrites storage slot i in place, bypassing the
// guard, the events and the invariant — for self-check tests only.
func (h *Heap[T]) CorruptAt_TestOnly(i int, v T) { h.data[i] = v }

// Panic message exports, mirroring the option constructor constants.
const (
	PanicNilKeyFunc_TestOnly  = panicNilKeyFunc
	PanicNilKeyBy_TestOnly    = panicNilKeyBy
	PanicNilObserver_TestOnly = panicNilObserver
	PanicBadMode_TestOnly     = panicBadMode
	PanicBadNaN_TestOnly      = panicBadNaN
	PanicNoKeyFunc_TestOnly   = panicNoKeyFunc
)
