// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/heap
//
// options_test.go — construction, options, accessors and clone semantics.

package heap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mrggrmexe/HeapVisualizer/heap"
)

// TestModeString verifies the Mode rendering, including out-of-range values.
func TestModeString(t *testing.T) {
	assert.Equal(t, "min", heap.MinHeap.String(), "MinHeap renders as min")
	assert.Equal(t, "max", heap.MaxHeap.String(), "MaxHeap renders as max")
	assert.Equal(t, "mode(7)", heap.Mode(7).String(), "unknown modes render numerically")
}

// TestNaNPolicyString verifies the NaNPolicy rendering.
func TestNaNPolicyString(t *testing.T) {
	assert.Equal(t, "raise", heap.NaNRaise.String())
	assert.Equal(t, "min", heap.NaNCoerceMin.String())
	assert.Equal(t, "max", heap.NaNCoerceMax.String())
	assert.Equal(t, "nan(9)", heap.NaNPolicy(9).String())
}

// TestDefaults verifies the documented construction defaults.
func TestDefaults(t *testing.T) {
	h := heap.NewNumeric[int]()

	assert.Equal(t, heap.MinHeap, h.Mode(), "default order is min")
	assert.Equal(t, heap.NaNRaise, h.NaNPolicy(), "default NaN policy rejects")
	assert.Equal(t, uint64(0), h.VerifyEvery(), "self-check sampling is off by default")
	assert.Equal(t, uint64(0), h.Operations(), "no operations completed yet")
	assert.True(t, h.IsEmpty())
}

// TestOptionPanics verifies that option constructors reject meaningless
// inputs by panicking with their documented messages.
func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, heap.PanicNilKeyFunc_TestOnly, func() {
		heap.WithKeyFunc[int](nil)
	})
	assert.PanicsWithValue(t, heap.PanicNilKeyBy_TestOnly, func() {
		heap.KeyBy[int](nil)
	})
	assert.PanicsWithValue(t, heap.PanicNilObserver_TestOnly, func() {
		heap.WithObserver[int](nil)
	})
	assert.PanicsWithValue(t, heap.PanicBadMode_TestOnly, func() {
		heap.WithMode[int](heap.Mode(42))
	})
	assert.PanicsWithValue(t, heap.PanicBadNaN_TestOnly, func() {
		heap.WithNaNPolicy[int](heap.NaNPolicy(42))
	})
}

// TestNewWithoutKeyPanics verifies that New refuses to build a heap that
// cannot compare anything.
func TestNewWithoutKeyPanics(t *testing.T) {
	assert.PanicsWithValue(t, heap.PanicNoKeyFunc_TestOnly, func() {
		heap.New[int]()
	})
}

// TestNewWithItems verifies batch construction: one linear rebuild, counted
// as one operation, yielding a valid heap.
func TestNewWithItems(t *testing.T) {
	h := heap.NewNumeric[int](heap.WithItems(9, 4, 7, 1, 6))

	assert.True(t, h.IsValid(), "initial rebuild must establish the invariant")
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, uint64(1), h.Operations(), "batch construction counts as one operation")

	root, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, root, "min-heap root is the minimum")
}

// TestNewWithUnkeyableBatchPanics verifies that a batch rejected by the key
// projection fails construction loudly.
func TestNewWithUnkeyableBatchPanics(t *testing.T) {
	// NaNRaise is the default policy, so a NaN element cannot be keyed.
	assert.Panics(t, func() {
		heap.NewNumeric[float64](heap.WithItems(1.0, math.NaN(), 2.0))
	})
}

// TestWithModeMax verifies max ordering end to end.
func TestWithModeMax(t *testing.T) {
	h := heap.NewNumeric[int](heap.WithMode[int](heap.MaxHeap), heap.WithItems(3, 9, 5))

	root, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, 9, root, "max-heap root is the maximum")
	assert.Equal(t, heap.MaxHeap, h.Mode())
}

// TestKeyBy verifies the infallible-projection adapter.
func TestKeyBy(t *testing.T) {
	byLen := heap.KeyBy(func(s string) float64 { return float64(len(s)) })
	h := heap.New[string](heap.WithKeyFunc(byLen), heap.WithItems("kiwi", "fig", "banana"))

	root, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, "fig", root, "shortest string wins under min ordering")
}

// TestToSliceIsACopy verifies that query results never alias live storage.
func TestToSliceIsACopy(t *testing.T) {
	h := heap.NewNumeric[int](heap.WithItems(2, 1, 3))

	s := h.ToSlice()
	s[0] = 999

	root, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, root, "mutating the returned slice must not touch the heap")
}

// TestClone verifies configuration copy, content independence, and that the
// observer and the operation counter stay behind.
func TestClone(t *testing.T) {
	events := 0
	h := heap.NewNumeric[int](
		heap.WithMode[int](heap.MaxHeap),
		heap.WithNaNPolicy[int](heap.NaNCoerceMin),
		heap.WithVerifyEvery[int](8),
		heap.WithItems(4, 2, 6),
	)
	h.SetObserver(heap.ObserverFunc(func(heap.Event, heap.Attrs) { events++ }))

	c := h.Clone()

	assert.Equal(t, h.ToSlice(), c.ToSlice(), "clone starts with identical contents")
	assert.Equal(t, heap.MaxHeap, c.Mode())
	assert.Equal(t, heap.NaNCoerceMin, c.NaNPolicy())
	assert.Equal(t, uint64(8), c.VerifyEvery())
	assert.Equal(t, uint64(0), c.Operations(), "clone starts a fresh operation history")

	// Mutating the clone fires no events and leaves the source untouched.
	before := h.ToSlice()
	events = 0
	assert.NoError(t, c.Push(100))
	assert.Zero(t, events, "the observer is not carried into clones")
	assert.Equal(t, before, h.ToSlice())
}

// TestString verifies the debug rendering for both modes.
func TestString(t *testing.T) {
	h := heap.NewNumeric[int](heap.WithItems(2, 1))
	assert.Equal(t, "<MinHeap [1 2]>", h.String())

	assert.NoError(t, h.SetMode(heap.MaxHeap))
	assert.Equal(t, "<MaxHeap [2 1]>", h.String())
}
