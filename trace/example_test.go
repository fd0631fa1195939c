package trace_test

import (
	"fmt"

	"github.com/mrggrmexe/HeapVisualizer/heap"
	"github.com/mrggrmexe/HeapVisualizer/trace"
)

////////////////////////////////////////////////////////////////////////////////
// Rendering
////////////////////////////////////////////////////////////////////////////////

// ExampleTree demonstrates the array-order tree drawing of a storage slice.
func ExampleTree() {
	fmt.Print(trace.Tree([]int{1, 4, 2, 8, 5, 3}))
	// Output:
	// 1
	// ├── 4
	// │   ├── 8
	// │   └── 5
	// └── 2
	//     └── 3
}

// ExampleRender demonstrates the summary line plus tree for a live heap.
func ExampleRender() {
	h := heap.NewNumeric(heap.WithItems(4, 9, 2, 7))
	fmt.Print(trace.Render(h))
	// Output:
	// min-heap size=4 depth=3
	// 2
	// ├── 7
	// │   └── 9
	// └── 4
}

////////////////////////////////////////////////////////////////////////////////
// Journaling & walkthroughs
////////////////////////////////////////////////////////////////////////////////

// ExampleRecorder_Filter demonstrates narrowing a journal down to the
// structural steps of the mutations it watched.
func ExampleRecorder_Filter() {
	rec := trace.NewRecorder(0)
	h := heap.NewNumeric[int](heap.WithObserver[int](rec))

	_ = h.Push(5)
	_ = h.Push(2)

	for _, r := range rec.Filter(heap.EventCompare, heap.EventSwap) {
		fmt.Println(r.Seq, r.Event)
	}
	// Output:
	// 6 compare
	// 7 swap
}

// ExampleSorted demonstrates extracting a full ordering without touching
// the source heap.
func ExampleSorted() {
	h := heap.NewNumeric[int]()
	for _, v := range []int{5, 3, 8, 1} {
		_ = h.Push(v)
	}

	sorted, _ := trace.Sorted(h)
	fmt.Println(sorted)
	fmt.Println(h.ToSlice())
	// Output:
	// [1 3 5 8]
	// [1 3 8 5]
}
