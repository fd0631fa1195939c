// SPDX-License-Identifier: MIT
// Package: HeapVisualizer/trace
//
// render.go — plain-text rendering of heap storage as a rooted tree.
//
// Contract (strict):
//   • Layout follows the array form: children of index i sit at 2i+1 and
//     2i+2, left branch printed before right.
//   • Output is deterministic for a given storage slice.

package trace

import (
	"fmt"
	"strings"

	"github.com/mrggrmexe/HeapVisualizer/heap"
)

// Render returns a one-line summary of h followed by its storage drawn as
// a tree. A nil or empty heap renders as "(empty heap)".
//
// Complexity: O(n) nodes, O(depth) prefix per line.
func Render[T comparable](h *heap.Heap[T]) string {
	if h == nil || h.Len() == 0 {
		return "(empty heap)\n"
	}
	st := h.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "%s-heap size=%d depth=%d\n", st.Mode, st.Size, st.Depth)
	b.WriteString(Tree(h.ToSlice()))

	return b.String()
}

// Tree draws values as a rooted tree in array order, one node per line.
// An empty slice yields the empty string.
func Tree[T any](values []T) string {
	if len(values) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v\n", values[0])
	branch(&b, values, 0, "")

	return b.String()
}

// branch writes the subtrees of node i, extending prefix for each level.
func branch[T any](b *strings.Builder, values []T, i int, prefix string) {
	left, right := 2*i+1, 2*i+2
	kids := make([]int, 0, 2)
	if left < len(values) {
		kids = append(kids, left)
	}
	if right < len(values) {
		kids = append(kids, right)
	}
	for k, c := range kids {
		tie, grow := "├── ", "│   "
		if k == len(kids)-1 {
			tie, grow = "└── ", "    "
		}
		fmt.Fprintf(b, "%s%s%v\n", prefix, tie, values[c])
		branch(b, values, c, prefix+grow)
	}
}
