// Package heap implements a self-verifying, instrumented binary heap: an
// array-backed priority container supporting min/max ordering, custom key
// projection, NaN-safe comparison, structural self-checks and fine-grained
// lifecycle notifications for every structural mutation.
//
// The package exists to make heap mechanics observable. Every comparison,
// exchange and relocation performed by a sift walk is reported to a
// registered observer as a discrete event, in program order, so a front end
// can animate exactly what the algorithm did — no batching, no inference.
//
// # Model
//
// Storage is one slice in complete-binary-tree layout: index 0 is the root,
// the children of i sit at 2i+1 and 2i+2, the parent of i at (i-1)/2. The
// invariant is that every parent is preferred-or-equal to its children under
// the configured triple (Mode, KeyFunc, NaNPolicy), and it holds at the
// start and end of every public operation.
//
// Elements are any comparable type; ordering comes from an explicit key
// projection onto float64:
//
//	type KeyFunc[T any] func(T) (float64, error)
//
// Numeric element types can act as their own keys via NewNumeric /
// NumericKey; everything else supplies a projection. NaN keys are handled
// by explicit policy: rejected (NaNRaise), or coerced to -Inf / +Inf
// (NaNCoerceMin / NaNCoerceMax).
//
// # Construction
//
//	h := heap.NewNumeric[int]()                        // min-heap of ints
//	h := heap.New[task](heap.WithKeyFunc(byDeadline),  // custom elements
//	    heap.WithMode[task](heap.MaxHeap),
//	    heap.WithVerifyEvery[task](100),
//	    heap.WithItems(backlog...))
//
// Option constructors panic on meaningless arguments (nil key projection,
// unknown mode); operations themselves never panic at runtime.
//
// # Operations
//
// Mutations: Push, Pop, Clear, Extend, Heapify, ToggleMode, SetMode,
// Remove, RemoveAll, RemoveAt, PushPop, Replace, Merge, Drain.
// Queries: Peek, Len, IsEmpty, ToSlice, NLargest, IsValid, Validate,
// Depth, IsPerfect, Stats, Clone, String.
//
// Expected-empty conditions are not errors: Pop and Peek return
// (zero, false) on an empty heap. Errors are reserved for invalid keys,
// re-entrant mutation, incompatible merges, Replace on empty, and
// invariant breakage; branch on them with errors.Is against the package
// sentinels.
//
// # Failure atomicity
//
// Push, Pop, Clear and Extend snapshot the storage before their risky
// portion and restore it verbatim when key computation or a sift walk
// fails, then return the original error: callers observe full success or
// full no-op. The sampled self-check (WithVerifyEvery) scans the complete
// invariant every N-th operation and promotes a violation into that
// operation's error.
//
// # Observation
//
// An Observer receives (Event, Attrs) pairs synchronously during the
// operation that caused them. The event set is closed — see events.go —
// and compare/swap carry the indices and elements of each pairwise step.
// Oversized attribute renderings are truncated to 200 runes with a
// trailing ellipsis. A panicking observer is recovered and dropped; it can
// never corrupt or abort a heap operation. An observer must not call back
// into any mutating operation: the mutation guard rejects the inner call
// with ErrReentrantMutation while the outer operation completes normally.
//
// # Concurrency
//
// Single-threaded by contract. The heap takes no locks and owns its
// backing storage exclusively; callers sharing a heap across goroutines
// must serialize access externally.
//
// See: docs/HEAP.md for the event catalogue, attribute tables and worked
// sift traces.
package heap
