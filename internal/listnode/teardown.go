// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package listnode

import (
	"sync"

	"github.com/gammazero/deque"
)

// teardownable is the type-erased view of a *Node[T] that the non-recursive
// teardown cascade operates on. A single worklist implementation serves
// every instantiation of Node[T] because the interface's method set doesn't
// depend on T.
type teardownable interface {
	// release clears this node's own links and value — cutting it loose so
	// the garbage collector can reclaim it — and decrements the reference
	// count of each neighbor it held an edge to. It returns the neighbors
	// (at most two: prev and next) whose count reached zero as a result of
	// that decrement, i.e. the next nodes the cascade must also finalize.
	release() []teardownable
}

func (n *Node[T]) release() []teardownable {
	prev, next := n.prev, n.next
	n.prev = Handle[T]{}
	n.next = Handle[T]{}
	var zero T
	n.value = zero

	var ready []teardownable
	if prev.n != nil && prev.n.refcount.Add(-1) == 0 {
		ready = append(ready, prev.n)
	}
	if next.n != nil && next.n.refcount.Add(-1) == 0 {
		ready = append(ready, next.n)
	}
	return ready
}

// worklistPool holds the explicit stacks used to make node teardown
// iterative instead of recursive (§4.B). Each pooled worklist is a LIFO
// built from a deque used purely as a stack (PushBack/PopBack), the same way
// the wider example corpus uses a deque as one side of a queue or stack
// depending on which pair of ends it drives. Pooling it mirrors the
// NodePool pattern used for queue node reuse elsewhere in the corpus: a
// sync.Pool entry is effectively goroutine/thread local for the lifetime of
// one teardown call, created lazily on first use and reclaimed by the
// runtime, never holding anything between calls.
var worklistPool = sync.Pool{
	New: func() any {
		return &deque.Deque[teardownable]{}
	},
}

// teardown runs the non-recursive cascade described in §4.B: when a handle's
// release brings a node's refcount to zero, that node (and, transitively,
// any neighbor whose only remaining reference was this node's own prev/next
// edge) is finalized using an explicit worklist rather than recursion. This
// bounds stack usage to O(1) regardless of how long a chain of nodes drops
// at once (§8 property 8, "bounded-stack teardown").
func teardown[T any](n *Node[T]) {
	wl, _ := worklistPool.Get().(*deque.Deque[teardownable])
	defer func() {
		wl.Clear()
		worklistPool.Put(wl)
	}()

	wl.PushBack(teardownable(n))
	for wl.Len() > 0 {
		cur := wl.PopBack()
		ready := cur.release()
		for _, next := range ready {
			wl.PushBack(next)
		}
	}
}
