// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package acidlist

import "github.com/petenewcomb/acidlist/internal/listnode"

// Iterator is a stable cursor into a [List] (§4.D). It continues to
// dereference to the value of the element it was created against even after
// that element is erased; advancing it skips forward (or backward) past any
// tombstoned elements to the next live one, or to the list's end (or
// beginning).
//
// An *Iterator is not safe for concurrent use by multiple goroutines: two
// goroutines may each hold and use their own, independent iterator to the
// same element, but must not share one *Iterator value. See the package
// documentation's "Misuse" section.
type Iterator[T any] struct {
	list *List[T]
	h    listnode.Handle[T]
}

// Value returns the value of the element this iterator refers to. This is
// well-defined even if the element has since been erased (§3, §4.D): the
// value is immutable after the element was constructed and is not released
// while any iterator still holds a handle to it.
func (it *Iterator[T]) Value() T {
	return it.h.Node().Value()
}

// AtEnd reports whether it has reached the list's end position (the
// position named by [List.End]).
func (it *Iterator[T]) AtEnd() bool {
	return it.h.Equal(it.list.tail)
}

// AtBegin reports whether it has been retreated past the first live
// element, to the list's head sentinel. This is the backward-direction
// counterpart to AtEnd and is never true for an iterator obtained from
// [List.Begin], [List.Insert], or [List.PushFront]/[List.PushBack] — only
// for one that has been walked backward past the first element with
// [Iterator.Retreat].
func (it *Iterator[T]) AtBegin() bool {
	return it.h.Equal(it.list.head)
}

// Advance moves it to the next live element, skipping any tombstoned nodes
// encountered along the way (§4.D). It returns false if the new position is
// the list's end. Advancing an iterator that is already at the end is
// undefined behavior (§6).
func (it *Iterator[T]) Advance() bool {
	if it.AtEnd() {
		panic("acidlist: advance past end")
	}
	next := it.h.Node().LockedNext()
	for next.Node().Tombstoned() && !next.Equal(it.list.tail) {
		after := next.Node().LockedNext()
		next.Release()
		next = after
	}
	it.h.Release()
	it.h = next
	return !it.AtEnd()
}

// Retreat moves it to the previous live element, skipping any tombstoned
// nodes encountered along the way. It returns false if the new position is
// the list's head (§4.D's symmetric backward advance). Retreating an
// iterator that is already at the head sentinel is undefined behavior (§6).
func (it *Iterator[T]) Retreat() bool {
	if it.AtBegin() {
		panic("acidlist: retreat past begin")
	}
	prev := it.h.Node().LockedPrev()
	for prev.Node().Tombstoned() && !prev.Equal(it.list.head) {
		before := prev.Node().LockedPrev()
		prev.Release()
		prev = before
	}
	it.h.Release()
	it.h = prev
	return !it.AtBegin()
}

// Equal reports whether it and o refer to the same position of the same
// list (§4.D: pointer-equality of node identity).
func (it *Iterator[T]) Equal(o *Iterator[T]) bool {
	return it.list == o.list && it.h.Equal(o.h)
}

// Clone returns an independent iterator at the same position as it. Unlike
// a plain Go assignment of a *Iterator, which would alias the same cursor,
// Clone creates a second, independently advanceable cursor that shares a
// reference to the same underlying node.
func (it *Iterator[T]) Clone() *Iterator[T] {
	return &Iterator[T]{list: it.list, h: it.h.Retain()}
}

// Release drops it's reference to the node it points to. Callers that are
// done with an iterator should call Release so that, once no other
// reference remains, the node can be torn down via the non-recursive
// worklist cascade (§4.B) rather than waiting on garbage collection alone.
// Releasing an iterator that has already been released, or using it
// afterward, is undefined behavior.
func (it *Iterator[T]) Release() {
	it.h.Release()
}
