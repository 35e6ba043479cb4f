// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package acidlist

import (
	"sync/atomic"

	"github.com/petenewcomb/acidlist/internal/listnode"
)

// List is a concurrent doubly-linked list. The zero value is not usable;
// construct one with [New].
//
// Every exported method is safe to call concurrently from multiple
// goroutines. Individual [*Iterator] values are not: see the package
// documentation's "Misuse" section.
type List[T any] struct {
	head listnode.Handle[T]
	tail listnode.Handle[T]
	size atomic.Int64
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{
		head: listnode.New(*new(T)),
		tail: listnode.New(*new(T)),
	}
	l.head.Node().Lock()
	l.head.Node().SetNext(l.tail.Retain())
	l.head.Node().Unlock()

	l.tail.Node().Lock()
	l.tail.Node().SetPrev(l.head.Retain())
	l.tail.Node().Unlock()

	return l
}

// Len returns the number of live (non-sentinel, non-tombstoned) elements, as
// an atomic snapshot. Per §4.C, a concurrent mutation may not yet be
// reflected, but the returned value is always between the pre- and
// post-operation counts of any call that is concurrent with it.
func (l *List[T]) Len() int {
	return int(l.size.Load())
}

// Begin returns an iterator to the list's first element. If a concurrent
// erase has raced ahead, the returned iterator may momentarily reference a
// tombstoned node; dereferencing it is still well-defined (it returns that
// node's value), and advancing it skips forward to the next live element.
func (l *List[T]) Begin() *Iterator[T] {
	return &Iterator[T]{list: l, h: l.head.Node().LockedNext()}
}

// End returns an iterator representing one-past-the-last element: the
// list's tail sentinel. [List.Insert] inserts before this position;
// comparing an iterator's [Iterator.AtEnd] to true indicates it has reached
// this position via [Iterator.Advance].
func (l *List[T]) End() *Iterator[T] {
	return &Iterator[T]{list: l, h: l.tail.Retain()}
}

// PushBack inserts value at the end of the list and returns an iterator to
// the new element. It is equivalent to Insert(l.End(), value).
func (l *List[T]) PushBack(value T) *Iterator[T] {
	end := l.End()
	defer end.Release()
	return l.Insert(end, value)
}

// PushFront inserts value at the beginning of the list and returns an
// iterator to the new element. It is equivalent to Insert(l.Begin(), value).
func (l *List[T]) PushFront(value T) *Iterator[T] {
	begin := l.Begin()
	defer begin.Release()
	return l.Insert(begin, value)
}

// Insert inserts value immediately before the position named by pos and
// returns an iterator to the new element. pos must be an iterator obtained
// from this same list (including via [List.End]); passing an iterator from
// another list is undefined behavior.
//
// If pos names a node that has already been tombstoned, Insert first
// forward-skips to the next live position (§9 "Open question — insert at a
// tombstoned position": this implementation always lands on a node
// reachable from [List.Begin], never splices into a dead tombstone chain).
func (l *List[T]) Insert(pos *Iterator[T], value T) *Iterator[T] {
	if pos.list != l {
		panic("acidlist: iterator belongs to a different list")
	}

	// target is a working handle owned by this call; every loop iteration
	// leaves exactly one owned reference in it, released on every exit path
	// below (there is no single defer because the forward-skip loop below
	// reassigns it to a newly retained handle).
	target := pos.h.Retain()

	for {
		// Forward-skip tombstones (§4.C step 2).
		for target.Node().Tombstoned() {
			next := target.Node().LockedNext()
			target.Release()
			target = next
		}

		// Snapshot predecessor (§4.C step 3).
		prev := target.Node().LockedPrev()

		// Acquire in list order: predecessor before successor (§4.C step 4).
		prev.Node().Lock()
		target.Node().Lock()

		// Validate (§4.C step 5).
		if target.Node().Tombstoned() || !target.Node().RawPrev().Equal(prev) {
			target.Node().Unlock()
			prev.Node().Unlock()
			prev.Release()
			continue
		}

		// Commit (§4.C step 6). newHandle starts with one reference, owned by
		// this local variable, which transfers to the returned iterator below.
		newHandle := listnode.New(value)
		newHandle.Node().SetPrev(prev.Retain())
		newHandle.Node().SetNext(target.Retain())

		// prev.next and target.prev are being repointed at newHandle; release
		// the reference each field's old value (target and prev, resp.) held
		// before overwriting it, so the net refcount of each is unchanged.
		oldNext := prev.Node().RawNext()
		prev.Node().SetNext(newHandle.Retain())
		oldNext.Release()

		oldPrev := target.Node().RawPrev()
		target.Node().SetPrev(newHandle.Retain())
		oldPrev.Release()

		l.size.Add(1)

		target.Node().Unlock()
		prev.Node().Unlock()

		target.Release()
		prev.Release()

		return &Iterator[T]{list: l, h: newHandle}
	}
}

// Erase logically removes the element it points to and returns an iterator
// to the next live element (or [List.End] if none remains). It is
// idempotent: calling Erase with an iterator whose node has already been
// tombstoned — whether by a previous call or by a concurrent caller racing
// on a separate iterator to the same element — is a no-op that returns an
// iterator at [List.End]; it does not walk forward to the next live element.
//
// pos must be an iterator obtained from this same list; it is unaffected by
// the call and continues to dereference to the erased element's value.
func (l *List[T]) Erase(pos *Iterator[T]) *Iterator[T] {
	if pos.list != l {
		panic("acidlist: iterator belongs to a different list")
	}

	// n is borrowed from pos for the duration of this call: pos.h keeps it
	// alive, so n never needs its own retain/release.
	n := pos.h
	for {
		if n.Node().Tombstoned() {
			// Already erased, by this call's race loser or an earlier call
			// through any iterator to this element (§4.C erase step 1): a
			// no-op that reports the list's end rather than walking forward.
			return &Iterator[T]{list: l, h: l.tail.Retain()}
		}

		prev, next := n.Node().LockedLinks()

		prev.Node().Lock()
		n.Node().Lock()
		next.Node().Lock()

		if n.Node().Tombstoned() ||
			!n.Node().RawPrev().Equal(prev) ||
			!n.Node().RawNext().Equal(next) {
			next.Node().Unlock()
			n.Node().Unlock()
			prev.Node().Unlock()
			next.Release()
			prev.Release()
			continue
		}

		// Commit (§4.C erase step 5). n retains its own prev/next handles
		// unchanged so that iterators still on n can advance out of the
		// tombstone chain (§3 invariant 4).
		n.Node().MarkTombstone()

		oldNext := prev.Node().RawNext()
		prev.Node().SetNext(next.Retain())
		oldNext.Release()

		oldPrev := next.Node().RawPrev()
		next.Node().SetPrev(prev.Retain())
		oldPrev.Release()

		l.size.Add(-1)

		// n.mu is still held exclusively here, so a locked read would deadlock
		// against itself (sync.RWMutex is not reentrant); read n's own next
		// raw and retain it manually instead, as Insert's commit does for
		// prev/target above.
		result := n.Node().RawNext().Retain()

		next.Node().Unlock()
		n.Node().Unlock()
		prev.Node().Unlock()
		next.Release()
		prev.Release()

		return &Iterator[T]{list: l, h: result}
	}
}

// Clear repeatedly erases the first element until the list is empty. It is
// not atomic with respect to concurrent inserts: an insert racing with
// Clear may survive it, leaving the list non-empty when Clear returns (§9
// "Open question — clear semantics under concurrency").
func (l *List[T]) Clear() {
	for {
		it := l.Begin()
		if it.AtEnd() {
			it.Release()
			return
		}
		next := l.Erase(it)
		it.Release()
		next.Release()
	}
}

// Values returns a snapshot slice of every live element's value, in list
// order, obtained by walking from Begin to End. It takes no write lock and
// is intended for tests and debugging; it is not a splice/sort/range API.
func (l *List[T]) Values() []T {
	var vs []T
	it := l.Begin()
	defer it.Release()
	for !it.AtEnd() {
		vs = append(vs, it.Value())
		it.Advance()
	}
	return vs
}
