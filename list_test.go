// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package acidlist_test

import (
	"testing"

	"github.com/petenewcomb/acidlist"
	"github.com/stretchr/testify/require"
)

// TestBasicOrder covers scenario S1: push_back three elements in order and
// walk the list front to back.
func TestBasicOrder(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	l.PushBack(1).Release()
	l.PushBack(2).Release()
	l.PushBack(3).Release()

	chk.Equal(3, l.Len())
	chk.Equal([]int{1, 2, 3}, l.Values())
}

func TestPushFrontOrder(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	l.PushFront(1).Release()
	l.PushFront(2).Release()
	l.PushFront(3).Release()

	chk.Equal([]int{3, 2, 1}, l.Values())
}

func TestInsertBeforePosition(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[string]()
	l.PushBack("a").Release()
	c := l.PushBack("c")

	mid := l.Insert(c, "b")
	c.Release()
	mid.Release()

	chk.Equal([]string{"a", "b", "c"}, l.Values())
}

func TestEraseReturnsNextLive(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	l.PushBack(1).Release()
	it2 := l.PushBack(2)
	defer it2.Release()
	l.PushBack(3).Release()

	next := l.Erase(it2)
	defer next.Release()

	chk.Equal(3, next.Value())
	chk.Equal([]int{1, 3}, l.Values())
	chk.Equal(2, l.Len())
}

// TestEraseIsIdempotent covers scenario S3 in single-threaded form: erasing
// the same position repeatedly through the same iterator is a safe no-op
// after the first call, and the iterator keeps dereferencing to the original
// value (§4.C, §8 property 5).
func TestEraseIsIdempotent(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	it := l.PushBack(1)
	defer it.Release()

	first := l.Erase(it)
	second := l.Erase(it)
	defer first.Release()
	defer second.Release()

	chk.Equal(0, l.Len())
	chk.Equal(1, it.Value(), "iterator still dereferences to the erased value")
	chk.True(first.AtEnd())
	chk.True(second.AtEnd())
}

// TestAdvanceSkipsTombstones covers §4.D's skip-forward-past-tombstones
// behavior and §8 property 4 (tombstone-skip termination).
func TestAdvanceSkipsTombstones(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	first := l.PushBack(1)
	mid := l.PushBack(2)
	last := l.PushBack(3)
	defer first.Release()
	defer last.Release()

	l.Erase(mid).Release()
	mid.Release()

	it := l.Begin()
	defer it.Release()
	chk.Equal(1, it.Value())
	chk.True(it.Advance())
	chk.Equal(3, it.Value())
	chk.False(it.Advance())
	chk.True(it.AtEnd())
}

func TestIteratorSurvivesConcurrentErase(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	it := l.PushBack(42)

	done := make(chan *acidlist.Iterator[int])
	go func() {
		done <- l.Erase(it)
	}()
	next := <-done
	defer next.Release()

	chk.Equal(42, it.Value(), "iterator still reads the pre-erase value")
	it.Release()
	chk.Equal(0, l.Len())
}

func TestClearEmptiesList(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	for i := range 10 {
		l.PushBack(i).Release()
	}
	l.Clear()
	chk.Equal(0, l.Len())
	chk.Empty(l.Values())
}

func TestCloneIsIndependent(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	l.PushBack(1).Release()
	l.PushBack(2).Release()

	it := l.Begin()
	defer it.Release()
	clone := it.Clone()
	defer clone.Release()

	chk.True(it.Equal(clone))
	clone.Advance()
	chk.False(it.Equal(clone))
	chk.Equal(1, it.Value())
	chk.Equal(2, clone.Value())
}

func TestRetreatFromEnd(t *testing.T) {
	chk := require.New(t)

	l := acidlist.New[int]()
	l.PushBack(1).Release()
	l.PushBack(2).Release()

	it := l.End()
	defer it.Release()
	chk.True(it.Retreat())
	chk.Equal(2, it.Value())
	chk.True(it.Retreat())
	chk.Equal(1, it.Value())
	chk.False(it.Retreat())
	chk.True(it.AtBegin())
}

func TestInsertRejectsForeignIterator(t *testing.T) {
	chk := require.New(t)

	a := acidlist.New[int]()
	b := acidlist.New[int]()
	foreign := b.Begin()
	defer foreign.Release()

	chk.Panics(func() {
		a.Insert(foreign, 1)
	})
}

func TestAdvancePastEndPanics(t *testing.T) {
	l := acidlist.New[int]()
	it := l.End()
	defer it.Release()

	require.Panics(t, func() {
		it.Advance()
	})
}
