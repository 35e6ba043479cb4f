// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package listnode_test

import (
	"testing"

	"github.com/petenewcomb/acidlist/internal/listnode"
	"github.com/stretchr/testify/require"
)

// buildChain creates n nodes linked only in the forward direction via next,
// each one retained by its predecessor, and returns a handle to the first
// node. This models the "tombstone chain" shape described in §3 invariant 4
// and §9: a run of nodes kept alive solely by their own outgoing edges.
func buildChain(n int) listnode.Handle[int] {
	head := listnode.New(0)
	cur := head
	for i := 1; i < n; i++ {
		next := listnode.New(i)
		cur.Node().Lock()
		cur.Node().SetNext(next) // transfers the one reference next owns
		cur.Node().Unlock()
		cur = next
	}
	return head
}

// TestLongChainTeardownDoesNotOverflow builds and releases a chain long
// enough that a naive recursive destructor was observed (per §4.B) to
// overflow the stack in the original implementation, and confirms the
// non-recursive worklist completes instead (§8 property 8, scenario S6).
func TestLongChainTeardownDoesNotOverflow(t *testing.T) {
	const n = 200_000
	head := buildChain(n)
	head.Release()
}

// TestTeardownStopsAtExternallyHeldNode verifies that releasing a chain's
// head does not tear down a node still referenced by another handle (e.g.
// an iterator), and that teardown correctly resumes past that node only
// once it, too, is released.
func TestTeardownStopsAtExternallyHeldNode(t *testing.T) {
	chk := require.New(t)

	head := buildChain(5)

	// Walk to the middle node and retain an extra, independent reference to
	// it, as an iterator would.
	first := head.Node().LockedNext()
	mid := first.Node().LockedNext()
	first.Release()
	extra := mid.Retain()

	// Dropping the head's chain should stop cascading once it reaches mid,
	// since mid's refcount won't reach zero while extra is held.
	head.Release()
	mid.Release()

	chk.Equal(2, extra.Node().Value(), "still-referenced node's value survives")

	// Releasing the last external reference lets the remainder of the chain
	// finalize without panicking.
	extra.Release()
}

// TestTeardownIsIdempotentPerHandle ensures that releasing independently
// retained handles to the same node only tears it down once (the final
// release), regardless of order.
func TestTeardownIsIdempotentPerHandle(t *testing.T) {
	h := listnode.New("only")
	a := h.Retain()
	b := h.Retain()

	h.Release()
	a.Release()
	b.Release()
}
