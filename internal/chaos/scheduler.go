// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package chaos provides a deterministic discrete-event scheduler for
// exploring the interleavings of concurrent operations against the acidlist
// package in property-based tests. Rather than relying on the Go runtime's
// actual (non-reproducible) goroutine scheduling to surface races, callers
// register each step of a simulated goroutine as an event at a logical time;
// when more than one event is ready at the same logical time, the scheduler
// asks rapid to draw one of their orderings, which makes a failing
// interleaving reproducible and shrinkable the same way any other rapid
// property is.
package chaos

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
	"pgregory.net/rapid"
)

// Scheduler runs a set of simulated goroutines (called "actors") against a
// shared logical clock, resuming exactly one ready actor at a time so that
// every interleaving is reproducible from the rapid seed that drove it.
type Scheduler struct {
	t      *rapid.T
	clock  int64
	events heap.Heap[event, heap.Min]
}

type actor struct {
	name   string
	resume chan struct{}
	done   chan struct{}
}

type event struct {
	at int64
	a  *actor
}

func (e *event) Cmp(o *event) int {
	return cmp.Compare(e.at, o.at)
}

// New creates a scheduler bound to the rapid property currently running in
// t, which supplies the random choices made whenever more than one actor is
// ready at the same logical instant.
func New(t *rapid.T) *Scheduler {
	return &Scheduler{t: t}
}

// Actor is a simulated goroutine body. It receives a Handle used to yield
// control cooperatively to the scheduler.
type Actor func(h *Handle)

// Handle lets a running actor body yield to the scheduler.
type Handle struct {
	s *Scheduler
	a *actor
}

// Yield cooperatively hands control back to the scheduler, to be resumed at
// a nondeterministically chosen later point alongside whichever other
// actors are also ready. Place a Yield between every pair of [List]/
// [Iterator] calls whose relative order across actors should be explored.
func (h *Handle) Yield() {
	heap.PushOrderable(&h.s.events, event{at: h.s.clock + 1, a: h.a})
	h.a.resume <- struct{}{}
	<-h.a.resume
}

// Run launches every actor in actors as a goroutine and drives them to
// completion, drawing a random permutation from t whenever more than one
// actor is ready at the same logical time.
func (s *Scheduler) Run(actors map[string]Actor) {
	started := make([]*actor, 0, len(actors))
	for name, body := range actors {
		a := &actor{name: name, resume: make(chan struct{}), done: make(chan struct{})}
		started = append(started, a)
		go func(a *actor, body Actor) {
			<-a.resume
			body(&Handle{s: s, a: a})
			close(a.done)
		}(a, body)
		heap.PushOrderable(&s.events, event{at: 0, a: a})
	}

	for {
		ev, ok := heap.PopOrderable(&s.events)
		if !ok {
			break
		}
		s.clock = ev.at
		batch := []*actor{ev.a}
		for {
			next, ok := heap.Peek(&s.events)
			if !ok || next.at != s.clock {
				break
			}
			ev2, _ := heap.PopOrderable(&s.events)
			batch = append(batch, ev2.a)
		}
		if len(batch) > 1 {
			// Put the batch in a fixed order first, so that the drawn
			// permutation does not depend on map iteration or heap tie order.
			slices.SortFunc(batch, func(x, y *actor) int { return cmp.Compare(x.name, y.name) })
			batch = rapid.Permutation(batch).Draw(s.t, "interleaving")
		}
		for _, a := range batch {
			a.resume <- struct{}{}
			select {
			case <-a.done:
			case <-a.resume:
				// a called Yield again and is now waiting to be resumed;
				// it already re-pushed its own next event onto the heap.
			}
		}
	}

	for _, a := range started {
		<-a.done
	}
}
