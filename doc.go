// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package acidlist provides a concurrent doubly-linked list whose iterators
// remain consistent across structural changes made by other goroutines.
//
// Unlike a list protected by a single mutex, acidlist allows insertion and
// deletion at different positions to proceed in parallel: each mutating
// operation takes locks only on the small, adjacent set of nodes it touches,
// using a fixed acquisition order (predecessor before successor) plus
// optimistic validation to detect and retry past concurrent changes to that
// same neighborhood. Dereferencing or advancing an iterator never blocks on
// a global lock.
//
// # Iterator stability
//
// An [Iterator] returned by [List.Begin], [List.Insert], or [List.Erase]
// continues to refer to the same element even if that element is later
// erased by another goroutine: [Iterator.Value] still returns the value
// present when the element was live, and [Iterator.Advance] skips forward
// past any tombstoned elements to the next live one (or to the end of the
// list). This is what lets one goroutine hold and dereference an iterator
// across the exact moment another goroutine erases that same position.
//
// # Erase is idempotent
//
// Calling [List.Erase] on an iterator whose node has already been removed —
// whether by a previous call through the same iterator or by a concurrent
// caller racing on an iterator to the same element — is a safe no-op that
// returns an iterator at [List.End].
//
// # What this package does not do
//
// There is no order-statistic or positional-index query, no splice/sort/
// range API beyond push/insert/erase/clear, and no multi-element
// transaction: each of [List.Insert], [List.Erase], [List.PushFront], and
// [List.PushBack] is atomic only with respect to itself. The locking
// protocol is lock-based with retry on validation failure, not lock-free, so
// there is no bounded-wait progress guarantee.
//
// # Misuse
//
// Passing an iterator from a different [List] to [List.Insert] or
// [List.Erase], stepping an iterator past [List.End] or before [List.Begin],
// or mutating the same [*Iterator] value concurrently from more than one
// goroutine without external synchronization are all programming errors;
// the methods involved panic or behave unpredictably rather than returning
// an error. Two goroutines may safely hold and use independent iterators to
// the same element at the same time — it is sharing one [*Iterator] object
// across goroutines that is unsafe.
package acidlist
