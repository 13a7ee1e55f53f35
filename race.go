// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Race runs two tasks concurrently at tick granularity. Each tick steps
// both constituents in fixed order (a first, then b) and resolves by
// precedence:
//
//  1. a completed: Completed(Left), b discarded regardless of its outcome.
//  2. b completed: Completed(Right), a discarded.
//  3. a preempting: b dropped entirely; the race continues as a alone,
//     mapped into Left.
//  4. b preempting: symmetric, mapped into Right.
//  5. both merely suspended: both continue next tick.
//
// Cancellation is structural: once a side is dropped, its continuation is
// never stepped again. There is no cancellation token and no cleanup hook;
// external state a dropped branch had begun mutating is the client's
// responsibility.
func Race[A, B any](a Task[A], b Task[B]) Task[kont.Either[A, B]] {
	return func() Step[kont.Either[A, B]] {
		sa := a.Step()
		sb := b.Step()
		if x, ok := sa.Value(); ok {
			return Completed(kont.Left[A, B](x))
		}
		if y, ok := sb.Value(); ok {
			return Completed(kont.Right[A](y))
		}
		ka, _ := sa.Next()
		kb, _ := sb.Next()
		if sa.IsPreempting() {
			return Preempting(Map(ka, kont.Left[A, B]))
		}
		if sb.IsPreempting() {
			return Preempting(Map(kb, kont.Right[A, B]))
		}
		return Suspended(Race(ka, kb))
	}
}

// RaceDiscard races two indefinite behaviors where only the side effects
// matter, discarding the winner's value.
func RaceDiscard[A, B any](a Task[A], b Task[B]) Task[struct{}] {
	return Discard(Race(a, b))
}
