// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// When polls cond each tick and transfers control to action once it holds.
// Per tick:
//
//   - cond completes true: emit one preempting tick announcing the transfer
//     of control, then run action to completion on the following ticks and
//     return its result.
//   - cond completes false: emit one suspended tick and re-poll cond from
//     scratch next tick. The condition is a fresh evaluation each poll,
//     never resumed.
//   - cond suspends: counts as not yet true; same suspended tick, same
//     fresh re-poll.
//
// The single preempting tick lets a sibling branch inside a [Race] yield
// control cleanly exactly when the guard fires, avoiding a tick where two
// branches both believe they have won. A condition that never turns true
// suspends forever.
func When[A any](cond Task[bool], action Task[A]) Task[A] {
	var poll Task[A]
	poll = func() Step[A] {
		s := cond.Step()
		if v, ok := s.Value(); ok && v {
			return Preempting(action)
		}
		return Suspended(poll)
	}
	return poll
}
