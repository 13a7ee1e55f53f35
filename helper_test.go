// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"time"

	"code.hybscloud.com/coop"
)

// effect wraps a side effect as an instantly completing task.
// Not stable across re-steps; used only where tests own the handle.
func effect(f func()) coop.Task[struct{}] {
	return func() coop.Step[struct{}] {
		f()
		return coop.Completed(struct{}{})
	}
}

// check wraps a predicate as an instantly completing condition task,
// freshly evaluated on every step.
func check(f func() bool) coop.Task[bool] {
	return func() coop.Step[bool] {
		return coop.Completed(f())
	}
}

// beacon returns a never-completing task that bumps the counter on every
// tick, for observing exactly how often a combinator steps a branch.
func beacon(n *int) coop.Task[struct{}] {
	var loop coop.Task[struct{}]
	loop = func() coop.Step[struct{}] {
		*n++
		return coop.Suspended(loop)
	}
	return loop
}

// stepN advances t by n ticks, following continuations, and returns the
// last step observed together with the task to step next.
func stepN[T any](t coop.Task[T], n int) (coop.Step[T], coop.Task[T]) {
	var s coop.Step[T]
	for i := 0; i < n; i++ {
		s = t.Step()
		if next, ok := s.Next(); ok {
			t = next
		}
	}
	return s, t
}

// tickClock is a deterministic clock advancing by a fixed increment on
// every reading, mirroring how the wall clock moves between frames.
type tickClock struct {
	now time.Time
	inc time.Duration
}

func (c *tickClock) Now() time.Time {
	c.now = c.now.Add(c.inc)
	return c.now
}
