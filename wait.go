// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"time"
)

// Clock is the injected monotonic time source consumed by the timed-wait
// combinators. Injection keeps timing-dependent tasks deterministically
// testable. Readings must be monotonic: a completed wait re-stepped with a
// clock that moves backwards would un-complete, violating stability.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the [Clock] interface.
type ClockFunc func() time.Time

// Now implements [Clock].
func (f ClockFunc) Now() time.Time {
	return f()
}

// WallClock reads the system monotonic clock.
var WallClock Clock = ClockFunc(time.Now)

// WaitDoing suspends until interval has elapsed on clock, invoking action
// each waiting tick with the elapsed duration. The first step captures the
// start timestamp and suspends; each later tick compares a fresh clock
// reading against the interval, so variable tick duration is tolerated.
//
// The per-tick action is stepped exactly once for its immediate side effect;
// its continuation is discarded, so an action that itself needs to suspend
// across ticks is truncated.
func WaitDoing(clock Clock, action func(time.Duration) Task[struct{}], interval time.Duration) Task[struct{}] {
	return func() Step[struct{}] {
		return Suspended(waitFrom(clock, action, interval, clock.Now()))
	}
}

func waitFrom(clock Clock, action func(time.Duration) Task[struct{}], interval time.Duration, t0 time.Time) Task[struct{}] {
	var tick Task[struct{}]
	tick = func() Step[struct{}] {
		elapsed := clock.Now().Sub(t0)
		if elapsed >= interval {
			return Completed(struct{}{})
		}
		action(elapsed).Step()
		return Suspended(tick)
	}
	return tick
}

// Wait suspends until interval has elapsed on clock, doing nothing in
// between.
func Wait(clock Clock, interval time.Duration) Task[struct{}] {
	return WaitDoing(clock, waitIdle, interval)
}

func waitIdle(time.Duration) Task[struct{}] {
	return unit
}
