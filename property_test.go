// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"testing"
	"testing/quick"
	"time"

	"code.hybscloud.com/coop"
)

// TestPropertyPureIdempotent proves that stepping Pure(v) any number of
// times always yields Completed(v).
func TestPropertyPureIdempotent(t *testing.T) {
	property := func(v int, n uint8) bool {
		p := coop.Pure(v)
		steps := int(n%16) + 1
		for i := 0; i < steps; i++ {
			s := p.Step()
			got, ok := s.Value()
			if !ok || got != v {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyBindLeftIdentity proves Bind(Pure(x), k) is step-equivalent
// to k(x).Step() for all x.
func TestPropertyBindLeftIdentity(t *testing.T) {
	property := func(x int) bool {
		k := func(n int) coop.Task[int] { return coop.Pure(n*3 + 1) }
		bound, ok1 := coop.Bind(coop.Pure(x), k).Step().Value()
		direct, ok2 := k(x).Step().Value()
		return ok1 && ok2 && bound == direct
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyRaceLeftBias proves that simultaneous completion always
// resolves to the left value, whatever the payloads.
func TestPropertyRaceLeftBias(t *testing.T) {
	property := func(x, y int) bool {
		s := coop.Race(coop.Pure(x), coop.Pure(y)).Step()
		e, ok := s.Value()
		if !ok {
			return false
		}
		left, isLeft := e.GetLeft()
		return isLeft && left == x
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyRepeatNeverCompletes proves Repeat never yields a completion
// within any finite number of steps.
func TestPropertyRepeatNeverCompletes(t *testing.T) {
	property := func(n uint8) bool {
		r := coop.Repeat(coop.Pure(struct{}{}))
		for i := 0; i < int(n%64)+1; i++ {
			s := r.Step()
			if s.IsCompleted() {
				return false
			}
			r, _ = s.Next()
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyWaitTickIndex proves the wait boundary for arbitrary clock
// increments: with one reading per step and the first step capturing t0,
// a wait over interval completes on step 1 + ceil(interval/inc).
func TestPropertyWaitTickIndex(t *testing.T) {
	property := func(incMs uint16) bool {
		inc := time.Duration(int(incMs)%200+1) * time.Millisecond
		interval := time.Second
		clock := &tickClock{inc: inc}
		w := coop.Wait(clock, interval)

		wantTicks := 1 + int((interval+inc-1)/inc)
		for i := 1; ; i++ {
			s := w.Step()
			if s.IsCompleted() {
				return i == wantTicks
			}
			if i > wantTicks {
				return false
			}
			w, _ = s.Next()
		}
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
