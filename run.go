// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/iox"
)

// Exec drives a task to completion on the calling goroutine, one tick per
// iteration. Ticks are paced with adaptive backoff (iox.Backoff) so
// wall-clock combinators such as [Wait] make progress without spinning hot.
// Does not spawn goroutines or create channels. Never returns for tasks
// that never complete, such as [Repeat].
func Exec[R any](t Task[R]) R {
	var bo iox.Backoff
	for {
		s := t.Step()
		if v, ok := s.Value(); ok {
			return v
		}
		t, _ = s.Next()
		bo.Wait()
	}
}

// Run interleaves two tasks on the calling goroutine, stepping each at most
// once per iteration in fixed order (a first, then b), and returns both
// results. Unlike [Race], neither side cancels the other; both are driven
// to completion. Ticks are paced with adaptive backoff. Does not spawn
// goroutines or create channels.
func Run[A, B any](a Task[A], b Task[B]) (A, B) {
	var (
		resultA A
		resultB B
	)
	doneA, doneB := false, false
	var bo iox.Backoff
	for !doneA || !doneB {
		if !doneA {
			s := a.Step()
			if v, ok := s.Value(); ok {
				resultA, doneA = v, true
			} else {
				a, _ = s.Next()
			}
		}
		if !doneB {
			s := b.Step()
			if v, ok := s.Value(); ok {
				resultB, doneB = v, true
			} else {
				b, _ = s.Next()
			}
		}
		if !doneA || !doneB {
			bo.Wait()
		}
	}
	return resultA, resultB
}
