// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Repeat runs body to completion, then restarts a fresh instance of body.
// It never completes; the driver must keep stepping it or abandon the
// handle. Each restart costs one suspended tick, keeping a single-tick
// bound even for bodies that complete instantly.
func Repeat(body Task[struct{}]) Task[struct{}] {
	return repeatFrom(body, body)
}

func repeatFrom(cur, body Task[struct{}]) Task[struct{}] {
	return func() Step[struct{}] {
		s := cur.Step()
		if s.IsCompleted() {
			return Suspended(repeatFrom(body, body))
		}
		next, _ := s.Next()
		if s.IsPreempting() {
			return Preempting(repeatFrom(next, body))
		}
		return Suspended(repeatFrom(next, body))
	}
}

// Loop iterates a stateful task: step returns Left(nextState) to continue
// with a fresh iteration or Right(result) to finish. Like [Repeat], each
// restart costs one suspended tick.
func Loop[S, A any](initial S, step func(S) Task[kont.Either[S, A]]) Task[A] {
	return loopFrom(step(initial), step)
}

func loopFrom[S, A any](cur Task[kont.Either[S, A]], step func(S) Task[kont.Either[S, A]]) Task[A] {
	return func() Step[A] {
		s := cur.Step()
		if e, ok := s.Value(); ok {
			if left, ok := e.GetLeft(); ok {
				return Suspended(loopFrom(step(left), step))
			}
			right, _ := e.GetRight()
			return Completed(right)
		}
		next, _ := s.Next()
		if s.IsPreempting() {
			return Preempting(loopFrom(next, step))
		}
		return Suspended(loopFrom(next, step))
	}
}
