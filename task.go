// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Task is a resumable computation represented as data: a zero-argument
// callable producing exactly one [Step] per invocation. A Task is immutable;
// stepping it does not mutate it but returns a continuation. Whoever holds
// the current continuation is the sole owner; once stepped, the old value
// is discarded in favor of the continuation.
type Task[T any] func() Step[T]

// Step advances the task by exactly one tick.
func (t Task[T]) Step() Step[T] {
	return t()
}

// Pure lifts a value into a task that completes immediately.
// Stepping it any number of times yields the same Completed(v).
func Pure[T any](v T) Task[T] {
	return func() Step[T] {
		return Completed(v)
	}
}

// Bind sequences p with k: k receives p's result once p completes, and is
// invoked at most once per step call of the composed task. While p has not
// completed, its suspension kind passes through unchanged. When p completes
// within a step call, k's task is stepped once within the same call.
func Bind[A, B any](p Task[A], k func(A) Task[B]) Task[B] {
	return func() Step[B] {
		s := p.Step()
		if x, ok := s.Value(); ok {
			return k(x).Step()
		}
		next, _ := s.Next()
		if s.IsPreempting() {
			return Preempting(Bind(next, k))
		}
		return Suspended(Bind(next, k))
	}
}

// Then sequences p with q, discarding p's result.
func Then[A, B any](p Task[A], q Task[B]) Task[B] {
	return Bind(p, func(A) Task[B] { return q })
}

// Map applies f to the task's completion value, preserving suspension kind.
func Map[A, B any](t Task[A], f func(A) B) Task[B] {
	return func() Step[B] {
		s := t.Step()
		if x, ok := s.Value(); ok {
			return Completed(f(x))
		}
		next, _ := s.Next()
		if s.IsPreempting() {
			return Preempting(Map(next, f))
		}
		return Suspended(Map(next, f))
	}
}

// Discard maps any completion value to unit, preserving suspension kind.
func Discard[A any](t Task[A]) Task[struct{}] {
	return Map(t, func(A) struct{} { return struct{}{} })
}
