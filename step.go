// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// stepKind tags the three outcomes of advancing a task one tick.
// The set is closed: combinator correctness depends on there being
// exactly these three cases.
type stepKind uint8

const (
	stepCompleted stepKind = iota
	stepSuspended
	stepPreempting
)

// Step is the outcome of advancing a [Task] by one tick: completed with a
// value, suspended with a continuation, or preempting with a continuation.
// Preempting is a suspension carrying an intent-to-finish-soon signal,
// interpreted only by [Race] and [When].
type Step[T any] struct {
	value T
	next  Task[T]
	kind  stepKind
}

// Completed returns the terminal outcome carrying v.
func Completed[T any](v T) Step[T] {
	return Step[T]{value: v, kind: stepCompleted}
}

// Suspended returns the cooperative pause outcome; the next tick resumes
// at next.
func Suspended[T any](next Task[T]) Step[T] {
	return Step[T]{next: next, kind: stepSuspended}
}

// Preempting returns the preemptive pause outcome; the next tick resumes
// at next. Signals that the task intends to finish very soon and competing
// tasks may be cancelled.
func Preempting[T any](next Task[T]) Step[T] {
	return Step[T]{next: next, kind: stepPreempting}
}

// IsCompleted reports whether the step is terminal.
func (s Step[T]) IsCompleted() bool {
	return s.kind == stepCompleted
}

// IsSuspended reports whether the step is a cooperative pause.
func (s Step[T]) IsSuspended() bool {
	return s.kind == stepSuspended
}

// IsPreempting reports whether the step is a preemptive pause.
func (s Step[T]) IsPreempting() bool {
	return s.kind == stepPreempting
}

// Value returns the completion value. ok is false unless the step
// is completed.
func (s Step[T]) Value() (T, bool) {
	if s.kind != stepCompleted {
		var zero T
		return zero, false
	}
	return s.value, true
}

// Next returns the continuation. ok is false when the step is completed,
// in which case there is nothing left to resume.
func (s Step[T]) Next() (Task[T], bool) {
	if s.kind == stepCompleted {
		return nil, false
	}
	return s.next, true
}

// MatchStep applies exactly one of the three case functions to s.
func MatchStep[T, R any](
	s Step[T],
	onCompleted func(T) R,
	onSuspended func(Task[T]) R,
	onPreempting func(Task[T]) R,
) R {
	switch s.kind {
	case stepCompleted:
		return onCompleted(s.value)
	case stepSuspended:
		return onSuspended(s.next)
	default:
		return onPreempting(s.next)
	}
}
