// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// unit is the pre-built completion continuation shared by both suspension
// primitives; yielding costs exactly one tick, then completes with unit.
var unit Task[struct{}] = Pure(struct{}{})

// Yield returns a task that suspends cooperatively for one tick and
// completes with unit on the next.
func Yield() Task[struct{}] {
	return func() Step[struct{}] {
		return Suspended(unit)
	}
}

// PreemptYield returns a task with the same one-tick timing as [Yield]
// but with the preempting suspension kind: it signals "I intend to finish
// very soon", allowing [Race] to cancel a competing branch and [When] to
// claim control.
func PreemptYield() Task[struct{}] {
	return func() Step[struct{}] {
		return Preempting(unit)
	}
}
