// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coop provides a cooperative task-scheduling algebra: suspendable,
// resumable behaviors expressed as composable values and advanced one
// discrete tick at a time by an external driver.
//
// A [Task] is a zero-argument callable producing one [Step] per invocation.
// A Step is a closed three-way outcome: completed with a value, suspended
// with a continuation, or preempting with a continuation. Preemption is a
// suspension carrying an intent-to-finish-soon signal; [Race] and [When]
// react to it, everything else passes it through unchanged.
//
// # Architecture
//
//   - Representation: suspension is plain data. [Step] is a closed tagged
//     union with exactly three cases, inspected via accessors or [MatchStep].
//     No runtime-managed execution context is involved.
//   - Composition: [Pure], [Bind], [Then], [Map], [Discard] form the
//     sequencing layer; [Yield] and [PreemptYield] are the suspension leaves.
//   - Concurrency: [Race] interleaves two tasks at tick granularity on one
//     goroutine, resolving with left-before-right precedence and cancelling
//     the loser structurally (its continuation is never stepped again).
//   - Polling: [When] re-evaluates a condition task from scratch each tick
//     and claims control with a single preempting tick before its action runs.
//   - Timing: [Wait] and [WaitDoing] read an injected monotonic [Clock] each
//     tick, tolerating variable tick duration.
//
// # Integration
//
//   - Driving: a [Driver] owns one handle per logical agent and advances each
//     exactly once per [Driver.Tick]. Spawning is non-blocking over a bounded
//     SPSC queue via [code.hybscloud.com/lfq], returning
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//   - Blocking: [Exec] and [Run] evaluate tasks to completion on the calling
//     goroutine using adaptive backoff, without goroutines or channels.
//
// # Discipline
//
//   - Single-tick atomicity: one external step call advances a composed task
//     by exactly one constituent step.
//   - Stability: stepping past completion is legal and idempotent; a
//     completed chain keeps yielding the same value.
//   - Determinism: combinators step their constituents in fixed
//     first-argument-before-second order, so tie-breaks are reproducible.
//
// # Example
//
//	d := coop.NewDriver()
//	patrol := coop.Repeat(coop.Then(moveOnce, coop.Yield()))
//	d.Spawn(patrol)
//	for frame := 0; frame < 60; frame++ {
//		d.Tick()
//	}
package coop
