// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/lfq"
)

// spawnCapacity is the bounded capacity of the driver's spawn queue.
// Spawns beyond what one frame admits return iox.ErrWouldBlock; 16 covers
// a frame's worth of spawns while keeping the ring buffer small.
const spawnCapacity = 16

// agent pairs a handle serial with its current continuation.
type agent struct {
	task   Task[struct{}]
	serial Serial
}

// Driver owns one task handle per logical agent and advances each exactly
// once per [Driver.Tick]. Handles are stepped in spawn order, so tie-break
// outcomes are deterministic and reproducible across runs.
//
// Spawning goes through a bounded single-producer single-consumer queue:
// one producer goroutine may call Spawn while another drives Tick. Tick and
// the remaining methods must all be called from the consumer side.
type Driver struct {
	agents []agent
	spawnQ lfq.SPSC[agent]
}

// NewDriver creates an empty driver.
func NewDriver() *Driver {
	d := &Driver{}
	d.spawnQ.Init(spawnCapacity)
	return d
}

// Spawn registers a new agent behavior and returns its handle serial.
// Non-blocking: returns iox.ErrWouldBlock when the spawn queue is full;
// the task is not registered and the call may be retried after the next
// Tick drains the queue. The agent joins the stepping order at the start
// of the next Tick.
func (d *Driver) Spawn(t Task[struct{}]) (Serial, error) {
	a := agent{task: t, serial: nextSerial()}
	if err := d.spawnQ.Enqueue(&a); err != nil {
		return 0, err
	}
	return a.serial, nil
}

// Tick advances the simulation by one frame: pending spawns are admitted
// in arrival order, then every live handle is stepped exactly once. On
// suspension (either kind) the continuation replaces the handle; on
// completion the agent is retired. Returns the number of live agents.
func (d *Driver) Tick() int {
	for {
		a, err := d.spawnQ.Dequeue()
		if err != nil {
			break
		}
		d.agents = append(d.agents, a)
	}
	kept := d.agents[:0]
	for _, a := range d.agents {
		s := a.task.Step()
		if next, ok := s.Next(); ok {
			a.task = next
			kept = append(kept, a)
		}
	}
	for i := len(kept); i < len(d.agents); i++ {
		d.agents[i] = agent{}
	}
	d.agents = kept
	return len(d.agents)
}

// Stop abandons the handle with the given serial, reporting whether it was
// live. The task's continuation is simply never stepped again.
func (d *Driver) Stop(serial Serial) bool {
	for i, a := range d.agents {
		if a.serial == serial {
			d.agents = append(d.agents[:i], d.agents[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of live agents, excluding spawns not yet admitted
// by a Tick.
func (d *Driver) Len() int {
	return len(d.agents)
}
