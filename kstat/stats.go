// Package kstat holds the one piece of mutable state the narrowing kernel
// is allowed: per-primitive call counters exposed to the host. Counters are
// atomic so a host that runs independent constraints concurrently may share
// a single *Counters, or hand each worker its own.
package kstat

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
)

// Counters tracks primitive calls, primitive failures and accumulated call
// time between resets. The zero value is ready to use.
type Counters struct {
	calls atomic.Uint64
	fails atomic.Uint64
	nanos atomic.Int64
}

// NewCounters returns a fresh, zeroed Counters block.
func NewCounters() *Counters {
	return &Counters{}
}

// RecordCall increments primitive_calls by one and, if ok is false,
// primitive_fails as well. elapsed is added to user_time. Call this once
// per Narrower invocation from the dispatch layer (EvalNode in the root
// package).
func (c *Counters) RecordCall(ok bool, elapsed time.Duration) {
	c.calls.Add(1)
	if !ok {
		c.fails.Add(1)
	}
	c.nanos.Add(int64(elapsed))
}

// Snapshot is a point-in-time read of the three counters.
type Snapshot struct {
	Calls   uint64
	Fails   uint64
	UserTime time.Duration
}

// Snapshot returns the current counter values without resetting them.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Calls:    c.calls.Load(),
		Fails:    c.fails.Load(),
		UserTime: time.Duration(c.nanos.Load()),
	}
}

// Reset zeroes all three counters; it is the only way they move backward,
// since RecordCall only ever increments them between resets.
func (c *Counters) Reset() {
	c.calls.Store(0)
	c.fails.Store(0)
	c.nanos.Store(0)
}

// Verbose gates Trace's diagnostic output. It mirrors the teacher's own
// `debug`-gated fmt.Println dump in vrp.go's printSCCs: a single
// process-wide switch, off by default, with no logging framework behind it
// since nothing in the retrieved example pack wires one into a pure
// numeric kernel like this.
var Verbose atomic.Bool

// Trace writes a diagnostic line to stderr when Verbose is set. It is the
// kernel's entire logging surface.
func Trace(format string, args ...any) {
	if !Verbose.Load() {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
