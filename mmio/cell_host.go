//go:build !tinygo

package mmio

import "sync/atomic"

// Cell is one 32-bit word of simulated hardware. Host builds back every
// register with ordinary memory; atomic loads and stores stand in for
// volatile access so the compiler cannot fold repeated reads.
type Cell struct {
	v uint32
}

func (c *Cell) Load() uint32   { return atomic.LoadUint32(&c.v) }
func (c *Cell) Store(v uint32) { atomic.StoreUint32(&c.v, v) }

// Drive sets a read-only register from the hardware side. It exists only on
// host builds, where a simulation stands in for the peripheral.
func (r *RO[R]) Drive(v uint32) { r.c.Store(v) }

// settle models the status word of a set/reset/status triple: bits written
// to the set address read back as 1, bits written to the reset address as 0.
func (r *SRS[R]) settle(set, reset uint32) {
	r.Status.c.Store((r.Status.c.Load() | set) &^ reset)
}

// Last returns the value most recently stored at a write-only address. Host
// only; the bus never reads these back.
func (r *WO[R]) Last() uint32 { return r.c.Load() }
