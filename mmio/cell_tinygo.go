//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Cell is one 32-bit hardware word. Every register access in the firmware
// goes through Load and Store; nothing above this file touches memory
// directly.
type Cell struct {
	reg volatile.Register32
}

func (c *Cell) Load() uint32   { return c.reg.Get() }
func (c *Cell) Store(v uint32) { c.reg.Set(v) }

// At places a register block at a fixed bus address.
func At[B any](addr uintptr) *B {
	return (*B)(unsafe.Pointer(addr))
}

// settle is a no-op on hardware; the peripheral updates its own status word.
func (r *SRS[R]) settle(set, reset uint32) {}
