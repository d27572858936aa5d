// Package rtt drives the SAM3X8E real-time timer: a 32-bit counter clocked
// from the 32.768 kHz slow clock through a 16-bit prescaler. The counter is
// the firmware's only time source.
package rtt

import "duecode-go/mmio"

// Address is the RTT base on the SAM3X8E.
const Address = 0x400E_1A30

// Approx1msPrescaler gives a tick of 32/32768 s, roughly 0.98 ms.
const Approx1msPrescaler = 0x20

// Register types.
type (
	Mode   struct{} // RTT_MR
	Alarm  struct{} // RTT_AR
	Value  struct{} // RTT_VR
	Status struct{} // RTT_SR
)

// RTT_MR fields.
var (
	Prescaler          = mmio.Uint[Mode, uint16](0, 16)
	AlarmInterrupt     = mmio.Bit[Mode](16)
	IncrementInterrupt = mmio.Bit[Mode](17)
	Restart            = mmio.Bit[Mode](18)
)

// RTT_SR fields.
var (
	AlarmStatus     = mmio.Bit[Status](0)
	IncrementStatus = mmio.Bit[Status](1)
)

// Block is the RTT register map.
type Block struct {
	Mode   mmio.RW[Mode]   // 0x0
	Alarm  mmio.RW[Alarm]  // 0x4
	Value  mmio.RO[Value]  // 0x8
	Status mmio.RO[Status] // 0xC
}
