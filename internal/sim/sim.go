// Package sim stands in for the SAM3X8E peripherals on the host. Blocks are
// ordinary memory; sim drives the registers the hardware would.
package sim

import (
	"duecode-go/device/sam3x8e"
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
)

// RTT models the real-time timer counter. It implements schedule.Clock.
type RTT struct {
	b       *rtt.Block
	perRead uint32
	reads   uint64
}

// NewRTT drives b. With perRead > 0 the counter advances by that much after
// every read, so busy loops make progress on their own.
func NewRTT(b *rtt.Block, perRead uint32) *RTT {
	return &RTT{b: b, perRead: perRead}
}

// Step advances the counter by n ticks. RTTINC is raised for any increment and
// ALMS when the counter reaches or passes ALARM.
func (r *RTT) Step(n uint32) {
	if n == 0 {
		return
	}
	old := r.b.Value.Read()
	v := old + n
	r.b.Value.Drive(v)

	st := r.b.Status.Read() | rtt.IncrementStatus.Mask()
	if a := r.b.Alarm.Read(); old < a && a <= v {
		st |= rtt.AlarmStatus.Mask()
	}
	r.b.Status.Drive(st)
}

// Ticks reads VALUE, then advances it by perRead.
func (r *RTT) Ticks() uint32 {
	v := r.b.Value.Read()
	r.reads++
	r.Step(r.perRead)
	return v
}

// ClearStatus is the read-to-clear of RTT_SR.
func (r *RTT) ClearStatus() { r.b.Status.Drive(0) }

// Reads is the number of Ticks calls so far.
func (r *RTT) Reads() uint64 { return r.reads }

// Board is a simulated Arduino Due: the peripheral blocks taken from the
// sam3x8e token plus the RTT model driving them.
type Board struct {
	RTTBlock *rtt.Block
	PMC      *pmc.Block
	PIO      [4]*pio.Block
	Counter  *RTT
}

// NewBoard takes the peripherals. It fails if they are already taken.
func NewBoard(perRead uint32) (*Board, bool) {
	p, ok := sam3x8e.Take()
	if !ok {
		return nil, false
	}
	b := &Board{
		RTTBlock: p.TakeRTT(),
		PMC:      p.TakePMC(),
	}
	for i := range b.PIO {
		b.PIO[i] = p.TakePIO(pio.Port(i))
	}
	b.Counter = NewRTT(b.RTTBlock, perRead)
	return b, true
}

// Level is the level the PIO drives on port/line.
func (b *Board) Level(port pio.Port, line uint8) bool {
	return b.PIO[port].OutputData.Read()&pio.Line(line).Mask() != 0
}

// Pad sets PDSR for port/line as if the pin were driven externally.
func (b *Board) Pad(port pio.Port, line uint8, high bool) {
	r := &b.PIO[port].PinData
	m := pio.Line(line).Mask()
	if high {
		r.Drive(r.Read() | m)
	} else {
		r.Drive(r.Read() &^ m)
	}
}
