package pmc

import (
	"duecode-go/errcode"
	"duecode-go/mmio"
)

// Peripheral is a SAM3X8E peripheral identifier. Ids 2..31 are gated through
// PMC_PCER0/PCDR0, ids 32..44 through PMC_PCER1/PCDR1.
type Peripheral uint8

const (
	PIDSupplyController Peripheral = 0
	PIDResetController  Peripheral = 1
	PIDRTC              Peripheral = 2
	PIDRTT              Peripheral = 3
	PIDWatchdog         Peripheral = 4
	PIDPMC              Peripheral = 5
	PIDEEFC0            Peripheral = 6
	PIDEEFC1            Peripheral = 7
	PIDUART             Peripheral = 8
	PIDSMC              Peripheral = 9
	PIDPIOA             Peripheral = 11
	PIDPIOB             Peripheral = 12
	PIDPIOC             Peripheral = 13
	PIDPIOD             Peripheral = 14
	PIDUSART0           Peripheral = 17
	PIDUSART1           Peripheral = 18
	PIDUSART2           Peripheral = 19
	PIDUSART3           Peripheral = 20
	PIDHSMCI            Peripheral = 21
	PIDTWI0             Peripheral = 22
	PIDTWI1             Peripheral = 23
	PIDSPI0             Peripheral = 24
	PIDSSC              Peripheral = 26
	PIDTC0              Peripheral = 27
	PIDTC1              Peripheral = 28
	PIDTC2              Peripheral = 29
	PIDTC3              Peripheral = 30
	PIDTC4              Peripheral = 31
	PIDTC5              Peripheral = 32
	PIDTC6              Peripheral = 33
	PIDTC7              Peripheral = 34
	PIDTC8              Peripheral = 35
	PIDPWM              Peripheral = 36
	PIDADC              Peripheral = 37
	PIDDACC             Peripheral = 38
	PIDDMAC             Peripheral = 39
	PIDUOTGHS           Peripheral = 40
	PIDTRNG             Peripheral = 41
	PIDEMAC             Peripheral = 42
	PIDCAN0             Peripheral = 43
	PIDCAN1             Peripheral = 44

	firstGated Peripheral = 2
	lastGated  Peripheral = 44
)

// ClockField0 is the PCER0/PCDR0/PCSR0 bit of a peripheral id in 2..31.
func ClockField0(pid Peripheral) mmio.Field[PeripheralClock0, bool] {
	if pid < firstGated || pid > 31 {
		errcode.Fatal(errcode.InvalidField, "pmc.ClockField0", "peripheral id outside 2..31")
	}
	return mmio.Bit[PeripheralClock0](uint8(pid))
}

// ClockField1 is the PCER1/PCDR1/PCSR1 bit of a peripheral id in 32..44.
func ClockField1(pid Peripheral) mmio.Field[PeripheralClock1, bool] {
	if pid < 32 || pid > lastGated {
		errcode.Fatal(errcode.InvalidField, "pmc.ClockField1", "peripheral id outside 32..44")
	}
	return mmio.Bit[PeripheralClock1](uint8(pid - 32))
}

// ProgrammableClockOutput selects PCK0..PCK2.
type ProgrammableClockOutput uint8

const (
	PCKOut0 ProgrammableClockOutput = iota
	PCKOut1
	PCKOut2
)

func (o ProgrammableClockOutput) field() mmio.Field[SystemClock, bool] {
	switch o {
	case PCKOut0:
		return PCK0
	case PCKOut1:
		return PCK1
	case PCKOut2:
		return PCK2
	}
	errcode.Fatal(errcode.InvalidField, "pmc.ProgrammableClockOutput", "no such output")
	return mmio.Field[SystemClock, bool]{}
}

// ---------------- Write protection type-state ----------------
//
// A controller is either Unlocked or Locked. Only *Unlocked has mutating
// methods; a caller holding *Locked cannot express a clock change. A
// transition consumes its receiver: the old handle is emptied and any later
// use panics with errcode.HandleConsumed.

// view holds the operations legal in both states.
type view struct {
	b *Block
}

func (v *view) block(op string) *Block {
	if v.b == nil {
		errcode.Fatal(errcode.HandleConsumed, op, "write-protection handle already transitioned")
	}
	return v.b
}

// take empties the handle and returns its block.
func (v *view) take(op string) *Block {
	b := v.block(op)
	v.b = nil
	return b
}

// PeripheralClockEnabled reports PCSR0/PCSR1 for pid.
func (v *view) PeripheralClockEnabled(pid Peripheral) bool {
	b := v.block("pmc.PeripheralClockEnabled")
	if pid < 32 {
		return mmio.ReadField(&b.PeripheralClock0, ClockField0(pid))
	}
	return mmio.ReadField(&b.PeripheralClock1, ClockField1(pid))
}

// USBOTGEnabled reports the UOTGCLK bit of SCSR.
func (v *view) USBOTGEnabled() bool {
	return mmio.ReadField(&v.block("pmc.USBOTGEnabled").SystemClock, USBOTGClock)
}

func (v *view) ProgrammableClockEnabled(o ProgrammableClockOutput) bool {
	return mmio.ReadField(&v.block("pmc.ProgrammableClockEnabled").SystemClock, o.field())
}

// WriteProtectViolation returns PMC_WPSR. Reading it in hardware clears it.
func (v *view) WriteProtectViolation() (violated bool, source uint16) {
	w := v.block("pmc.WriteProtectViolation").WriteProtectStatus.Load()
	return WPViolation.Get(w), WPViolationSource.Get(w)
}

// Unlocked is a controller with write protection disabled.
type Unlocked struct {
	view
}

// Locked is a controller with write protection enabled.
type Locked struct {
	view
}

// New takes ownership of the block in the Unlocked state, the PMC reset state.
func New(b *Block) *Unlocked {
	return &Unlocked{view{b: b}}
}

func writeProtect(b *Block, enable bool) {
	b.WriteProtectMode.WriteWithZero(func(w mmio.Word[WriteProtectMode]) mmio.Word[WriteProtectMode] {
		return WPEnable.With(WPKey.With(w, WriteProtectKey), enable)
	})
}

// Lock writes {key, WPEN=1} and returns the Locked handle.
func (c *Unlocked) Lock() *Locked {
	b := c.take("pmc.Lock")
	writeProtect(b, true)
	return &Locked{view{b: b}}
}

// Unlock on an Unlocked handle re-writes {key, WPEN=0}.
func (c *Unlocked) Unlock() *Unlocked {
	b := c.take("pmc.Unlock")
	writeProtect(b, false)
	return &Unlocked{view{b: b}}
}

// Unlock writes {key, WPEN=0} and returns the Unlocked handle.
func (c *Locked) Unlock() *Unlocked {
	b := c.take("pmc.Unlock")
	writeProtect(b, false)
	return &Unlocked{view{b: b}}
}

// Lock on a Locked handle re-writes {key, WPEN=1}.
func (c *Locked) Lock() *Locked {
	b := c.take("pmc.Lock")
	writeProtect(b, true)
	return &Locked{view{b: b}}
}

// ---------------- Mutators (Unlocked only) ----------------

// EnablePeripheralClock writes the peripheral's bit to PCER0 or PCER1.
// Other peripherals are unaffected.
func (c *Unlocked) EnablePeripheralClock(pid Peripheral) {
	b := c.block("pmc.EnablePeripheralClock")
	if pid < 32 {
		b.PeripheralClock0.SetBits(ClockField0(pid).Mask())
		return
	}
	b.PeripheralClock1.SetBits(ClockField1(pid).Mask())
}

// DisablePeripheralClock writes the peripheral's bit to PCDR0 or PCDR1.
func (c *Unlocked) DisablePeripheralClock(pid Peripheral) {
	b := c.block("pmc.DisablePeripheralClock")
	if pid < 32 {
		b.PeripheralClock0.ResetBits(ClockField0(pid).Mask())
		return
	}
	b.PeripheralClock1.ResetBits(ClockField1(pid).Mask())
}

func (c *Unlocked) EnableUSBOTG() {
	c.block("pmc.EnableUSBOTG").SystemClock.SetBits(USBOTGClock.Mask())
}

func (c *Unlocked) DisableUSBOTG() {
	c.block("pmc.DisableUSBOTG").SystemClock.ResetBits(USBOTGClock.Mask())
}

func (c *Unlocked) EnableProgrammableClock(o ProgrammableClockOutput) {
	c.block("pmc.EnableProgrammableClock").SystemClock.SetBits(o.field().Mask())
}

func (c *Unlocked) DisableProgrammableClock(o ProgrammableClockOutput) {
	c.block("pmc.DisableProgrammableClock").SystemClock.ResetBits(o.field().Mask())
}

// ConfigureProgrammableClock selects source and prescaler for PCKx.
func (c *Unlocked) ConfigureProgrammableClock(o ProgrammableClockOutput, src ProgrammableSource, pres ProcessorPrescaler) {
	b := c.block("pmc.ConfigureProgrammableClock")
	b.ProgrammableClock[o.index()].WriteWithZero(func(w mmio.Word[ProgrammableClock]) mmio.Word[ProgrammableClock] {
		return PCKPrescaler.With(PCKSource.With(w, src), pres)
	})
}

func (o ProgrammableClockOutput) index() int {
	if o > PCKOut2 {
		errcode.Fatal(errcode.InvalidField, "pmc.ProgrammableClockOutput", "no such output")
	}
	return int(o)
}
