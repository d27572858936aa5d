// Package pio drives the SAM3X8E parallel I/O controllers. Each port has 32
// lines and every register in the block is a 32-bit line mask.
package pio

import (
	"duecode-go/errcode"
	"duecode-go/mmio"
)

// Port bases on the SAM3X8E.
const (
	AddressA = 0x400E_0E00
	AddressB = 0x400E_1000
	AddressC = 0x400E_1200
	AddressD = 0x400E_1400
)

// Port names a PIO controller.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
)

// Address returns the block base for p.
func (p Port) Address() uintptr {
	switch p {
	case PortA:
		return AddressA
	case PortB:
		return AddressB
	case PortC:
		return AddressC
	case PortD:
		return AddressD
	}
	errcode.Fatal(errcode.InvalidField, "pio.Port", "no such port")
	return 0
}

func (p Port) String() string {
	if p > PortD {
		return "P?"
	}
	return "P" + string(rune('A'+p))
}

// Register types. Registers sharing a layout share a type.
type (
	Lines        struct{} // any one-bit-per-line register
	PeripheralAB struct{} // PIO_ABSR
	SlowDivider  struct{} // PIO_SCDR
)

// Line is the one-bit field for line n of a Lines register.
func Line(n uint8) mmio.Field[Lines, bool] {
	if n > 31 {
		errcode.Fatal(errcode.InvalidField, "pio.Line", "line out of range")
	}
	return mmio.Bit[Lines](n)
}

// Select is the peripheral a line is multiplexed to when the PIO does not
// drive it.
type Select uint8

const (
	PeripheralA Select = 0
	PeripheralB Select = 1
)

// SelectOf is the ABSR field for line n.
func SelectOf(n uint8) mmio.Field[PeripheralAB, Select] {
	if n > 31 {
		errcode.Fatal(errcode.InvalidField, "pio.SelectOf", "line out of range")
	}
	return mmio.Enum[PeripheralAB](n, 1, PeripheralA, PeripheralB)
}

// Divider is DIV in PIO_SCDR: debounce period = 2*(DIV+1) slow clock cycles.
var Divider = mmio.Uint[SlowDivider, uint16](0, 14)

// Block is the PIO register map, bit-exact to the SAM3X8E datasheet.
type Block struct {
	Enable         mmio.SRS[Lines]       // 0x00 PER, 0x04 PDR, 0x08 PSR
	_              [1]uint32             // 0x0C
	Output         mmio.SRS[Lines]       // 0x10 OER, 0x14 ODR, 0x18 OSR
	_              [1]uint32             // 0x1C
	InputFilter    mmio.SRS[Lines]       // 0x20 IFER, 0x24 IFDR, 0x28 IFSR
	_              [1]uint32             // 0x2C
	OutputData     mmio.SRS[Lines]       // 0x30 SODR, 0x34 CODR, 0x38 ODSR
	PinData        mmio.RO[Lines]        // 0x3C PDSR
	Interrupt      mmio.SR[Lines]        // 0x40 IER, 0x44 IDR
	InterruptMask  mmio.RO[Lines]        // 0x48 IMR
	InterruptStat  mmio.RO[Lines]        // 0x4C ISR
	MultiDriver    mmio.SRS[Lines]       // 0x50 MDER, 0x54 MDDR, 0x58 MDSR
	_              [1]uint32             // 0x5C
	PullUp         PullUpTriple          // 0x60 PUDR, 0x64 PUER, 0x68 PUSR
	_              [1]uint32             // 0x6C
	PeripheralAB   mmio.RW[PeripheralAB] // 0x70 ABSR
	_              [3]uint32             // 0x74..0x7C
	FilterMode     FilterSelect          // 0x80 SCIFSR, 0x84 DIFSR, 0x88 IFDGSR
	SlowDivider    mmio.RW[SlowDivider]  // 0x8C SCDR
	_              [4]uint32             // 0x90..0x9C
	OutputWriteEna mmio.SRS[Lines]       // 0xA0 OWER, 0xA4 OWDR, 0xA8 OWSR
}

// PullUpTriple is the one triple whose disable address comes first. PUSR
// reads 1 for lines whose pull-up is disabled.
type PullUpTriple struct {
	Disable mmio.WO[Lines] // PUDR
	Enable  mmio.WO[Lines] // PUER
	Status  mmio.RO[Lines] // PUSR
}

// FilterSelect picks the input filter of each line. IFDGSR reads 1 for lines
// on the debounce filter.
type FilterSelect struct {
	Glitch   mmio.WO[Lines] // SCIFSR
	Debounce mmio.WO[Lines] // DIFSR
	Status   mmio.RO[Lines] // IFDGSR
}
