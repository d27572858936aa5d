// Package sam3x8e hands out the SAM3X8E peripheral blocks. Each block can be
// taken once; the owner is the only code that touches its registers.
package sam3x8e

import (
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
	"duecode-go/errcode"
)

// LEDPort and LEDLine locate the Arduino Due "L" LED, PB27.
const (
	LEDPort = pio.PortB
	LEDLine = 27
)

// Peripherals is the one-time ownership token for the chip.
type Peripherals struct {
	rtt *rtt.Block
	pmc *pmc.Block
	pio [4]*pio.Block
}

var taken bool

// Take returns the token the first time it is called and (nil, false)
// afterwards.
func Take() (*Peripherals, bool) {
	if taken {
		return nil, false
	}
	taken = true
	p := &Peripherals{
		rtt: rttBlock(),
		pmc: pmcBlock(),
	}
	for i := range p.pio {
		p.pio[i] = pioBlock(pio.Port(i))
	}
	return p, true
}

// TakeRTT moves the RTT block out of the token.
func (p *Peripherals) TakeRTT() *rtt.Block {
	if p.rtt == nil {
		errcode.Fatal(errcode.PeripheralTaken, "sam3x8e.TakeRTT", "RTT")
	}
	b := p.rtt
	p.rtt = nil
	return b
}

// TakePMC moves the PMC block out of the token.
func (p *Peripherals) TakePMC() *pmc.Block {
	if p.pmc == nil {
		errcode.Fatal(errcode.PeripheralTaken, "sam3x8e.TakePMC", "PMC")
	}
	b := p.pmc
	p.pmc = nil
	return b
}

// TakePIO moves one PIO port block out of the token.
func (p *Peripherals) TakePIO(port pio.Port) *pio.Block {
	if port > pio.PortD {
		errcode.Fatal(errcode.InvalidField, "sam3x8e.TakePIO", "no such port")
	}
	if p.pio[port] == nil {
		errcode.Fatal(errcode.PeripheralTaken, "sam3x8e.TakePIO", port.String())
	}
	b := p.pio[port]
	p.pio[port] = nil
	return b
}

// PIOPeripheral maps a port to its PMC clock gate.
func PIOPeripheral(port pio.Port) pmc.Peripheral {
	return pmc.PIDPIOA + pmc.Peripheral(port)
}
