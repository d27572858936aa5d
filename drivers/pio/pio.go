package pio

import "duecode-go/mmio"

// FilterMode selects the input glitch filter source.
type FilterMode uint8

const (
	Glitch   FilterMode = iota // master clock glitch filter
	Debounce                   // slow clock debounce filter
)

// Controller owns one PIO block. The peripheral clock of the port must be
// enabled in the PMC before inputs read anything; outputs work without it.
type Controller struct {
	b *Block
}

func New(b *Block) *Controller {
	return &Controller{b: b}
}

func mask(line uint8) uint32 { return Line(line).Mask() }

// ConfigureOutput hands the line to the PIO, turns its pull-up off and
// enables its output driver.
func (c *Controller) ConfigureOutput(line uint8) {
	m := mask(line)
	c.b.Enable.SetBits(m)
	c.b.PullUp.Disable.Write(m)
	c.b.Output.SetBits(m)
}

// ConfigureInput hands the line to the PIO with the output driver off.
func (c *Controller) ConfigureInput(line uint8, pullUp bool) {
	m := mask(line)
	c.b.Enable.SetBits(m)
	c.b.Output.ResetBits(m)
	if pullUp {
		c.b.PullUp.Enable.Write(m)
	} else {
		c.b.PullUp.Disable.Write(m)
	}
}

// ConfigurePeripheral releases the line to peripheral A or B.
func (c *Controller) ConfigurePeripheral(line uint8, sel Select) {
	mmio.WriteField(&c.b.PeripheralAB, SelectOf(line), sel)
	c.b.Enable.ResetBits(mask(line))
}

// Set drives the line through SODR or CODR. Both are issued every call.
func (c *Controller) Set(line uint8, high bool) {
	mmio.WriteField(&c.b.OutputData, Line(line), high)
}

func (c *Controller) High(line uint8) { c.b.OutputData.SetBits(mask(line)) }
func (c *Controller) Low(line uint8)  { c.b.OutputData.ResetBits(mask(line)) }

// OutputLevel reads ODSR: the level the PIO is driving, not the pad.
func (c *Controller) OutputLevel(line uint8) bool {
	return mmio.ReadField(&c.b.OutputData, Line(line))
}

// Toggle inverts the driven level and returns the new one.
func (c *Controller) Toggle(line uint8) bool {
	on := !c.OutputLevel(line)
	c.Set(line, on)
	return on
}

// Get reads PDSR, the pad level.
func (c *Controller) Get(line uint8) bool {
	return mmio.ReadField(&c.b.PinData, Line(line))
}

func (c *Controller) EnableInputFilter(line uint8)  { c.b.InputFilter.SetBits(mask(line)) }
func (c *Controller) DisableInputFilter(line uint8) { c.b.InputFilter.ResetBits(mask(line)) }

func (c *Controller) SetFilterMode(line uint8, m FilterMode) {
	if m == Debounce {
		c.b.FilterMode.Debounce.Write(mask(line))
		return
	}
	c.b.FilterMode.Glitch.Write(mask(line))
}

// SetSlowClockDivider sets the debounce period to 2*(div+1) slow clock
// cycles. div is truncated to 14 bits.
func (c *Controller) SetSlowClockDivider(div uint16) {
	mmio.WriteField(&c.b.SlowDivider, Divider, div)
}

func (c *Controller) EnableMultiDriver(line uint8)  { c.b.MultiDriver.SetBits(mask(line)) }
func (c *Controller) DisableMultiDriver(line uint8) { c.b.MultiDriver.ResetBits(mask(line)) }
