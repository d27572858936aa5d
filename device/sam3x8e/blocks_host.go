//go:build !tinygo

package sam3x8e

import (
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
)

// Host builds back every block with zeroed memory. A simulation drives the
// read-only registers through mmio.RO.Drive.

func rttBlock() *rtt.Block { return new(rtt.Block) }
func pmcBlock() *pmc.Block { return new(pmc.Block) }

func pioBlock(pio.Port) *pio.Block { return new(pio.Block) }

// Reset makes Take issue a fresh token. Host only.
func Reset() { taken = false }
