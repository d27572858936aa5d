//go:build tinygo

package sam3x8e

import (
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
	"duecode-go/mmio"
)

func rttBlock() *rtt.Block { return mmio.At[rtt.Block](rtt.Address) }
func pmcBlock() *pmc.Block { return mmio.At[pmc.Block](pmc.Address) }

func pioBlock(p pio.Port) *pio.Block { return mmio.At[pio.Block](p.Address()) }
