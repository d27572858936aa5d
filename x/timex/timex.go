// Package timex converts between RTT ticks and wall time.
package timex

import (
	"time"

	"duecode-go/x/mathx"
)

// SlowClockHz is the RTT input clock.
const SlowClockHz = 32768

// TickPeriodNs returns the tick period for a prescaler in nanoseconds.
// A prescaler of 0 behaves as 65536 on the RTT (RTPRES=0 selects 2^16).
func TickPeriodNs(prescaler uint16) uint64 {
	div := uint64(prescaler)
	if div == 0 {
		div = 1 << 16
	}
	return div * 1_000_000_000 / SlowClockHz
}

// TickPeriod is TickPeriodNs as a time.Duration.
func TickPeriod(prescaler uint16) time.Duration {
	return time.Duration(TickPeriodNs(prescaler))
}

// TicksForMs converts milliseconds to ticks, rounding to nearest.
// The result saturates at the 32-bit counter width.
func TicksForMs(ms uint32, prescaler uint16) uint32 {
	return mathx.SatU32(mathx.RoundDiv(uint64(ms)*1_000_000, TickPeriodNs(prescaler)))
}

// MsForTicks is the inverse of TicksForMs, rounding up so a wait of the
// result is never shorter than ticks.
func MsForTicks(ticks uint32, prescaler uint16) uint32 {
	return mathx.SatU32(mathx.CeilDiv(uint64(ticks)*TickPeriodNs(prescaler), 1_000_000))
}
