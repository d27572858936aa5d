package rtt

import (
	"tinygo.org/x/drivers"

	"duecode-go/mmio"
)

// TimerStatus is a decoded RTT_SR.
type TimerStatus struct {
	Alarm     bool
	Increment bool
}

// Timer owns the RTT block. It is the monotonic clock for the scheduler and
// a drivers.Sensor reporting drivers.Time.
type Timer struct {
	b *Block

	// Snapshot taken by Update.
	latched       uint32
	latchedStatus TimerStatus
}

// New takes ownership of the block. The prescaler is left as found; call
// SetPrescaler to choose the tick rate.
func New(b *Block) *Timer {
	return &Timer{b: b}
}

func (t *Timer) SetPrescaler(v uint16) {
	mmio.WriteField(&t.b.Mode, Prescaler, v)
}

func (t *Timer) Prescaler() uint16 { return mmio.ReadField(&t.b.Mode, Prescaler) }

func (t *Timer) EnableAlarm()  { mmio.WriteField(&t.b.Mode, AlarmInterrupt, true) }
func (t *Timer) DisableAlarm() { mmio.WriteField(&t.b.Mode, AlarmInterrupt, false) }

func (t *Timer) EnableIncrementInterrupt()  { mmio.WriteField(&t.b.Mode, IncrementInterrupt, true) }
func (t *Timer) DisableIncrementInterrupt() { mmio.WriteField(&t.b.Mode, IncrementInterrupt, false) }

// Restart clears the counter and reloads the prescaler. The scheduler never
// calls it; queued wake ticks would be meaningless afterwards.
func (t *Timer) Restart() { mmio.WriteField(&t.b.Mode, Restart, true) }

// SetAlarm writes the compare value.
func (t *Timer) SetAlarm(v uint32) { t.b.Alarm.Write(v) }

// Ticks reads the free-running counter.
func (t *Timer) Ticks() uint32 { return t.b.Value.Read() }

func (t *Timer) Status() TimerStatus {
	w := t.b.Status.Load()
	return TimerStatus{
		Alarm:     AlarmStatus.Get(w),
		Increment: IncrementStatus.Get(w),
	}
}

// Delay busy-waits ms ticks. No wraparound handling: at 1 ms per tick the
// counter wraps after about 49 days.
func (t *Timer) Delay(ms uint32) {
	until := t.Ticks() + ms
	for t.Ticks() < until {
	}
}

// Update implements drivers.Sensor. Only drivers.Time is measured.
func (t *Timer) Update(which drivers.Measurement) error {
	if which&drivers.Time == 0 {
		return nil
	}
	t.latched = t.Ticks()
	t.latchedStatus = t.Status()
	return nil
}

// Latched returns the counter and status captured by the last Update.
func (t *Timer) Latched() (uint32, TimerStatus) { return t.latched, t.latchedStatus }

var _ drivers.Sensor = (*Timer)(nil)
