package sim

import (
	"context"

	"tinygo.org/x/drivers"

	"duecode-go/app/blink"
	"duecode-go/device/sam3x8e"
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
	"duecode-go/errcode"
	"duecode-go/internal/config"
	"duecode-go/schedule"
	"duecode-go/x/timex"
)

// Toggle is one LED change seen by the blink task.
type Toggle struct {
	Tick uint32
	On   bool
}

type Report struct {
	PeriodTicks uint32
	Toggles     []Toggle
	FinalOn     bool
	EndTick     uint32
	Status      rtt.TimerStatus // RTT_SR latched at the end of the run
}

// clockSensor is a drivers.Sensor that measures drivers.Time and keeps the
// last sample.
type clockSensor interface {
	drivers.Sensor
	Latched() (uint32, rtt.TimerStatus)
}

func sample(cs clockSensor) (uint32, rtt.TimerStatus, error) {
	if err := cs.Update(drivers.Time); err != nil {
		return 0, rtt.TimerStatus{}, err
	}
	v, st := cs.Latched()
	return v, st, nil
}

// ctxEvery is how many scheduler passes go by between context checks.
const ctxEvery = 1024

// Run boots the blink firmware on the board the way cmd/blinky does on the
// Due and drives it for sc.DurationTicks ticks. The RTT alarm is set to the
// last tick, so Report.Status shows it fired. onToggle may be nil.
//
// With sc.TicksPerRead zero the counter moves one tick per pass and each pass
// runs what is due (sc.GateOnDue) or the front task whatever its Wake.
func (b *Board) Run(ctx context.Context, sc config.Scenario, onToggle func(Toggle)) (Report, error) {
	if err := sc.Validate(); err != nil {
		return Report{}, err
	}
	port, _ := sc.PIOPort()
	period := timex.TicksForMs(sc.PeriodMs, sc.Prescaler)
	if period == 0 {
		return Report{}, &errcode.E{C: errcode.InvalidParams, Op: "sim.Run", Msg: "period shorter than one tick"}
	}

	clk := pmc.New(b.PMC)
	clk.EnablePeripheralClock(sam3x8e.PIOPeripheral(port))
	clk.Lock()

	timer := rtt.New(b.RTTBlock)
	timer.SetPrescaler(sc.Prescaler)
	b.Counter = NewRTT(b.RTTBlock, sc.TicksPerRead)

	led := pio.New(b.PIO[port])
	led.ConfigureOutput(sc.Line)
	led.Set(sc.Line, sc.InitialOn)

	s, err := schedule.New(b.Counter, schedule.Config{GateOnDue: sc.GateOnDue, Capacity: 4})
	if err != nil {
		return Report{}, err
	}

	var sensor clockSensor = timer
	var sampleErr error
	rep := Report{PeriodTicks: period}
	blink.Start(s, led, sc.Line, period, func(on bool) {
		tick, _, err := sample(sensor)
		if err != nil {
			if sampleErr == nil {
				sampleErr = err
			}
			return
		}
		tg := Toggle{Tick: tick, On: on}
		rep.Toggles = append(rep.Toggles, tg)
		if onToggle != nil {
			onToggle(tg)
		}
	})

	end := timer.Ticks() + sc.DurationTicks
	timer.SetAlarm(end)
	for pass := 0; ; pass++ {
		if pass%ctxEvery == 0 {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
		}
		if sampleErr != nil {
			return rep, sampleErr
		}
		if sc.TicksPerRead == 0 {
			if sc.GateOnDue {
				s.RunDue()
			} else {
				s.RunOnce()
			}
			if timer.Ticks() >= end {
				break
			}
			b.Counter.Step(1)
			continue
		}
		if timer.Ticks() >= end {
			break
		}
		s.RunOnce()
	}

	rep.FinalOn = led.OutputLevel(sc.Line)
	tick, st, err := sample(sensor)
	if err != nil {
		return rep, err
	}
	rep.EndTick, rep.Status = tick, st
	return rep, nil
}
