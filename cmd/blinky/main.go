//go:build tinygo

// Command blinky blinks the Arduino Due "L" LED once a second off the RTT.
package main

import (
	"duecode-go/app/blink"
	"duecode-go/device/sam3x8e"
	"duecode-go/drivers/pio"
	"duecode-go/drivers/pmc"
	"duecode-go/drivers/rtt"
	"duecode-go/schedule"
	"duecode-go/x/timex"
)

const periodMs = 1000

func main() {
	p, ok := sam3x8e.Take()
	if !ok {
		panic("peripherals already taken")
	}

	// Clock the LED port, then lock the PMC for the rest of the run.
	clk := pmc.New(p.TakePMC())
	clk.EnablePeripheralClock(sam3x8e.PIOPeripheral(sam3x8e.LEDPort))
	locked := clk.Lock()
	if v, _ := locked.WriteProtectViolation(); v {
		println("[blinky] PMC write-protect violation before lock")
	}

	timer := rtt.New(p.TakeRTT())
	timer.SetPrescaler(rtt.Approx1msPrescaler)
	timer.Restart()

	led := pio.New(p.TakePIO(sam3x8e.LEDPort))
	led.ConfigureOutput(sam3x8e.LEDLine)
	led.High(sam3x8e.LEDLine)

	s, err := schedule.New(timer, schedule.Config{GateOnDue: true, Capacity: 4})
	if err != nil {
		panic(err.Error())
	}
	period := timex.TicksForMs(periodMs, rtt.Approx1msPrescaler)
	blink.Start(s, led, sam3x8e.LEDLine, period, nil)

	println("[blinky] running, period", period, "ticks")
	s.MainLoop()
}
