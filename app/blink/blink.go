// Package blink toggles an LED on a fixed period from the scheduler.
package blink

import "duecode-go/schedule"

// LED is the output the task drives. *pio.Controller satisfies it.
type LED interface {
	Toggle(line uint8) bool
}

// Task returns an action that toggles line and re-arms itself period ticks
// later. onToggle, if set, sees the new level.
func Task(led LED, line uint8, period uint32, onToggle func(on bool)) schedule.Action {
	return func(s *schedule.Scheduler) {
		on := led.Toggle(line)
		if onToggle != nil {
			onToggle(on)
		}
		s.RepeatIn(period)
	}
}

// Start pushes the blink task so the first toggle happens one period from now.
func Start(s *schedule.Scheduler, led LED, line uint8, period uint32, onToggle func(on bool)) {
	s.Push(Task(led, line, period, onToggle), period)
}
