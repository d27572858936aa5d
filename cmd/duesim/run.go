package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"duecode-go/internal/log"
	"duecode-go/internal/sim"
	"duecode-go/x/timex"
)

const (
	PeriodOptionName       = "period-ms"
	DurationOptionName     = "duration"
	TicksPerReadOptionName = "ticks-per-read"
	GateOptionName         = "gate-on-due"
	PortOptionName         = "port"
	LineOptionName         = "line"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	var (
		period, duration, perRead uint32
		gate                      bool
		port                      string
		line                      uint8
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Blink the LED for a number of simulated ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := root.scenario()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed(PeriodOptionName) {
				sc.PeriodMs = period
			}
			if flags.Changed(DurationOptionName) {
				sc.DurationTicks = duration
			}
			if flags.Changed(TicksPerReadOptionName) {
				sc.TicksPerRead = perRead
			}
			if flags.Changed(GateOptionName) {
				sc.GateOnDue = gate
			}
			if flags.Changed(PortOptionName) {
				sc.Port = port
			}
			if flags.Changed(LineOptionName) {
				sc.Line = line
			}

			board, ok := sim.NewBoard(sc.TicksPerRead)
			if !ok {
				return fmt.Errorf("peripherals already taken")
			}
			log.Info("blinking P%s%d every %d ms for %d ticks", sc.Port, sc.Line, sc.PeriodMs, sc.DurationTicks)
			rep, err := board.Run(cmd.Context(), sc, func(tg sim.Toggle) {
				log.Debug("tick %d: LED on=%v", tg.Tick, tg.On)
			})
			if err != nil {
				log.Error("run: %v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "period %d ticks (%d ms), %d toggles, LED %s at tick %d, RTT alarm=%v inc=%v\n",
				rep.PeriodTicks, timex.MsForTicks(rep.PeriodTicks, sc.Prescaler),
				len(rep.Toggles), onOff(rep.FinalOn), rep.EndTick,
				rep.Status.Alarm, rep.Status.Increment)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&period, PeriodOptionName, 0, "Blink period in milliseconds")
	cmd.Flags().Uint32Var(&duration, DurationOptionName, 0, "Ticks to simulate")
	cmd.Flags().Uint32Var(&perRead, TicksPerReadOptionName, 0, "Advance the counter on every read (0 steps once per pass)")
	cmd.Flags().BoolVar(&gate, GateOptionName, true, "Hold tasks until their wake tick")
	cmd.Flags().StringVar(&port, PortOptionName, "", "PIO port of the LED, A to D")
	cmd.Flags().Uint8Var(&line, LineOptionName, 0, "PIO line of the LED")
	return cmd
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
