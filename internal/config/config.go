// Package config holds the simulator scenario: which LED to blink, how fast
// the simulated RTT runs and for how long.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"duecode-go/drivers/pio"
	"duecode-go/drivers/rtt"
	"duecode-go/errcode"
)

const (
	DefaultPeriodMs      = 1000
	DefaultDurationTicks = 3 * 1024
	DefaultTicksPerRead  = 0
	DefaultPort          = "B"
	DefaultLine          = 27
	DefaultLogLevel      = "info"
)

// Scenario is one simulator run. TicksPerRead advances the simulated counter
// on every read; zero steps it once per scheduler pass instead.
type Scenario struct {
	Prescaler     uint16 `json:"prescaler"`
	PeriodMs      uint32 `json:"period_ms"`
	DurationTicks uint32 `json:"duration_ticks"`
	TicksPerRead  uint32 `json:"ticks_per_read"`
	Port          string `json:"port"`
	Line          uint8  `json:"line"`
	InitialOn     bool   `json:"initial_on"`
	GateOnDue     bool   `json:"gate_on_due"`
	LogLevel      string `json:"log_level,omitempty"`
}

// DefaultScenario is the Due's "L" LED at 1 Hz for three periods.
func DefaultScenario() Scenario {
	return Scenario{
		Prescaler:     rtt.Approx1msPrescaler,
		PeriodMs:      DefaultPeriodMs,
		DurationTicks: DefaultDurationTicks,
		TicksPerRead:  DefaultTicksPerRead,
		Port:          DefaultPort,
		Line:          DefaultLine,
		InitialOn:     true,
		GateOnDue:     true,
		LogLevel:      DefaultLogLevel,
	}
}

func invalid(msg string) error {
	return &errcode.E{C: errcode.InvalidParams, Op: "config.Validate", Msg: msg}
}

func (s Scenario) Validate() error {
	if s.PeriodMs == 0 {
		return invalid("period_ms must be non-zero")
	}
	if s.DurationTicks == 0 {
		return invalid("duration_ticks must be non-zero")
	}
	if _, err := s.PIOPort(); err != nil {
		return err
	}
	if s.Line > 31 {
		return invalid(fmt.Sprintf("line %d out of range 0..31", s.Line))
	}
	return nil
}

// PIOPort parses Port, "A" to "D".
func (s Scenario) PIOPort() (pio.Port, error) {
	if len(s.Port) == 1 && s.Port[0] >= 'A' && s.Port[0] <= 'D' {
		return pio.Port(s.Port[0] - 'A'), nil
	}
	return 0, invalid(fmt.Sprintf("port %q must be one of A, B, C, D", s.Port))
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Scenario, error) {
	s := DefaultScenario()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, &errcode.E{C: errcode.InvalidParams, Op: "config.Load", Msg: path, Err: err}
	}
	return s, s.Validate()
}

// Save writes s as YAML, refusing to replace an existing file unless
// overwrite is set.
func (s Scenario) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists", path)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
