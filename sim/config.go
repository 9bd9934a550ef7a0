package sim

import (
	"fmt"

	"github.com/tandem-sim/tandem-sim/sim/trace"
)

// Config groups everything needed to build one Simulator run.
type Config struct {
	Stream       StreamConfig     `yaml:"stream"`
	Station1     StationConfig    `yaml:"station1"`
	Station2     StationConfig    `yaml:"station2"`
	EventCap     int64            `yaml:"max_events"`    // processed-event cap (must be > 0)
	FirstArrival float64          `yaml:"first_arrival"` // time of the seeded arrival at station 1
	TraceLevel   trace.TraceLevel `yaml:"trace"`
}

// Reference scenario: G/G/2/3 feeding G/G/1/5 with the Numerical Recipes LCG.
const (
	DefaultMultiplier   = 1664525
	DefaultIncrement    = 1013904223
	DefaultModulus      = uint64(1) << 32
	DefaultSeed         = 5
	DefaultBudget       = 100000
	DefaultEventCap     = 100000
	DefaultFirstArrival = 1.5
)

// DefaultConfig returns the reference tandem scenario.
func DefaultConfig() Config {
	return Config{
		Stream: StreamConfig{
			Multiplier: DefaultMultiplier,
			Increment:  DefaultIncrement,
			Modulus:    DefaultModulus,
			Seed:       DefaultSeed,
			Budget:     DefaultBudget,
		},
		Station1: StationConfig{
			Servers:    2,
			Capacity:   3,
			ArrivalMin: 1.0,
			ArrivalMax: 4.0,
			ServiceMin: 3.0,
			ServiceMax: 4.0,
		},
		Station2: StationConfig{
			Servers:    1,
			Capacity:   5,
			ServiceMin: 2.0,
			ServiceMax: 3.0,
		},
		EventCap:     DefaultEventCap,
		FirstArrival: DefaultFirstArrival,
		TraceLevel:   trace.TraceLevelNone,
	}
}

// Validate checks every section of the configuration.
func (c Config) Validate() error {
	if err := c.Stream.Validate(); err != nil {
		return fmt.Errorf("stream: %w", err)
	}
	if err := c.Station1.Validate(); err != nil {
		return fmt.Errorf("station1: %w", err)
	}
	if c.Station1.ArrivalMax <= 0 {
		return fmt.Errorf("station1: external arrival range must be positive, got [%g, %g]",
			c.Station1.ArrivalMin, c.Station1.ArrivalMax)
	}
	if err := c.Station2.Validate(); err != nil {
		return fmt.Errorf("station2: %w", err)
	}
	if c.EventCap <= 0 {
		return fmt.Errorf("max_events must be positive, got %d", c.EventCap)
	}
	if c.FirstArrival < 0 {
		return fmt.Errorf("first_arrival must be non-negative, got %g", c.FirstArrival)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
