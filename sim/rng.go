package sim

import "fmt"

// maxModulus bounds the LCG modulus so that multiplier*seed+increment always fits in
// a uint64 when all three are below the modulus.
const maxModulus = uint64(1) << 32

// StreamConfig parameterizes the linear-congruential generator that drives a run.
type StreamConfig struct {
	Multiplier uint64 `yaml:"multiplier"`
	Increment  uint64 `yaml:"increment"`
	Modulus    uint64 `yaml:"modulus"`
	Seed       uint64 `yaml:"seed"`
	Budget     int64  `yaml:"budget"` // maximum number of draws before the run is forced to stop
}

// Validate checks the generator parameters.
func (c StreamConfig) Validate() error {
	if c.Modulus == 0 || c.Modulus > maxModulus {
		return fmt.Errorf("modulus must be in (0, 2^32], got %d", c.Modulus)
	}
	if c.Multiplier >= c.Modulus {
		return fmt.Errorf("multiplier must be below modulus %d, got %d", c.Modulus, c.Multiplier)
	}
	if c.Increment >= c.Modulus {
		return fmt.Errorf("increment must be below modulus %d, got %d", c.Modulus, c.Increment)
	}
	if c.Seed >= c.Modulus {
		return fmt.Errorf("seed must be below modulus %d, got %d", c.Modulus, c.Seed)
	}
	if c.Budget < 0 {
		return fmt.Errorf("budget must be non-negative, got %d", c.Budget)
	}
	return nil
}

// LCG is a budgeted linear-congruential generator producing uniform [0,1) draws.
//
// The budget is advisory: Draw keeps working past it, and callers consult
// BudgetExhausted before scheduling anything that needs a fresh draw.
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type LCG struct {
	multiplier uint64
	increment  uint64
	modulus    uint64
	seed       uint64
	used       int64
	budget     int64
}

// NewLCG creates a generator from a validated StreamConfig.
func NewLCG(cfg StreamConfig) *LCG {
	return &LCG{
		multiplier: cfg.Multiplier,
		increment:  cfg.Increment,
		modulus:    cfg.Modulus,
		seed:       cfg.Seed,
		budget:     cfg.Budget,
	}
}

// Draw advances the seed and returns seed/modulus.
func (g *LCG) Draw() float64 {
	g.seed = (g.multiplier*g.seed + g.increment) % g.modulus
	g.used++
	return float64(g.seed) / float64(g.modulus)
}

// BudgetExhausted reports whether the number of draws has reached the budget.
func (g *LCG) BudgetExhausted() bool {
	return g.used >= g.budget
}

// Used returns the number of draws consumed so far.
func (g *LCG) Used() int64 {
	return g.used
}

// Budget returns the configured draw budget.
func (g *LCG) Budget() int64 {
	return g.budget
}

// Seed returns the current internal state.
func (g *LCG) Seed() uint64 {
	return g.seed
}
