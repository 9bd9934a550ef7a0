package sim

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tandem-sim/tandem-sim/sim/trace"
)

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// tracedConfig returns the reference scenario with event tracing enabled.
func tracedConfig() Config {
	cfg := DefaultConfig()
	cfg.TraceLevel = trace.TraceLevelEvents
	return cfg
}

// mustRun builds a simulator for cfg and runs it to completion.
func mustRun(t *testing.T, cfg Config) (*Simulator, *Result) {
	t.Helper()
	s, err := NewSimulator(cfg)
	require.NoError(t, err)
	return s, s.Run()
}
