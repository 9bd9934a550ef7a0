package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tandem-sim/tandem-sim/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		GlobalTime:      12.5,
		EventsProcessed: 40,
		DrawsUsed:       31,
		StopReason:      sim.StopEventCap,
		Stations: []sim.StationStats{
			{
				Name: "1", Kendall: "G/G/2/3", Servers: 2, Capacity: 3, Losses: 2,
				Times:         []float64{2.5, 5, 2.5, 2.5},
				TotalTime:     12.5,
				Probabilities: []float64{20, 40, 20, 20},
				MeanOccupancy: 1.4,
			},
			{
				Name: "2", Kendall: "G/G/1/2", Servers: 1, Capacity: 2,
				Times:         []float64{12.5, 0, 0},
				TotalTime:     12.5,
				Probabilities: []float64{100, 0, 0},
			},
		},
	}
}

func TestPrinter_Print_ContainsTotalsAndStates(t *testing.T) {
	// GIVEN a finished run
	var buf bytes.Buffer

	// WHEN printed
	require.NoError(t, NewPrinter(&buf).Print(sampleResult()))
	out := buf.String()

	// THEN totals and every occupancy level are listed
	for _, want := range []string{
		"=== Tandem Simulation Results ===",
		"Global time        : 12.5000",
		"Events processed   : 40",
		"Random draws used  : 31",
		"event-cap",
		"Station 1 (G/G/2/3):",
		"Station 2 (G/G/1/2):",
		"  State 1: time = 5.0000, prob = 40.000000%",
		"  State 0: time = 12.5000, prob = 100.000000%",
		"Mean occupancy     : 1.4000",
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 7, strings.Count(out, "  State "))
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var got sim.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleResult(), got)
}

func TestNewRegistry_ExposesRunStatistics(t *testing.T) {
	reg, err := NewRegistry(sampleResult())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]int{}
	for _, mf := range families {
		byName[mf.GetName()] = len(mf.GetMetric())
		switch mf.GetName() {
		case "tandem_global_time":
			assert.Equal(t, 12.5, mf.GetMetric()[0].GetGauge().GetValue())
		case "tandem_events_processed_total":
			assert.Equal(t, 40.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.Equal(t, 1, byName["tandem_global_time"])
	assert.Equal(t, 1, byName["tandem_random_draws_total"])
	assert.Equal(t, 2, byName["tandem_station_losses_total"])
	// 4 levels for station 1 + 3 for station 2
	assert.Equal(t, 7, byName["tandem_station_state_time"])
	assert.Equal(t, 7, byName["tandem_station_state_probability_percent"])
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tandem.prom")
	require.NoError(t, WriteTextfile(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tandem_station_state_probability_percent{level="1",station="1"} 40`)
	assert.Contains(t, string(data), `tandem_station_losses_total{station="1"} 2`)
}
