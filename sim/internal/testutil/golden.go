// Package testutil provides shared test infrastructure for the tandem simulator.
// It consolidates golden dataset types and assertion helpers used across
// sim/ and sim/report/ test packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenStation is the station configuration of a golden test case.
type GoldenStation struct {
	Servers    int     `json:"servers"`
	Capacity   int     `json:"capacity"`
	ArrivalMin float64 `json:"arrival_min"`
	ArrivalMax float64 `json:"arrival_max"`
	ServiceMin float64 `json:"service_min"`
	ServiceMax float64 `json:"service_max"`
}

// GoldenTestCase represents a single test case from the golden dataset.
type GoldenTestCase struct {
	Name         string        `json:"name"`
	Multiplier   uint64        `json:"multiplier"`
	Increment    uint64        `json:"increment"`
	Modulus      uint64        `json:"modulus"`
	Seed         uint64        `json:"seed"`
	Budget       int64         `json:"budget"`
	MaxEvents    int64         `json:"max_events"`
	FirstArrival float64       `json:"first_arrival"`
	Station1     GoldenStation `json:"station1"`
	Station2     GoldenStation `json:"station2"`
	Metrics      GoldenMetrics `json:"metrics"`
}

// GoldenStationMetrics represents the expected per-station results.
type GoldenStationMetrics struct {
	Losses        int64     `json:"losses"`
	Times         []float64 `json:"times"`
	Probabilities []float64 `json:"probabilities"`
}

// GoldenMetrics represents the expected metrics from a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	EventsProcessed int64  `json:"events_processed"`
	DrawsUsed       int64  `json:"draws_used"`
	StopReason      string `json:"stop_reason"`

	// Deterministic floating-point metrics (derived from the simulation clock)
	GlobalTime float64                `json:"global_time"`
	Stations   []GoldenStationMetrics `json:"stations"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
