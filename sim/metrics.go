// Final per-station statistics derived from the time-weighted occupancy accumulators.

package sim

import "fmt"

// StationStats summarizes one station at the end of a run.
type StationStats struct {
	Name          string    `json:"name"`
	Kendall       string    `json:"kendall"` // e.g. "G/G/2/3"
	Servers       int       `json:"servers"`
	Capacity      int       `json:"capacity"`
	Losses        int64     `json:"losses"`
	Times         []float64 `json:"times"`         // simulated time spent at each occupancy level
	TotalTime     float64   `json:"total_time"`    // sum of Times
	Probabilities []float64 `json:"probabilities"` // percent of TotalTime per level
	MeanOccupancy float64   `json:"mean_occupancy"`
}

// Result aggregates the outcome of a run for the reporting layer.
type Result struct {
	GlobalTime      float64        `json:"global_time"`
	EventsProcessed int64          `json:"events_processed"`
	DrawsUsed       int64          `json:"draws_used"`
	StopReason      StopReason     `json:"stop_reason"`
	Stations        []StationStats `json:"stations"`
}

// Probabilities converts per-level times into percentages of their sum.
// All levels are 0 when no time was observed.
func Probabilities(times []float64) []float64 {
	total := 0.0
	for _, t := range times {
		total += t
	}
	probs := make([]float64, len(times))
	if total <= 0 {
		return probs
	}
	for i, t := range times {
		probs[i] = t / total * 100.0
	}
	return probs
}

// Stats finalizes the station's accumulators.
func (s *Station) Stats() StationStats {
	times := make([]float64, len(s.Times))
	copy(times, s.Times)

	total := 0.0
	for _, t := range times {
		total += t
	}
	probs := Probabilities(times)
	mean := 0.0
	for n, p := range probs {
		mean += float64(n) * p / 100.0
	}

	return StationStats{
		Name:          s.Name,
		Kendall:       fmt.Sprintf("G/G/%d/%d", s.Servers, s.Capacity),
		Servers:       s.Servers,
		Capacity:      s.Capacity,
		Losses:        s.Losses,
		Times:         times,
		TotalTime:     total,
		Probabilities: probs,
		MeanOccupancy: mean,
	}
}

// Result snapshots the run totals. Valid once Run has returned.
func (sim *Simulator) Result() *Result {
	return &Result{
		GlobalTime:      sim.Clock,
		EventsProcessed: sim.EventsProcessed,
		DrawsUsed:       sim.Stream.Used(),
		StopReason:      sim.StopReason,
		Stations:        []StationStats{sim.Station1.Stats(), sim.Station2.Stats()},
	}
}
