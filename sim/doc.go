// Package sim provides the discrete-event engine for a two-station tandem queue.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - rng.go: the budgeted linear-congruential stream that drives every sample
//   - station.go: per-station state (occupancy, busy servers, losses, time per level)
//   - event.go / event_heap.go: the four event kinds and the deterministic calendar
//   - simulator.go: the event loop and the tandem transition rules
//   - metrics.go: state probabilities computed after the loop halts
//
// # Model
//
// Station 1 receives external arrivals with uniform interarrival times. Every
// departure from station 1 is handed to station 2 as a zero-delay arrival event.
// Both stations have finite capacity; an arrival that finds a station full is counted
// as a loss and otherwise dropped. Service times are uniform per station.
//
// A run stops when the calendar empties, when the processed-event cap is reached, or
// when the draw budget is exhausted at the end of an iteration. Given the same Config,
// two runs produce identical event sequences and results.
//
// Sub-packages:
//   - sim/trace/: optional per-event trace recording
//   - sim/report/: text, JSON and Prometheus renderings of a Result
package sim
