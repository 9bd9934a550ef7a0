// Package trace provides per-event trace recording for tandem simulation runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// StationState is the post-transition state of one station.
type StationState struct {
	Occupancy int
	InService int
}

// EventRecord captures a single processed event.
type EventRecord struct {
	Seq       int64   // 1-based position in processing order
	EventID   uint64  // calendar ID assigned at scheduling time
	Kind      string  // e.g. "arrival@1"
	Clock     float64 // event time (clock after the pop)
	Stations  [2]StationState
	DrawsUsed int64
}

// LossRecord captures a rejected arrival.
type LossRecord struct {
	Seq     int64 // Seq of the event during which the loss occurred
	Clock   float64
	Station int // 1 or 2
}
