package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents      int
	KindDistribution map[string]int // event kind → count
	LossesByStation  map[int]int    // station number → rejected arrivals
	PeakOccupancy    [2]int
	LastClock        float64
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		KindDistribution: make(map[string]int),
		LossesByStation:  make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	for _, e := range st.Events {
		summary.KindDistribution[e.Kind]++
		for i, s := range e.Stations {
			if s.Occupancy > summary.PeakOccupancy[i] {
				summary.PeakOccupancy[i] = s.Occupancy
			}
		}
	}
	if n := len(st.Events); n > 0 {
		summary.LastClock = st.Events[n-1].Clock
	}

	for _, l := range st.Losses {
		summary.LossesByStation[l.Station]++
	}

	return summary
}
