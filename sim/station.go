package sim

import "fmt"

// StationConfig describes one finite-capacity multi-server queue.
// ArrivalMin/ArrivalMax are left at zero for a station fed only by internal handoffs.
type StationConfig struct {
	Servers    int     `yaml:"servers"`
	Capacity   int     `yaml:"capacity"`
	ArrivalMin float64 `yaml:"arrival_min"`
	ArrivalMax float64 `yaml:"arrival_max"`
	ServiceMin float64 `yaml:"service_min"`
	ServiceMax float64 `yaml:"service_max"`
}

// Validate checks server/capacity bounds and sampling ranges.
func (c StationConfig) Validate() error {
	if c.Servers < 1 {
		return fmt.Errorf("servers must be >= 1, got %d", c.Servers)
	}
	if c.Capacity < c.Servers {
		return fmt.Errorf("capacity must be >= servers (%d), got %d", c.Servers, c.Capacity)
	}
	if c.ArrivalMin < 0 || c.ArrivalMax < c.ArrivalMin {
		return fmt.Errorf("arrival range must satisfy 0 <= min <= max, got [%g, %g]", c.ArrivalMin, c.ArrivalMax)
	}
	if c.ServiceMin < 0 || c.ServiceMax < c.ServiceMin {
		return fmt.Errorf("service range must satisfy 0 <= min <= max, got [%g, %g]", c.ServiceMin, c.ServiceMax)
	}
	return nil
}

// Station holds the configuration and mutable state of one queue.
//
// Occupancy counts every customer present (waiting + in service); InService counts
// busy servers. Times[n] accumulates the simulated time spent with occupancy n.
type Station struct {
	Name     string
	Servers  int
	Capacity int

	ArrivalMin float64
	ArrivalMax float64
	ServiceMin float64
	ServiceMax float64

	Occupancy int
	InService int
	Losses    int64
	Times     []float64
}

// NewStation creates an empty station from a validated StationConfig.
func NewStation(name string, cfg StationConfig) *Station {
	return &Station{
		Name:       name,
		Servers:    cfg.Servers,
		Capacity:   cfg.Capacity,
		ArrivalMin: cfg.ArrivalMin,
		ArrivalMax: cfg.ArrivalMax,
		ServiceMin: cfg.ServiceMin,
		ServiceMax: cfg.ServiceMax,
		Times:      make([]float64, cfg.Capacity+1),
	}
}

// HasExternalArrivals reports whether the station has a non-empty interarrival range.
func (s *Station) HasExternalArrivals() bool {
	return s.ArrivalMax > 0
}

// SampleInterarrival draws the time until the next external arrival.
// Meaningless (always 0) for a station without external arrivals.
func (s *Station) SampleInterarrival(g *LCG) float64 {
	return s.ArrivalMin + float64((s.ArrivalMax-s.ArrivalMin)*g.Draw())
}

// SampleService draws one service duration.
func (s *Station) SampleService(g *LCG) float64 {
	return s.ServiceMin + float64((s.ServiceMax-s.ServiceMin)*g.Draw())
}

// HasCapacity reports whether another customer fits.
func (s *Station) HasCapacity() bool {
	return s.Occupancy < s.Capacity
}

// CanStartService reports whether a queued customer and a free server are both available.
func (s *Station) CanStartService() bool {
	return s.InService < s.Servers && s.InService < s.Occupancy
}

// Admit adds a customer if there is room, otherwise counts a loss.
// Returns true when the customer was admitted.
func (s *Station) Admit() bool {
	if s.HasCapacity() {
		s.Occupancy++
		return true
	}
	s.Losses++
	return false
}

// RecordLoss counts a rejected arrival without touching occupancy.
func (s *Station) RecordLoss() {
	s.Losses++
}

// Release removes a departing customer. The departing customer was in service,
// so both counters drop together.
func (s *Station) Release() {
	if s.Occupancy > 0 {
		s.Occupancy--
	}
	if s.InService > 0 {
		s.InService--
	}
}

// BeginService assigns a free server to a waiting customer.
// The caller samples the service time and schedules the departure.
func (s *Station) BeginService() bool {
	if !s.CanStartService() {
		return false
	}
	s.InService++
	return true
}

// accumulate attributes dt to the current occupancy level.
func (s *Station) accumulate(dt float64) {
	if s.Occupancy < 0 || s.Occupancy >= len(s.Times) {
		panic(fmt.Sprintf("station %s: occupancy %d outside 0..%d", s.Name, s.Occupancy, s.Capacity))
	}
	s.Times[s.Occupancy] += dt
}
