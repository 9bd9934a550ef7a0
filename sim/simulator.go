// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/tandem-sim/tandem-sim/sim/trace"
)

// StopReason records which terminal condition ended a run.
type StopReason string

const (
	StopCalendarEmpty StopReason = "calendar-empty"
	StopEventCap      StopReason = "event-cap"
	StopDrawBudget    StopReason = "draw-budget"
)

// Simulator is the tandem engine: it owns the clock, the calendar, the random stream
// and both stations for the duration of one run.
type Simulator struct {
	Clock           float64
	EventCap        int64
	EventsProcessed int64
	FirstArrival    float64

	// Calendar has all pending arrival and departure events
	Calendar *EventHeap
	Stream   *LCG
	Station1 *Station // fed by external arrivals
	Station2 *Station // fed by station 1 departures

	// Trace is nil unless the config enables tracing
	Trace *trace.SimulationTrace

	StopReason  StopReason
	nextEventID uint64
}

// NewSimulator validates cfg and builds a fresh engine with empty stations.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	s := &Simulator{
		EventCap:     cfg.EventCap,
		FirstArrival: cfg.FirstArrival,
		Calendar:     NewEventHeap(),
		Stream:       NewLCG(cfg.Stream),
		Station1:     NewStation("1", cfg.Station1),
		Station2:     NewStation("2", cfg.Station2),
	}
	if cfg.TraceLevel.Enabled() {
		s.Trace = trace.NewSimulationTrace(cfg.TraceLevel)
	}
	return s, nil
}

// newEventID generates the next event ID for this simulator.
func (sim *Simulator) newEventID() uint64 {
	sim.nextEventID++
	return sim.nextEventID
}

// Schedule pushes a new event of the given kind into the calendar.
func (sim *Simulator) Schedule(kind EventKind, at float64) {
	sim.Calendar.Schedule(newEvent(kind, at, sim.newEventID()))
}

// canSchedule reports whether new random-dependent work may still be scheduled.
func (sim *Simulator) canSchedule() bool {
	return sim.EventsProcessed < sim.EventCap && !sim.Stream.BudgetExhausted()
}

// Run seeds the first arrival and processes events until the calendar empties,
// the event cap is reached or the draw budget runs out.
func (sim *Simulator) Run() *Result {
	logrus.Infof("Starting tandem simulation: first arrival=%.4f, max events=%d, draw budget=%d",
		sim.FirstArrival, sim.EventCap, sim.Stream.Budget())

	sim.Schedule(KindArrival1, sim.FirstArrival)
	sim.StopReason = StopCalendarEmpty

	for sim.Calendar.Len() > 0 {
		if sim.EventsProcessed >= sim.EventCap {
			sim.StopReason = StopEventCap
			break
		}
		ev := sim.Calendar.PopNext()

		dt := ev.Timestamp() - sim.Clock
		if dt < 0 {
			logrus.Warnf("event %s #%d at %.6f precedes clock %.6f; clamping elapsed time to 0",
				ev.Kind(), ev.EventID(), ev.Timestamp(), sim.Clock)
			dt = 0
		}
		sim.Station1.accumulate(dt)
		sim.Station2.accumulate(dt)
		sim.Clock = ev.Timestamp()

		ev.Execute(sim)
		sim.EventsProcessed++
		sim.recordEvent(ev)

		if sim.Stream.BudgetExhausted() {
			sim.StopReason = StopDrawBudget
			break
		}
		if sim.EventsProcessed >= sim.EventCap {
			sim.StopReason = StopEventCap
			break
		}
	}

	logrus.Infof("[t=%.4f] Simulation ended (%s): %d events, %d draws",
		sim.Clock, sim.StopReason, sim.EventsProcessed, sim.Stream.Used())
	return sim.Result()
}

// fillServers starts service for every waiting customer that has a free server,
// each with its own sampled service time and departure event.
func (sim *Simulator) fillServers(st *Station, departure EventKind) {
	for st.CanStartService() && sim.canSchedule() {
		st.BeginService()
		sim.Schedule(departure, sim.Clock+st.SampleService(sim.Stream))
	}
}

func (sim *Simulator) handleArrival1() {
	if sim.canSchedule() {
		sim.Schedule(KindArrival1, sim.Clock+sim.Station1.SampleInterarrival(sim.Stream))
	}
	if sim.Station1.HasCapacity() {
		sim.Station1.Admit()
		sim.fillServers(sim.Station1, KindDeparture1)
	} else {
		sim.Station1.RecordLoss()
		sim.recordLoss(1)
	}
}

func (sim *Simulator) handleDeparture1() {
	sim.Station1.Release()
	// every station 1 departure is routed to station 2 through a zero-delay arrival
	if sim.Station2.HasCapacity() {
		if sim.canSchedule() {
			sim.Schedule(KindArrival2, sim.Clock)
		}
	} else {
		sim.Station2.RecordLoss()
		sim.recordLoss(2)
	}
	sim.fillServers(sim.Station1, KindDeparture1)
}

func (sim *Simulator) handleArrival2() {
	if !sim.Station2.Admit() {
		sim.recordLoss(2)
	}
	sim.fillServers(sim.Station2, KindDeparture2)
}

func (sim *Simulator) handleDeparture2() {
	sim.Station2.Release()
	sim.fillServers(sim.Station2, KindDeparture2)
}

func (sim *Simulator) recordEvent(ev Event) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordEvent(trace.EventRecord{
		Seq:     sim.EventsProcessed,
		EventID: ev.EventID(),
		Kind:    ev.Kind().String(),
		Clock:   sim.Clock,
		Stations: [2]trace.StationState{
			{Occupancy: sim.Station1.Occupancy, InService: sim.Station1.InService},
			{Occupancy: sim.Station2.Occupancy, InService: sim.Station2.InService},
		},
		DrawsUsed: sim.Stream.Used(),
	})
}

func (sim *Simulator) recordLoss(station int) {
	logrus.Debugf("loss at station %d (t=%.4f)", station, sim.Clock)
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordLoss(trace.LossRecord{Seq: sim.EventsProcessed + 1, Clock: sim.Clock, Station: station})
}
