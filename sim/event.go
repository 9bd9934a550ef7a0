package sim

import "github.com/sirupsen/logrus"

// EventKind identifies the four transitions of the tandem network.
type EventKind int

const (
	KindArrival1 EventKind = iota
	KindDeparture1
	KindArrival2
	KindDeparture2
)

var eventKindNames = map[EventKind]string{
	KindArrival1:   "arrival@1",
	KindDeparture1: "departure@1",
	KindArrival2:   "arrival@2",
	KindDeparture2: "departure@2",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event defines the interface for all simulation events.
// Each event carries its scheduled time, a per-run ID used as the tie-breaker for
// equal times, and an Execute method that applies its transition.
type Event interface {
	Timestamp() float64
	EventID() uint64
	Kind() EventKind
	Execute(*Simulator)
}

// BaseEvent provides the immutable fields shared by all events.
type BaseEvent struct {
	time    float64
	eventID uint64
	kind    EventKind
}

func (e *BaseEvent) Timestamp() float64 { return e.time }
func (e *BaseEvent) EventID() uint64    { return e.eventID }
func (e *BaseEvent) Kind() EventKind    { return e.kind }

// ArrivalEvent1 is an external arrival at station 1.
type ArrivalEvent1 struct{ BaseEvent }

// Execute applies the station-1 arrival transition.
func (e *ArrivalEvent1) Execute(sim *Simulator) {
	logrus.Debugf("<< %s at %.4f", e.kind, e.time)
	sim.handleArrival1()
}

// DepartureEvent1 is a service completion at station 1.
type DepartureEvent1 struct{ BaseEvent }

// Execute applies the station-1 departure transition.
func (e *DepartureEvent1) Execute(sim *Simulator) {
	logrus.Debugf("<< %s at %.4f", e.kind, e.time)
	sim.handleDeparture1()
}

// ArrivalEvent2 is the zero-delay handoff of a station-1 departure into station 2.
type ArrivalEvent2 struct{ BaseEvent }

// Execute applies the station-2 arrival transition.
func (e *ArrivalEvent2) Execute(sim *Simulator) {
	logrus.Debugf("<< %s at %.4f", e.kind, e.time)
	sim.handleArrival2()
}

// DepartureEvent2 is a service completion at station 2; the customer leaves the network.
type DepartureEvent2 struct{ BaseEvent }

// Execute applies the station-2 departure transition.
func (e *DepartureEvent2) Execute(sim *Simulator) {
	logrus.Debugf("<< %s at %.4f", e.kind, e.time)
	sim.handleDeparture2()
}

// newEvent builds the concrete event for kind. IDs come from the owning simulator.
func newEvent(kind EventKind, time float64, id uint64) Event {
	base := BaseEvent{time: time, eventID: id, kind: kind}
	switch kind {
	case KindArrival1:
		return &ArrivalEvent1{base}
	case KindDeparture1:
		return &DepartureEvent1{base}
	case KindArrival2:
		return &ArrivalEvent2{base}
	case KindDeparture2:
		return &DepartureEvent2{base}
	default:
		panic("newEvent: unknown event kind")
	}
}
