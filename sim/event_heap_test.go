package sim

import (
	"testing"
)

// TestEventHeap_TimestampOrdering tests that events are processed in timestamp order
func TestEventHeap_TimestampOrdering(t *testing.T) {
	h := NewEventHeap()

	// Add events with different timestamps in random order
	h.Schedule(newEvent(KindArrival1, 10.0, 1))
	h.Schedule(newEvent(KindDeparture1, 5.5, 2))
	h.Schedule(newEvent(KindDeparture2, 15.25, 3))

	// Should be popped in timestamp order: 5.5, 10, 15.25
	for _, want := range []float64{5.5, 10.0, 15.25} {
		got := h.PopNext()
		if got.Timestamp() != want {
			t.Errorf("event timestamp = %v, want %v", got.Timestamp(), want)
		}
	}

	if h.Len() != 0 {
		t.Errorf("Heap should be empty, len = %d", h.Len())
	}
}

// TestEventHeap_EqualTimestamps_InsertionOrder tests that equal times pop by event ID
func TestEventHeap_EqualTimestamps_InsertionOrder(t *testing.T) {
	h := NewEventHeap()

	// Add events at the same time with non-increasing IDs
	h.Schedule(newEvent(KindArrival2, 7.0, 3))
	h.Schedule(newEvent(KindDeparture1, 7.0, 1))
	h.Schedule(newEvent(KindArrival1, 7.0, 2))

	for _, want := range []uint64{1, 2, 3} {
		got := h.PopNext()
		if got.EventID() != want {
			t.Errorf("event ID = %d, want %d", got.EventID(), want)
		}
	}
}

// TestEventHeap_DuplicatesRetained tests that identical events are all kept
func TestEventHeap_DuplicatesRetained(t *testing.T) {
	h := NewEventHeap()
	h.Schedule(newEvent(KindArrival2, 3.0, 1))
	h.Schedule(newEvent(KindArrival2, 3.0, 2))

	if h.Len() != 2 {
		t.Fatalf("expected 2 events, got %d", h.Len())
	}
	h.PopNext()
	h.PopNext()
	if h.PopNext() != nil {
		t.Error("expected nil from empty heap")
	}
}

func TestEventHeap_Peek(t *testing.T) {
	h := NewEventHeap()
	if h.Peek() != nil {
		t.Error("Peek on empty heap should return nil")
	}

	h.Schedule(newEvent(KindDeparture2, 4.0, 1))
	h.Schedule(newEvent(KindArrival1, 2.0, 2))

	if h.Peek().Timestamp() != 2.0 {
		t.Errorf("Peek timestamp = %v, want 2.0", h.Peek().Timestamp())
	}
	if h.Len() != 2 {
		t.Errorf("Peek should not remove, len = %d", h.Len())
	}
}

func TestNewEvent_ConcreteTypes(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{KindArrival1, "*sim.ArrivalEvent1"},
		{KindDeparture1, "*sim.DepartureEvent1"},
		{KindArrival2, "*sim.ArrivalEvent2"},
		{KindDeparture2, "*sim.DepartureEvent2"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			e := newEvent(tt.kind, 1.0, 1)
			if got := typeName(e); got != tt.want {
				t.Errorf("newEvent(%s) type = %s, want %s", tt.kind, got, tt.want)
			}
			if e.Kind() != tt.kind {
				t.Errorf("Kind() = %s, want %s", e.Kind(), tt.kind)
			}
		})
	}
}

func TestEventKind_String(t *testing.T) {
	if KindArrival1.String() != "arrival@1" || KindDeparture2.String() != "departure@2" {
		t.Errorf("unexpected names %s, %s", KindArrival1, KindDeparture2)
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("unexpected name for invalid kind: %s", EventKind(99))
	}
}
