package trace

import (
	"testing"
)

func TestSimulationTrace_RecordEvent_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for events
	st := NewSimulationTrace(TraceLevelEvents)

	// WHEN an event record is recorded
	st.RecordEvent(EventRecord{
		Seq:      1,
		EventID:  1,
		Kind:     "arrival@1",
		Clock:    1.5,
		Stations: [2]StationState{{Occupancy: 1, InService: 1}},
	})

	// THEN the trace contains one event record with correct data
	if len(st.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(st.Events))
	}
	if st.Events[0].Kind != "arrival@1" {
		t.Errorf("expected kind arrival@1, got %s", st.Events[0].Kind)
	}
	if st.Events[0].Stations[0].Occupancy != 1 {
		t.Errorf("expected station 1 occupancy 1, got %d", st.Events[0].Stations[0].Occupancy)
	}
}

func TestSimulationTrace_RecordLoss_AppendsRecord(t *testing.T) {
	// GIVEN a trace configured for events
	st := NewSimulationTrace(TraceLevelEvents)

	// WHEN a loss is recorded
	st.RecordLoss(LossRecord{Clock: 12.25, Station: 2})

	// THEN the trace contains one loss record
	if len(st.Losses) != 1 {
		t.Fatalf("expected 1 loss, got %d", len(st.Losses))
	}
	if st.Losses[0].Station != 2 {
		t.Errorf("expected station 2, got %d", st.Losses[0].Station)
	}
}

func TestSimulationTrace_MultipleRecords_PreservesOrder(t *testing.T) {
	// GIVEN a trace
	st := NewSimulationTrace(TraceLevelEvents)

	// WHEN multiple records are added
	st.RecordEvent(EventRecord{Seq: 1, Kind: "arrival@1", Clock: 1.5})
	st.RecordEvent(EventRecord{Seq: 2, Kind: "arrival@1", Clock: 3.0})
	st.RecordEvent(EventRecord{Seq: 3, Kind: "departure@1", Clock: 4.7})

	// THEN order is preserved
	if len(st.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(st.Events))
	}
	for i, e := range st.Events {
		if e.Seq != int64(i+1) {
			t.Errorf("event %d: seq = %d, want %d", i, e.Seq, i+1)
		}
	}
}

func TestIsValidTraceLevel_ValidLevels(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"none", true},
		{"events", true},
		{"", true}, // empty defaults to none
		{"decisions", false},
		{"foobar", false},
		{"NONE", false}, // case-sensitive
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := IsValidTraceLevel(tt.level); got != tt.valid {
				t.Errorf("IsValidTraceLevel(%q) = %v, want %v", tt.level, got, tt.valid)
			}
		})
	}
}

func TestTraceLevel_Enabled(t *testing.T) {
	if TraceLevelNone.Enabled() {
		t.Error("none must not be enabled")
	}
	if TraceLevel("").Enabled() {
		t.Error("empty level must not be enabled")
	}
	if !TraceLevelEvents.Enabled() {
		t.Error("events must be enabled")
	}
}
