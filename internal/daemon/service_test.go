package daemon

import (
	"testing"
	"time"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		TotalRealized:   "365000.00",
		PercentRealized: 31,
		MonthsReported:  2,
		EntryCount:      3,
	}
	curr := Snapshot{
		TotalRealized:   "530000.00",
		PercentRealized: 45,
		MonthsReported:  3,
		EntryCount:      4,
	}

	delta := diffSnapshots(prev, curr)
	if delta.Realized != "165000.00" {
		t.Fatalf("Realized delta = %s, want 165000.00", delta.Realized)
	}
	if delta.PercentRealized != 14 {
		t.Fatalf("PercentRealized delta = %d, want 14", delta.PercentRealized)
	}
	if delta.MonthsReported != 1 {
		t.Fatalf("MonthsReported delta = %d, want 1", delta.MonthsReported)
	}
	if delta.EntryCount != 1 {
		t.Fatalf("EntryCount delta = %d, want 1", delta.EntryCount)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}

	same := diffSnapshots(curr, curr)
	if !same.isZero() {
		t.Fatalf("identical snapshots produced nonzero delta: %+v", same)
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{
		DBPath:       "orca.db",
		Interval:     10 * time.Second,
		EventsBuffer: 2,
	})

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.events) != 2 {
		t.Fatalf("events len = %d, want 2", len(s.events))
	}
	if s.events[0].ID != 2 || s.events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", s.events[0].ID, s.events[1].ID)
	}
}
