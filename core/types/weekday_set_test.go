package types

import (
	"testing"
	"time"
)

// TestNewWeekdaySetDeduplicates tests that repeated days collapse
func TestNewWeekdaySetDeduplicates(t *testing.T) {
	s := NewWeekdaySet(time.Monday, time.Monday, time.Tuesday, time.Monday)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(time.Monday) || !s.Has(time.Tuesday) {
		t.Errorf("set %v should contain Monday and Tuesday", s)
	}
	if s.Has(time.Sunday) {
		t.Errorf("set %v should not contain Sunday", s)
	}
}

// TestWeekdaySetEmpty tests the zero value
func TestWeekdaySetEmpty(t *testing.T) {
	var s WeekdaySet
	if s.Len() != 0 {
		t.Errorf("empty set Len() = %d, want 0", s.Len())
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			t.Errorf("empty set should not contain %v", d)
		}
	}
}

// TestWeekdaySetDays tests calendar-ordered listing
func TestWeekdaySetDays(t *testing.T) {
	s := NewWeekdaySet(time.Saturday, time.Monday, time.Sunday)
	got := s.Days()
	want := []time.Weekday{time.Sunday, time.Monday, time.Saturday}
	if len(got) != len(want) {
		t.Fatalf("Days() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestWeekdaySetString tests the human-readable rendering
func TestWeekdaySetString(t *testing.T) {
	s := NewWeekdaySet(time.Tuesday, time.Monday)
	if got := s.String(); got != "{Monday Tuesday}" {
		t.Errorf("String() = %q, want %q", got, "{Monday Tuesday}")
	}
}
