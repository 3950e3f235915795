// Package types defines the shared value types the restriction builder and
// evaluator operate on: local clock times, civil dates and weekday sets.
//
// None of these types carry a time zone. The surrounding system resolves a
// charging location's zone before any value reaches this module, so every
// comparison here is plain local calendar arithmetic.
package types

import (
	"fmt"
	"time"
)

// clockTimeLayouts are the accepted textual forms, tried in order.
var clockTimeLayouts = []string{"15:04:05", "15:04"}

// ClockTime is a local time of day without date or zone, as used by tariff
// time windows and charge period starts.
type ClockTime struct {
	// Hour is the hour of day in the range 0-23.
	Hour int

	// Minute is the minute of the hour in the range 0-59.
	Minute int

	// Second is the second of the minute in the range 0-59.
	Second int
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS" text into a ClockTime.
// Out-of-range components such as "24:00" or "12:60" are rejected.
func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range clockTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("invalid clock time %q: want HH:MM or HH:MM:SS", s)
}

// ClockTimeOf extracts the time of day of an already-localized instant.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// secondOfDay folds the time into a single comparable offset.
func (t ClockTime) secondOfDay() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Compare orders two clock times within a day. It returns -1 when t is
// earlier than o, 0 when they are equal and +1 when t is later.
func (t ClockTime) Compare(o ClockTime) int {
	a, b := t.secondOfDay(), o.secondOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier in the day than o.
func (t ClockTime) Before(o ClockTime) bool {
	return t.Compare(o) < 0
}

// String renders the time as "HH:MM:SS".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalText implements encoding.TextMarshaler so clock times can sit
// directly in JSON structs.
func (t ClockTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
