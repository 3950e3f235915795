package types

import (
	"math/bits"
	"strings"
	"time"
)

// WeekdaySet is an immutable set of days of the week, one bit per weekday.
// The zero value is the empty set.
type WeekdaySet uint8

// NewWeekdaySet builds a set from the given days, dropping duplicates.
func NewWeekdaySet(days ...time.Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Has reports whether the set contains d.
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// Len returns the number of days in the set.
func (s WeekdaySet) Len() int {
	return bits.OnesCount8(uint8(s))
}

// Days lists the contained days in calendar order, Sunday first.
func (s WeekdaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, s.Len())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String renders the set like "{Monday Tuesday}".
func (s WeekdaySet) String() string {
	names := make([]string, 0, s.Len())
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, " ") + "}"
}
