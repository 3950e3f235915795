package types

import (
	"fmt"
	"time"
)

// civilDateLayout is the accepted ISO 8601 calendar date form.
const civilDateLayout = "2006-01-02"

// CivilDate is a local calendar date without time or zone, as used by tariff
// date bounds and charge period starts.
type CivilDate struct {
	// Year is the full calendar year, such as 2024.
	Year int

	// Month is the calendar month, January through December.
	Month time.Month

	// Day is the day of the month in the range 1-31.
	Day int
}

// ParseCivilDate parses ISO 8601 "YYYY-MM-DD" text into a CivilDate.
// Impossible dates such as "2024-13-40" or "2023-02-29" are rejected.
func ParseCivilDate(s string) (CivilDate, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("invalid calendar date %q: want YYYY-MM-DD", s)
	}
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extracts the civil date of an already-localized instant.
func DateOf(t time.Time) CivilDate {
	return CivilDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Compare orders two dates chronologically. It returns -1 when d is earlier
// than o, 0 when they are equal and +1 when d is later.
func (d CivilDate) Compare(o CivilDate) int {
	a := d.Year*10000 + int(d.Month)*100 + d.Day
	b := o.Year*10000 + int(o.Month)*100 + o.Day
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than o.
func (d CivilDate) Before(o CivilDate) bool {
	return d.Compare(o) < 0
}

// Weekday returns the day of the week the date falls on. The computation is
// pure calendar arithmetic; the UTC location below is only a placeholder.
func (d CivilDate) Weekday() time.Weekday {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Weekday()
}

// String renders the date as "YYYY-MM-DD".
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler so civil dates can sit
// directly in JSON structs.
func (d CivilDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *CivilDate) UnmarshalText(text []byte) error {
	parsed, err := ParseCivilDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
