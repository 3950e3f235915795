package ocpi

import "time"

// DayOfWeek is an OCPI weekday token as it appears in a restriction's
// day_of_week list.
type DayOfWeek string

// Weekday tokens defined by OCPI.
const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Weekday maps the token onto the standard library's weekday. The second
// return is false for tokens outside the OCPI set.
func (d DayOfWeek) Weekday() (time.Weekday, bool) {
	switch d {
	case Monday:
		return time.Monday, true
	case Tuesday:
		return time.Tuesday, true
	case Wednesday:
		return time.Wednesday, true
	case Thursday:
		return time.Thursday, true
	case Friday:
		return time.Friday, true
	case Saturday:
		return time.Saturday, true
	case Sunday:
		return time.Sunday, true
	default:
		return time.Sunday, false
	}
}
