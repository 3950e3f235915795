package restriction

import (
	"fmt"

	"tariff-restrictions/core/session"
	"tariff-restrictions/core/types"
)

// StartTime restricts a tariff element to periods starting at or after a
// local time of day.
type StartTime struct {
	// Time is the inclusive lower bound.
	Time types.ClockTime
}

func (r StartTime) Kind() Kind { return KindStartTime }

func (r StartTime) Evaluate(p session.ChargePeriod) Outcome {
	return decide(p.StartTime.Compare(r.Time) >= 0)
}

func (r StartTime) String() string { return fmt.Sprintf("time >= %s", r.Time) }

func (StartTime) restriction() {}

// EndTime restricts a tariff element to periods starting before a local time
// of day.
type EndTime struct {
	// Time is the exclusive upper bound.
	Time types.ClockTime
}

func (r EndTime) Kind() Kind { return KindEndTime }

func (r EndTime) Evaluate(p session.ChargePeriod) Outcome {
	return decide(p.StartTime.Before(r.Time))
}

func (r EndTime) String() string { return fmt.Sprintf("time < %s", r.Time) }

func (EndTime) restriction() {}

// WrappingTime restricts a tariff element to a daily window that crosses
// midnight, such as 22:00-06:00. It replaces the separate start and end
// bounds, which no single moment could satisfy together.
type WrappingTime struct {
	// Start is the inclusive window start.
	Start types.ClockTime

	// End is the exclusive window end, earlier in the day than Start.
	End types.ClockTime
}

func (r WrappingTime) Kind() Kind { return KindWrappingTime }

// Evaluate matches periods on either side of midnight: at or after the
// window start, or before the window end.
func (r WrappingTime) Evaluate(p session.ChargePeriod) Outcome {
	return decide(p.StartTime.Compare(r.Start) >= 0 || p.StartTime.Before(r.End))
}

func (r WrappingTime) String() string {
	return fmt.Sprintf("time >= %s or time < %s", r.Start, r.End)
}

func (WrappingTime) restriction() {}

// StartDate restricts a tariff element to periods starting on or after a
// local calendar date.
type StartDate struct {
	// Date is the inclusive lower bound.
	Date types.CivilDate
}

func (r StartDate) Kind() Kind { return KindStartDate }

func (r StartDate) Evaluate(p session.ChargePeriod) Outcome {
	return decide(p.StartDate.Compare(r.Date) >= 0)
}

func (r StartDate) String() string { return fmt.Sprintf("date >= %s", r.Date) }

func (StartDate) restriction() {}

// EndDate restricts a tariff element to periods starting before a local
// calendar date.
type EndDate struct {
	// Date is the exclusive upper bound.
	Date types.CivilDate
}

func (r EndDate) Kind() Kind { return KindEndDate }

func (r EndDate) Evaluate(p session.ChargePeriod) Outcome {
	return decide(p.StartDate.Before(r.Date))
}

func (r EndDate) String() string { return fmt.Sprintf("date < %s", r.Date) }

func (EndDate) restriction() {}

// DayOfWeek restricts a tariff element to periods starting on given days of
// the week.
type DayOfWeek struct {
	// Days is the non-empty set of matching weekdays.
	Days types.WeekdaySet
}

func (r DayOfWeek) Kind() Kind { return KindDayOfWeek }

// Evaluate is always decidable: every period starts on some weekday.
func (r DayOfWeek) Evaluate(p session.ChargePeriod) Outcome {
	return decide(r.Days.Has(p.Weekday()))
}

func (r DayOfWeek) String() string { return fmt.Sprintf("weekday in %s", r.Days) }

func (DayOfWeek) restriction() {}
