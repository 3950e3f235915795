package restriction

import (
	"errors"
	"time"

	"tariff-restrictions/core/ocpi"
	"tariff-restrictions/core/types"
)

// Collect normalizes a descriptor into its ordered list of atomic
// restrictions. Absent fields contribute nothing; a descriptor with no
// fields yields an empty list, meaning the tariff element always applies.
//
// The first malformed field aborts the whole build with a *FieldError:
// callers get either the complete list or nothing. The emission order is
// fixed, so equal descriptors always normalize identically.
func Collect(r ocpi.TariffRestriction) ([]Restriction, error) {
	var out []Restriction

	start, err := parseClock("start_time", r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := parseClock("end_time", r.EndTime)
	if err != nil {
		return nil, err
	}
	// A paired window whose end is earlier than its start crosses
	// midnight and becomes a single wrapping restriction; any other
	// combination keeps the bounds independent.
	if start != nil && end != nil && end.Before(*start) {
		out = append(out, WrappingTime{Start: *start, End: *end})
	} else {
		if start != nil {
			out = append(out, StartTime{Time: *start})
		}
		if end != nil {
			out = append(out, EndTime{Time: *end})
		}
	}

	startDate, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return nil, err
	}
	if startDate != nil {
		out = append(out, StartDate{Date: *startDate})
	}
	endDate, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return nil, err
	}
	if endDate != nil {
		out = append(out, EndDate{Date: *endDate})
	}

	if r.MinKwh != nil {
		out = append(out, MinKwh{Limit: *r.MinKwh})
	}
	if r.MaxKwh != nil {
		out = append(out, MaxKwh{Limit: *r.MaxKwh})
	}
	if r.MinCurrent != nil {
		out = append(out, MinCurrent{Limit: *r.MinCurrent})
	}
	if r.MaxCurrent != nil {
		out = append(out, MaxCurrent{Limit: *r.MaxCurrent})
	}
	if r.MinPower != nil {
		out = append(out, MinPower{Limit: *r.MinPower})
	}
	if r.MaxPower != nil {
		out = append(out, MaxPower{Limit: *r.MaxPower})
	}

	if r.MinDuration != nil {
		out = append(out, MinDuration{Limit: time.Duration(*r.MinDuration) * time.Second})
	}
	if r.MaxDuration != nil {
		out = append(out, MaxDuration{Limit: time.Duration(*r.MaxDuration) * time.Second})
	}

	if len(r.DayOfWeek) > 0 {
		days, err := collectWeekdays(r.DayOfWeek)
		if err != nil {
			return nil, err
		}
		out = append(out, DayOfWeek{Days: days})
	}

	if r.Reservation != nil {
		if !r.Reservation.IsValid() {
			return nil, &FieldError{
				Field: "reservation",
				Value: string(*r.Reservation),
				Err:   errors.New("unknown reservation type"),
			}
		}
		out = append(out, Reservation{Type: *r.Reservation})
	}

	return out, nil
}

// parseClock parses an optional descriptor time field, attributing failures
// to the field.
func parseClock(field string, value *string) (*types.ClockTime, error) {
	if value == nil {
		return nil, nil
	}
	t, err := types.ParseClockTime(*value)
	if err != nil {
		return nil, &FieldError{Field: field, Value: *value, Err: err}
	}
	return &t, nil
}

// parseDate parses an optional descriptor date field, attributing failures
// to the field.
func parseDate(field string, value *string) (*types.CivilDate, error) {
	if value == nil {
		return nil, nil
	}
	d, err := types.ParseCivilDate(*value)
	if err != nil {
		return nil, &FieldError{Field: field, Value: *value, Err: err}
	}
	return &d, nil
}

// collectWeekdays folds descriptor weekday tokens into a set, dropping
// duplicates.
func collectWeekdays(tokens []ocpi.DayOfWeek) (types.WeekdaySet, error) {
	days := make([]time.Weekday, 0, len(tokens))
	for _, token := range tokens {
		d, ok := token.Weekday()
		if !ok {
			return 0, &FieldError{
				Field: "day_of_week",
				Value: string(token),
				Err:   errors.New("unknown weekday token"),
			}
		}
		days = append(days, d)
	}
	return types.NewWeekdaySet(days...), nil
}
