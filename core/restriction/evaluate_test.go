package restriction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tariff-restrictions/core/ocpi"
	"tariff-restrictions/core/session"
	"tariff-restrictions/core/types"
)

// periodStarting builds a period carrying only calendar data.
func periodStarting(t *testing.T, date, clock string) session.ChargePeriod {
	t.Helper()
	d, err := types.ParseCivilDate(date)
	if err != nil {
		t.Fatalf("ParseCivilDate(%q) returned error: %v", date, err)
	}
	ct, err := types.ParseClockTime(clock)
	if err != nil {
		t.Fatalf("ParseClockTime(%q) returned error: %v", clock, err)
	}
	return session.ChargePeriod{StartTime: ct, StartDate: d}
}

func durationPtr(d time.Duration) *time.Duration { return &d }

func mustClock(t *testing.T, s string) types.ClockTime {
	t.Helper()
	ct, err := types.ParseClockTime(s)
	if err != nil {
		t.Fatalf("ParseClockTime(%q) returned error: %v", s, err)
	}
	return ct
}

func mustDate(t *testing.T, s string) types.CivilDate {
	t.Helper()
	d, err := types.ParseCivilDate(s)
	if err != nil {
		t.Fatalf("ParseCivilDate(%q) returned error: %v", s, err)
	}
	return d
}

// TestWrappingTimeEvaluate tests the 22:00-06:00 window on both sides of
// midnight
func TestWrappingTimeEvaluate(t *testing.T) {
	window := WrappingTime{Start: mustClock(t, "22:00"), End: mustClock(t, "06:00")}

	tests := []struct {
		start string
		want  Outcome
	}{
		{start: "23:00", want: OutcomeMatched},
		{start: "05:00", want: OutcomeMatched},
		{start: "00:00", want: OutcomeMatched},
		{start: "22:00", want: OutcomeMatched},
		{start: "12:00", want: OutcomeNotMatched},
		{start: "06:00", want: OutcomeNotMatched},
		{start: "21:59:59", want: OutcomeNotMatched},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", tt.start)
			if got := window.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate(%s) = %s, want %s", tt.start, got, tt.want)
			}
		})
	}
}

// TestTimeBoundEvaluate tests the half-open convention on plain time bounds
func TestTimeBoundEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		r     Restriction
		start string
		want  Outcome
	}{
		{
			name:  "start bound is inclusive",
			r:     StartTime{Time: mustClock(t, "08:00")},
			start: "08:00",
			want:  OutcomeMatched,
		},
		{
			name:  "before the start bound",
			r:     StartTime{Time: mustClock(t, "08:00")},
			start: "07:59:59",
			want:  OutcomeNotMatched,
		},
		{
			name:  "end bound is exclusive",
			r:     EndTime{Time: mustClock(t, "18:00")},
			start: "18:00",
			want:  OutcomeNotMatched,
		},
		{
			name:  "before the end bound",
			r:     EndTime{Time: mustClock(t, "18:00")},
			start: "17:59:59",
			want:  OutcomeMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", tt.start)
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestDateBoundEvaluate tests the half-open convention on date bounds
func TestDateBoundEvaluate(t *testing.T) {
	tests := []struct {
		name string
		r    Restriction
		date string
		want Outcome
	}{
		{
			name: "start date is inclusive",
			r:    StartDate{Date: mustDate(t, "2024-06-01")},
			date: "2024-06-01",
			want: OutcomeMatched,
		},
		{
			name: "before the start date",
			r:    StartDate{Date: mustDate(t, "2024-06-01")},
			date: "2024-05-31",
			want: OutcomeNotMatched,
		},
		{
			name: "end date is exclusive",
			r:    EndDate{Date: mustDate(t, "2024-07-01")},
			date: "2024-07-01",
			want: OutcomeNotMatched,
		},
		{
			name: "before the end date",
			r:    EndDate{Date: mustDate(t, "2024-07-01")},
			date: "2024-06-30",
			want: OutcomeMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, tt.date, "12:00")
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestEnergyBoundEvaluate tests energy bounds including the unmetered case
func TestEnergyBoundEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		r      Restriction
		energy *decimal.Decimal
		want   Outcome
	}{
		{
			name: "min kwh without metering",
			r:    MinKwh{Limit: decimal.NewFromInt(10)},
			want: OutcomeIndeterminate,
		},
		{
			name:   "min kwh at the bound",
			r:      MinKwh{Limit: decimal.NewFromInt(10)},
			energy: decimalPtr("10"),
			want:   OutcomeMatched,
		},
		{
			name:   "min kwh above the bound",
			r:      MinKwh{Limit: decimal.NewFromInt(10)},
			energy: decimalPtr("15"),
			want:   OutcomeMatched,
		},
		{
			name:   "min kwh below the bound",
			r:      MinKwh{Limit: decimal.NewFromInt(10)},
			energy: decimalPtr("9"),
			want:   OutcomeNotMatched,
		},
		{
			name:   "max kwh below the bound",
			r:      MaxKwh{Limit: decimal.NewFromInt(30)},
			energy: decimalPtr("29.999"),
			want:   OutcomeMatched,
		},
		{
			name:   "max kwh at the bound is excluded",
			r:      MaxKwh{Limit: decimal.NewFromInt(30)},
			energy: decimalPtr("30"),
			want:   OutcomeNotMatched,
		},
		{
			name: "max kwh without metering",
			r:    MaxKwh{Limit: decimal.NewFromInt(30)},
			want: OutcomeIndeterminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", "12:00")
			p.Aggregate.Energy = tt.energy
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestDurationBoundEvaluate tests session duration bounds
func TestDurationBoundEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		r       Restriction
		elapsed *time.Duration
		want    Outcome
	}{
		{
			name: "min duration unknown",
			r:    MinDuration{Limit: time.Hour},
			want: OutcomeIndeterminate,
		},
		{
			name:    "min duration at the bound",
			r:       MinDuration{Limit: time.Hour},
			elapsed: durationPtr(time.Hour),
			want:    OutcomeMatched,
		},
		{
			name:    "min duration below the bound",
			r:       MinDuration{Limit: time.Hour},
			elapsed: durationPtr(59 * time.Minute),
			want:    OutcomeNotMatched,
		},
		{
			name:    "max duration below the bound",
			r:       MaxDuration{Limit: 4 * time.Hour},
			elapsed: durationPtr(3*time.Hour + 59*time.Minute),
			want:    OutcomeMatched,
		},
		{
			name:    "max duration at the bound is excluded",
			r:       MaxDuration{Limit: 4 * time.Hour},
			elapsed: durationPtr(4 * time.Hour),
			want:    OutcomeNotMatched,
		},
		{
			name: "max duration unknown",
			r:    MaxDuration{Limit: 4 * time.Hour},
			want: OutcomeIndeterminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", "12:00")
			p.Aggregate.Duration = tt.elapsed
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestCurrentBoundEvaluate tests that each current bound reads its own
// measurement: the minimum bound the lowest current, the maximum bound the
// highest
func TestCurrentBoundEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		r     Restriction
		state session.PeriodState
		want  Outcome
	}{
		{
			name:  "min current at the bound",
			r:     MinCurrent{Limit: decimal.NewFromInt(6)},
			state: session.PeriodState{MinCurrent: decimalPtr("6")},
			want:  OutcomeMatched,
		},
		{
			name:  "min current below the bound",
			r:     MinCurrent{Limit: decimal.NewFromInt(6)},
			state: session.PeriodState{MinCurrent: decimalPtr("5.9")},
			want:  OutcomeNotMatched,
		},
		{
			name:  "min current missing despite max being known",
			r:     MinCurrent{Limit: decimal.NewFromInt(6)},
			state: session.PeriodState{MaxCurrent: decimalPtr("32")},
			want:  OutcomeIndeterminate,
		},
		{
			name:  "max current below the bound",
			r:     MaxCurrent{Limit: decimal.NewFromInt(32)},
			state: session.PeriodState{MaxCurrent: decimalPtr("31.9")},
			want:  OutcomeMatched,
		},
		{
			name:  "max current at the bound is excluded",
			r:     MaxCurrent{Limit: decimal.NewFromInt(32)},
			state: session.PeriodState{MaxCurrent: decimalPtr("32")},
			want:  OutcomeNotMatched,
		},
		{
			name:  "max current missing despite min being known",
			r:     MaxCurrent{Limit: decimal.NewFromInt(32)},
			state: session.PeriodState{MinCurrent: decimalPtr("6")},
			want:  OutcomeIndeterminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", "12:00")
			p.State = tt.state
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestPowerBoundEvaluate tests the power bounds against their respective
// measurements
func TestPowerBoundEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		r     Restriction
		state session.PeriodState
		want  Outcome
	}{
		{
			name:  "min power at the bound",
			r:     MinPower{Limit: decimal.RequireFromString("3.7")},
			state: session.PeriodState{MinPower: decimalPtr("3.7")},
			want:  OutcomeMatched,
		},
		{
			name:  "min power below the bound",
			r:     MinPower{Limit: decimal.RequireFromString("3.7")},
			state: session.PeriodState{MinPower: decimalPtr("2.3")},
			want:  OutcomeNotMatched,
		},
		{
			name:  "min power missing",
			r:     MinPower{Limit: decimal.RequireFromString("3.7")},
			state: session.PeriodState{MaxPower: decimalPtr("22")},
			want:  OutcomeIndeterminate,
		},
		{
			name:  "max power below the bound",
			r:     MaxPower{Limit: decimal.NewFromInt(22)},
			state: session.PeriodState{MaxPower: decimalPtr("11")},
			want:  OutcomeMatched,
		},
		{
			name:  "max power at the bound is excluded",
			r:     MaxPower{Limit: decimal.NewFromInt(22)},
			state: session.PeriodState{MaxPower: decimalPtr("22")},
			want:  OutcomeNotMatched,
		},
		{
			name:  "max power missing",
			r:     MaxPower{Limit: decimal.NewFromInt(22)},
			state: session.PeriodState{MinPower: decimalPtr("3.7")},
			want:  OutcomeIndeterminate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := periodStarting(t, "2024-01-15", "12:00")
			p.State = tt.state
			if got := tt.r.Evaluate(p); got != tt.want {
				t.Errorf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestDayOfWeekEvaluate tests weekday matching and that the outcome stays
// known even when every measurement is missing
func TestDayOfWeekEvaluate(t *testing.T) {
	dow := DayOfWeek{Days: types.NewWeekdaySet(time.Monday, time.Tuesday)}

	tests := []struct {
		date string
		want Outcome
	}{
		{date: "2024-01-15", want: OutcomeMatched},    // Monday
		{date: "2024-01-16", want: OutcomeMatched},    // Tuesday
		{date: "2024-01-14", want: OutcomeNotMatched}, // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			p := periodStarting(t, tt.date, "12:00")
			got := dow.Evaluate(p)
			if got != tt.want {
				t.Errorf("Evaluate(%s) = %s, want %s", tt.date, got, tt.want)
			}
			if !got.Known() {
				t.Error("weekday outcome should always be decidable")
			}
		})
	}
}

// TestReservationEvaluate tests that reservation restrictions never decide
func TestReservationEvaluate(t *testing.T) {
	r := Reservation{Type: ocpi.Reservation}

	p := periodStarting(t, "2024-01-15", "12:00")
	p.Aggregate.Energy = decimalPtr("10")
	p.Aggregate.Duration = durationPtr(time.Hour)
	p.State = session.PeriodState{
		MinCurrent: decimalPtr("6"),
		MaxCurrent: decimalPtr("32"),
		MinPower:   decimalPtr("3.7"),
		MaxPower:   decimalPtr("22"),
	}

	if got := r.Evaluate(p); got != OutcomeIndeterminate {
		t.Errorf("Evaluate = %s, want indeterminate", got)
	}
}

// TestEvaluateAll tests positional outcome mapping without combination
func TestEvaluateAll(t *testing.T) {
	restrictions := []Restriction{
		StartTime{Time: mustClock(t, "08:00")},
		MinKwh{Limit: decimal.NewFromInt(10)},
		Reservation{Type: ocpi.Reservation},
	}

	p := periodStarting(t, "2024-01-15", "09:00")
	got := EvaluateAll(restrictions, p)

	want := []Outcome{OutcomeMatched, OutcomeIndeterminate, OutcomeIndeterminate}
	if len(got) != len(want) {
		t.Fatalf("EvaluateAll returned %d outcomes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("outcome %d = %s, want %s", i, got[i], want[i])
		}
	}

	if empty := EvaluateAll(nil, p); len(empty) != 0 {
		t.Errorf("EvaluateAll(nil) returned %d outcomes, want 0", len(empty))
	}
}

// TestOutcomeKnown tests the tri-state helper
func TestOutcomeKnown(t *testing.T) {
	if !OutcomeMatched.Known() || !OutcomeNotMatched.Known() {
		t.Error("definite outcomes should be known")
	}
	if OutcomeIndeterminate.Known() {
		t.Error("indeterminate should not be known")
	}
}
