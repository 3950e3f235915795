// Package session models the slices of a charging session that tariff
// restrictions are evaluated against.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"tariff-restrictions/core/types"
)

// ChargePeriod is a snapshot of one contiguous slice of a charging session
// during which the charging state is treated as uniform. Periods arrive with
// their calendar fields already resolved to the charging location's local
// time; nothing in this module consults time zones.
type ChargePeriod struct {
	// StartTime is the local time of day the period began.
	StartTime types.ClockTime

	// StartDate is the local calendar date the period began.
	StartDate types.CivilDate

	// Aggregate carries the session-cumulative measurements taken at the
	// period start.
	Aggregate PeriodAggregate

	// State carries the instantaneous electrical bounds observed during
	// the period.
	State PeriodState
}

// PeriodAggregate holds session totals measured at a period's start. A nil
// field means the measurement is unavailable for the session.
type PeriodAggregate struct {
	// Energy is the energy consumed since the session started, in kWh.
	Energy *decimal.Decimal

	// Duration is the time elapsed since the session started.
	Duration *time.Duration
}

// PeriodState holds the instantaneous electrical bounds observed during a
// period. A nil field means the charger did not report the measurement.
type PeriodState struct {
	// MinCurrent is the lowest charging current reached, in A.
	MinCurrent *decimal.Decimal

	// MaxCurrent is the highest charging current reached, in A.
	MaxCurrent *decimal.Decimal

	// MinPower is the lowest charging power reached, in kW.
	MinPower *decimal.Decimal

	// MaxPower is the highest charging power reached, in kW.
	MaxPower *decimal.Decimal
}

// NewChargePeriod derives a period snapshot from an already-localized start
// instant. The instant must carry the charging location's zone; no zone
// resolution happens here.
func NewChargePeriod(localStart time.Time, agg PeriodAggregate, state PeriodState) ChargePeriod {
	return ChargePeriod{
		StartTime: types.ClockTimeOf(localStart),
		StartDate: types.DateOf(localStart),
		Aggregate: agg,
		State:     state,
	}
}

// Weekday returns the local day of the week the period began on. It is
// derived from the start date, so it can never disagree with it.
func (p ChargePeriod) Weekday() time.Weekday {
	return p.StartDate.Weekday()
}
