// Package ocpi holds the wire representation of tariff restrictions as they
// arrive from roaming partners, before normalization.
package ocpi

import "github.com/shopspring/decimal"

// TariffRestriction mirrors the restrictions object attached to an OCPI
// tariff element. Every field is optional; an absent field places no
// constraint of its kind. Numeric bounds are decimals because they feed
// billing comparisons.
type TariffRestriction struct {
	// StartTime is the earliest local time of day the element applies,
	// inclusive, as "HH:MM" or "HH:MM:SS".
	StartTime *string `json:"start_time,omitempty"`

	// EndTime is the local time of day the element stops applying,
	// exclusive. An end earlier than the start denotes a daily window
	// that crosses midnight.
	EndTime *string `json:"end_time,omitempty"`

	// StartDate is the first local calendar date the element applies,
	// inclusive, as "YYYY-MM-DD".
	StartDate *string `json:"start_date,omitempty"`

	// EndDate is the local calendar date the element stops applying,
	// exclusive.
	EndDate *string `json:"end_date,omitempty"`

	// MinKwh is the consumed energy, in kWh, from which the element
	// applies, inclusive.
	MinKwh *decimal.Decimal `json:"min_kwh,omitempty"`

	// MaxKwh is the consumed energy, in kWh, at which the element stops
	// applying, exclusive.
	MaxKwh *decimal.Decimal `json:"max_kwh,omitempty"`

	// MinCurrent is the charging current, in A, from which the element
	// applies, inclusive.
	MinCurrent *decimal.Decimal `json:"min_current,omitempty"`

	// MaxCurrent is the charging current, in A, at which the element
	// stops applying, exclusive.
	MaxCurrent *decimal.Decimal `json:"max_current,omitempty"`

	// MinPower is the charging power, in kW, from which the element
	// applies, inclusive.
	MinPower *decimal.Decimal `json:"min_power,omitempty"`

	// MaxPower is the charging power, in kW, at which the element stops
	// applying, exclusive.
	MaxPower *decimal.Decimal `json:"max_power,omitempty"`

	// MinDuration is the session duration, in seconds, from which the
	// element applies, inclusive.
	MinDuration *int64 `json:"min_duration,omitempty"`

	// MaxDuration is the session duration, in seconds, at which the
	// element stops applying, exclusive.
	MaxDuration *int64 `json:"max_duration,omitempty"`

	// DayOfWeek lists the weekdays the element applies on. An empty list
	// places no weekday constraint.
	DayOfWeek []DayOfWeek `json:"day_of_week,omitempty"`

	// Reservation marks the element as applying to reservation charges.
	Reservation *ReservationType `json:"reservation,omitempty"`
}
