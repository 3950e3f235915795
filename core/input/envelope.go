// Package input - Normalized check request
// Decodes one tariff restriction descriptor plus the charge period snapshots
// to evaluate it against. Everything downstream consumes the decoded form.
package input

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tariff-restrictions/core/ocpi"
	"tariff-restrictions/core/session"
	"tariff-restrictions/core/types"
)

// CheckRequest is a decoded check input: a raw descriptor and the periods it
// should be evaluated against.
type CheckRequest struct {
	// Restriction is the descriptor under test, still in wire form.
	Restriction ocpi.TariffRestriction `json:"restriction"`

	// Periods are the charge period snapshots to evaluate.
	Periods []PeriodInput `json:"periods"`
}

// PeriodInput is the wire form of one charge period snapshot. The calendar
// fields are local to the charging location and required; every measurement
// is optional.
type PeriodInput struct {
	// Label names the period in reports. Unlabeled periods are reported
	// by position.
	Label string `json:"label,omitempty"`

	// StartDate is the local calendar date the period began.
	StartDate *types.CivilDate `json:"start_date"`

	// StartTime is the local time of day the period began.
	StartTime *types.ClockTime `json:"start_time"`

	// EnergyKwh is the session energy consumed so far, in kWh.
	EnergyKwh *decimal.Decimal `json:"energy_kwh,omitempty"`

	// DurationSeconds is the elapsed session time, in seconds.
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`

	// MinCurrentA is the lowest charging current observed, in A.
	MinCurrentA *decimal.Decimal `json:"min_current_a,omitempty"`

	// MaxCurrentA is the highest charging current observed, in A.
	MaxCurrentA *decimal.Decimal `json:"max_current_a,omitempty"`

	// MinPowerKw is the lowest charging power observed, in kW.
	MinPowerKw *decimal.Decimal `json:"min_power_kw,omitempty"`

	// MaxPowerKw is the highest charging power observed, in kW.
	MaxPowerKw *decimal.Decimal `json:"max_power_kw,omitempty"`
}

// Decode parses and validates a check request from JSON. Malformed calendar
// text surfaces here through the value types' own parsers.
func Decode(data []byte) (*CheckRequest, error) {
	var req CheckRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("invalid check request: %w", err)
	}
	if len(req.Periods) == 0 {
		return nil, fmt.Errorf("check request has no charge periods")
	}
	for i, p := range req.Periods {
		if p.StartDate == nil {
			return nil, fmt.Errorf("period %d: missing start_date", i+1)
		}
		if p.StartTime == nil {
			return nil, fmt.Errorf("period %d: missing start_time", i+1)
		}
	}
	return &req, nil
}

// DisplayLabel returns the period's label, or a positional one for the
// zero-based index i when the input left it empty.
func (p PeriodInput) DisplayLabel(i int) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("period %d", i+1)
}

// Period converts the wire form into the evaluator's snapshot type. It must
// only be called on inputs that passed Decode.
func (p PeriodInput) Period() session.ChargePeriod {
	agg := session.PeriodAggregate{Energy: p.EnergyKwh}
	if p.DurationSeconds != nil {
		d := time.Duration(*p.DurationSeconds) * time.Second
		agg.Duration = &d
	}
	return session.ChargePeriod{
		StartTime: *p.StartTime,
		StartDate: *p.StartDate,
		Aggregate: agg,
		State: session.PeriodState{
			MinCurrent: p.MinCurrentA,
			MaxCurrent: p.MaxCurrentA,
			MinPower:   p.MinPowerKw,
			MaxPower:   p.MaxPowerKw,
		},
	}
}
