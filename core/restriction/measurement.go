package restriction

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tariff-restrictions/core/session"
)

// decideMeasured applies cmp to a measured value, or reports indeterminate
// when the measurement is missing from the period.
func decideMeasured(measured *decimal.Decimal, cmp func(decimal.Decimal) bool) Outcome {
	if measured == nil {
		return OutcomeIndeterminate
	}
	return decide(cmp(*measured))
}

// MinKwh restricts a tariff element to periods where the session has already
// consumed at least a given energy.
type MinKwh struct {
	// Limit is the inclusive energy bound in kWh.
	Limit decimal.Decimal
}

func (r MinKwh) Kind() Kind { return KindMinKwh }

// Evaluate is indeterminate for sessions without energy metering.
func (r MinKwh) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.Aggregate.Energy, func(energy decimal.Decimal) bool {
		return energy.GreaterThanOrEqual(r.Limit)
	})
}

func (r MinKwh) String() string { return fmt.Sprintf("energy >= %s kWh", r.Limit) }

func (MinKwh) restriction() {}

// MaxKwh restricts a tariff element to periods where the session has
// consumed less than a given energy.
type MaxKwh struct {
	// Limit is the exclusive energy bound in kWh.
	Limit decimal.Decimal
}

func (r MaxKwh) Kind() Kind { return KindMaxKwh }

// Evaluate is indeterminate for sessions without energy metering.
func (r MaxKwh) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.Aggregate.Energy, func(energy decimal.Decimal) bool {
		return energy.LessThan(r.Limit)
	})
}

func (r MaxKwh) String() string { return fmt.Sprintf("energy < %s kWh", r.Limit) }

func (MaxKwh) restriction() {}

// MinCurrent restricts a tariff element to periods whose lowest charging
// current stays at or above a bound.
type MinCurrent struct {
	// Limit is the inclusive current bound in A.
	Limit decimal.Decimal
}

func (r MinCurrent) Kind() Kind { return KindMinCurrent }

// Evaluate reads the period's minimum current and is indeterminate when the
// charger did not report one.
func (r MinCurrent) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.State.MinCurrent, func(current decimal.Decimal) bool {
		return current.GreaterThanOrEqual(r.Limit)
	})
}

func (r MinCurrent) String() string { return fmt.Sprintf("min_current >= %s A", r.Limit) }

func (MinCurrent) restriction() {}

// MaxCurrent restricts a tariff element to periods whose highest charging
// current stays below a bound.
type MaxCurrent struct {
	// Limit is the exclusive current bound in A.
	Limit decimal.Decimal
}

func (r MaxCurrent) Kind() Kind { return KindMaxCurrent }

// Evaluate reads the period's maximum current and is indeterminate when the
// charger did not report one.
func (r MaxCurrent) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.State.MaxCurrent, func(current decimal.Decimal) bool {
		return current.LessThan(r.Limit)
	})
}

func (r MaxCurrent) String() string { return fmt.Sprintf("max_current < %s A", r.Limit) }

func (MaxCurrent) restriction() {}

// MinPower restricts a tariff element to periods whose lowest charging power
// stays at or above a bound.
type MinPower struct {
	// Limit is the inclusive power bound in kW.
	Limit decimal.Decimal
}

func (r MinPower) Kind() Kind { return KindMinPower }

// Evaluate reads the period's minimum power and is indeterminate when the
// charger did not report one.
func (r MinPower) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.State.MinPower, func(power decimal.Decimal) bool {
		return power.GreaterThanOrEqual(r.Limit)
	})
}

func (r MinPower) String() string { return fmt.Sprintf("min_power >= %s kW", r.Limit) }

func (MinPower) restriction() {}

// MaxPower restricts a tariff element to periods whose highest charging
// power stays below a bound.
type MaxPower struct {
	// Limit is the exclusive power bound in kW.
	Limit decimal.Decimal
}

func (r MaxPower) Kind() Kind { return KindMaxPower }

// Evaluate reads the period's maximum power and is indeterminate when the
// charger did not report one.
func (r MaxPower) Evaluate(p session.ChargePeriod) Outcome {
	return decideMeasured(p.State.MaxPower, func(power decimal.Decimal) bool {
		return power.LessThan(r.Limit)
	})
}

func (r MaxPower) String() string { return fmt.Sprintf("max_power < %s kW", r.Limit) }

func (MaxPower) restriction() {}

// MinDuration restricts a tariff element to periods where the session has
// already lasted at least a given time.
type MinDuration struct {
	// Limit is the inclusive duration bound.
	Limit time.Duration
}

func (r MinDuration) Kind() Kind { return KindMinDuration }

// Evaluate is indeterminate when the session's elapsed time is unknown.
func (r MinDuration) Evaluate(p session.ChargePeriod) Outcome {
	if p.Aggregate.Duration == nil {
		return OutcomeIndeterminate
	}
	return decide(*p.Aggregate.Duration >= r.Limit)
}

func (r MinDuration) String() string { return fmt.Sprintf("duration >= %s", r.Limit) }

func (MinDuration) restriction() {}

// MaxDuration restricts a tariff element to periods where the session has
// lasted less than a given time.
type MaxDuration struct {
	// Limit is the exclusive duration bound.
	Limit time.Duration
}

func (r MaxDuration) Kind() Kind { return KindMaxDuration }

// Evaluate is indeterminate when the session's elapsed time is unknown.
func (r MaxDuration) Evaluate(p session.ChargePeriod) Outcome {
	if p.Aggregate.Duration == nil {
		return OutcomeIndeterminate
	}
	return decide(*p.Aggregate.Duration < r.Limit)
}

func (r MaxDuration) String() string { return fmt.Sprintf("duration < %s", r.Limit) }

func (MaxDuration) restriction() {}
