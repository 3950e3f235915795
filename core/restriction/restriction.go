// Package restriction normalizes OCPI tariff restriction descriptors into
// atomic predicates and evaluates them against charge periods.
//
// A descriptor's optional fields become an ordered list of Restriction
// values (Collect). Each value answers, for one charge period, with a
// tri-state Outcome (Evaluate): matched, not matched, or indeterminate when
// the period lacks the data the predicate needs. Combining outcomes across
// restrictions into a price decision is left to the surrounding billing
// engine.
package restriction

import "tariff-restrictions/core/session"

// Restriction is one atomic applicability predicate extracted from a tariff
// restriction descriptor. Implementations are immutable values; evaluating
// them is pure and safe for concurrent use.
//
// The set of implementations is closed: the unexported marker keeps every
// variant inside this package, so a variant without an Evaluate method
// cannot exist.
type Restriction interface {
	// Kind identifies the variant for reports and logs.
	Kind() Kind

	// Evaluate decides the predicate against one charge period.
	Evaluate(p session.ChargePeriod) Outcome

	// String renders the predicate in operator form, like
	// "time >= 08:00:00".
	String() string

	restriction()
}

// Kind names a restriction variant.
type Kind string

// Restriction kinds.
const (
	KindStartTime    Kind = "START_TIME"
	KindEndTime      Kind = "END_TIME"
	KindWrappingTime Kind = "WRAPPING_TIME"
	KindStartDate    Kind = "START_DATE"
	KindEndDate      Kind = "END_DATE"
	KindMinKwh       Kind = "MIN_KWH"
	KindMaxKwh       Kind = "MAX_KWH"
	KindMinCurrent   Kind = "MIN_CURRENT"
	KindMaxCurrent   Kind = "MAX_CURRENT"
	KindMinPower     Kind = "MIN_POWER"
	KindMaxPower     Kind = "MAX_POWER"
	KindMinDuration  Kind = "MIN_DURATION"
	KindMaxDuration  Kind = "MAX_DURATION"
	KindDayOfWeek    Kind = "DAY_OF_WEEK"
	KindReservation  Kind = "RESERVATION"
)

// EvaluateAll evaluates every restriction in order against one period. Each
// predicate keeps its individual outcome; nothing is combined.
func EvaluateAll(restrictions []Restriction, p session.ChargePeriod) []Outcome {
	outcomes := make([]Outcome, len(restrictions))
	for i, r := range restrictions {
		outcomes[i] = r.Evaluate(p)
	}
	return outcomes
}
