package output

import (
	"fmt"

	"tariff-restrictions/core/restriction"
	"tariff-restrictions/core/session"
)

// Report is the renderable result of checking one descriptor against a set
// of charge periods.
type Report struct {
	// Restrictions lists the normalized predicates in evaluation order.
	Restrictions []RestrictionSummary `json:"restrictions"`

	// Periods holds one result per submitted charge period.
	Periods []PeriodResult `json:"periods"`
}

// RestrictionSummary describes one normalized predicate.
type RestrictionSummary struct {
	// Kind is the predicate's kind tag.
	Kind string `json:"kind"`

	// Predicate is the human-readable operator form.
	Predicate string `json:"predicate"`
}

// PeriodResult carries every predicate's outcome for one period.
type PeriodResult struct {
	// Label identifies the period in output.
	Label string `json:"label"`

	// Start is the period's local start, date then time.
	Start string `json:"start"`

	// Outcomes align with Report.Restrictions by position.
	Outcomes []OutcomeEntry `json:"outcomes"`

	// Counts tallies the outcomes. It is bookkeeping only; deciding what
	// the tally means for pricing stays with the consumer.
	Counts OutcomeCounts `json:"counts"`
}

// OutcomeEntry is one predicate's outcome for one period.
type OutcomeEntry struct {
	// Kind is the predicate's kind tag.
	Kind string `json:"kind"`

	// Outcome is the tri-state result.
	Outcome string `json:"outcome"`
}

// OutcomeCounts tallies outcomes per period.
type OutcomeCounts struct {
	// Matched counts satisfied predicates.
	Matched int `json:"matched"`

	// NotMatched counts failed predicates.
	NotMatched int `json:"not_matched"`

	// Indeterminate counts predicates the period could not decide.
	Indeterminate int `json:"indeterminate"`
}

// CheckedPeriod pairs a charge period with the label it is reported under.
type CheckedPeriod struct {
	Label  string
	Period session.ChargePeriod
}

// BuildReport evaluates every restriction against every period and collects
// the outcome matrix for rendering. Each predicate keeps its own tri-state
// outcome; the report never folds them into a single applicability verdict.
func BuildReport(restrictions []restriction.Restriction, periods []CheckedPeriod) *Report {
	report := &Report{
		Restrictions: make([]RestrictionSummary, len(restrictions)),
		Periods:      make([]PeriodResult, 0, len(periods)),
	}
	for i, r := range restrictions {
		report.Restrictions[i] = RestrictionSummary{
			Kind:      string(r.Kind()),
			Predicate: r.String(),
		}
	}

	for _, cp := range periods {
		outcomes := restriction.EvaluateAll(restrictions, cp.Period)
		result := PeriodResult{
			Label:    cp.Label,
			Start:    fmt.Sprintf("%s %s", cp.Period.StartDate, cp.Period.StartTime),
			Outcomes: make([]OutcomeEntry, len(outcomes)),
		}
		for i, o := range outcomes {
			result.Outcomes[i] = OutcomeEntry{
				Kind:    string(restrictions[i].Kind()),
				Outcome: o.String(),
			}
			switch o {
			case restriction.OutcomeMatched:
				result.Counts.Matched++
			case restriction.OutcomeNotMatched:
				result.Counts.NotMatched++
			default:
				result.Counts.Indeterminate++
			}
		}
		report.Periods = append(report.Periods, result)
	}
	return report
}
