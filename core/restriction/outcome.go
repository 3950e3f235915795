package restriction

// Outcome is the tri-state result of evaluating a restriction against a
// charge period. The third state is load-bearing: a predicate whose input
// data is missing from the period is neither satisfied nor failed, and only
// the caller knows what to do with that.
type Outcome string

const (
	// OutcomeMatched means the period satisfies the predicate.
	OutcomeMatched Outcome = "matched"

	// OutcomeNotMatched means the period definitely fails the predicate.
	OutcomeNotMatched Outcome = "not_matched"

	// OutcomeIndeterminate means the period lacks the data the predicate
	// needs, so no decision is possible.
	OutcomeIndeterminate Outcome = "indeterminate"
)

// Known reports whether the outcome carries a definite decision.
func (o Outcome) Known() bool {
	return o != OutcomeIndeterminate
}

// String returns the wire form of the outcome.
func (o Outcome) String() string {
	return string(o)
}

// decide converts a definite comparison result into an outcome.
func decide(matched bool) Outcome {
	if matched {
		return OutcomeMatched
	}
	return OutcomeNotMatched
}
