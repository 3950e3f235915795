package restriction

import (
	"fmt"

	"tariff-restrictions/core/ocpi"
	"tariff-restrictions/core/session"
)

// Reservation restricts a tariff element to reservation charges. A charge
// period snapshot carries no reservation provenance, so the predicate cannot
// be decided here and always evaluates indeterminate; billing engines that
// track reservations resolve it downstream.
type Reservation struct {
	// Type distinguishes an active reservation from one that expired
	// unused.
	Type ocpi.ReservationType
}

func (r Reservation) Kind() Kind { return KindReservation }

// Evaluate always reports indeterminate: whether the session was reserved is
// not recorded on the period.
func (Reservation) Evaluate(session.ChargePeriod) Outcome {
	return OutcomeIndeterminate
}

func (r Reservation) String() string { return fmt.Sprintf("reservation = %s", r.Type) }

func (Reservation) restriction() {}
