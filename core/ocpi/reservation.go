package ocpi

// ReservationType restricts a tariff element to reservation-related charges.
type ReservationType string

const (
	// Reservation applies the element while a reservation is in use.
	Reservation ReservationType = "RESERVATION"

	// ReservationExpires applies the element to a reservation that
	// expired unused.
	ReservationExpires ReservationType = "RESERVATION_EXPIRES"
)

// IsValid reports whether the value is one of the OCPI reservation types.
func (r ReservationType) IsValid() bool {
	switch r {
	case Reservation, ReservationExpires:
		return true
	default:
		return false
	}
}

// String returns the wire form of the reservation type.
func (r ReservationType) String() string {
	return string(r)
}
