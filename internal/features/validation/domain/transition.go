package domain

import "sort"

type codeSet map[StatusCode]struct{}

func setOf(codes ...StatusCode) codeSet {
	s := make(codeSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// transitions maps a status to the statuses it may move to.
// Cancellation (1250) is reachable from every non-terminal state and does
// not need to be listed, although most booking/transit rows do.
var transitions = map[StatusCode]codeSet{
	// Booking & initial phase
	StatusBookingPending:     setOf(1010, 1011, 1020, 1050, 1250),
	StatusShipmentBooked:     setOf(1020, 1025, 1039, 1050, 1070, 1083, 1100, 1200, 1250, 1280),
	StatusDeadStatus:         setOf(1050, 1250),
	StatusShipmentManifested: setOf(1025, 1039, 1050, 1070, 1083, 1100, 1200, 1250, 1280),
	StatusCancelRequested:    setOf(1050, 1250),
	StatusMissedPickup:       setOf(1050, 1070, 1083, 1100, 1200, 1250),
	StatusPickupCancelled:    setOf(),
	StatusPickupScheduled:    setOf(1039, 1050, 1083, 1100, 1200, 1250),
	StatusPickupRescheduled:  setOf(1039, 1050, 1100, 1200, 1250),
	StatusOutForPickup:       setOf(1039, 1050, 1200, 1250),

	// Pickup & transit
	StatusPickedUp:              setOf(1220, 1250, 1280, 1300, 1400),
	StatusInTransit:             setOf(1250, 1300, 1400, 1440, 1500, 1550, 1560, 1570, 1616, 1700),
	StatusShipmentCancelled:     setOf(),
	StatusReceivedAtOriginHub:   setOf(1220, 1250, 1300, 1400),
	StatusOnHold:                setOf(1220, 1250, 1400, 1440, 1500, 1550, 1560, 1570),
	StatusReceivedAtDestination: setOf(1250, 1300, 1440, 1500, 1550, 1560, 1570, 1616, 1700),

	// Exceptions
	StatusMisrouted:           setOf(1220, 1250, 1300, 1400, 1500, 1550, 1700),
	StatusLost:                setOf(1250),
	StatusDamaged:             setOf(1250, 1700, 1900),
	StatusUnexpectedChallenge: setOf(1220, 1250, 1300, 1400, 1700, 1770),
	StatusAddressIncorrect:    setOf(1250, 1300, 1700, 1770),
	StatusDeliveryDelayed:     setOf(1250, 1700),

	// Delivery
	StatusOutForDelivery:        setOf(1250, 1770, 1800, 1850, 1880, 1900),
	StatusDeliveryAttemptFailed: setOf(1700, 1850, 1880, 1900, 2000),
	StatusPartialDelivery:       setOf(1900, 2000),
	StatusPending:               setOf(1700, 1770, 1880, 1900),
	StatusContactSupport:        setOf(1700, 1770, 1900, 2000),
	// Listed for completeness; Delivered is terminal so IsValidTransition never consults it.
	StatusDelivered: setOf(2000),

	// Return to origin
	StatusRTOInitiated: setOf(2020, 2025, 2030),
	StatusRTOInTransit: setOf(2025, 2030),
	StatusRTOException: setOf(2020, 2030),
	StatusRTODelivered: setOf(),

	StatusTrackingClosed: setOf(),
}

// AllowedNextStates returns the explicit successors of code in ascending order.
// Unknown codes yield an empty slice.
func AllowedNextStates(code StatusCode) []StatusCode {
	next := transitions[code]
	out := make([]StatusCode, 0, len(next))
	for c := range next {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsValidTransition reports whether a shipment may move from one status to another.
// Terminal states are checked before the cancellation escape so that a
// terminal shipment cannot be cancelled.
func IsValidTransition(from, to StatusCode) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StatusShipmentCancelled {
		return true
	}
	_, ok := transitions[from][to]
	return ok
}
