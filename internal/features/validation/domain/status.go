package domain

import (
	"fmt"
	"sort"
)

// StatusCode identifies a discrete shipment lifecycle state.
type StatusCode int

// Phase groups status codes by lifecycle stage.
type Phase string

const (
	PhaseBooking       Phase = "booking"
	PhasePickupTransit Phase = "pickup_transit"
	PhaseException     Phase = "exception"
	PhaseDelivery      Phase = "delivery"
	PhaseRTO           Phase = "rto"
	PhaseTerminal      Phase = "terminal"
	PhaseUnknown       Phase = "unknown"
)

const (
	StatusBookingPending        StatusCode = 1000
	StatusShipmentBooked        StatusCode = 1010
	StatusDeadStatus            StatusCode = 1011
	StatusShipmentManifested    StatusCode = 1020
	StatusCancelRequested       StatusCode = 1025
	StatusMissedPickup          StatusCode = 1039
	StatusPickupCancelled       StatusCode = 1050
	StatusPickupScheduled       StatusCode = 1070
	StatusPickupRescheduled     StatusCode = 1083
	StatusOutForPickup          StatusCode = 1100
	StatusPickedUp              StatusCode = 1200
	StatusInTransit             StatusCode = 1220
	StatusShipmentCancelled     StatusCode = 1250
	StatusReceivedAtOriginHub   StatusCode = 1280
	StatusOnHold                StatusCode = 1300
	StatusReceivedAtDestination StatusCode = 1400
	StatusMisrouted             StatusCode = 1440
	StatusLost                  StatusCode = 1500
	StatusDamaged               StatusCode = 1550
	StatusUnexpectedChallenge   StatusCode = 1560
	StatusAddressIncorrect      StatusCode = 1570
	StatusDeliveryDelayed       StatusCode = 1616
	StatusOutForDelivery        StatusCode = 1700
	StatusDeliveryAttemptFailed StatusCode = 1770
	StatusPartialDelivery       StatusCode = 1800
	StatusPending               StatusCode = 1850
	StatusContactSupport        StatusCode = 1880
	StatusDelivered             StatusCode = 1900
	StatusRTOInitiated          StatusCode = 2000
	StatusRTOInTransit          StatusCode = 2020
	StatusRTOException          StatusCode = 2025
	StatusRTODelivered          StatusCode = 2030
	StatusTrackingClosed        StatusCode = 8000
)

type statusInfo struct {
	name  string
	phase Phase
}

var registry = map[StatusCode]statusInfo{
	StatusBookingPending:     {"Booking Pending", PhaseBooking},
	StatusShipmentBooked:     {"Shipment Booked", PhaseBooking},
	StatusDeadStatus:         {"Dead Status", PhaseBooking},
	StatusShipmentManifested: {"Shipment Manifested", PhaseBooking},
	StatusCancelRequested:    {"Cancel Requested", PhaseBooking},
	StatusMissedPickup:       {"Missed Pickup", PhaseBooking},
	StatusPickupCancelled:    {"Pickup Cancelled", PhaseBooking},
	StatusPickupScheduled:    {"Pickup Scheduled", PhaseBooking},
	StatusPickupRescheduled:  {"Pickup Re-scheduled", PhaseBooking},
	StatusOutForPickup:       {"Out for Pickup", PhaseBooking},

	StatusPickedUp:              {"Picked Up from Origin", PhasePickupTransit},
	StatusInTransit:             {"Shipment In-Transit", PhasePickupTransit},
	StatusShipmentCancelled:     {"Shipment Cancelled", PhasePickupTransit},
	StatusReceivedAtOriginHub:   {"Received at Origin Hub", PhasePickupTransit},
	StatusOnHold:                {"Shipment On-Hold", PhasePickupTransit},
	StatusReceivedAtDestination: {"Received at Destination Hub", PhasePickupTransit},

	StatusMisrouted:           {"Shipment Misrouted", PhaseException},
	StatusLost:                {"Shipment Lost", PhaseException},
	StatusDamaged:             {"Shipment Damaged", PhaseException},
	StatusUnexpectedChallenge: {"Unexpected Challenge", PhaseException},
	StatusAddressIncorrect:    {"Address Incorrect", PhaseException},
	StatusDeliveryDelayed:     {"Delay in Delivery expected", PhaseException},

	StatusOutForDelivery:        {"Shipment Out for Delivery", PhaseDelivery},
	StatusDeliveryAttemptFailed: {"Delivery Attempt Failed", PhaseDelivery},
	StatusPartialDelivery:       {"Partial Delivery", PhaseDelivery},
	StatusPending:               {"Pending", PhaseDelivery},
	StatusContactSupport:        {"Contact Customer Support", PhaseDelivery},
	StatusDelivered:             {"Delivered", PhaseDelivery},

	StatusRTOInitiated: {"RTO Initiated", PhaseRTO},
	StatusRTOInTransit: {"RTP In Transit", PhaseRTO},
	StatusRTOException: {"RTO Exception", PhaseRTO},
	StatusRTODelivered: {"RTO Delivered", PhaseRTO},

	StatusTrackingClosed: {"Tracking Closed", PhaseTerminal},
}

var terminalStates = map[StatusCode]struct{}{
	StatusDelivered:         {},
	StatusRTODelivered:      {},
	StatusTrackingClosed:    {},
	StatusShipmentCancelled: {},
	StatusPickupCancelled:   {},
}

var validStartStates = map[StatusCode]struct{}{
	StatusBookingPending: {},
	StatusShipmentBooked: {},
}

// NameOf returns the registered display name, or a synthesized label for unknown codes.
func NameOf(code StatusCode) string {
	if info, ok := registry[code]; ok {
		return info.name
	}
	return fmt.Sprintf("Unknown Status (%d)", code)
}

// PhaseOf returns the lifecycle phase of a code, PhaseUnknown if unregistered.
func PhaseOf(code StatusCode) Phase {
	if info, ok := registry[code]; ok {
		return info.phase
	}
	return PhaseUnknown
}

// IsRegistered reports whether the code is part of the registry.
func IsRegistered(code StatusCode) bool {
	_, ok := registry[code]
	return ok
}

// IsTerminal reports whether no further transition is legal from code.
func IsTerminal(code StatusCode) bool {
	_, ok := terminalStates[code]
	return ok
}

// IsValidStart reports whether code may open a shipment's history.
func IsValidStart(code StatusCode) bool {
	_, ok := validStartStates[code]
	return ok
}

// StatusDescriptor is the catalogue view of a registered status code.
type StatusDescriptor struct {
	// Code is the numeric status code.
	Code StatusCode `json:"code" yaml:"code"`
	// Name is the display name.
	Name string `json:"name" yaml:"name"`
	// Phase is the lifecycle stage the code belongs to.
	Phase Phase `json:"phase" yaml:"phase"`
	// Terminal is true when no further transition is legal.
	Terminal bool `json:"terminal" yaml:"terminal"`
	// Start is true when the code may open a history.
	Start bool `json:"start" yaml:"start"`
	// Next lists the explicitly allowed successors.
	Next []StatusCode `json:"next" yaml:"next"`
}

// Statuses returns the full registry sorted by code.
func Statuses() []StatusDescriptor {
	out := make([]StatusDescriptor, 0, len(registry))
	for code, info := range registry {
		out = append(out, StatusDescriptor{
			Code:     code,
			Name:     info.name,
			Phase:    info.phase,
			Terminal: IsTerminal(code),
			Start:    IsValidStart(code),
			Next:     AllowedNextStates(code),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
