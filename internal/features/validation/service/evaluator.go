package service

import (
	"time"

	"shipment-validator/internal/features/validation/domain"
)

// Evaluate validates one shipment against the evaluation instant now.
//
// A shipment without events gets a single no_events anomaly and no other
// checks. Otherwise anomalies are ordered: transitions, temporal, duplicate,
// skipped-state. The current status is the positionally last event.
func Evaluate(shipment domain.Shipment, now time.Time) domain.ShipmentResult {
	events := shipment.TrackingEvents

	if len(events) == 0 {
		return domain.ShipmentResult{
			ShipmentNo: shipment.ShipmentNo,
			TrackingID: shipment.TrackingID,
			Status:     domain.ShipmentInvalid,
			Anomalies: []domain.Anomaly{{
				Type:    domain.AnomalyNoEvents,
				Message: "Shipment has no tracking events",
			}},
		}
	}

	anomalies := ValidateSequence(events)
	anomalies = append(anomalies, DetectTimeAnomalies(events, now)...)
	anomalies = append(anomalies, DetectDuplicateEvents(events)...)
	anomalies = append(anomalies, DetectSkippedStates(events)...)

	status := domain.ShipmentValid
	if len(anomalies) > 0 {
		status = domain.ShipmentInvalid
	}

	last := events[len(events)-1]
	return domain.ShipmentResult{
		ShipmentNo:        shipment.ShipmentNo,
		TrackingID:        shipment.TrackingID,
		Status:            status,
		CurrentStatus:     domain.Ptr(last.StatusCode),
		CurrentStatusName: domain.Ptr(last.DisplayName()),
		EventCount:        len(events),
		Anomalies:         anomalies,
	}
}
