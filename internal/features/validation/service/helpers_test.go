package service

import (
	"time"

	"shipment-validator/internal/features/validation/domain"
)

// evalNow is the evaluation instant used across the package tests.
var evalNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// history builds events for codes with hourly, strictly increasing past timestamps.
func history(codes ...domain.StatusCode) []domain.TrackingEvent {
	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	events := make([]domain.TrackingEvent, len(codes))
	for i, c := range codes {
		events[i] = domain.TrackingEvent{
			StatusCode: c,
			StatusName: domain.NameOf(c),
			Timestamp:  base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		}
	}
	return events
}

func kinds(anomalies []domain.Anomaly) []domain.AnomalyKind {
	out := make([]domain.AnomalyKind, len(anomalies))
	for i, a := range anomalies {
		out[i] = a.Type
	}
	return out
}
