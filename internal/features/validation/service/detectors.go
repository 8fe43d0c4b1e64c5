package service

import (
	"fmt"
	"time"

	"shipment-validator/internal/features/validation/domain"

	"github.com/araddon/dateparse"
)

// parseTimestamp accepts RFC 3339 and the looser date-time layouts couriers
// report. Values without a zone are read as UTC.
func parseTimestamp(raw string) (t time.Time, err error) {
	if parsed, perr := time.Parse(time.RFC3339Nano, raw); perr == nil {
		return parsed, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unparseable timestamp %q: %v", raw, r)
		}
	}()

	return dateparse.ParseIn(raw, time.UTC)
}

// DetectTimeAnomalies reports unparseable, future and out-of-order timestamps.
// An unparseable timestamp suppresses the other two checks for that event.
func DetectTimeAnomalies(events []domain.TrackingEvent, now time.Time) []domain.Anomaly {
	anomalies := make([]domain.Anomaly, 0)

	parsed := make([]time.Time, len(events))
	ok := make([]bool, len(events))
	for i, e := range events {
		t, err := parseTimestamp(e.Timestamp)
		if err == nil {
			parsed[i], ok[i] = t, true
		}
	}

	for i, e := range events {
		if !ok[i] {
			anomalies = append(anomalies, domain.Anomaly{
				Type:       domain.AnomalyInvalidTimestamp,
				Message:    fmt.Sprintf("Invalid timestamp format: %s", e.Timestamp),
				EventIndex: domain.Ptr(i),
				Timestamp:  e.Timestamp,
			})
			continue
		}

		if parsed[i].After(now) {
			anomalies = append(anomalies, domain.Anomaly{
				Type:       domain.AnomalyTimeAnomaly,
				Message:    fmt.Sprintf("Event timestamp is in the future: %s", e.Timestamp),
				EventIndex: domain.Ptr(i),
				Timestamp:  e.Timestamp,
			})
		}

		if i > 0 && ok[i-1] && parsed[i-1].After(parsed[i]) {
			prev := events[i-1]
			anomalies = append(anomalies, domain.Anomaly{
				Type:              domain.AnomalyTimeAnomaly,
				Message:           fmt.Sprintf("Event timestamp (%s) is before previous event (%s)", e.Timestamp, prev.Timestamp),
				EventIndex:        domain.Ptr(i),
				Timestamp:         e.Timestamp,
				PreviousTimestamp: prev.Timestamp,
			})
		}
	}

	return anomalies
}

// DetectDuplicateEvents reports every repeat of a status code against the
// index where that code first appeared.
func DetectDuplicateEvents(events []domain.TrackingEvent) []domain.Anomaly {
	anomalies := make([]domain.Anomaly, 0)
	firstSeen := make(map[domain.StatusCode]int, len(events))

	for i, e := range events {
		first, seen := firstSeen[e.StatusCode]
		if !seen {
			firstSeen[e.StatusCode] = i
			continue
		}

		anomalies = append(anomalies, domain.Anomaly{
			Type:                 domain.AnomalyDuplicateEvent,
			Message:              fmt.Sprintf("Duplicate status code %d (%s). First seen at index %d, repeated at index %d", e.StatusCode, e.DisplayName(), first, i),
			EventIndex:           domain.Ptr(i),
			StatusCode:           domain.Ptr(e.StatusCode),
			FirstOccurrenceIndex: domain.Ptr(first),
		})
	}

	return anomalies
}

// deliveryPrerequisites must all appear in a history that reaches Delivered.
var deliveryPrerequisites = []struct {
	code  domain.StatusCode
	label string
}{
	{domain.StatusOutForDelivery, "Out for Delivery"},
	{domain.StatusInTransit, "In-Transit"},
	{domain.StatusPickedUp, "Picked Up from Origin"},
}

// DetectSkippedStates reports each mandatory status missing from a delivered
// shipment. Without a Delivered event it reports nothing.
func DetectSkippedStates(events []domain.TrackingEvent) []domain.Anomaly {
	anomalies := make([]domain.Anomaly, 0)

	deliveredAt := -1
	present := make(map[domain.StatusCode]struct{}, len(events))
	for i, e := range events {
		present[e.StatusCode] = struct{}{}
		if e.StatusCode == domain.StatusDelivered && deliveredAt < 0 {
			deliveredAt = i
		}
	}

	if deliveredAt < 0 {
		return anomalies
	}

	for _, p := range deliveryPrerequisites {
		if _, ok := present[p.code]; ok {
			continue
		}
		anomalies = append(anomalies, domain.Anomaly{
			Type:              domain.AnomalySkippedState,
			Message:           fmt.Sprintf("Shipment delivered without %q (%d) status", p.label, p.code),
			EventIndex:        domain.Ptr(deliveredAt),
			MissingStatus:     domain.Ptr(p.code),
			MissingStatusName: domain.NameOf(p.code),
		})
	}

	return anomalies
}
