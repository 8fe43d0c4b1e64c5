package service

import (
	"fmt"

	"shipment-validator/internal/features/validation/domain"
)

// ValidateSequence checks the opening status and every consecutive pair of
// events against the transition table. An empty list yields no anomalies.
func ValidateSequence(events []domain.TrackingEvent) []domain.Anomaly {
	anomalies := make([]domain.Anomaly, 0)

	if len(events) == 0 {
		return anomalies
	}

	first := events[0]
	if !domain.IsValidStart(first.StatusCode) {
		anomalies = append(anomalies, domain.Anomaly{
			Type:       domain.AnomalyInvalidStartState,
			Message:    fmt.Sprintf("Invalid starting status: %s (%d). Must start with %d or %d.", first.DisplayName(), first.StatusCode, domain.StatusBookingPending, domain.StatusShipmentBooked),
			EventIndex: domain.Ptr(0),
			StatusCode: domain.Ptr(first.StatusCode),
		})
	}

	for i := 1; i < len(events); i++ {
		from, to := events[i-1], events[i]
		if domain.IsValidTransition(from.StatusCode, to.StatusCode) {
			continue
		}

		// Same anomaly type either way; only the wording differs.
		format := "Invalid transition from %q (%d) to %q (%d)"
		if domain.IsTerminal(from.StatusCode) {
			format = "Cannot transition from terminal state %q (%d) to %q (%d)"
		}

		anomalies = append(anomalies, domain.Anomaly{
			Type:           domain.AnomalyInvalidTransition,
			Message:        fmt.Sprintf(format, from.DisplayName(), from.StatusCode, to.DisplayName(), to.StatusCode),
			EventIndex:     domain.Ptr(i),
			FromStatus:     domain.Ptr(from.StatusCode),
			FromStatusName: from.DisplayName(),
			ToStatus:       domain.Ptr(to.StatusCode),
			ToStatusName:   to.DisplayName(),
		})
	}

	return anomalies
}
