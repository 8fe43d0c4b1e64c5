package service

import (
	"testing"

	"shipment-validator/internal/features/validation/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEvaluate_DeliveredWithoutTransit covers a booked shipment jumping straight to delivered.
func TestEvaluate_DeliveredWithoutTransit(t *testing.T) {
	result := Evaluate(domain.Shipment{
		ShipmentNo:     "SH-1",
		TrackingID:     "TRK-1",
		TrackingEvents: history(1000, 1900),
	}, evalNow)

	assert.Equal(t, domain.ShipmentInvalid, result.Status)
	assert.Equal(t, []domain.AnomalyKind{
		domain.AnomalyInvalidTransition,
		domain.AnomalySkippedState,
		domain.AnomalySkippedState,
		domain.AnomalySkippedState,
	}, kinds(result.Anomalies))
	assert.Equal(t, domain.StatusOutForDelivery, *result.Anomalies[1].MissingStatus)
	assert.Equal(t, domain.StatusInTransit, *result.Anomalies[2].MissingStatus)
	assert.Equal(t, domain.StatusPickedUp, *result.Anomalies[3].MissingStatus)
}

// TestEvaluate_CompleteLifecycle covers a clean history.
func TestEvaluate_CompleteLifecycle(t *testing.T) {
	result := Evaluate(domain.Shipment{
		ShipmentNo:     "SH-2",
		TrackingID:     "TRK-2",
		TrackingEvents: history(1000, 1010, 1200, 1220, 1700, 1900),
	}, evalNow)

	assert.Equal(t, domain.ShipmentValid, result.Status)
	assert.NotNil(t, result.Anomalies)
	assert.Empty(t, result.Anomalies)
	assert.Equal(t, 6, result.EventCount)
	assert.Equal(t, domain.StatusDelivered, *result.CurrentStatus)
	assert.Equal(t, "Delivered", *result.CurrentStatusName)
	assert.Equal(t, "SH-2", result.ShipmentNo)
	assert.Equal(t, "TRK-2", result.TrackingID)
}

// TestEvaluate_InvalidStart covers a history opening mid-lifecycle.
func TestEvaluate_InvalidStart(t *testing.T) {
	result := Evaluate(domain.Shipment{TrackingEvents: history(1200, 1220)}, evalNow)

	assert.Equal(t, domain.ShipmentInvalid, result.Status)
	assert.Equal(t, []domain.AnomalyKind{domain.AnomalyInvalidStartState}, kinds(result.Anomalies))
}

// TestEvaluate_NoEvents covers both absent and empty event lists.
func TestEvaluate_NoEvents(t *testing.T) {
	for _, events := range [][]domain.TrackingEvent{nil, {}} {
		result := Evaluate(domain.Shipment{ShipmentNo: "SH-4", TrackingEvents: events}, evalNow)

		assert.Equal(t, domain.ShipmentInvalid, result.Status)
		assert.Nil(t, result.CurrentStatus)
		assert.Nil(t, result.CurrentStatusName)
		assert.Equal(t, 0, result.EventCount)
		require.Len(t, result.Anomalies, 1)
		assert.Equal(t, domain.AnomalyNoEvents, result.Anomalies[0].Type)
		assert.Nil(t, result.Anomalies[0].EventIndex)
	}
}

// TestEvaluate_FutureTimestamp covers a single future event that is also a bad start.
func TestEvaluate_FutureTimestamp(t *testing.T) {
	result := Evaluate(domain.Shipment{
		TrackingEvents: []domain.TrackingEvent{
			{StatusCode: 1220, StatusName: "Shipment In-Transit", Timestamp: "2099-01-01"},
		},
	}, evalNow)

	assert.Equal(t, domain.ShipmentInvalid, result.Status)
	assert.Equal(t, []domain.AnomalyKind{
		domain.AnomalyInvalidStartState,
		domain.AnomalyTimeAnomaly,
	}, kinds(result.Anomalies))
}

// TestEvaluate_AnomalyOrder verifies transitions, temporal, duplicate then skipped-state ordering.
func TestEvaluate_AnomalyOrder(t *testing.T) {
	events := history(1000, 1010, 1010, 1900)
	events[2].Timestamp = "2024-01-01T00:00:00Z"

	result := Evaluate(domain.Shipment{TrackingEvents: events}, evalNow)

	assert.Equal(t, []domain.AnomalyKind{
		domain.AnomalyInvalidTransition, // 1010 -> 1010
		domain.AnomalyInvalidTransition, // 1010 -> 1900
		domain.AnomalyTimeAnomaly,       // index 2 before index 1
		domain.AnomalyDuplicateEvent,
		domain.AnomalySkippedState,
		domain.AnomalySkippedState,
		domain.AnomalySkippedState,
	}, kinds(result.Anomalies))
}

// TestEvaluate_CurrentStatusIsPositional verifies the last event wins, even after a terminal one.
func TestEvaluate_CurrentStatusIsPositional(t *testing.T) {
	events := history(1000, 1010, 1250, 1010)
	events[3].StatusName = ""

	result := Evaluate(domain.Shipment{TrackingEvents: events}, evalNow)

	assert.Equal(t, domain.StatusShipmentBooked, *result.CurrentStatus)
	assert.Equal(t, "Shipment Booked", *result.CurrentStatusName)
}

// TestEvaluate_DoesNotMutateInput verifies events are treated as read-only.
func TestEvaluate_DoesNotMutateInput(t *testing.T) {
	events := history(1200, 1900, 1900)
	snapshot := append([]domain.TrackingEvent(nil), events...)

	Evaluate(domain.Shipment{TrackingEvents: events}, evalNow)

	assert.Equal(t, snapshot, events)
}
