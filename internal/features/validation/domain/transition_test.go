package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from StatusCode
		to   StatusCode
		want bool
	}{
		{name: "listed successor", from: 1000, to: 1010, want: true},
		{name: "booked to picked up", from: 1010, to: 1200, want: true},
		{name: "out for delivery to delivered", from: 1700, to: 1900, want: true},
		{name: "not listed", from: 1000, to: 1900, want: false},
		{name: "backwards", from: 1220, to: 1200, want: false},
		{name: "cancel from non-terminal not listed", from: 1800, to: 1250, want: true},
		{name: "cancel from rto initiated", from: 2000, to: 1250, want: true},
		{name: "cancel from unknown code", from: 4242, to: 1250, want: true},
		{name: "unknown code has no successors", from: 4242, to: 1010, want: false},
		{name: "delivered is terminal", from: 1900, to: 2000, want: false},
		{name: "cancel blocked from delivered", from: 1900, to: 1250, want: false},
		{name: "cancel blocked from cancelled", from: 1250, to: 1250, want: false},
		{name: "cancel blocked from tracking closed", from: 8000, to: 1250, want: false},
		{name: "pickup cancelled is terminal", from: 1050, to: 1070, want: false},
		{name: "rto delivered is terminal", from: 2030, to: 2020, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTransition(tt.from, tt.to))
		})
	}
}

// TestCancellationEscape verifies every registered non-terminal code may cancel.
func TestCancellationEscape(t *testing.T) {
	for _, s := range Statuses() {
		if s.Terminal {
			assert.False(t, IsValidTransition(s.Code, StatusShipmentCancelled), "code %d", s.Code)
			continue
		}
		assert.True(t, IsValidTransition(s.Code, StatusShipmentCancelled), "code %d", s.Code)
	}
}

// TestTerminalStatesHaveNoMoves verifies terminal states reject every target.
func TestTerminalStatesHaveNoMoves(t *testing.T) {
	for _, from := range []StatusCode{1900, 2030, 8000, 1250, 1050} {
		for _, to := range Statuses() {
			assert.False(t, IsValidTransition(from, to.Code), "%d -> %d", from, to.Code)
		}
	}
}

func TestAllowedNextStates(t *testing.T) {
	assert.Equal(t, []StatusCode{1010, 1011, 1020, 1050, 1250}, AllowedNextStates(StatusBookingPending))
	assert.Equal(t, []StatusCode{1250, 1700, 1900}, AllowedNextStates(StatusDamaged))
	assert.Empty(t, AllowedNextStates(StatusShipmentCancelled))
	assert.NotNil(t, AllowedNextStates(4242))
	assert.Empty(t, AllowedNextStates(4242))

	// Callers get a copy.
	next := AllowedNextStates(StatusBookingPending)
	next[0] = 9999
	assert.Equal(t, StatusCode(1010), AllowedNextStates(StatusBookingPending)[0])
}
