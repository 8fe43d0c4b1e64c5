package domain

// AnomalyKind tags an Anomaly. Values outside the known set are legal and
// are counted in the "other" bucket of a report.
type AnomalyKind string

const (
	// AnomalyInvalidStartState flags a history that opens on a non-start status.
	AnomalyInvalidStartState AnomalyKind = "invalid_start_state"
	// AnomalyInvalidTransition flags an illegal move between consecutive events.
	AnomalyInvalidTransition AnomalyKind = "invalid_transition"
	// AnomalyTimeAnomaly flags a future or out-of-order timestamp.
	AnomalyTimeAnomaly AnomalyKind = "time_anomaly"
	// AnomalyInvalidTimestamp flags an unparseable timestamp. Counted as a time anomaly.
	AnomalyInvalidTimestamp AnomalyKind = "invalid_timestamp"
	// AnomalyDuplicateEvent flags a repeated status code.
	AnomalyDuplicateEvent AnomalyKind = "duplicate_event"
	// AnomalySkippedState flags a delivery missing a mandatory prior status.
	AnomalySkippedState AnomalyKind = "skipped_state"
	// AnomalyNoEvents flags a shipment without tracking events.
	AnomalyNoEvents AnomalyKind = "no_events"
)

// AnomalyCategory is a report bucket.
type AnomalyCategory string

const (
	CategoryInvalidTransitions AnomalyCategory = "invalid_transitions"
	CategoryTimeAnomalies      AnomalyCategory = "time_anomalies"
	CategoryDuplicateEvents    AnomalyCategory = "duplicate_events"
	CategorySkippedStates      AnomalyCategory = "skipped_states"
	CategoryNoEvents           AnomalyCategory = "no_events"
	CategoryInvalidStartState  AnomalyCategory = "invalid_start_state"
	CategoryOther              AnomalyCategory = "other"
)

// Categories lists every report bucket in report order.
var Categories = []AnomalyCategory{
	CategoryInvalidTransitions,
	CategoryTimeAnomalies,
	CategoryDuplicateEvents,
	CategorySkippedStates,
	CategoryNoEvents,
	CategoryInvalidStartState,
	CategoryOther,
}

// Category maps the kind onto its report bucket.
func (k AnomalyKind) Category() AnomalyCategory {
	switch k {
	case AnomalyInvalidTransition:
		return CategoryInvalidTransitions
	case AnomalyTimeAnomaly, AnomalyInvalidTimestamp:
		return CategoryTimeAnomalies
	case AnomalyDuplicateEvent:
		return CategoryDuplicateEvents
	case AnomalySkippedState:
		return CategorySkippedStates
	case AnomalyNoEvents:
		return CategoryNoEvents
	case AnomalyInvalidStartState:
		return CategoryInvalidStartState
	default:
		return CategoryOther
	}
}

// Anomaly is a single defect found in a shipment's event history.
// Optional fields are pointers so that zero values (index 0, code 0) survive
// serialization.
type Anomaly struct {
	Type    AnomalyKind `json:"type" yaml:"type"`
	Message string      `json:"message" yaml:"message"`

	EventIndex *int `json:"event_index,omitempty" yaml:"event_index,omitempty"`

	// invalid_start_state, duplicate_event
	StatusCode *StatusCode `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	// invalid_transition
	FromStatus     *StatusCode `json:"from_status,omitempty" yaml:"from_status,omitempty"`
	FromStatusName string      `json:"from_status_name,omitempty" yaml:"from_status_name,omitempty"`
	ToStatus       *StatusCode `json:"to_status,omitempty" yaml:"to_status,omitempty"`
	ToStatusName   string      `json:"to_status_name,omitempty" yaml:"to_status_name,omitempty"`

	// time_anomaly
	Timestamp         string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	PreviousTimestamp string `json:"previous_timestamp,omitempty" yaml:"previous_timestamp,omitempty"`

	// duplicate_event
	FirstOccurrenceIndex *int `json:"first_occurrence_index,omitempty" yaml:"first_occurrence_index,omitempty"`

	// skipped_state
	MissingStatus     *StatusCode `json:"missing_status,omitempty" yaml:"missing_status,omitempty"`
	MissingStatusName string      `json:"missing_status_name,omitempty" yaml:"missing_status_name,omitempty"`
}

// Ptr returns a pointer to a copy of v.
func Ptr[T any](v T) *T {
	return &v
}
