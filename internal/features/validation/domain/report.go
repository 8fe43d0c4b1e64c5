package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilter is returned when a status filter is not all, valid or invalid.
	ErrInvalidFilter = errors.New("invalid status filter")
	// ErrReportNotFound is returned when a stored report does not exist or has expired.
	ErrReportNotFound = errors.New("report not found")
)

// Summary holds the batch-level counts of a report.
type Summary struct {
	TotalShipments    int `json:"total_shipments" yaml:"total_shipments"`
	ValidShipments    int `json:"valid_shipments" yaml:"valid_shipments"`
	InvalidShipments  int `json:"invalid_shipments" yaml:"invalid_shipments"`
	AnomaliesDetected int `json:"anomalies_detected" yaml:"anomalies_detected"`
}

// AnomalySummary counts anomalies per report bucket.
type AnomalySummary struct {
	InvalidTransitions int `json:"invalid_transitions" yaml:"invalid_transitions"`
	TimeAnomalies      int `json:"time_anomalies" yaml:"time_anomalies"`
	DuplicateEvents    int `json:"duplicate_events" yaml:"duplicate_events"`
	SkippedStates      int `json:"skipped_states" yaml:"skipped_states"`
	NoEvents           int `json:"no_events" yaml:"no_events"`
	InvalidStartState  int `json:"invalid_start_state" yaml:"invalid_start_state"`
	Other              int `json:"other" yaml:"other"`
}

// Add counts one anomaly of the given kind.
func (s *AnomalySummary) Add(kind AnomalyKind) {
	switch kind.Category() {
	case CategoryInvalidTransitions:
		s.InvalidTransitions++
	case CategoryTimeAnomalies:
		s.TimeAnomalies++
	case CategoryDuplicateEvents:
		s.DuplicateEvents++
	case CategorySkippedStates:
		s.SkippedStates++
	case CategoryNoEvents:
		s.NoEvents++
	case CategoryInvalidStartState:
		s.InvalidStartState++
	default:
		s.Other++
	}
}

// Count returns the count of a single bucket.
func (s AnomalySummary) Count(c AnomalyCategory) int {
	switch c {
	case CategoryInvalidTransitions:
		return s.InvalidTransitions
	case CategoryTimeAnomalies:
		return s.TimeAnomalies
	case CategoryDuplicateEvents:
		return s.DuplicateEvents
	case CategorySkippedStates:
		return s.SkippedStates
	case CategoryNoEvents:
		return s.NoEvents
	case CategoryInvalidStartState:
		return s.InvalidStartState
	case CategoryOther:
		return s.Other
	}
	return 0
}

// Total sums every bucket, including Other.
func (s AnomalySummary) Total() int {
	total := 0
	for _, c := range Categories {
		total += s.Count(c)
	}
	return total
}

// Report is the outcome of validating a batch of shipments.
type Report struct {
	Summary        Summary          `json:"summary" yaml:"summary"`
	Shipments      []ShipmentResult `json:"shipments" yaml:"shipments"`
	AnomalySummary AnomalySummary   `json:"anomaly_summary" yaml:"anomaly_summary"`
}

// StatusFilter selects which shipment results a report view keeps.
type StatusFilter string

const (
	FilterAll     StatusFilter = "all"
	FilterValid   StatusFilter = "valid"
	FilterInvalid StatusFilter = "invalid"
)

// ParseStatusFilter parses a filter value. An empty value means FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch StatusFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterValid, FilterInvalid:
		return StatusFilter(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
}

// Filter returns a shallow copy of the report whose shipment list only holds
// results matching f. Summary counts are left batch-wide.
func (r *Report) Filter(f StatusFilter) *Report {
	out := *r
	if f == FilterAll || f == "" {
		return &out
	}

	out.Shipments = make([]ShipmentResult, 0, len(r.Shipments))
	for _, s := range r.Shipments {
		if string(s.Status) == string(f) {
			out.Shipments = append(out.Shipments, s)
		}
	}
	return &out
}
