package domain

// TrackingEvent is one status change reported for a shipment.
type TrackingEvent struct {
	// StatusCode is the lifecycle status reported by the event.
	StatusCode StatusCode `json:"status_code" yaml:"status_code"`
	// StatusName is the name reported alongside the code. May be empty.
	StatusName string `json:"status_name" yaml:"status_name"`
	// Timestamp is the raw reported date-time, kept as text so that
	// unparseable values can be reported instead of rejected.
	Timestamp string `json:"timestamp" yaml:"timestamp"`
}

// DisplayName returns the reported name, falling back to the registry name.
func (e TrackingEvent) DisplayName() string {
	if e.StatusName != "" {
		return e.StatusName
	}
	return NameOf(e.StatusCode)
}

// Shipment is the input record for validation.
type Shipment struct {
	// ShipmentNo is the operator's shipment number.
	ShipmentNo string `json:"shipment_no" yaml:"shipment_no"`
	// TrackingID is the courier tracking identifier.
	TrackingID string `json:"tracking_id" yaml:"tracking_id"`
	// TrackingEvents holds the events in ingestion order.
	TrackingEvents []TrackingEvent `json:"tracking_events" yaml:"tracking_events"`
}

// ShipmentStatus is the verdict for a shipment.
type ShipmentStatus string

const (
	ShipmentValid   ShipmentStatus = "valid"
	ShipmentInvalid ShipmentStatus = "invalid"
)

// ShipmentResult is the per-shipment verdict.
type ShipmentResult struct {
	ShipmentNo        string         `json:"shipment_no" yaml:"shipment_no"`
	TrackingID        string         `json:"tracking_id" yaml:"tracking_id"`
	Status            ShipmentStatus `json:"status" yaml:"status"`
	CurrentStatus     *StatusCode    `json:"current_status" yaml:"current_status"`
	CurrentStatusName *string        `json:"current_status_name" yaml:"current_status_name"`
	EventCount        int            `json:"event_count" yaml:"event_count"`
	Anomalies         []Anomaly      `json:"anomalies" yaml:"anomalies"`
}
