package ports

import (
	"context"
	"time"

	"shipment-validator/internal/features/validation/domain"
)

// ValidationService defines the primary port for validation operations.
type ValidationService interface {
	// Validate evaluates a batch of shipments and returns the report.
	Validate(ctx context.Context, shipments []domain.Shipment) (*domain.Report, error)
	// Submit validates a batch and stores the report, returning its ID.
	Submit(ctx context.Context, shipments []domain.Shipment) (string, *domain.Report, error)
	// GetReport loads a stored report, keeping only results matching filter.
	GetReport(ctx context.Context, id string, filter domain.StatusFilter) (*domain.Report, error)
	// DeleteReport removes a stored report.
	DeleteReport(ctx context.Context, id string) error
	// Health checks the report store.
	Health(ctx context.Context) error
}

// ReportRepository defines the secondary port for report storage.
type ReportRepository interface {
	Save(ctx context.Context, id string, report *domain.Report) error
	// Get returns domain.ErrReportNotFound when no report is stored under id.
	Get(ctx context.Context, id string) (*domain.Report, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

// ShipmentReader loads shipment records from a source document.
type ShipmentReader interface {
	Read(path string) ([]domain.Shipment, error)
}

// ValidationRecorder observes completed validation runs.
type ValidationRecorder interface {
	ObserveRun(report *domain.Report, duration time.Duration)
}
