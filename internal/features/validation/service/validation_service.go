package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"shipment-validator/internal/core/logger"
	"shipment-validator/internal/features/validation/domain"
	"shipment-validator/internal/features/validation/ports"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ValidationServiceImpl implements ports.ValidationService.
type ValidationServiceImpl struct {
	repo     ports.ReportRepository
	recorder ports.ValidationRecorder
	workers  int
	now      func() time.Time
	logger   *zap.Logger
}

// NewValidationService creates a new ValidationServiceImpl.
// workers bounds how many shipments are evaluated concurrently; values below 1 mean 1.
// repo and recorder may be nil when storage or metrics are not needed.
func NewValidationService(repo ports.ReportRepository, recorder ports.ValidationRecorder, workers int) *ValidationServiceImpl {
	if workers < 1 {
		workers = 1
	}
	return &ValidationServiceImpl{
		repo:     repo,
		recorder: recorder,
		workers:  workers,
		now:      time.Now,
		logger:   logger.Get(),
	}
}

// Validate evaluates shipments in parallel. The clock is read once so every
// shipment is judged against the same instant; the result equals Aggregate.
func (s *ValidationServiceImpl) Validate(ctx context.Context, shipments []domain.Shipment) (*domain.Report, error) {
	start := time.Now()
	now := s.now()

	s.logger.Debug("Validation started",
		zap.Int("shipments", len(shipments)),
		zap.Int("workers", s.workers),
	)

	results := make([]domain.ShipmentResult, len(shipments))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range shipments {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(shipments[i], now)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validation aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("validation aborted: %w", err)
	}

	report := buildReport(results)
	duration := time.Since(start)

	if s.recorder != nil {
		s.recorder.ObserveRun(report, duration)
	}

	s.logger.Info("Validation completed",
		zap.Int("total_shipments", report.Summary.TotalShipments),
		zap.Int("invalid_shipments", report.Summary.InvalidShipments),
		zap.Int("anomalies_detected", report.Summary.AnomaliesDetected),
		zap.Duration("duration", duration),
	)

	return report, nil
}

// Submit validates shipments and stores the report under a new ULID.
func (s *ValidationServiceImpl) Submit(ctx context.Context, shipments []domain.Shipment) (string, *domain.Report, error) {
	report, err := s.Validate(ctx, shipments)
	if err != nil {
		return "", nil, err
	}

	id := ulid.MustNew(ulid.Timestamp(s.now()), rand.Reader).String()

	if err := s.repo.Save(ctx, id, report); err != nil {
		return "", nil, fmt.Errorf("service: failed to save report: %w", err)
	}

	s.logger.Debug("Report stored", zap.String("report_id", id))

	return id, report, nil
}

// GetReport retrieves a stored report filtered by shipment status.
func (s *ValidationServiceImpl) GetReport(ctx context.Context, id string, filter domain.StatusFilter) (*domain.Report, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get report: %w", err)
	}

	return report.Filter(filter), nil
}

// DeleteReport removes a stored report.
func (s *ValidationServiceImpl) DeleteReport(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete report: %w", err)
	}
	return nil
}

// Health checks that the report store is reachable.
func (s *ValidationServiceImpl) Health(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return fmt.Errorf("service: report store unavailable: %w", err)
	}
	return nil
}
