package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipment-validator/internal/core/cache"
	"shipment-validator/internal/features/validation/domain"
)

const reportKeyPrefix = "report:"

// RedisReportRepository implements ports.ReportRepository on top of the cache port.
type RedisReportRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisReportRepository creates a new RedisReportRepository.
// Reports expire after ttl; a ttl of 0 keeps them until deleted.
func NewRedisReportRepository(c cache.Cache, ttl time.Duration) *RedisReportRepository {
	return &RedisReportRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the report as JSON under id.
func (r *RedisReportRepository) Save(ctx context.Context, id string, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := r.cache.Set(ctx, reportKeyPrefix+id, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save report to cache: %w", err)
	}

	return nil
}

// Get loads the report stored under id.
func (r *RedisReportRepository) Get(ctx context.Context, id string) (*domain.Report, error) {
	data, err := r.cache.Get(ctx, reportKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrReportNotFound, id)
		}
		return nil, fmt.Errorf("failed to get report from cache: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// Delete removes the report stored under id.
func (r *RedisReportRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, reportKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete report from cache: %w", err)
	}
	return nil
}

// Ping checks the underlying cache.
func (r *RedisReportRepository) Ping(ctx context.Context) error {
	return r.cache.Ping(ctx)
}
