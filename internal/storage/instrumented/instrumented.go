package instrumented

import (
	"context"
	"time"

	"randstring/internal/lib/metrics"
	"randstring/internal/storage"
)

type Storage struct {
	next storage.Storage
}

var _ storage.Storage = (*Storage)(nil)

func New(next storage.Storage) *Storage {
	return &Storage{next: next}
}

func (s *Storage) SaveIssuance(ctx context.Context, iss storage.Issuance) (int64, error) {
	const op = "SaveIssuance"
	start := time.Now()
	id, err := s.next.SaveIssuance(ctx, iss)
	s.recordMetrics(op, err, start)
	return id, err
}

func (s *Storage) Stats(ctx context.Context) ([]storage.AlphabetStats, error) {
	const op = "Stats"
	start := time.Now()
	stats, err := s.next.Stats(ctx)
	s.recordMetrics(op, err, start)
	return stats, err
}

func (s *Storage) Close() error {
	return s.next.Close()
}

func (s *Storage) recordMetrics(operation string, err error, start time.Time) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(operation).Observe(duration)
}
