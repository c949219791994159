package system_metrics

import (
	"context"
	"time"

	"assignment-service/internal/pkg/metrics"
)

type SystemMetrics struct {
	interval time.Duration
}

func NewSystemMetrics(interval time.Duration) *SystemMetrics {
	return &SystemMetrics{
		interval: interval,
	}
}

func (s *SystemMetrics) TTL() time.Duration {
	return s.interval
}

func (s *SystemMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return metrics.CollectSystem(ctxWithTimeout)
}

func (s *SystemMetrics) Info() string {
	return "system metrics"
}
