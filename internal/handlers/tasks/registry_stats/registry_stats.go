package registry_stats

import (
	"context"
	"fmt"
	"time"

	"assignment-service/pkg/logger"
)

type RegistryStats struct {
	log        logger.Logger
	repository Repository
	interval   time.Duration
}

func NewRegistryStats(log logger.Logger, repository Repository, interval time.Duration) *RegistryStats {
	return &RegistryStats{
		log:        log,
		repository: repository,
		interval:   interval,
	}
}

func (r *RegistryStats) TTL() time.Duration {
	return r.interval
}

func (r *RegistryStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	stats, err := r.repository.Stats(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("read registry stats: %w", err)
	}

	OrdersTotal.Set(float64(stats.Orders))
	PartnersTotal.Set(float64(stats.Partners))
	AssignedOrders.Set(float64(stats.Assigned))
	UnassignedOrders.Set(float64(stats.Unassigned))

	if stats.Unassigned > 0 {
		r.log.With(
			logger.NewField("unassigned_orders", stats.Unassigned),
		).Info("registry stats")
	}
	return nil
}

func (r *RegistryStats) Info() string {
	return "registry stats"
}
