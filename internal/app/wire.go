//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"assignment-service/internal/handlers/tasks/registry_stats"
	"assignment-service/internal/handlers/tasks/system_metrics"
	"assignment-service/internal/pkg/config"
	"assignment-service/internal/repository/assignment"
	orderService "assignment-service/internal/service/order"
	partnerService "assignment-service/internal/service/partner"
	"assignment-service/pkg/background"
	"assignment-service/pkg/logger"

	"github.com/google/wire"
)

type (
	RegistryStatsInterval time.Duration
	SystemMetricsInterval time.Duration
)

type Application struct {
	OrderService      *orderService.Service
	PartnerService    *partnerService.Service
	Registry          *assignment.Repository
	BackgroundWorkers *background.Worker
}

// InitializeApplication собирает реестр, сервисы поверх него и фоновые задачи.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		assignment.New,
		orderService.New,
		partnerService.New,

		provideRegistryStatsInterval,
		provideSystemMetricsInterval,
		provideRegistryStatsTask,
		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(orderService.Repository), new(*assignment.Repository)),
		wire.Bind(new(partnerService.Repository), new(*assignment.Repository)),
		wire.Bind(new(registry_stats.Repository), new(*assignment.Repository)),
	)
	return &Application{}, nil
}

func provideRegistryStatsInterval(cfg *config.Config) RegistryStatsInterval {
	return RegistryStatsInterval(cfg.Tasks.RegistryStatsInterval)
}

func provideSystemMetricsInterval(cfg *config.Config) SystemMetricsInterval {
	return SystemMetricsInterval(cfg.Tasks.SystemMetricsInterval)
}

func provideRegistryStatsTask(
	log logger.Logger,
	repository registry_stats.Repository,
	interval RegistryStatsInterval,
) *registry_stats.RegistryStats {
	return registry_stats.NewRegistryStats(log, repository, time.Duration(interval))
}

func provideSystemMetricsTask(interval SystemMetricsInterval) *system_metrics.SystemMetrics {
	return system_metrics.NewSystemMetrics(time.Duration(interval))
}

func provideTaskList(
	registryStatsTask *registry_stats.RegistryStats,
	systemMetricsTask *system_metrics.SystemMetrics,
) []background.Task {
	return []background.Task{
		registryStatsTask,
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
