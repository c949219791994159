package registry_stats

import (
	"context"

	"assignment-service/internal/entities"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=registry_stats_test

type Repository interface {
	Stats(ctx context.Context) (entities.RegistryStats, error)
}
