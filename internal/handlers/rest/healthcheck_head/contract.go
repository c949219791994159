package healthcheck_head

import (
	"context"

	"assignment-service/internal/entities"
	"assignment-service/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=healthcheck_head_test

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Registry interface {
	Stats(ctx context.Context) (entities.RegistryStats, error)
}
