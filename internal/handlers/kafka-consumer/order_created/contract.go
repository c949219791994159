package order_created

import (
	"context"

	"assignment-service/internal/entities"
	"assignment-service/pkg/logger"
)

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_created_test

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AddOrder(ctx context.Context, order entities.Order) error
}
