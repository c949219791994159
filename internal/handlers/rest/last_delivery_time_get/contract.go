//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=last_delivery_time_get_test
package last_delivery_time_get

import (
	"context"

	"assignment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	LastDeliveryTime(ctx context.Context, partnerID string) (string, error)
}
