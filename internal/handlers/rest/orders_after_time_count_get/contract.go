//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_after_time_count_get_test
package orders_after_time_count_get

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
	CountOrdersAfterTime(ctx context.Context, rawTime, partnerID string) (int, error)
}
