//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_orders_get_test
package partner_orders_get

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
	ListOrders(ctx context.Context, partnerID string) ([]string, error)
}
