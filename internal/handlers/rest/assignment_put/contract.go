//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_put_test
package assignment_put

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
	AssignOrderToPartner(ctx context.Context, orderID, partnerID string) error
}
