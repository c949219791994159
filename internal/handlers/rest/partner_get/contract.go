//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_get_test
package partner_get

import (
	"context"

	"assignment-service/internal/entities"
	"assignment-service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPartner(ctx context.Context, partnerID string) (*entities.Partner, error)
}
