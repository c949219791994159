//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_test
package partner

import (
	"context"

	"assignment-service/internal/entities"
)

type Repository interface {
	CreatePartner(ctx context.Context, partnerID string) error
	GetPartner(ctx context.Context, partnerID string) (*entities.Partner, error)
	PartnerOrderIDs(ctx context.Context, partnerID string) ([]string, error)
	PartnerOrders(ctx context.Context, partnerID string) ([]entities.Order, error)
	DeletePartner(ctx context.Context, partnerID string) error
}
