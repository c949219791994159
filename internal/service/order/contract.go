//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"assignment-service/internal/entities"
)

type Repository interface {
	CreateOrder(ctx context.Context, order entities.Order) error
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	CountUnassigned(ctx context.Context) (int, error)
	Assign(ctx context.Context, orderID, partnerID string) error
	DeleteOrder(ctx context.Context, orderID string) error
}
