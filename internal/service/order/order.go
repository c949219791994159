package order

import (
	"context"
	"errors"
	"fmt"

	"assignment-service/internal/entities"
	"assignment-service/internal/repository"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) AddOrder(ctx context.Context, order entities.Order) error {
	if !isValidID(order.ID) {
		return ErrInvalidOrderID
	}

	err := s.repository.CreateOrder(ctx, order)
	if err != nil {
		return fmt.Errorf("create order %q: %w", order.ID, translate(err))
	}
	return nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %q: %w", orderID, translate(err))
	}
	return order, nil
}

// ListOrders возвращает все заказы; пустой список - не ошибка.
func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) CountUnassignedOrders(ctx context.Context) (int, error) {
	count, err := s.repository.CountUnassigned(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unassigned orders: %w", err)
	}
	return count, nil
}

// AssignOrderToPartner закрепляет заказ за партнером. Заказ, уже закрепленный
// за другим партнером, переходит к новому.
func (s *Service) AssignOrderToPartner(ctx context.Context, orderID, partnerID string) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(partnerID) {
		return ErrInvalidPartnerID
	}

	err := s.repository.Assign(ctx, orderID, partnerID)
	if err != nil {
		return fmt.Errorf("assign order %q to partner %q: %w", orderID, partnerID, translate(err))
	}
	return nil
}

func (s *Service) DeleteOrder(ctx context.Context, orderID string) error {
	if !isValidID(orderID) {
		return ErrInvalidOrderID
	}

	err := s.repository.DeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("delete order %q: %w", orderID, translate(err))
	}
	return nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrOrderExists):
		return ErrOrderExists
	case errors.Is(err, repository.ErrOrderNotFound):
		return ErrOrderNotFound
	case errors.Is(err, repository.ErrPartnerNotFound):
		return ErrPartnerNotFound
	default:
		return err
	}
}
