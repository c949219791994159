package partner

import (
	"context"
	"errors"
	"fmt"

	"assignment-service/internal/entities"
	"assignment-service/internal/repository"
	"assignment-service/pkg/timeofday"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) AddPartner(ctx context.Context, partnerID string) error {
	if !isValidID(partnerID) {
		return ErrInvalidPartnerID
	}

	err := s.repository.CreatePartner(ctx, partnerID)
	if err != nil {
		return fmt.Errorf("create partner %q: %w", partnerID, translate(err))
	}
	return nil
}

func (s *Service) GetPartner(ctx context.Context, partnerID string) (*entities.Partner, error) {
	if !isValidID(partnerID) {
		return nil, ErrInvalidPartnerID
	}

	partner, err := s.repository.GetPartner(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("get partner %q: %w", partnerID, translate(err))
	}
	return partner, nil
}

func (s *Service) CountOrders(ctx context.Context, partnerID string) (int, error) {
	ids, err := s.ListOrders(ctx, partnerID)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// ListOrders возвращает ID заказов партнера в порядке назначения.
func (s *Service) ListOrders(ctx context.Context, partnerID string) ([]string, error) {
	if !isValidID(partnerID) {
		return nil, ErrInvalidPartnerID
	}

	ids, err := s.repository.PartnerOrderIDs(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("list orders of partner %q: %w", partnerID, translate(err))
	}
	return ids, nil
}

// CountOrdersAfterTime считает заказы партнера, время доставки которых строго позже rawTime.
// Заказы без времени или с некорректным временем не учитываются.
func (s *Service) CountOrdersAfterTime(ctx context.Context, rawTime, partnerID string) (int, error) {
	if !isValidID(partnerID) {
		return 0, ErrInvalidPartnerID
	}

	orders, err := s.repository.PartnerOrders(ctx, partnerID)
	if err != nil {
		return 0, fmt.Errorf("count orders of partner %q after %q: %w", partnerID, rawTime, translate(err))
	}

	threshold, err := timeofday.Parse(rawTime)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidTimeFormat, err)
	}

	count := 0
	for _, order := range orders {
		deliveryTime, ok := parseDeliveryTime(order)
		if ok && deliveryTime.After(threshold) {
			count++
		}
	}
	return count, nil
}

// LastDeliveryTime возвращает наибольшее время доставки среди заказов партнера.
func (s *Service) LastDeliveryTime(ctx context.Context, partnerID string) (string, error) {
	if !isValidID(partnerID) {
		return "", ErrInvalidPartnerID
	}

	orders, err := s.repository.PartnerOrders(ctx, partnerID)
	if err != nil {
		return "", fmt.Errorf("last delivery time of partner %q: %w", partnerID, translate(err))
	}

	var (
		latest timeofday.TimeOfDay
		found  bool
	)
	for _, order := range orders {
		deliveryTime, ok := parseDeliveryTime(order)
		if !ok {
			continue
		}
		if !found || deliveryTime.After(latest) {
			latest = deliveryTime
			found = true
		}
	}

	if !found {
		return "", fmt.Errorf("partner %q: %w", partnerID, ErrNoDeliveries)
	}
	return latest.String(), nil
}

// DeletePartner удаляет партнера; его заказы становятся неназначенными.
func (s *Service) DeletePartner(ctx context.Context, partnerID string) error {
	if !isValidID(partnerID) {
		return ErrInvalidPartnerID
	}

	err := s.repository.DeletePartner(ctx, partnerID)
	if err != nil {
		return fmt.Errorf("delete partner %q: %w", partnerID, translate(err))
	}
	return nil
}

func parseDeliveryTime(order entities.Order) (timeofday.TimeOfDay, bool) {
	if order.DeliveryTime == nil {
		return timeofday.TimeOfDay{}, false
	}
	t, err := timeofday.Parse(*order.DeliveryTime)
	if err != nil {
		return timeofday.TimeOfDay{}, false
	}
	return t, true
}

func translate(err error) error {
	switch {
	case errors.Is(err, repository.ErrPartnerExists):
		return ErrPartnerExists
	case errors.Is(err, repository.ErrPartnerNotFound):
		return ErrPartnerNotFound
	default:
		return err
	}
}
