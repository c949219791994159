package assignment

import (
	"context"
	"slices"
	"sync"

	"assignment-service/internal/entities"
	"assignment-service/internal/repository"
)

// Repository хранит заказы, партнеров и связь между ними в памяти процесса.
//
// Связь заказ -> партнер ведется двумя индексами: прямым (orderID -> partnerID)
// и обратным (partnerID -> упорядоченный список orderID). Оба индекса меняются
// только вместе под одной блокировкой, поэтому для каждой пары (order, partner)
// из прямого индекса заказ ровно один раз присутствует в списке партнера и наоборот.
// Пустые списки из обратного индекса удаляются, сама запись партнера остается.
type Repository struct {
	mu sync.RWMutex

	orders   map[string]entities.Order
	partners map[string]struct{}

	orderPartner  map[string]string
	partnerOrders map[string][]string
}

func New() *Repository {
	return &Repository{
		orders:        make(map[string]entities.Order),
		partners:      make(map[string]struct{}),
		orderPartner:  make(map[string]string),
		partnerOrders: make(map[string][]string),
	}
}

func (r *Repository) CreateOrder(_ context.Context, order entities.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; ok {
		return repository.ErrOrderExists
	}
	r.orders[order.ID] = order.Clone()
	return nil
}

func (r *Repository) CreatePartner(_ context.Context, partnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.partners[partnerID]; ok {
		return repository.ErrPartnerExists
	}
	r.partners[partnerID] = struct{}{}
	return nil
}

// Assign назначает заказ партнеру. Если заказ уже был у другого партнера,
// он сначала снимается с него. Повторное назначение тому же партнеру ничего не меняет.
func (r *Repository) Assign(_ context.Context, orderID, partnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return repository.ErrOrderNotFound
	}
	if _, ok := r.partners[partnerID]; !ok {
		return repository.ErrPartnerNotFound
	}

	if current, ok := r.orderPartner[orderID]; ok {
		if current == partnerID {
			return nil
		}
		r.detach(orderID, current)
	}

	r.orderPartner[orderID] = partnerID
	r.partnerOrders[partnerID] = append(r.partnerOrders[partnerID], orderID)
	return nil
}

func (r *Repository) GetOrder(_ context.Context, orderID string) (*entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	clone := order.Clone()
	return &clone, nil
}

func (r *Repository) GetPartner(_ context.Context, partnerID string) (*entities.Partner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.partners[partnerID]; !ok {
		return nil, repository.ErrPartnerNotFound
	}
	return &entities.Partner{
		ID:             partnerID,
		AssignedOrders: r.orderIDsLocked(partnerID),
	}, nil
}

func (r *Repository) PartnerOrderIDs(_ context.Context, partnerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.partners[partnerID]; !ok {
		return nil, repository.ErrPartnerNotFound
	}
	return r.orderIDsLocked(partnerID), nil
}

// PartnerOrders возвращает копии заказов партнера в порядке назначения.
func (r *Repository) PartnerOrders(_ context.Context, partnerID string) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.partners[partnerID]; !ok {
		return nil, repository.ErrPartnerNotFound
	}

	ids := r.partnerOrders[partnerID]
	orders := make([]entities.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, r.orders[id].Clone())
	}
	return orders, nil
}

// ListOrders возвращает все заказы, отсортированные по ID.
func (r *Repository) ListOrders(_ context.Context) ([]entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	orders := make([]entities.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, r.orders[id].Clone())
	}
	return orders, nil
}

func (r *Repository) CountUnassigned(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders) - len(r.orderPartner), nil
}

// DeletePartner удаляет партнера и снимает с него все заказы. Сами заказы остаются.
func (r *Repository) DeletePartner(_ context.Context, partnerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.partners[partnerID]; !ok {
		return repository.ErrPartnerNotFound
	}

	for _, orderID := range r.partnerOrders[partnerID] {
		delete(r.orderPartner, orderID)
	}
	delete(r.partnerOrders, partnerID)
	delete(r.partners, partnerID)
	return nil
}

func (r *Repository) DeleteOrder(_ context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[orderID]; !ok {
		return repository.ErrOrderNotFound
	}

	if partnerID, ok := r.orderPartner[orderID]; ok {
		r.detach(orderID, partnerID)
		delete(r.orderPartner, orderID)
	}
	delete(r.orders, orderID)
	return nil
}

func (r *Repository) Stats(_ context.Context) (entities.RegistryStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entities.RegistryStats{
		Orders:     len(r.orders),
		Partners:   len(r.partners),
		Assigned:   len(r.orderPartner),
		Unassigned: len(r.orders) - len(r.orderPartner),
	}, nil
}

// detach убирает заказ из списка партнера; прямой индекс не трогает.
// Вызывать только под r.mu.Lock.
func (r *Repository) detach(orderID, partnerID string) {
	ids := r.partnerOrders[partnerID]
	idx := slices.Index(ids, orderID)
	if idx < 0 {
		return
	}

	ids = slices.Delete(ids, idx, idx+1)
	if len(ids) == 0 {
		delete(r.partnerOrders, partnerID)
		return
	}
	r.partnerOrders[partnerID] = ids
}

func (r *Repository) orderIDsLocked(partnerID string) []string {
	return append([]string{}, r.partnerOrders[partnerID]...)
}
