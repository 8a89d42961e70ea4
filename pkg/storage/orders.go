package storage

import (
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// OrderRepo keeps the order history in memory, newest-first, and overwrites
// the persisted snapshot on every mutation.
type OrderRepo struct {
	mu     sync.RWMutex
	kv     KV
	orders []*model.Order
}

var _ model.OrderRepository = (*OrderRepo)(nil)

func NewOrderRepo(kv KV, log logger.Logger) *OrderRepo {
	if log == nil {
		log = logger.Default()
	}
	return &OrderRepo{
		kv:     kv,
		orders: loadSnapshot[*model.Order](kv, KeyOrders, log),
	}
}

func (r *OrderRepo) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (r *OrderRepo) Store(order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	for idx, existing := range r.orders {
		if existing.ID == order.ID {
			r.orders[idx] = &stored
			return saveSnapshot(r.kv, KeyOrders, r.orders)
		}
	}
	r.orders = append([]*model.Order{&stored}, r.orders...)
	return saveSnapshot(r.kv, KeyOrders, r.orders)
}

func (r *OrderRepo) Find(id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, order := range r.orders {
		if order.ID == id {
			found := *order
			return &found, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (r *OrderRepo) ListAll() ([]*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Order, 0, len(r.orders))
	for _, order := range r.orders {
		found := *order
		out = append(out, &found)
	}
	return out, nil
}
