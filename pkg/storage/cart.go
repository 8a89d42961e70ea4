package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"
)

// CartRepo persists the single cart aggregate. The snapshot is the bare line
// array, matching the shape the cart was historically stored under.
type CartRepo struct {
	mu  sync.Mutex
	kv  KV
	log logger.Logger
}

var _ model.CartRepository = (*CartRepo)(nil)

func NewCartRepo(kv KV, log logger.Logger) *CartRepo {
	if log == nil {
		log = logger.Default()
	}
	return &CartRepo{kv: kv, log: log}
}

func (r *CartRepo) Load() (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.kv.Get(KeyCart)
	if errors.Is(err, ErrKeyNotFound) {
		return &model.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("failed to decode cart snapshot, starting empty", "error", err)
		return &model.Cart{}, nil
	}
	return &model.Cart{Items: items}, nil
}

func (r *CartRepo) Save(cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := r.kv.Set(KeyCart, data); err != nil {
		return fmt.Errorf("failed to persist cart snapshot: %w", err)
	}
	return nil
}
