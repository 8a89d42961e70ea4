package storage

import (
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// ProductRepo keeps the catalog in memory and overwrites the persisted
// snapshot on every mutation.
type ProductRepo struct {
	mu       sync.RWMutex
	kv       KV
	products []*model.Product
}

var _ model.ProductRepository = (*ProductRepo)(nil)

func NewProductRepo(kv KV, log logger.Logger) *ProductRepo {
	if log == nil {
		log = logger.Default()
	}
	return &ProductRepo{
		kv:       kv,
		products: loadSnapshot[*model.Product](kv, KeyProducts, log),
	}
}

func (r *ProductRepo) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

// Store appends a new product or replaces an existing one in place, keeping
// insertion order.
func (r *ProductRepo) Store(product *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *product
	replaced := false
	for idx, existing := range r.products {
		if existing.ID == product.ID {
			r.products[idx] = &stored
			replaced = true
			break
		}
	}
	if !replaced {
		r.products = append(r.products, &stored)
	}
	return saveSnapshot(r.kv, KeyProducts, r.products)
}

func (r *ProductRepo) Find(id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, product := range r.products {
		if product.ID == id {
			found := *product
			return &found, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (r *ProductRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx, product := range r.products {
		if product.ID == id {
			r.products = append(r.products[:idx], r.products[idx+1:]...)
			return saveSnapshot(r.kv, KeyProducts, r.products)
		}
	}
	return model.ErrProductNotFound
}

func (r *ProductRepo) ListAll() ([]*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Product, 0, len(r.products))
	for _, product := range r.products {
		found := *product
		out = append(out, &found)
	}
	return out, nil
}
