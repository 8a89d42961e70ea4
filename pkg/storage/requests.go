package storage

import (
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// RequestRepo keeps the item request ledger in memory and overwrites the
// persisted snapshot on every mutation. New requests go to the front so the
// ledger reads newest-first.
type RequestRepo struct {
	mu       sync.RWMutex
	kv       KV
	requests []*model.ItemRequest
}

var _ model.RequestRepository = (*RequestRepo)(nil)

func NewRequestRepo(kv KV, log logger.Logger) *RequestRepo {
	if log == nil {
		log = logger.Default()
	}
	return &RequestRepo{
		kv:       kv,
		requests: loadSnapshot[*model.ItemRequest](kv, KeyRequests, log),
	}
}

func (r *RequestRepo) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (r *RequestRepo) Store(request *model.ItemRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *request
	for idx, existing := range r.requests {
		if existing.ID == request.ID {
			r.requests[idx] = &stored
			return saveSnapshot(r.kv, KeyRequests, r.requests)
		}
	}
	r.requests = append([]*model.ItemRequest{&stored}, r.requests...)
	return saveSnapshot(r.kv, KeyRequests, r.requests)
}

func (r *RequestRepo) Find(id uuid.UUID) (*model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, request := range r.requests {
		if request.ID == id {
			found := *request
			return &found, nil
		}
	}
	return nil, model.ErrRequestNotFound
}

func (r *RequestRepo) ListAll() ([]*model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ItemRequest, 0, len(r.requests))
	for _, request := range r.requests {
		found := *request
		out = append(out, &found)
	}
	return out, nil
}

func (r *RequestRepo) ListByUser(userID uuid.UUID) ([]*model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*model.ItemRequest{}
	for _, request := range r.requests {
		if request.UserID == userID {
			found := *request
			out = append(out, &found)
		}
	}
	return out, nil
}
