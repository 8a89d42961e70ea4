package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"
)

// SessionRepo persists the signed-in identity.
type SessionRepo struct {
	mu  sync.Mutex
	kv  KV
	log logger.Logger
}

var _ model.SessionRepository = (*SessionRepo)(nil)

func NewSessionRepo(kv KV, log logger.Logger) *SessionRepo {
	if log == nil {
		log = logger.Default()
	}
	return &SessionRepo{kv: kv, log: log}
}

func (r *SessionRepo) Load() (*model.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.kv.Get(KeySession)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read identity snapshot: %w", err)
	}

	var identity model.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		r.log.Warn("failed to decode identity snapshot, treating as signed out", "error", err)
		return nil, nil
	}

	// Identities persisted before the role claim existed carry no role; fall
	// back to the legacy email predicate.
	if identity.Role == "" {
		identity.Role = model.RoleCustomer
		if model.IsAdminEmail(identity.Email) {
			identity.Role = model.RoleAdmin
		}
	}
	return &identity, nil
}

func (r *SessionRepo) Save(identity *model.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode identity snapshot: %w", err)
	}
	if err := r.kv.Set(KeySession, data); err != nil {
		return fmt.Errorf("failed to persist identity snapshot: %w", err)
	}
	return nil
}

func (r *SessionRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.kv.Delete(KeySession)
}
