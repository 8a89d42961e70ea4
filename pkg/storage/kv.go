// Package storage persists the state containers into a device-local
// key-to-JSON-blob store. Every mutation overwrites the whole snapshot for
// its key; there are no partial writes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"storefront/pkg/logger"
)

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// KV is the device store the repositories persist into.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Persisted snapshot keys, one per container. They match the browser
// local-storage keys the stored data originally lived under.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyRequests = "itemRequests"
	KeyOrders   = "orders"
	KeySession  = "user"
)

// MemoryKV is an in-process store, the default backend for tests and for runs
// that do not need persistence across restarts.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// loadSnapshot reads and decodes a persisted collection. Absent or corrupt
// snapshots degrade to an empty collection instead of failing startup.
func loadSnapshot[T any](kv KV, key string, log logger.Logger) []T {
	data, err := kv.Get(key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		log.Warn("failed to read snapshot, starting empty", "key", key, "error", err)
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("failed to decode snapshot, starting empty", "key", key, "error", err)
		return nil
	}
	return items
}

func saveSnapshot[T any](kv KV, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", key, err)
	}
	if err := kv.Set(key, data); err != nil {
		return fmt.Errorf("failed to persist %s snapshot: %w", key, err)
	}
	return nil
}
