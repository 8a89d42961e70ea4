// Package events provides the single-process stand-in for an event broker.
package events

import (
	"fmt"
	"sync"

	"storefront/pkg/domain/service"
	"storefront/pkg/logger"
)

// Handler consumes a single domain event.
type Handler func(event service.Event) error

// Dispatcher delivers events synchronously to the handlers registered for
// their type name. Handler failures are logged and reported but do not stop
// delivery to the remaining handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      logger.Logger
}

var _ service.EventDispatcher = (*Dispatcher)(nil)

func NewDispatcher(log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Default()
	}
	return &Dispatcher{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

func (d *Dispatcher) Subscribe(eventType string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

func (d *Dispatcher) Dispatch(event service.Event) error {
	d.mu.RLock()
	handlers := d.handlers[event.Type()]
	d.mu.RUnlock()

	d.log.Debug("dispatching event", "event", event.Type(), "handlers", len(handlers))

	var firstErr error
	for _, handler := range handlers {
		if err := handler(event); err != nil {
			d.log.Warn("event handler failed", "event", event.Type(), "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("handler for %s failed: %w", event.Type(), err)
			}
		}
	}
	return firstErr
}
