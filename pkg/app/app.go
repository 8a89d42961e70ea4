// Package app wires the state containers together: one device store backend,
// one repository per container, one dispatcher, and the services the pages
// call into.
package app

import (
	"fmt"

	"storefront/pkg/config"
	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"
	"storefront/pkg/events"
	"storefront/pkg/logger"
	"storefront/pkg/storage"

	"github.com/shopspring/decimal"
)

type App struct {
	Catalog  service.Catalog
	Cart     service.Cart
	Requests service.Requests
	Checkout service.Checkout
	Session  service.Session

	Dispatcher *events.Dispatcher
	Log        logger.Logger

	kv storage.KV
}

func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	log := logger.NewWithLevel(cfg.Logging.Level)

	kv, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	dispatcher := events.NewDispatcher(log)

	productRepo := storage.NewProductRepo(kv, log)
	cartRepo := storage.NewCartRepo(kv, log)
	requestRepo := storage.NewRequestRepo(kv, log)
	orderRepo := storage.NewOrderRepo(kv, log)
	sessionRepo := storage.NewSessionRepo(kv, log)

	isAdmin := model.AdminMatcher(cfg.Admin.Email, cfg.Admin.Domain)
	verifier := service.MockVerifier{Delay: cfg.Latency.Auth.Std()}

	app := &App{
		Catalog:    service.NewCatalogService(productRepo, dispatcher, log),
		Cart:       service.NewCartService(cartRepo),
		Requests:   service.NewRequestService(requestRepo, dispatcher, log),
		Checkout:   service.NewCheckoutService(cartRepo, orderRepo, sessionRepo, cfg.Latency.Checkout.Std(), dispatcher, log),
		Session:    service.NewSessionService(sessionRepo, verifier, isAdmin, dispatcher, log),
		Dispatcher: dispatcher,
		Log:        log,
		kv:         kv,
	}

	if err := app.seedCatalog(cfg.Seed); err != nil {
		return nil, err
	}
	return app, nil
}

func openStore(cfg config.StoreConfig) (storage.KV, error) {
	switch cfg.Backend {
	case "", config.BackendMemory:
		return storage.NewMemoryKV(), nil
	case config.BackendFile:
		return storage.NewFileKV(cfg.Dir)
	case config.BackendRedis:
		return storage.NewRedisKV(cfg.RedisURL, cfg.Namespace)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// seedCatalog fills an empty catalog with the configured starter products.
func (a *App) seedCatalog(seed []config.SeedProduct) error {
	if len(seed) == 0 {
		return nil
	}
	products, err := a.Catalog.ListProducts()
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	for _, item := range seed {
		draft := service.ProductDraft{
			Name:        item.Name,
			Price:       decimal.NewFromFloat(item.Price),
			Image:       item.Image,
			Description: item.Description,
			Category:    item.Category,
		}
		if _, err := a.Catalog.CreateProduct(draft); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", item.Name, err)
		}
	}
	a.Log.Info("seeded catalog", "products", len(seed))
	return nil
}

// Close releases the store backend if it holds external connections.
func (a *App) Close() error {
	if closer, ok := a.kv.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
