package service

import (
	"fmt"
	"time"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
)

// Checkout captures the cart into a read-only order and clears the cart.
type Checkout interface {
	PlaceOrder() (*model.Order, error)
	Orders() ([]*model.Order, error)
	GetOrder(id uuid.UUID) (*model.Order, error)
}

// NewCheckoutService builds the checkout flow. processingDelay stands in for
// the payment round-trip; once started it always runs to completion.
func NewCheckoutService(carts model.CartRepository, orders model.OrderRepository, sessions model.SessionRepository, processingDelay time.Duration, dispatcher EventDispatcher, log logger.Logger) Checkout {
	if log == nil {
		log = logger.Default()
	}
	return &checkoutService{
		carts:           carts,
		orders:          orders,
		sessions:        sessions,
		processingDelay: processingDelay,
		dispatcher:      dispatcher,
		log:             log,
	}
}

type checkoutService struct {
	carts           model.CartRepository
	orders          model.OrderRepository
	sessions        model.SessionRepository
	processingDelay time.Duration
	dispatcher      EventDispatcher
	log             logger.Logger
}

func (s *checkoutService) PlaceOrder() (*model.Order, error) {
	cart, err := s.carts.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, model.ErrCartEmpty
	}

	if s.processingDelay > 0 {
		time.Sleep(s.processingDelay)
	}

	id, err := s.orders.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to get next order id: %w", err)
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
		})
	}

	order := &model.Order{
		ID:     id,
		Items:  items,
		Total:  cart.Total(),
		Date:   time.Now(),
		Status: model.OrderProcessing,
	}
	if identity, err := s.sessions.Load(); err == nil && identity != nil {
		order.UserID = identity.ID
	}

	if err := s.orders.Store(order); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	cart.Clear()
	if err := s.carts.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	s.dispatch(model.OrderPlaced{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		ItemCount: len(order.Items),
	})

	return order, nil
}

func (s *checkoutService) Orders() ([]*model.Order, error) {
	return s.orders.ListAll()
}

func (s *checkoutService) GetOrder(id uuid.UUID) (*model.Order, error) {
	return s.orders.Find(id)
}

func (s *checkoutService) dispatch(event Event) {
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.log.Warn("failed to dispatch event", "event", event.Type(), "error", err)
	}
}
