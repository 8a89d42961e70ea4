package tests

import (
	"storefront/pkg/domain/model"
	"storefront/pkg/domain/service"

	"github.com/google/uuid"
)

var _ model.ProductRepository = (*mockProductRepository)(nil)

// mockProductRepository keeps products in insertion order, like the snapshot
// repository does.
type mockProductRepository struct {
	products []*model.Product
}

func (m *mockProductRepository) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (m *mockProductRepository) Store(product *model.Product) error {
	stored := *product
	for idx, existing := range m.products {
		if existing.ID == product.ID {
			m.products[idx] = &stored
			return nil
		}
	}
	m.products = append(m.products, &stored)
	return nil
}

func (m *mockProductRepository) Find(id uuid.UUID) (*model.Product, error) {
	for _, product := range m.products {
		if product.ID == id {
			found := *product
			return &found, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) Delete(id uuid.UUID) error {
	for idx, product := range m.products {
		if product.ID == id {
			m.products = append(m.products[:idx], m.products[idx+1:]...)
			return nil
		}
	}
	return model.ErrProductNotFound
}

func (m *mockProductRepository) ListAll() ([]*model.Product, error) {
	out := make([]*model.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

var _ model.RequestRepository = (*mockRequestRepository)(nil)

// mockRequestRepository prepends new requests, newest-first.
type mockRequestRepository struct {
	requests []*model.ItemRequest
}

func (m *mockRequestRepository) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (m *mockRequestRepository) Store(request *model.ItemRequest) error {
	stored := *request
	for idx, existing := range m.requests {
		if existing.ID == request.ID {
			m.requests[idx] = &stored
			return nil
		}
	}
	m.requests = append([]*model.ItemRequest{&stored}, m.requests...)
	return nil
}

func (m *mockRequestRepository) Find(id uuid.UUID) (*model.ItemRequest, error) {
	for _, request := range m.requests {
		if request.ID == id {
			found := *request
			return &found, nil
		}
	}
	return nil, model.ErrRequestNotFound
}

func (m *mockRequestRepository) ListAll() ([]*model.ItemRequest, error) {
	out := make([]*model.ItemRequest, len(m.requests))
	copy(out, m.requests)
	return out, nil
}

func (m *mockRequestRepository) ListByUser(userID uuid.UUID) ([]*model.ItemRequest, error) {
	out := []*model.ItemRequest{}
	for _, request := range m.requests {
		if request.UserID == userID {
			out = append(out, request)
		}
	}
	return out, nil
}

var _ model.OrderRepository = (*mockOrderRepository)(nil)

type mockOrderRepository struct {
	orders []*model.Order
}

func (m *mockOrderRepository) NextID() (uuid.UUID, error) {
	return uuid.NewV7()
}

func (m *mockOrderRepository) Store(order *model.Order) error {
	stored := *order
	for idx, existing := range m.orders {
		if existing.ID == order.ID {
			m.orders[idx] = &stored
			return nil
		}
	}
	m.orders = append([]*model.Order{&stored}, m.orders...)
	return nil
}

func (m *mockOrderRepository) Find(id uuid.UUID) (*model.Order, error) {
	for _, order := range m.orders {
		if order.ID == id {
			found := *order
			return &found, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) ListAll() ([]*model.Order, error) {
	out := make([]*model.Order, len(m.orders))
	copy(out, m.orders)
	return out, nil
}

var _ model.CartRepository = (*mockCartRepository)(nil)

type mockCartRepository struct {
	cart      *model.Cart
	saveCount int
}

func (m *mockCartRepository) Load() (*model.Cart, error) {
	if m.cart == nil {
		return &model.Cart{}, nil
	}
	loaded := model.Cart{Items: append([]model.CartItem(nil), m.cart.Items...)}
	return &loaded, nil
}

func (m *mockCartRepository) Save(cart *model.Cart) error {
	saved := model.Cart{Items: append([]model.CartItem(nil), cart.Items...)}
	m.cart = &saved
	m.saveCount++
	return nil
}

var _ model.SessionRepository = (*mockSessionRepository)(nil)

type mockSessionRepository struct {
	identity *model.Identity
	cleared  int
}

func (m *mockSessionRepository) Load() (*model.Identity, error) {
	if m.identity == nil {
		return nil, nil
	}
	loaded := *m.identity
	return &loaded, nil
}

func (m *mockSessionRepository) Save(identity *model.Identity) error {
	saved := *identity
	m.identity = &saved
	return nil
}

func (m *mockSessionRepository) Clear() error {
	m.identity = nil
	m.cleared++
	return nil
}

var _ service.EventDispatcher = (*mockEventDispatcher)(nil)

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(e service.Event) error {
	m.events = append(m.events, e)
	return nil
}

func (m *mockEventDispatcher) Clear() {
	m.events = nil
}

var _ service.CredentialVerifier = (*rejectingVerifier)(nil)

// rejectingVerifier stands in for a real credential check that turns the
// caller away.
type rejectingVerifier struct{}

func (rejectingVerifier) Verify(email, password string) error {
	return model.ErrInvalidCredentials
}
