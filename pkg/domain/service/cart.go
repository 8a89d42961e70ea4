package service

import (
	"fmt"

	"storefront/pkg/domain/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart wraps the persisted cart aggregate. Every mutation loads the snapshot,
// applies the change and writes the whole snapshot back.
type Cart interface {
	AddProduct(product *model.Product) (*model.Cart, error)
	RemoveProduct(productID uuid.UUID) (*model.Cart, error)
	SetQuantity(productID uuid.UUID, quantity int) (*model.Cart, error)
	Clear() error
	Items() ([]model.CartItem, error)
	ItemCount() (int, error)
	Total() (decimal.Decimal, error)
}

func NewCartService(repo model.CartRepository) Cart {
	return &cartService{repo: repo}
}

type cartService struct {
	repo model.CartRepository
}

func (s *cartService) AddProduct(product *model.Product) (*model.Cart, error) {
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return s.mutate(func(cart *model.Cart) error {
		cart.Add(product)
		return nil
	})
}

func (s *cartService) RemoveProduct(productID uuid.UUID) (*model.Cart, error) {
	return s.mutate(func(cart *model.Cart) error {
		return cart.Remove(productID)
	})
}

func (s *cartService) SetQuantity(productID uuid.UUID, quantity int) (*model.Cart, error) {
	return s.mutate(func(cart *model.Cart) error {
		return cart.SetQuantity(productID, quantity)
	})
}

func (s *cartService) Clear() error {
	_, err := s.mutate(func(cart *model.Cart) error {
		cart.Clear()
		return nil
	})
	return err
}

func (s *cartService) Items() ([]model.CartItem, error) {
	cart, err := s.load()
	if err != nil {
		return nil, err
	}
	return cart.Items, nil
}

func (s *cartService) ItemCount() (int, error) {
	cart, err := s.load()
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}

func (s *cartService) Total() (decimal.Decimal, error) {
	cart, err := s.load()
	if err != nil {
		return decimal.Zero, err
	}
	return cart.Total(), nil
}

func (s *cartService) load() (*model.Cart, error) {
	cart, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) mutate(apply func(cart *model.Cart) error) (*model.Cart, error) {
	cart, err := s.load()
	if err != nil {
		return nil, err
	}
	if err := apply(cart); err != nil {
		return nil, err
	}
	if err := s.repo.Save(cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart, nil
}
