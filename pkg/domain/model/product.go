package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlaceholderImage is used when a product is created without an image reference.
const PlaceholderImage = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&h=800&fit=crop"

var (
	ErrProductNotFound            = errors.New("product not found")
	ErrProductNameRequired        = errors.New("product name is required")
	ErrProductPriceInvalid        = errors.New("product price must be zero or positive")
	ErrProductDescriptionRequired = errors.New("product description is required")
	ErrProductCategoryRequired    = errors.New("product category is required")
)

type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductRepository keeps the catalog in insertion order: Store appends new
// products and replaces existing ones in place.
type ProductRepository interface {
	NextID() (uuid.UUID, error)
	Store(product *Product) error
	Find(id uuid.UUID) (*Product, error)
	Delete(id uuid.UUID) error
	ListAll() ([]*Product, error)
}
