package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

// Orders are created in Processing and never transitioned; fulfilment happens
// outside this system.
const OrderProcessing OrderStatus = "Processing"

type OrderItem struct {
	ProductID uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order is the read-only snapshot of a cart captured at checkout.
type Order struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"userId"`
	Items  []OrderItem     `json:"items"`
	Total  decimal.Decimal `json:"total"`
	Date   time.Time       `json:"date"`
	Status OrderStatus     `json:"status"`
}

// OrderRepository keeps the order history newest-first.
type OrderRepository interface {
	NextID() (uuid.UUID, error)
	Store(order *Order) error
	Find(id uuid.UUID) (*Order, error)
	ListAll() ([]*Order, error)
}
