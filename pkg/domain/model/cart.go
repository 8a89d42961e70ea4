package model

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)

// CartItem is a snapshot of the product at the moment it entered the cart,
// plus the chosen quantity. A cart holds at most one item per product id.
type CartItem struct {
	ProductID uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Category  string          `json:"category"`
	Quantity  int             `json:"quantity"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges the product into the cart: an existing line for the same product
// gains one unit, otherwise a new line with quantity 1 is appended.
func (c *Cart) Add(product *Product) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == product.ID {
			c.Items[idx].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Category:  product.Category,
		Quantity:  1,
	})
}

func (c *Cart) Remove(productID uuid.UUID) error {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

// SetQuantity sets the line quantity. A quantity of zero or less removes the
// line.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return nil
		}
	}
	return ErrCartItemNotFound
}

func (c *Cart) Clear() {
	c.Items = nil
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Total is the sum of price times quantity across all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CartRepository persists the single per-session cart aggregate. Load returns
// an empty cart when nothing has been persisted yet.
type CartRepository interface {
	Load() (*Cart, error)
	Save(cart *Cart) error
}
