package service

import (
	"errors"
	"fmt"
	"time"

	"storefront/pkg/domain/model"
	"storefront/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDraft carries the user-editable product fields.
type ProductDraft struct {
	Name        string
	Price       decimal.Decimal
	Image       string
	Description string
	Category    string
}

func (d ProductDraft) validate() error {
	if d.Name == "" {
		return model.ErrProductNameRequired
	}
	if d.Price.IsNegative() {
		return model.ErrProductPriceInvalid
	}
	if d.Description == "" {
		return model.ErrProductDescriptionRequired
	}
	if d.Category == "" {
		return model.ErrProductCategoryRequired
	}
	return nil
}

// CatalogStats are the aggregate catalog figures for the admin dashboard.
type CatalogStats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal
	AveragePrice    decimal.Decimal
	CountByCategory map[string]int
}

type Catalog interface {
	CreateProduct(draft ProductDraft) (*model.Product, error)
	UpdateProduct(id uuid.UUID, draft ProductDraft) (*model.Product, error)
	DeleteProduct(id uuid.UUID) error
	GetProduct(id uuid.UUID) (*model.Product, error)
	ListProducts() ([]*model.Product, error)
	ProductsByCategory() (map[string][]*model.Product, error)
	Stats() (*CatalogStats, error)
}

func NewCatalogService(repo model.ProductRepository, dispatcher EventDispatcher, log logger.Logger) Catalog {
	if log == nil {
		log = logger.Default()
	}
	return &catalogService{
		repo:       repo,
		dispatcher: dispatcher,
		log:        log,
	}
}

type catalogService struct {
	repo       model.ProductRepository
	dispatcher EventDispatcher
	log        logger.Logger
}

func (s *catalogService) CreateProduct(draft ProductDraft) (*model.Product, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	id, err := s.repo.NextID()
	if err != nil {
		return nil, fmt.Errorf("failed to get next product id: %w", err)
	}

	image := draft.Image
	if image == "" {
		image = model.PlaceholderImage
	}

	now := time.Now()
	product := &model.Product{
		ID:          id,
		Name:        draft.Name,
		Price:       draft.Price,
		Image:       image,
		Description: draft.Description,
		Category:    draft.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Store(product); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	s.dispatch(model.ProductCreated{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Category:  product.Category,
	})

	return product, nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, draft ProductDraft) (*model.Product, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	product, err := s.repo.Find(id)
	if err != nil {
		return nil, err
	}

	oldName := product.Name
	oldPrice := product.Price

	image := draft.Image
	if image == "" {
		image = model.PlaceholderImage
	}

	product.Name = draft.Name
	product.Price = draft.Price
	product.Image = image
	product.Description = draft.Description
	product.Category = draft.Category
	product.UpdatedAt = time.Now()

	if err := s.repo.Store(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.dispatch(model.ProductUpdated{
		ProductID: product.ID,
		OldName:   oldName,
		NewName:   product.Name,
		OldPrice:  oldPrice,
		NewPrice:  product.Price,
	})

	return product, nil
}

// DeleteProduct removes the product permanently. Removal is idempotent:
// deleting an absent product is not an error.
func (s *catalogService) DeleteProduct(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	s.dispatch(model.ProductDeleted{ProductID: id})
	return nil
}

func (s *catalogService) GetProduct(id uuid.UUID) (*model.Product, error) {
	return s.repo.Find(id)
}

func (s *catalogService) ListProducts() ([]*model.Product, error) {
	return s.repo.ListAll()
}

func (s *catalogService) ProductsByCategory() (map[string][]*model.Product, error) {
	products, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	grouped := make(map[string][]*model.Product)
	for _, product := range products {
		grouped[product.Category] = append(grouped[product.Category], product)
	}
	return grouped, nil
}

func (s *catalogService) Stats() (*CatalogStats, error) {
	products, err := s.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	stats := &CatalogStats{
		TotalProducts:   len(products),
		TotalValue:      decimal.Zero,
		AveragePrice:    decimal.Zero,
		CountByCategory: make(map[string]int),
	}
	for _, product := range products {
		stats.TotalValue = stats.TotalValue.Add(product.Price)
		stats.CountByCategory[product.Category]++
	}
	if len(products) > 0 {
		stats.AveragePrice = stats.TotalValue.Div(decimal.NewFromInt(int64(len(products))))
	}
	return stats, nil
}

func (s *catalogService) dispatch(event Event) {
	if err := s.dispatcher.Dispatch(event); err != nil {
		s.log.Warn("failed to dispatch event", "event", event.Type(), "error", err)
	}
}
