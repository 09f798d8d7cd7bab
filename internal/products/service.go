package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/tna-office/backoffice/internal/shared"
)

// RepositoryPort defines data access methods for products and categories.
type RepositoryPort interface {
	List(ctx context.Context, activeOnly bool) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) error

	ListCategories(ctx context.Context, activeOnly bool) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)
	UpdateCategory(ctx context.Context, id string, updates map[string]interface{}) error
	DeleteCategory(ctx context.Context, id string) error
}

// Service handles product catalog business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx, false)
}

// ListActive returns active products, used by the public site.
func (s *Service) ListActive(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx, true)
}

// Get returns one product.
func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	return s.repo.Get(ctx, id)
}

// Create stores a new product. When category_id is set, the category
// name is snapshotted on the product.
func (s *Service) Create(ctx context.Context, req CreateProductRequest) (Product, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Product{}, err
	}
	category := req.Category
	if req.CategoryID != nil && *req.CategoryID != "" {
		cat, err := s.repo.GetCategory(ctx, *req.CategoryID)
		if err != nil {
			return Product{}, err
		}
		category = cat.Name
	}
	minOrder := req.MinOrder
	if minOrder == 0 {
		minOrder = 1
	}
	minStockAlert := req.MinStockAlert
	if minStockAlert == 0 {
		minStockAlert = 5
	}
	return s.repo.Create(ctx, Product{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		Description:          req.Description,
		CategoryID:           req.CategoryID,
		Category:             category,
		BasePrice:            req.BasePrice,
		SalePrice:            req.SalePrice,
		Cost:                 req.Cost,
		Unit:                 req.Unit,
		CommissionPercentage: req.CommissionPercentage,
		MinOrder:             minOrder,
		Provider:             req.Provider,
		ImageURL:             req.ImageURL,
		Featured:             req.Featured,
		FeaturedText:         req.FeaturedText,
		StockControlEnabled:  req.StockControlEnabled,
		CurrentStock:         req.CurrentStock,
		MinStockAlert:        minStockAlert,
		IsActive:             true,
	})
}

// Update applies a partial product update.
func (s *Service) Update(ctx context.Context, id string, req UpdateProductRequest) (Product, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Product{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			updates["category_id"] = nil
		} else {
			cat, err := s.repo.GetCategory(ctx, *req.CategoryID)
			if err != nil {
				return Product{}, err
			}
			updates["category_id"] = *req.CategoryID
			updates["category"] = cat.Name
		}
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}
	if req.SalePrice != nil {
		updates["sale_price"] = *req.SalePrice
	}
	if req.Cost != nil {
		updates["cost"] = *req.Cost
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.CommissionPercentage != nil {
		updates["commission_percentage"] = *req.CommissionPercentage
	}
	if req.MinOrder != nil {
		updates["min_order"] = *req.MinOrder
	}
	if req.Provider != nil {
		updates["provider"] = *req.Provider
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.FeaturedText != nil {
		updates["featured_text"] = *req.FeaturedText
	}
	if req.StockControlEnabled != nil {
		updates["stock_control_enabled"] = *req.StockControlEnabled
	}
	if req.CurrentStock != nil {
		updates["current_stock"] = *req.CurrentStock
	}
	if req.MinStockAlert != nil {
		updates["min_stock_alert"] = *req.MinStockAlert
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Product{}, err
	}
	return s.repo.Get(ctx, id)
}

// ToggleStockControl flips stock tracking on a product. Disabling it zeroes
// the current stock.
func (s *Service) ToggleStockControl(ctx context.Context, id string) (Product, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	updates := map[string]interface{}{
		"stock_control_enabled": !existing.StockControlEnabled,
	}
	if existing.StockControlEnabled {
		updates["current_stock"] = 0
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		return Product{}, err
	}
	return s.repo.Get(ctx, id)
}

// AddStock increases the stock of a stock-controlled product.
func (s *Service) AddStock(ctx context.Context, id string, req AddStockRequest) (Product, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Product{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	if !existing.StockControlEnabled {
		return Product{}, shared.Validationf("stock control is disabled for this product")
	}
	if err := s.repo.AdjustStock(ctx, id, req.Quantity); err != nil {
		return Product{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx, false)
}

// ListActiveCategories returns active categories for the public site.
func (s *Service) ListActiveCategories(ctx context.Context) ([]Category, error) {
	return s.repo.ListCategories(ctx, true)
}

// CreateCategory stores a new category.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (Category, error) {
	if err := shared.ValidateStruct(req); err != nil {
		return Category{}, err
	}
	return s.repo.CreateCategory(ctx, Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
		IsActive:    true,
	})
}

// UpdateCategory applies a partial category update.
func (s *Service) UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (Category, error) {
	existing, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return Category{}, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return existing, nil
	}
	if err := s.repo.UpdateCategory(ctx, id, updates); err != nil {
		return Category{}, err
	}
	return s.repo.GetCategory(ctx, id)
}

// DeleteCategory removes a category.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.repo.GetCategory(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteCategory(ctx, id)
}
