package products

import "time"

// Product is a sellable item or service.
type Product struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	CategoryID           *string   `json:"category_id"`
	Category             string    `json:"category"`
	BasePrice            float64   `json:"base_price"`
	SalePrice            float64   `json:"sale_price"`
	Cost                 float64   `json:"cost"`
	Unit                 string    `json:"unit"`
	CommissionPercentage float64   `json:"commission_percentage"`
	MinOrder             int       `json:"min_order"`
	Provider             string    `json:"provider"`
	ImageURL             string    `json:"image_url"`
	Featured             bool      `json:"featured"`
	FeaturedText         string    `json:"featured_text"`
	StockControlEnabled  bool      `json:"stock_control_enabled"`
	CurrentStock         int       `json:"current_stock"`
	MinStockAlert        int       `json:"min_stock_alert"`
	IsActive             bool      `json:"is_active"`
	CreatedAt            time.Time `json:"created_at"`
}

// EffectivePrice is the unit price charged on a ticket: the sale price
// when set, falling back to the base price.
func (p Product) EffectivePrice() float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.BasePrice
}

// Category groups products.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    *string   `json:"parent_id"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductRequest carries a new product.
type CreateProductRequest struct {
	Name                 string  `json:"name" validate:"required"`
	Description          string  `json:"description"`
	CategoryID           *string `json:"category_id"`
	Category             string  `json:"category"`
	BasePrice            float64 `json:"base_price" validate:"gte=0"`
	SalePrice            float64 `json:"sale_price" validate:"gte=0"`
	Cost                 float64 `json:"cost" validate:"gte=0"`
	Unit                 string  `json:"unit"`
	CommissionPercentage float64 `json:"commission_percentage" validate:"gte=0,lte=100"`
	MinOrder             int     `json:"min_order" validate:"gte=0"`
	Provider             string  `json:"provider"`
	ImageURL             string  `json:"image_url"`
	Featured             bool    `json:"featured"`
	FeaturedText         string  `json:"featured_text"`
	StockControlEnabled  bool    `json:"stock_control_enabled"`
	CurrentStock         int     `json:"current_stock" validate:"gte=0"`
	MinStockAlert        int     `json:"min_stock_alert" validate:"gte=0"`
}

// UpdateProductRequest carries a partial product update.
type UpdateProductRequest struct {
	Name                 *string  `json:"name"`
	Description          *string  `json:"description"`
	CategoryID           *string  `json:"category_id"`
	Category             *string  `json:"category"`
	BasePrice            *float64 `json:"base_price" validate:"omitempty,gte=0"`
	SalePrice            *float64 `json:"sale_price" validate:"omitempty,gte=0"`
	Cost                 *float64 `json:"cost" validate:"omitempty,gte=0"`
	Unit                 *string  `json:"unit"`
	CommissionPercentage *float64 `json:"commission_percentage" validate:"omitempty,gte=0,lte=100"`
	MinOrder             *int     `json:"min_order" validate:"omitempty,gte=0"`
	Provider             *string  `json:"provider"`
	ImageURL             *string  `json:"image_url"`
	Featured             *bool    `json:"featured"`
	FeaturedText         *string  `json:"featured_text"`
	StockControlEnabled  *bool    `json:"stock_control_enabled"`
	CurrentStock         *int     `json:"current_stock" validate:"omitempty,gte=0"`
	MinStockAlert        *int     `json:"min_stock_alert" validate:"omitempty,gte=0"`
	IsActive             *bool    `json:"is_active"`
}

// AddStockRequest carries a stock replenishment.
type AddStockRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// CreateCategoryRequest carries a new category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

// UpdateCategoryRequest carries a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
	IsActive    *bool   `json:"is_active"`
}
