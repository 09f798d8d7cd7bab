package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tna-office/backoffice/internal/platform/db"
	"github.com/tna-office/backoffice/internal/shared"
)

// Repository provides PostgreSQL backed persistence for products and
// categories.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const productColumns = `id, name, description, category_id, category, base_price, sale_price, cost,
	unit, commission_percentage, min_order, provider, image_url, featured, featured_text,
	stock_control_enabled, current_stock, min_stock_alert, is_active, created_at`

var productUpdateColumns = []string{
	"name", "description", "category_id", "category", "base_price", "sale_price", "cost",
	"unit", "commission_percentage", "min_order", "provider", "image_url", "featured",
	"featured_text", "stock_control_enabled", "current_stock", "min_stock_alert", "is_active",
}

func scanProduct(row pgx.Row) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Category, &p.BasePrice, &p.SalePrice, &p.Cost,
		&p.Unit, &p.CommissionPercentage, &p.MinOrder, &p.Provider, &p.ImageURL, &p.Featured, &p.FeaturedText,
		&p.StockControlEnabled, &p.CurrentStock, &p.MinStockAlert, &p.IsActive, &p.CreatedAt)
	return p, err
}

// List returns products. When activeOnly is set, inactive products are
// filtered out.
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products: list: %w", err)
	}
	defer rows.Close()
	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns the product with the given id.
func (r *Repository) Get(ctx context.Context, id string) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, shared.ErrNotFound
	}
	if err != nil {
		return Product{}, fmt.Errorf("products: get: %w", err)
	}
	return p, nil
}

// Create inserts a product.
func (r *Repository) Create(ctx context.Context, p Product) (Product, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, description, category_id, category, base_price, sale_price, cost,
			unit, commission_percentage, min_order, provider, image_url, featured, featured_text,
			stock_control_enabled, current_stock, min_stock_alert, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.CategoryID, p.Category, p.BasePrice, p.SalePrice, p.Cost,
		p.Unit, p.CommissionPercentage, p.MinOrder, p.Provider, p.ImageURL, p.Featured, p.FeaturedText,
		p.StockControlEnabled, p.CurrentStock, p.MinStockAlert, p.IsActive)
	created, err := scanProduct(row)
	if err != nil {
		return Product{}, fmt.Errorf("products: create: %w", err)
	}
	return created, nil
}

// Update applies allow-listed column updates.
func (r *Repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("products", productUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("products: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a product.
func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// AdjustStock decrements the stock of a stock-controlled product.
func (r *Repository) AdjustStock(ctx context.Context, id string, delta int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE products SET current_stock = current_stock + $2
		WHERE id = $1 AND stock_control_enabled`, id, delta)
	if err != nil {
		return fmt.Errorf("products: adjust stock: %w", err)
	}
	return nil
}

const categoryColumns = `id, name, description, parent_id, is_active, created_at`

var categoryUpdateColumns = []string{"name", "description", "parent_id", "is_active"}

func scanCategory(row pgx.Row) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.IsActive, &c.CreatedAt)
	return c, err
}

// ListCategories returns categories. When activeOnly is set, inactive
// categories are filtered out.
func (r *Repository) ListCategories(ctx context.Context, activeOnly bool) ([]Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products: list categories: %w", err)
	}
	defer rows.Close()
	var out []Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("products: scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetCategory returns the category with the given id.
func (r *Repository) GetCategory(ctx context.Context, id string) (Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Category{}, shared.ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("products: get category: %w", err)
	}
	return c, nil
}

// CreateCategory inserts a category.
func (r *Repository) CreateCategory(ctx context.Context, c Category) (Category, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, description, parent_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		c.ID, c.Name, c.Description, c.ParentID, c.IsActive)
	created, err := scanCategory(row)
	if err != nil {
		return Category{}, fmt.Errorf("products: create category: %w", err)
	}
	return created, nil
}

// UpdateCategory applies allow-listed column updates.
func (r *Repository) UpdateCategory(ctx context.Context, id string, updates map[string]interface{}) error {
	query, args, ok := db.BuildUpdate("categories", categoryUpdateColumns, updates, id)
	if !ok {
		return nil
	}
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("products: update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category.
func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("products: delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}
