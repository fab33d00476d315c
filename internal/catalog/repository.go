// BYH Music Store | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/byhstore/byh-store/internal/core"
)

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, product *Product) error {
	query := `
		INSERT INTO products (id, name, category, price, stock, description, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, product, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
		product.Description,
		product.ImageURL,
	)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Product, error) {
	query := `
		SELECT id, name, category, price, stock, description, image_url,
		       created_at, updated_at
		FROM products
		WHERE id = $1`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return &product, nil
}

func (r *repository) Update(ctx context.Context, product *Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, stock = $5,
		    description = $6, image_url = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &product.UpdatedAt, query,
		product.ID,
		product.Name,
		product.Category,
		product.Price,
		product.Stock,
		product.Description,
		product.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update product: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	return nil
}

func (r *repository) Delete(
	ctx context.Context,
	id string,
) (*Product, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, category, price, stock, description, image_url,
		          created_at, updated_at`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delete product: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete product: %w", err)
	}

	return &product, nil
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	query := `
		SELECT id, name, category, price, stock, description, image_url,
		       created_at, updated_at
		FROM products
		ORDER BY created_at DESC`

	var products []Product
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM products`
	if err := r.db.GetContext(ctx, &total, query); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}
