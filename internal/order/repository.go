// BYH Music Store | 2026
// repository.go

package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/byhstore/byh-store/internal/core"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const selectOrders = `
	SELECT o.id, o.user_id, o.total, o.status, o.created_at,
	       u.name AS user_name, u.email AS user_email
	FROM orders o
	JOIN users u ON u.id = o.user_id`

func (r *repository) GetByID(ctx context.Context, id string) (*Order, error) {
	var order Order
	err := r.db.GetContext(ctx, &order, selectOrders+` WHERE o.id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get order %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	return &order, nil
}

func (r *repository) List(ctx context.Context) ([]Order, error) {
	orders := []Order{}
	query := selectOrders + ` ORDER BY o.created_at DESC`
	if err := r.db.SelectContext(ctx, &orders, query); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM orders`)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}

	return count, nil
}
