// BYH Music Store | 2026
// repository.go

package promotion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/byhstore/byh-store/internal/core"
)

type Repository interface {
	Create(ctx context.Context, promotion *Promotion) error
	GetByID(ctx context.Context, id string) (*Promotion, error)
	Update(ctx context.Context, promotion *Promotion) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Promotion, error)
	ListActive(ctx context.Context, since time.Time) ([]Promotion, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, promotion *Promotion) error {
	query := `
		INSERT INTO promotions
			(id, name, description, discount_type, discount_value,
			 start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.db.GetContext(ctx, promotion, query,
		promotion.ID,
		promotion.Name,
		promotion.Description,
		promotion.DiscountType,
		promotion.DiscountValue,
		promotion.StartDate,
		promotion.EndDate,
		promotion.Status,
	)
	if err != nil {
		return fmt.Errorf("create promotion: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Promotion, error) {
	query := `
		SELECT id, name, description, discount_type, discount_value,
		       start_date, end_date, status, created_at
		FROM promotions
		WHERE id = $1`

	var promotion Promotion
	if err := r.db.GetContext(ctx, &promotion, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get promotion %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get promotion %s: %w", id, err)
	}

	return &promotion, nil
}

func (r *repository) Update(ctx context.Context, promotion *Promotion) error {
	query := `
		UPDATE promotions
		SET name = $2, description = $3, discount_type = $4,
		    discount_value = $5, start_date = $6, end_date = $7, status = $8
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		promotion.ID,
		promotion.Name,
		promotion.Description,
		promotion.DiscountType,
		promotion.DiscountValue,
		promotion.StartDate,
		promotion.EndDate,
		promotion.Status,
	)
	if err != nil {
		return fmt.Errorf("update promotion %s: %w", promotion.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update promotion %s: %w", promotion.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf(
			"update promotion %s: %w",
			promotion.ID,
			core.ErrNotFound,
		)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM promotions WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete promotion %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete promotion %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete promotion %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Promotion, error) {
	query := `
		SELECT id, name, description, discount_type, discount_value,
		       start_date, end_date, status, created_at
		FROM promotions
		ORDER BY created_at DESC`

	promotions := []Promotion{}
	if err := r.db.SelectContext(ctx, &promotions, query); err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}

	return promotions, nil
}

// ListActive returns promotions the storefront should show: status active
// and an end date no earlier than since (the caller passes today's
// midnight).
func (r *repository) ListActive(
	ctx context.Context,
	since time.Time,
) ([]Promotion, error) {
	query := `
		SELECT id, name, description, discount_type, discount_value,
		       start_date, end_date, status, created_at
		FROM promotions
		WHERE status = $1 AND end_date >= $2
		ORDER BY end_date ASC`

	promotions := []Promotion{}
	err := r.db.SelectContext(ctx, &promotions, query, StatusActive, since)
	if err != nil {
		return nil, fmt.Errorf("list active promotions: %w", err)
	}

	return promotions, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM promotions`)
	if err != nil {
		return 0, fmt.Errorf("count promotions: %w", err)
	}

	return count, nil
}
