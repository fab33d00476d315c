// BYH Music Store | 2026
// repository.go

package banner

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/byhstore/byh-store/internal/core"
)

type Repository interface {
	Create(ctx context.Context, banner *Banner) error
	GetByID(ctx context.Context, id string) (*Banner, error)
	Update(ctx context.Context, banner *Banner) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Banner, error)
	ListActive(ctx context.Context, since time.Time) ([]Banner, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, banner *Banner) error {
	query := `
		INSERT INTO banners
			(id, title, image_url, link_url, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := r.db.GetContext(ctx, banner, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.StartDate,
		banner.EndDate,
		banner.Status,
	)
	if err != nil {
		return fmt.Errorf("create banner: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, start_date, end_date,
		       status, created_at
		FROM banners
		WHERE id = $1`

	var banner Banner
	if err := r.db.GetContext(ctx, &banner, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get banner %s: %w", id, core.ErrNotFound)
		}
		return nil, fmt.Errorf("get banner %s: %w", id, err)
	}

	return &banner, nil
}

func (r *repository) Update(ctx context.Context, banner *Banner) error {
	query := `
		UPDATE banners
		SET title = $2, image_url = $3, link_url = $4, start_date = $5,
		    end_date = $6, status = $7
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		banner.ID,
		banner.Title,
		banner.ImageURL,
		banner.LinkURL,
		banner.StartDate,
		banner.EndDate,
		banner.Status,
	)
	if err != nil {
		return fmt.Errorf("update banner %s: %w", banner.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update banner %s: %w", banner.ID, err)
	}
	if rows == 0 {
		return fmt.Errorf("update banner %s: %w", banner.ID, core.ErrNotFound)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM banners WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete banner %s: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete banner %s: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("delete banner %s: %w", id, core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, start_date, end_date,
		       status, created_at
		FROM banners
		ORDER BY created_at DESC`

	banners := []Banner{}
	if err := r.db.SelectContext(ctx, &banners, query); err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}

	return banners, nil
}

func (r *repository) ListActive(
	ctx context.Context,
	since time.Time,
) ([]Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, start_date, end_date,
		       status, created_at
		FROM banners
		WHERE status = $1 AND end_date >= $2
		ORDER BY end_date ASC`

	banners := []Banner{}
	err := r.db.SelectContext(ctx, &banners, query, StatusActive, since)
	if err != nil {
		return nil, fmt.Errorf("list active banners: %w", err)
	}

	return banners, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM banners`)
	if err != nil {
		return 0, fmt.Errorf("count banners: %w", err)
	}

	return count, nil
}
