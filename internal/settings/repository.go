// BYH Music Store | 2026
// repository.go

package settings

import (
	"context"
	"fmt"

	"github.com/byhstore/byh-store/internal/core"
)

// Setting is a single key/value row; the API surface works with the flat
// map produced by GetAll.
type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

type Repository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Upsert(ctx context.Context, values map[string]string) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) (map[string]string, error) {
	rows := []Setting{}
	query := `SELECT key, value FROM settings ORDER BY key`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	return values, nil
}

// Upsert writes every submitted pair, inserting new keys and overwriting
// existing ones. Keys absent from values are left untouched.
func (r *repository) Upsert(
	ctx context.Context,
	values map[string]string,
) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	for key, value := range values {
		if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
			return fmt.Errorf("upsert setting %q: %w", key, err)
		}
	}

	return nil
}
