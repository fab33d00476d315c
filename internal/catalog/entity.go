// BYH Music Store | 2026
// entity.go

package catalog

import (
	"time"
)

type Product struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	Description string    `db:"description"`
	ImageURL    *string   `db:"image_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}
