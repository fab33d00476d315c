// BYH Music Store | 2026
// entity.go

package banner

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Banner struct {
	ID        string    `db:"id"`
	Title     string    `db:"title"`
	ImageURL  *string   `db:"image_url"`
	LinkURL   *string   `db:"link_url"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
