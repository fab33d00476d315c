// BYH Music Store | 2026
// entity.go

package order

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Order rows always travel with the buyer's name and email joined in; the
// admin panel never shows an order without them.
type Order struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Total     float64   `db:"total"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UserName  string    `db:"user_name"`
	UserEmail string    `db:"user_email"`
}
