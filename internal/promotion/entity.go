// BYH Music Store | 2026
// entity.go

package promotion

import (
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusExpired  = "expired"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed_amount"
)

type Promotion struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	DiscountType  string    `db:"discount_type"`
	DiscountValue float64   `db:"discount_value"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// CurrentlyActive reports whether the promotion should be shown on the
// storefront at the given instant. A promotion stays visible through the
// whole of its end date, so the comparison runs against that day's
// midnight.
func (p *Promotion) CurrentlyActive(now time.Time) bool {
	if p.Status != StatusActive {
		return false
	}
	today := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0,
		now.Location(),
	)
	return !p.EndDate.Before(today)
}
