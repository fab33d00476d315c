// BYH Music Store | 2026
// dto.go

package order

import (
	"time"
)

type OrderResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Total     float64   `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
}

func ToOrderResponse(o *Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UserName:  o.UserName,
		UserEmail: o.UserEmail,
	}
}

func ToOrderResponseList(orders []Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, ToOrderResponse(&o))
	}
	return responses
}
