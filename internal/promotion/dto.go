// BYH Music Store | 2026
// dto.go

package promotion

import (
	"time"
)

type PromotionRequest struct {
	Name          string  `json:"name"           validate:"required,min=1,max=200"`
	Description   string  `json:"description"    validate:"max=2000"`
	DiscountType  string  `json:"discount_type"  validate:"required,oneof=percentage fixed_amount"`
	DiscountValue float64 `json:"discount_value" validate:"gte=0"`
	StartDate     string  `json:"start_date"     validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"end_date"       validate:"required,datetime=2006-01-02"`
	Status        string  `json:"status"         validate:"omitempty,oneof=active inactive expired"`
}

type PromotionResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

const dateLayout = "2006-01-02"

func ToPromotionResponse(p *Promotion) PromotionResponse {
	return PromotionResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		StartDate:     p.StartDate.Format(dateLayout),
		EndDate:       p.EndDate.Format(dateLayout),
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

func ToPromotionResponseList(promotions []Promotion) []PromotionResponse {
	responses := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		responses = append(responses, ToPromotionResponse(&p))
	}
	return responses
}
