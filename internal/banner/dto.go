// BYH Music Store | 2026
// dto.go

package banner

import (
	"time"
)

const dateLayout = "2006-01-02"

// BannerForm arrives as a multipart form; the image itself travels in the
// banner_image_file part and is handled by the upload store.
type BannerForm struct {
	Title     string `schema:"title"      validate:"required,min=1,max=200"`
	LinkURL   string `schema:"link_url"   validate:"omitempty,url,max=500"`
	StartDate string `schema:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `schema:"end_date"   validate:"required,datetime=2006-01-02"`
	Status    string `schema:"status"     validate:"omitempty,oneof=active inactive"`
}

type BannerResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url,omitempty"`
	LinkURL   string    `json:"link_url,omitempty"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func ToBannerResponse(b *Banner) BannerResponse {
	resp := BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
	}
	if b.ImageURL != nil {
		resp.ImageURL = *b.ImageURL
	}
	if b.LinkURL != nil {
		resp.LinkURL = *b.LinkURL
	}
	return resp
}

func ToBannerResponseList(banners []Banner) []BannerResponse {
	responses := make([]BannerResponse, 0, len(banners))
	for _, b := range banners {
		responses = append(responses, ToBannerResponse(&b))
	}
	return responses
}
