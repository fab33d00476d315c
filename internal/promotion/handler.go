// BYH Music Store | 2026
// handler.go

package promotion

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/byhstore/byh-store/internal/core"
	"github.com/byhstore/byh-store/internal/middleware"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/promotions", h.ListPromotions)
	r.Get("/promotions/active", h.ListActivePromotions)
	r.Get("/promotions/{promotionID}", h.GetPromotion)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticate func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Post("/promotions", h.CreatePromotion)
		r.Put("/promotions/{promotionID}", h.UpdatePromotion)
		r.Delete("/promotions/{promotionID}", h.DeletePromotion)
	})
}

func (h *Handler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPromotionResponseList(promotions))
}

func (h *Handler) ListActivePromotions(
	w http.ResponseWriter,
	r *http.Request,
) {
	promotions, err := h.service.ListActive(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPromotionResponseList(promotions))
}

func (h *Handler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	promotionID := chi.URLParam(r, "promotionID")

	promotion, err := h.service.Get(r.Context(), promotionID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "promotion")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToPromotionResponse(promotion))
}

func (h *Handler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	promotion, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "Fechas de la promoción no válidas.")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToPromotionResponse(promotion))
}

func (h *Handler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID := chi.URLParam(r, "promotionID")

	req, ok := h.decodeRequest(w, r)
	if !ok {
		return
	}

	promotion, err := h.service.Update(r.Context(), promotionID, req)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "promotion")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "Fechas de la promoción no válidas.")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToPromotionResponse(promotion))
}

func (h *Handler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	promotionID := chi.URLParam(r, "promotionID")

	if err := h.service.Delete(r.Context(), promotionID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "promotion")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{
		"message": "Promoción eliminada correctamente.",
	})
}

func (h *Handler) decodeRequest(
	w http.ResponseWriter,
	r *http.Request,
) (PromotionRequest, bool) {
	var req PromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return PromotionRequest{}, false
	}

	if err := h.validate.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return PromotionRequest{}, false
	}

	return req, true
}
