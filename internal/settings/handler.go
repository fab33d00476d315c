// BYH Music Store | 2026
// handler.go

package settings

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/byhstore/byh-store/internal/core"
	"github.com/byhstore/byh-store/internal/middleware"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticate func(http.Handler) http.Handler,
) {
	r.Route("/settings", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Get("/", h.GetSettings)
		r.Put("/", h.UpdateSettings)
	})
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.GetAll(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, values)
}

// UpdateSettings takes the flat map, upserts every pair, and echoes the
// resulting full map back.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if len(values) == 0 {
		core.BadRequest(w, "no settings submitted")
		return
	}

	merged, err := h.service.Upsert(r.Context(), values)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, merged)
}
