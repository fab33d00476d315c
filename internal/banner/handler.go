// BYH Music Store | 2026
// handler.go

package banner

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/byhstore/byh-store/internal/core"
	"github.com/byhstore/byh-store/internal/middleware"
	"github.com/byhstore/byh-store/internal/upload"
)

const maxBannerFormBytes = 12 << 20

type Handler struct {
	service  *Service
	uploads  *upload.Store
	validate *validator.Validate
	decoder  *schema.Decoder
}

func NewHandler(service *Service, uploads *upload.Store) *Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		service:  service,
		uploads:  uploads,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		decoder:  decoder,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/banners", h.ListBanners)
	r.Get("/banners/active", h.ListActiveBanners)
	r.Get("/banners/{bannerID}", h.GetBanner)
}

func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticate func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Post("/banners", h.CreateBanner)
		r.Put("/banners/{bannerID}", h.UpdateBanner)
		r.Delete("/banners/{bannerID}", h.DeleteBanner)
	})
}

func (h *Handler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBannerResponseList(banners))
}

func (h *Handler) ListActiveBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.service.ListActive(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBannerResponseList(banners))
}

func (h *Handler) GetBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerID")

	banner, err := h.service.Get(r.Context(), bannerID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "banner")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToBannerResponse(banner))
}

func (h *Handler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	form, imageURL, ok := h.parseBannerForm(w, r)
	if !ok {
		return
	}

	banner, err := h.service.Create(r.Context(), form, imageURL)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "Fechas del banner no válidas.")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToBannerResponse(banner))
}

func (h *Handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerID")

	form, imageURL, ok := h.parseBannerForm(w, r)
	if !ok {
		return
	}

	banner, err := h.service.Update(r.Context(), bannerID, form, imageURL)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "banner")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "Fechas del banner no válidas.")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToBannerResponse(banner))
}

func (h *Handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	bannerID := chi.URLParam(r, "bannerID")

	if err := h.service.Delete(r.Context(), bannerID); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "banner")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, map[string]string{"message": "Banner eliminado correctamente."})
}

func (h *Handler) parseBannerForm(
	w http.ResponseWriter,
	r *http.Request,
) (BannerForm, string, bool) {
	if err := r.ParseMultipartForm(maxBannerFormBytes); err != nil {
		core.BadRequest(w, "Formulario del banner no válido.")
		return BannerForm{}, "", false
	}

	var form BannerForm
	if err := h.decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		core.BadRequest(w, "Formulario del banner no válido.")
		return BannerForm{}, "", false
	}

	if err := h.validate.Struct(form); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return BannerForm{}, "", false
	}

	imageURL, err := h.uploads.SaveFromRequest(r, "banner_image_file")
	if err != nil {
		core.BadRequest(w, "No se pudo guardar la imagen del banner.")
		return BannerForm{}, "", false
	}

	return form, imageURL, true
}
