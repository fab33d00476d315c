// BYH Music Store | 2026
// handler.go

package catalog

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

const maxProductFormBytes = 12 << 20

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

// RegisterRoutes mounts the public catalog endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{productID}", h.GetProduct)
}

// RegisterAdminRoutes mounts the mutating endpoints behind authentication.
// The patterns overlap with the public reads, so these use an inline group
// instead of a subrouter mount.
func (h *Handler) RegisterAdminRoutes(
	r chi.Router,
	authenticate func(http.Handler) http.Handler,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Post("/products", h.CreateProduct)
		r.Put("/products/{productID}", h.UpdateProduct)
		r.Delete("/products/{productID}", h.DeleteProduct)
	})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponseList(products))
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	form, imageURL, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), form, imageURL)
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			core.BadRequest(w, "Datos del producto no válidos.")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToProductResponse(product))
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	form, imageURL, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), productID, form, imageURL)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrNotFound):
			core.NotFound(w, "product")
		case errors.Is(err, core.ErrInvalidInput):
			core.BadRequest(w, "Datos del producto no válidos.")
		default:
			core.InternalServerError(w, err)
		}
		return
	}

	core.OK(w, ToProductResponse(product))
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	product, err := h.service.Delete(r.Context(), productID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			core.NotFound(w, "product")
			return
		}
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DeleteProductResponse{
		Message:        "Producto eliminado correctamente.",
		DeletedProduct: ToProductResponse(product),
	})
}

// parseProductForm decodes the multipart body, stores an attached image if
// one was sent, and validates the resulting form. It writes the error
// response itself and reports success through the third return value.
func (h *Handler) parseProductForm(
	w http.ResponseWriter,
	r *http.Request,
) (ProductForm, string, bool) {
	if err := r.ParseMultipartForm(maxProductFormBytes); err != nil {
		core.BadRequest(w, "Formulario de producto no válido.")
		return ProductForm{}, "", false
	}

	var form ProductForm
	if err := h.decoder.Decode(&form, r.MultipartForm.Value); err != nil {
		core.BadRequest(w, "Formulario de producto no válido.")
		return ProductForm{}, "", false
	}

	if err := h.validate.Struct(form); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return ProductForm{}, "", false
	}

	imageURL, err := h.uploads.SaveFromRequest(r, "image_file")
	if err != nil {
		core.BadRequest(w, "No se pudo guardar la imagen del producto.")
		return ProductForm{}, "", false
	}

	return form, imageURL, true
}
