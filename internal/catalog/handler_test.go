// BYH Music Store | 2026
// handler_test.go

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/config"
	"github.com/byhstore/byh-store/internal/core"
	"github.com/byhstore/byh-store/internal/middleware"
	"github.com/byhstore/byh-store/internal/upload"
)

type fakeRepository struct {
	products map[string]*Product
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{products: make(map[string]*Product)}
}

func (f *fakeRepository) Create(_ context.Context, product *Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeRepository) GetByID(
	_ context.Context,
	id string,
) (*Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("get product %s: %w", id, core.ErrNotFound)
	}
	copied := *product
	return &copied, nil
}

func (f *fakeRepository) Update(_ context.Context, product *Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("update product %s: %w", product.ID, core.ErrNotFound)
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeRepository) Delete(
	_ context.Context,
	id string,
) (*Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("delete product %s: %w", id, core.ErrNotFound)
	}
	delete(f.products, id)
	return product, nil
}

func (f *fakeRepository) List(_ context.Context) ([]Product, error) {
	products := make([]Product, 0, len(f.products))
	for _, p := range f.products {
		products = append(products, *p)
	}
	return products, nil
}

func (f *fakeRepository) Count(_ context.Context) (int, error) {
	return len(f.products), nil
}

func asAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserIDKey, "admin-1")
		ctx = context.WithValue(ctx, middleware.UserRoleKey, "admin")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newTestRouter(t *testing.T) (chi.Router, *fakeRepository) {
	t.Helper()

	repo := newFakeRepository()
	service := NewService(repo)

	uploads, err := upload.NewStore(config.UploadConfig{
		Dir:        t.TempDir(),
		PublicPath: "/uploads",
		MaxBytes:   1 << 20,
	})
	require.NoError(t, err)

	handler := NewHandler(service, uploads)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	handler.RegisterAdminRoutes(r, asAdmin)

	return r, repo
}

func productFormBody(
	t *testing.T,
	fields map[string]string,
) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestCreateProductCoercesNumericFields(t *testing.T) {
	router, repo := newTestRouter(t)

	body, contentType := productFormBody(t, map[string]string{
		"name":        "Stratocaster",
		"category":    "guitars",
		"price":       "1299.99",
		"stock":       "4",
		"description": "Sunburst finish",
	})

	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Stratocaster", resp.Name)
	assert.InDelta(t, 1299.99, resp.Price, 0.001)
	assert.Equal(t, 4, resp.Stock)
	assert.Empty(t, resp.ImageURL)
	require.Len(t, repo.products, 1)
}

func TestCreateProductRejectsMissingName(t *testing.T) {
	router, _ := newTestRouter(t)

	body, contentType := productFormBody(t, map[string]string{
		"category": "guitars",
		"price":    "10",
		"stock":    "1",
	})

	req := httptest.NewRequest(http.MethodPost, "/products", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "name")
}

func TestGetProductNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestDeleteProductReturnsDeletedPayload(t *testing.T) {
	router, repo := newTestRouter(t)

	repo.products["p1"] = &Product{
		ID:       "p1",
		Name:     "Telecaster",
		Category: "guitars",
		Price:    999,
		Stock:    2,
	}

	req := httptest.NewRequest(http.MethodDelete, "/products/p1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DeleteProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Producto eliminado correctamente.", resp.Message)
	assert.Equal(t, "p1", resp.DeletedProduct.ID)
	assert.Empty(t, repo.products)
}

func TestDeleteProductMissing(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/products/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProductKeepsImageWithoutNewUpload(t *testing.T) {
	router, repo := newTestRouter(t)

	imageURL := "http://example.com/uploads/image_file-1.png"
	repo.products["p1"] = &Product{
		ID:       "p1",
		Name:     "Telecaster",
		Category: "guitars",
		Price:    999,
		Stock:    2,
		ImageURL: &imageURL,
	}

	body, contentType := productFormBody(t, map[string]string{
		"name":     "Telecaster Deluxe",
		"category": "guitars",
		"price":    "1099",
		"stock":    "3",
	})

	req := httptest.NewRequest(http.MethodPut, "/products/p1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Telecaster Deluxe", resp.Name)
	assert.Equal(t, imageURL, resp.ImageURL)
}
