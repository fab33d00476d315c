// BYH Music Store | 2026
// handler_test.go

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/core"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	service, _ := newTestService(t)
	handler := NewHandler(service)

	r := chi.NewRouter()
	handler.RegisterRoutes(r, func(next http.Handler) http.Handler {
		return next
	})

	return r
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestLoginHandlerSuccess(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/auth/login",
		`{"email":"ana@example.com","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Ana", resp.User.Name)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/auth/login",
		`{"email":"ana@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Credenciales incorrectas.", resp.Message)
}

func TestLoginHandlerMissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/auth/login", `{"email":"ana@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name":"Ana","email":"ana@example.com","password":"secret123"}`
	rec := postJSON(t, router, "/auth/register", body)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "El correo electrónico ya está registrado.", resp.Message)
}

func TestRefreshHandlerUnknownToken(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/auth/refresh",
		`{"refresh_token":"never-issued"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
