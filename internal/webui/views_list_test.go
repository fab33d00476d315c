// BYH Music Store | 2026
// views_list_test.go

package webui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byhstore/byh-store/internal/apiclient"
)

func TestProductosSubmitDeletesRow(t *testing.T) {
	var gotMethod, gotPath, gotToken string

	backend := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotToken = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"message":"Producto eliminado correctamente."}`))
		},
	))
	defer backend.Close()

	api := apiclient.New(backend.URL, time.Second)
	view := NewProductosView(api)

	ctx := WithSession(context.Background(), Session{Token: "tok-1"})
	form := url.Values{"_action": {"delete"}, "_id": {"p1"}}

	require.NoError(t, view.Submit(ctx, form))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/products/p1", gotPath)
	assert.Equal(t, "Bearer tok-1", gotToken)
}

func TestProductosSubmitIgnoresUnknownAction(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		},
	))
	defer backend.Close()

	view := NewProductosView(apiclient.New(backend.URL, time.Second))

	err := view.Submit(context.Background(), url.Values{"_action": {"edit"}})
	require.NoError(t, err)

	err = view.Submit(context.Background(), url.Values{"_action": {"delete"}})
	require.NoError(t, err)
}
