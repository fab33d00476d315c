// BYH Music Store | 2026
// client_test.go

package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestSendsBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"ok":true}`)) //nolint:errcheck
		}))
	defer server.Close()

	client := New(server.URL, time.Second)
	client.SetToken("tok-123")

	var out map[string]bool
	err := client.Request(context.Background(), http.MethodGet, "/x", nil, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "application/json", gotAccept)
	assert.True(t, out["ok"])
}

func TestRequestOmitsAuthWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusNoContent)
		}))
	defer server.Close()

	client := New(server.URL, time.Second)

	err := client.Request(
		context.Background(),
		http.MethodPost,
		"/x",
		map[string]string{"a": "b"},
		nil,
	)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestRequestDecodesErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			//nolint:errcheck
			w.Write([]byte(`{"message":"Credenciales incorrectas.","code":"UNAUTHORIZED"}`))
		}))
	defer server.Close()

	client := New(server.URL, time.Second)

	err := client.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.Error(t, err)

	assert.True(t, IsUnauthorized(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Credenciales incorrectas.", apiErr.Message)
}

func TestRequestGenericErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded")) //nolint:errcheck
		}))
	defer server.Close()

	client := New(server.URL, time.Second)

	err := client.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "502")
}

func TestRequestNoRetries(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
	defer server.Close()

	client := New(server.URL, time.Second)

	err := client.Request(context.Background(), http.MethodGet, "/x", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
