package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, zap.NewNop().Sugar())
}

func TestClientSendsJSONContentType(t *testing.T) {
	var gotContentType, gotMethod string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		_, _ = w.Write([]byte(`{"id":"u1"}`))
	})

	raw, err := c.Post(context.Background(), "/api/admin/users", map[string]string{"name": "Amina"})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u1"}`, string(raw))
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, http.MethodPost, gotMethod)
}

func TestClientNoContentReturnsNilNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	raw, err := c.Delete(context.Background(), "/api/admin/users/u1")
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestClientEmptySuccessBodyReturnsNilNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	raw, err := c.Get(context.Background(), "/api/admin/users")
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestClientExtractsErrorMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "email already exists"})
	})

	_, err := c.Post(context.Background(), "/api/admin/users", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "email already exists", apiErr.Message)
	require.Equal(t, "email already exists", apiErr.Error())
}

func TestClientUnparseableErrorBodyFallsBack(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "html", body: "<html>bad gateway</html>"},
		{name: "empty_object", body: "{}"},
		{name: "empty", body: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Get(context.Background(), "/api/admin/users")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadGateway, apiErr.Status)
			require.Equal(t, "unknown error", apiErr.Message)
		})
	}
}

func TestClientWithHeadersMergesOnEveryRequest(t *testing.T) {
	var gotAuth string
	base := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	})

	h := http.Header{}
	h.Set("Authorization", "Bearer token")
	c := base.WithHeaders(h)

	_, err := c.Get(context.Background(), "/api/admin/users")
	require.NoError(t, err)
	require.Equal(t, "Bearer token", gotAuth)
}

func TestClientContextCancellation(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Get(ctx, "/api/admin/users")
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
