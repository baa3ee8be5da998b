package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_PassesUserIDAndRole(t *testing.T) {
	var gotID int64
	var gotOk, gotAdmin bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOk = UserID(r.Context())
		gotAdmin = IsAdmin(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/failed-visits", nil)
	req.Header.Set("X-User-ID", "17")
	req.Header.Set("X-User-Role", "admin")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gotOk)
	assert.Equal(t, int64(17), gotID)
	assert.True(t, gotAdmin)
}

func TestAuth_NonAdminRole(t *testing.T) {
	var gotAdmin bool

	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin = IsAdmin(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/failed-visits", nil)
	req.Header.Set("X-User-ID", "17")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.False(t, gotAdmin)
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/failed-visits", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidUserID(t *testing.T) {
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	for _, raw := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/failed-visits", nil)
		req.Header.Set("X-User-ID", raw)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
