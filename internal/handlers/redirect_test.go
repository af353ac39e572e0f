package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestRedirectHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/processor/{action}", NewRedirectHandler())

	t.Run("forwards to the given deep link", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/processor/return?redirect_uri=myapp://processor/return", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "myapp://processor/return")
	})

	t.Run("falls back to the default scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/processor/refresh", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mobile://processor/refresh")
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/processor/cancel", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
