package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID}

	t.Run("returns onboarding link with redirect pages", func(t *testing.T) {
		mockSvc := NewMockConnecter(ctrl)
		mockTokener := NewMockCreateLinkTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)

		var gotRefresh, gotReturn string
		mockSvc.EXPECT().
			Connect(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, refreshURL, returnURL string) (string, error) {
				gotRefresh, gotReturn = refreshURL, returnURL
				return "https://onboard.example/acct_1", nil
			})

		handler := NewConnectHandler(mockSvc, mockTokener)

		body, _ := json.Marshal(ConnectRequest{DeepLinkBase: "myapp://"})
		req := httptest.NewRequest(http.MethodPost, "/account/connect", bytes.NewReader(body))
		req.Host = "api.example.com"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ConnectResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "https://onboard.example/acct_1", resp.URL)

		// Redirect URLs point at this service and carry the app deep link.
		refresh, err := url.Parse(gotRefresh)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com", refresh.Host)
		assert.Equal(t, "/api/v1/processor/refresh", refresh.Path)
		assert.Equal(t, "myapp://processor/refresh", refresh.Query().Get("redirect_uri"))

		ret, err := url.Parse(gotReturn)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/processor/return", ret.Path)
		assert.Equal(t, "myapp://processor/return", ret.Query().Get("redirect_uri"))
	})

	t.Run("empty body keeps default scheme", func(t *testing.T) {
		mockSvc := NewMockConnecter(ctrl)
		mockTokener := NewMockCreateLinkTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)

		var gotReturn string
		mockSvc.EXPECT().
			Connect(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, refreshURL, returnURL string) (string, error) {
				gotReturn = returnURL
				return "https://onboard.example/acct_1", nil
			})

		handler := NewConnectHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodPost, "/account/connect", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		ret, err := url.Parse(gotReturn)
		require.NoError(t, err)
		assert.Equal(t, "mobile://processor/return", ret.Query().Get("redirect_uri"))
	})

	t.Run("unauthorized", func(t *testing.T) {
		mockSvc := NewMockConnecter(ctrl)
		mockTokener := NewMockCreateLinkTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))

		handler := NewConnectHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodPost, "/account/connect", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := NewMockConnecter(ctrl)
		mockTokener := NewMockCreateLinkTokener(ctrl)

		mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
		mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
		mockSvc.EXPECT().
			Connect(gomock.Any(), userID, gomock.Any(), gomock.Any()).
			Return("", errors.New("processor down"))

		handler := NewConnectHandler(mockSvc, mockTokener)

		req := httptest.NewRequest(http.MethodPost, "/account/connect", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
