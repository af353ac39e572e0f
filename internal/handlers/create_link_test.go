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
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/sbilibin2017/gw-payment-links/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestCreateLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func(svc *MockLinkCreator, tokener *MockCreateLinkTokener)
		expectedCode int
	}{
		{
			name:      "success",
			inputBody: CreateLinkRequest{Amount: 10.0, Currency: "usd", Description: "Coffee"},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().
					CreatePaymentLink(gomock.Any(), userID, 10.0, "usd", "Coffee", gomock.Any()).
					Return(&models.TransactionDB{
						TransactionID: uuid.New(),
						UserID:        userID,
						PaymentLinkID: "plink_1",
						Status:        models.StatusPending,
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:      "missing currency falls back to default",
			inputBody: CreateLinkRequest{Amount: 10.0},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().
					CreatePaymentLink(gomock.Any(), userID, 10.0, "usd", "", gomock.Any()).
					Return(&models.TransactionDB{Status: models.StatusPending}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:      "zero amount",
			inputBody: CreateLinkRequest{Amount: 0},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "invalid JSON",
			inputBody: "{invalid json}",
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "account not connected",
			inputBody: CreateLinkRequest{Amount: 10.0},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().
					CreatePaymentLink(gomock.Any(), userID, 10.0, "usd", "", gomock.Any()).
					Return(nil, services.ErrAccountNotConnected)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "unauthorized",
			inputBody: CreateLinkRequest{Amount: 10.0},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "service failure",
			inputBody: CreateLinkRequest{Amount: 10.0},
			mockSetup: func(svc *MockLinkCreator, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().
					CreatePaymentLink(gomock.Any(), userID, 10.0, "usd", "", gomock.Any()).
					Return(nil, errors.New("processor down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLinkCreator(ctrl)
			mockTokener := NewMockCreateLinkTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewCreateLinkHandler(mockSvc, mockTokener)

			var body bytes.Buffer
			switch v := tt.inputBody.(type) {
			case string:
				body.WriteString(v)
			default:
				json.NewEncoder(&body).Encode(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/transactions", &body)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusCreated {
				var txn models.TransactionDB
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&txn))
				assert.Equal(t, models.StatusPending, txn.Status)
			}
		})
	}
}

func TestCreateLinkHandler_SuccessRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID}

	tests := []struct {
		name         string
		deepLinkBase string
		wantRedirect string
	}{
		{
			name:         "custom app scheme",
			deepLinkBase: "myapp://",
			wantRedirect: "myapp://processor/success",
		},
		{
			name:         "default app scheme",
			deepLinkBase: "",
			wantRedirect: "mobile://processor/success",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLinkCreator(ctrl)
			mockTokener := NewMockCreateLinkTokener(ctrl)

			mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
			mockTokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)

			var gotSuccessURL string
			mockSvc.EXPECT().
				CreatePaymentLink(gomock.Any(), userID, 10.0, "usd", "", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, _ float64, _, _, successURL string) (*models.TransactionDB, error) {
					gotSuccessURL = successURL
					return &models.TransactionDB{Status: models.StatusPending}, nil
				})

			handler := NewCreateLinkHandler(mockSvc, mockTokener)

			var body bytes.Buffer
			json.NewEncoder(&body).Encode(CreateLinkRequest{Amount: 10.0, DeepLinkBase: tt.deepLinkBase})

			req := httptest.NewRequest(http.MethodPost, "/transactions", &body)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusCreated, w.Code)

			// The success page bounces the payer's browser back into the app.
			parsed, err := url.Parse(gotSuccessURL)
			assert.NoError(t, err)
			assert.Equal(t, "/api/v1/processor/success", parsed.Path)
			assert.Equal(t, tt.wantRedirect, parsed.Query().Get("redirect_uri"))
		})
	}
}
