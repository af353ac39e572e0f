package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMetricsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	claims := &jwt.Claims{UserID: userID}

	tests := []struct {
		name         string
		mockSetup    func(svc *MockMetricsGetter, tokener *MockCreateLinkTokener)
		expectedCode int
	}{
		{
			name: "returns metrics",
			mockSetup: func(svc *MockMetricsGetter, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().Metrics(gomock.Any(), userID).
					Return(&models.TransactionMetrics{TotalSales: 30.0, Count: 3, PaidCount: 2}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unauthorized",
			mockSetup: func(svc *MockMetricsGetter, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "service failure",
			mockSetup: func(svc *MockMetricsGetter, tokener *MockCreateLinkTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().GetClaims(gomock.Any(), "token").Return(claims, nil)
				svc.EXPECT().Metrics(gomock.Any(), userID).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMetricsGetter(ctrl)
			mockTokener := NewMockCreateLinkTokener(ctrl)
			tt.mockSetup(mockSvc, mockTokener)

			handler := NewMetricsHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var metrics models.TransactionMetrics
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&metrics))
				assert.Equal(t, 30.0, metrics.TotalSales)
				assert.Equal(t, int64(2), metrics.PaidCount)
			}
		})
	}
}
