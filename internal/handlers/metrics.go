package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
)

// MetricsTokener defines only the methods needed by this handler.
type MetricsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// MetricsGetter defines the interface that the service must implement.
type MetricsGetter interface {
	Metrics(ctx context.Context, userID uuid.UUID) (*models.TransactionMetrics, error)
}

// MetricsErrorResponse represents an error response for metrics
// swagger:model MetricsErrorResponse
type MetricsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewMetricsHandler returns an HTTP handler for transaction metrics.
// Pending transactions are reconciled before totals are computed.
// @Summary Get transaction metrics
// @Description Sweeps the user's PENDING transactions and returns total paid amount, transaction count and paid count.
// @Tags transactions
// @Produce json
// @Success 200 {object} models.TransactionMetrics "Metrics"
// @Failure 401 {object} handlers.MetricsErrorResponse "Unauthorized"
// @Router /transactions/metrics [get]
// @Security BearerAuth
func NewMetricsHandler(
	svc MetricsGetter,
	tokenGetter MetricsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MetricsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MetricsErrorResponse{Error: "Unauthorized"})
			return
		}

		metrics, err := svc.Metrics(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get metrics", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MetricsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(metrics)
	}
}
