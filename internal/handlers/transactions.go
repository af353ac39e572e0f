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

// ListTokener defines only the methods needed by this handler.
type ListTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionLister defines the interface that the service must implement.
// List sweeps the user's PENDING transactions before returning.
type TransactionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error)
}

// ListTransactionsErrorResponse represents an error response for listing
// swagger:model ListTransactionsErrorResponse
type ListTransactionsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListTransactionsHandler returns an HTTP handler for listing the user's
// transactions. Pending transactions are reconciled against the processor
// before the list is returned.
// @Summary List transactions
// @Description Sweeps the user's PENDING transactions against the processor and returns the full list, newest first.
// @Tags transactions
// @Produce json
// @Success 200 {array} models.TransactionDB "Transactions"
// @Failure 401 {object} handlers.ListTransactionsErrorResponse "Unauthorized"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(
	svc TransactionLister,
	tokenGetter ListTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		txns, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTransactionsErrorResponse{Error: "Internal server error"})
			return
		}
		if txns == nil {
			txns = []models.TransactionDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(txns)
	}
}
