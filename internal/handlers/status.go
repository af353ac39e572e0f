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

// StatusTokener defines only the methods needed by this handler.
type StatusTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// StatusGetter defines the interface that the service must implement.
type StatusGetter interface {
	Status(ctx context.Context, userID uuid.UUID) (*models.AccountStatus, error)
}

// StatusErrorResponse represents an error response for status
// swagger:model StatusErrorResponse
type StatusErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewStatusHandler returns an HTTP handler reporting the user's processor
// account status.
// @Summary Get processor account status
// @Description Returns whether the user's processor account may accept payments under the active onboarding policy.
// @Tags account
// @Produce json
// @Success 200 {object} models.AccountStatus "Account status"
// @Failure 401 {object} handlers.StatusErrorResponse "Unauthorized"
// @Router /account/status [get]
// @Security BearerAuth
func NewStatusHandler(
	svc StatusGetter,
	tokenGetter StatusTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatusErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatusErrorResponse{Error: "Unauthorized"})
			return
		}

		status, err := svc.Status(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get account status", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatusErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(status)
	}
}
