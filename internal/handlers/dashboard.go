package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/services"
)

// DashboardTokener defines only the methods needed by this handler.
type DashboardTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// DashboardLinker defines the interface that the service must implement.
type DashboardLinker interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (string, error)
}

// DashboardResponse represents a successful dashboard-link response
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Dashboard login URL at the payment processor
	URL string `json:"url"`
}

// DashboardErrorResponse represents an error response for dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: No payment processor account connected
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler that mints a processor
// dashboard login link.
// @Summary Get processor dashboard link
// @Description Returns a login link to the processor dashboard for the user's connected account.
// @Tags account
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard URL"
// @Failure 400 {object} handlers.DashboardErrorResponse "No account connected"
// @Failure 401 {object} handlers.DashboardErrorResponse "Unauthorized"
// @Router /account/dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(
	svc DashboardLinker,
	tokenGetter DashboardTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		link, err := svc.Dashboard(ctx, claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoProcessorAccount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "No payment processor account connected"})
			default:
				logger.Log.Errorw("failed to get dashboard link", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{URL: link})
	}
}
