package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
)

// defaultAppScheme is the deep-link scheme used when the client does not
// provide one.
const defaultAppScheme = "mobile://"

// ConnectTokener defines only the methods needed by this handler.
type ConnectTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Connecter defines the interface that the service must implement.
type Connecter interface {
	Connect(ctx context.Context, userID uuid.UUID, refreshURL, returnURL string) (string, error)
}

// ConnectRequest represents the JSON body for starting onboarding
// swagger:model ConnectRequest
type ConnectRequest struct {
	// Deep-link scheme of the calling app
	// default: mobile://
	DeepLinkBase string `json:"deep_link_base"`
}

// ConnectResponse represents a successful onboarding-link response
// swagger:model ConnectResponse
type ConnectResponse struct {
	// Onboarding URL at the payment processor
	URL string `json:"url"`
}

// ConnectErrorResponse represents an error response for connect
// swagger:model ConnectErrorResponse
type ConnectErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewConnectHandler returns an HTTP handler that starts processor onboarding
// for the user and returns the onboarding link.
// @Summary Connect a processor account
// @Description Creates a processor account for the user if needed and returns an onboarding link. Redirects land on the processor redirect pages which forward to the app deep link.
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.ConnectRequest false "Connect Request"
// @Success 200 {object} handlers.ConnectResponse "Onboarding URL"
// @Failure 401 {object} handlers.ConnectErrorResponse "Unauthorized"
// @Router /account/connect [post]
// @Security BearerAuth
func NewConnectHandler(
	svc Connecter,
	tokenGetter ConnectTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConnectErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ConnectErrorResponse{Error: "Unauthorized"})
			return
		}

		// Body is optional; an empty one keeps the default scheme.
		var req ConnectRequest
		_ = json.NewDecoder(r.Body).Decode(&req)

		appScheme := req.DeepLinkBase
		if appScheme == "" {
			appScheme = defaultAppScheme
		}

		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		baseURL := fmt.Sprintf("%s://%s/api/v1/processor", scheme, r.Host)

		refreshURL := fmt.Sprintf("%s/refresh?redirect_uri=%s", baseURL, url.QueryEscape(appScheme+"processor/refresh"))
		returnURL := fmt.Sprintf("%s/return?redirect_uri=%s", baseURL, url.QueryEscape(appScheme+"processor/return"))

		link, err := svc.Connect(ctx, claims.UserID, refreshURL, returnURL)
		if err != nil {
			logger.Log.Errorw("failed to connect account", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ConnectErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ConnectResponse{URL: link})
	}
}
