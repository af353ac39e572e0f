package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-payment-links/internal/jwt"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/models"
	"github.com/sbilibin2017/gw-payment-links/internal/services"
)

// defaultCurrency is used when a create request omits the currency.
const defaultCurrency = "usd"

// CreateLinkTokener defines only the methods needed by this handler.
type CreateLinkTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// LinkCreator defines the interface that the service must implement.
type LinkCreator interface {
	CreatePaymentLink(ctx context.Context, userID uuid.UUID, amount float64, currency, description, successURL string) (*models.TransactionDB, error)
}

// CreateLinkRequest represents the JSON body for creating a payment link
// swagger:model CreateLinkRequest
type CreateLinkRequest struct {
	// Amount in major units
	// required: true
	// default: 10.0
	Amount float64 `json:"amount"`

	// Currency code
	// default: usd
	Currency string `json:"currency"`

	// Description shown to the payer
	// default: Payment
	Description string `json:"description"`

	// Deep-link scheme of the calling app, used for the post-payment redirect
	// default: mobile://
	DeepLinkBase string `json:"deep_link_base"`
}

// CreateLinkErrorResponse represents an error response for link creation
// swagger:model CreateLinkErrorResponse
type CreateLinkErrorResponse struct {
	// Error message
	// default: Amount is required
	Error string `json:"error"`
}

// NewCreateLinkHandler returns an HTTP handler that mints a payment link and
// records the PENDING transaction.
// @Summary Create a payment link
// @Description Creates a payment link at the processor and stores the transaction with status PENDING.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateLinkRequest true "Create Link Request"
// @Success 201 {object} models.TransactionDB "Transaction created"
// @Failure 400 {object} handlers.CreateLinkErrorResponse "Invalid request / account not connected"
// @Failure 401 {object} handlers.CreateLinkErrorResponse "Unauthorized"
// @Router /transactions [post]
// @Security BearerAuth
func NewCreateLinkHandler(
	svc LinkCreator,
	tokenGetter CreateLinkTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create link request", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Amount <= 0 {
			logger.Log.Warnw("invalid amount", "amount", req.Amount)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: "Amount is required"})
			return
		}
		if req.Currency == "" {
			req.Currency = defaultCurrency
		}

		appScheme := req.DeepLinkBase
		if appScheme == "" {
			appScheme = defaultAppScheme
		}

		// After checkout the processor bounces the payer's browser to our
		// success page, which forwards to the app deep link.
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		successURL := fmt.Sprintf("%s://%s/api/v1/processor/success?redirect_uri=%s",
			scheme, r.Host, url.QueryEscape(appScheme+"processor/success"))

		txn, err := svc.CreatePaymentLink(ctx, claims.UserID, req.Amount, req.Currency, req.Description, successURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccountNotConnected):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: "Please connect your payment processor account first"})
			default:
				logger.Log.Errorw("failed to create payment link", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateLinkErrorResponse{Error: err.Error()})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(txn)
	}
}
