package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-payment-links/internal/facades"
	"github.com/sbilibin2017/gw-payment-links/internal/logger"
	"github.com/sbilibin2017/gw-payment-links/internal/services"
)

// EventVerifier verifies the signature over the exact payload bytes and
// parses the event.
type EventVerifier interface {
	ConstructEvent(payload []byte, sigHeader string) (*facades.Event, error)
}

// CheckoutCompleter applies the PAID transition for a payment link.
type CheckoutCompleter interface {
	HandleCheckoutCompleted(ctx context.Context, paymentLinkID string) error
}

// WebhookErrorResponse represents a webhook rejection
// swagger:model WebhookErrorResponse
type WebhookErrorResponse struct {
	// Error message
	// default: Webhook signature verification failed
	Error string `json:"error"`
}

// NewWebhookHandler returns the HTTP handler for processor webhook events.
// Only signature or parse failures produce a non-2xx response; an event that
// maps to no known transaction is acknowledged so the processor does not
// retry it.
// @Summary Receive processor webhook events
// @Description Verifies the event signature against the raw body and applies the PAID transition for completed checkout sessions.
// @Tags webhook
// @Accept json
// @Produce json
// @Success 200 "Event acknowledged"
// @Failure 400 {object} handlers.WebhookErrorResponse "Signature or payload verification failed"
// @Router /webhook [post]
func NewWebhookHandler(svc CheckoutCompleter, verifier EventVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Signature verification needs the exact bytes as sent.
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookErrorResponse{Error: "Failed to read request body"})
			return
		}

		event, err := verifier.ConstructEvent(payload, r.Header.Get("Webhook-Signature"))
		if err != nil {
			logger.Log.Errorw("webhook verification failed", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WebhookErrorResponse{Error: err.Error()})
			return
		}

		switch event.Type {
		case facades.EventCheckoutSessionCompleted:
			linkID := event.Data.Object.PaymentLink
			if linkID == "" {
				logger.Log.Infow("checkout session completed without payment link, ignoring", "event_id", event.ID)
				break
			}

			if err := svc.HandleCheckoutCompleted(ctx, linkID); err != nil {
				// Application-level failures must not trigger processor
				// re-delivery; the lazy sweep self-heals.
				if errors.Is(err, services.ErrTransactionNotFound) {
					logger.Log.Infow("no transaction for payment link, ignoring", "payment_link_id", linkID, "event_id", event.ID)
				} else {
					logger.Log.Errorw("failed to process checkout completion", "payment_link_id", linkID, "event_id", event.ID, "error", err)
				}
			}
		default:
			logger.Log.Infow("unhandled event type", "type", event.Type, "event_id", event.ID)
		}

		w.WriteHeader(http.StatusOK)
	}
}
