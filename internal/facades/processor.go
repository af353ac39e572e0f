package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sbilibin2017/gw-payment-links/internal/logger"
)

// GatewayError wraps any transport or API failure of the payment processor.
type GatewayError struct {
	Op  string // Operation being performed, e.g. "create payment link"
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("processor gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// Account is the processor-side view of a connected account.
type Account struct {
	ID               string `json:"id"`
	DetailsSubmitted bool   `json:"details_submitted"`
	ChargesEnabled   bool   `json:"charges_enabled"`
}

// CheckoutSession is one checkout attempt against a payment link.
type CheckoutSession struct {
	ID            string `json:"id"`
	PaymentLink   string `json:"payment_link"`
	PaymentStatus string `json:"payment_status"`
}

// PaymentStatusPaid is the session payment_status value meaning the payer completed payment.
const PaymentStatusPaid = "paid"

// ProcessorClient is a thin REST adapter to the payment processor API.
// It holds no local state beyond connection settings.
type ProcessorClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewProcessorClient creates a processor client with the given base URL,
// API key and request timeout.
func NewProcessorClient(baseURL, apiKey string, timeout time.Duration) *ProcessorClient {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &ProcessorClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type priceResponse struct {
	ID string `json:"id"`
}

type paymentLinkResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type sessionListResponse struct {
	Data []CheckoutSession `json:"data"`
}

type accountLinkResponse struct {
	URL string `json:"url"`
}

type loginLinkResponse struct {
	URL string `json:"url"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreatePaymentLink creates a price for the amount and a payment link
// referencing it on the connected account. A non-empty successURL is set as
// the link's after-completion redirect, so the payer's browser lands back on
// our redirect page after checkout. Returns the processor link id and the
// externally reachable payment URL.
func (c *ProcessorClient) CreatePaymentLink(ctx context.Context, accountID string, amount float64, currency, description, successURL string) (linkID, paymentURL string, err error) {
	priceBody := map[string]any{
		"currency":    currency,
		"unit_amount": int64(math.Round(amount * 100)), // processor expects minor units
		"product_data": map[string]any{
			"name": description,
		},
	}
	var price priceResponse
	if err := c.do(ctx, http.MethodPost, "/v1/prices", accountID, priceBody, &price); err != nil {
		return "", "", &GatewayError{Op: "create price", Err: err}
	}

	linkBody := map[string]any{
		"line_items": []map[string]any{
			{"price": price.ID, "quantity": 1},
		},
	}
	if successURL != "" {
		linkBody["after_completion"] = map[string]any{
			"type": "redirect",
			"redirect": map[string]any{
				"url": successURL,
			},
		}
	}
	var link paymentLinkResponse
	if err := c.do(ctx, http.MethodPost, "/v1/payment_links", accountID, linkBody, &link); err != nil {
		return "", "", &GatewayError{Op: "create payment link", Err: err}
	}

	return link.ID, link.URL, nil
}

// ListRecentSessions returns up to limit recent checkout sessions created
// from the given payment link. No ordering is guaranteed.
func (c *ProcessorClient) ListRecentSessions(ctx context.Context, accountID, paymentLinkID string, limit int) ([]CheckoutSession, error) {
	q := url.Values{}
	q.Set("payment_link", paymentLinkID)
	q.Set("limit", fmt.Sprintf("%d", limit))

	var resp sessionListResponse
	if err := c.do(ctx, http.MethodGet, "/v1/checkout/sessions?"+q.Encode(), accountID, nil, &resp); err != nil {
		return nil, &GatewayError{Op: "list checkout sessions", Err: err}
	}
	return resp.Data, nil
}

// CreateAccount creates a connected account for the given email and returns its id.
func (c *ProcessorClient) CreateAccount(ctx context.Context, email string) (string, error) {
	body := map[string]any{
		"type":  "express",
		"email": email,
	}
	var acct Account
	if err := c.do(ctx, http.MethodPost, "/v1/accounts", "", body, &acct); err != nil {
		return "", &GatewayError{Op: "create account", Err: err}
	}
	return acct.ID, nil
}

// CreateAccountLink mints an onboarding link for a connected account.
func (c *ProcessorClient) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (string, error) {
	body := map[string]any{
		"account":     accountID,
		"refresh_url": refreshURL,
		"return_url":  returnURL,
		"type":        "account_onboarding",
	}
	var link accountLinkResponse
	if err := c.do(ctx, http.MethodPost, "/v1/account_links", "", body, &link); err != nil {
		return "", &GatewayError{Op: "create account link", Err: err}
	}
	return link.URL, nil
}

// RetrieveAccount fetches the current state of a connected account.
func (c *ProcessorClient) RetrieveAccount(ctx context.Context, accountID string) (*Account, error) {
	var acct Account
	if err := c.do(ctx, http.MethodGet, "/v1/accounts/"+accountID, "", nil, &acct); err != nil {
		return nil, &GatewayError{Op: "retrieve account", Err: err}
	}
	return &acct, nil
}

// CreateLoginLink mints a dashboard login link for a connected account.
func (c *ProcessorClient) CreateLoginLink(ctx context.Context, accountID string) (string, error) {
	var link loginLinkResponse
	if err := c.do(ctx, http.MethodPost, "/v1/accounts/"+accountID+"/login_links", "", nil, &link); err != nil {
		return "", &GatewayError{Op: "create login link", Err: err}
	}
	return link.URL, nil
}

// do performs a JSON request against the processor API. A non-empty accountID
// scopes the call to a connected account.
func (c *ProcessorClient) do(ctx context.Context, method, path, accountID string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accountID != "" {
		req.Header.Set("Processor-Account", accountID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Errorw("processor request failed", "method", method, "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return err
		}
	}
	return nil
}
