package facades

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EventCheckoutSessionCompleted is the event type reported when a payer
// finishes a checkout session.
const EventCheckoutSessionCompleted = "checkout.session.completed"

// DefaultSignatureTolerance bounds how far a signed timestamp may drift from
// the local clock before the event is rejected as stale.
const DefaultSignatureTolerance = 5 * time.Minute

// SignatureError means the webhook payload failed authenticity verification.
// Nothing may be mutated when it is returned.
type SignatureError struct {
	msg string
}

func (e *SignatureError) Error() string {
	return "webhook signature verification failed: " + e.msg
}

// Event is the parsed, verified webhook envelope.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CheckoutSession `json:"object"`
	} `json:"data"`
}

// WebhookVerifier verifies and parses signed processor events.
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewWebhookVerifier creates a verifier for the given shared secret.
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, tolerance: DefaultSignatureTolerance}
}

// ConstructEvent checks the signature header against the exact payload bytes
// and parses the event only after verification passes. The header format is
// "t=<unix>,v1=<hex>" where the hex value is HMAC-SHA256 of "<unix>.<payload>"
// keyed by the shared secret. Multiple v1 entries are accepted so secrets can
// be rotated.
func (v *WebhookVerifier) ConstructEvent(payload []byte, sigHeader string) (*Event, error) {
	timestamp, signatures, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if v.tolerance > 0 {
		drift := time.Since(time.Unix(timestamp, 0))
		if drift > v.tolerance || drift < -v.tolerance {
			return nil, &SignatureError{msg: "timestamp outside tolerance"}
		}
	}

	expected := computeSignature(timestamp, payload, v.secret)
	valid := false
	for _, sig := range signatures {
		if hmac.Equal(sig, expected) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &SignatureError{msg: "no matching v1 signature"}
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, &SignatureError{msg: fmt.Sprintf("malformed payload: %v", err)}
	}
	return &event, nil
}

func parseSignatureHeader(header string) (timestamp int64, signatures [][]byte, err error) {
	if header == "" {
		return 0, nil, &SignatureError{msg: "missing signature header"}
	}

	for _, part := range strings.Split(header, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch kv[0] {
		case "t":
			timestamp, err = strconv.ParseInt(kv[1], 10, 64)
			if err != nil {
				return 0, nil, &SignatureError{msg: "malformed timestamp"}
			}
		case "v1":
			sig, err := hex.DecodeString(kv[1])
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp == 0 {
		return 0, nil, &SignatureError{msg: "missing timestamp"}
	}
	if len(signatures) == 0 {
		return 0, nil, &SignatureError{msg: "missing v1 signature"}
	}
	return timestamp, signatures, nil
}

func computeSignature(timestamp int64, payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return mac.Sum(nil)
}
