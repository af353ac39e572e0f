package models

// TransitionEvent is published to Kafka whenever a transaction reaches a
// terminal status.
type TransitionEvent struct {
	TransactionID string  `json:"transaction_id"`  // Identifier of the transitioned transaction
	UserID        string  `json:"user_id"`         // Identifier of the owning user
	PaymentLinkID string  `json:"payment_link_id"` // Processor-issued link id
	Amount        float64 `json:"amount"`          // Transaction amount
	Currency      string  `json:"currency"`        // Currency code
	Status        string  `json:"status"`          // Terminal status that was applied
	Timestamp     int64   `json:"timestamp"`       // Unix timestamp (in seconds) of the transition
}
