package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Transaction statuses
const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// IsTerminalStatus reports whether a status admits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == StatusPaid || status == StatusCancelled
}

// HistoryEntry is a single status change of a transaction.
type HistoryEntry struct {
	Status    string    `json:"status"`     // Status after the change
	ChangedAt time.Time `json:"changed_at"` // When the change happened
}

// History is the append-only sequence of status changes, stored as JSONB.
type History []HistoryEntry

// Value implements driver.Valuer so History can be written as JSONB.
func (h History) Value() (driver.Value, error) {
	return json.Marshal(h)
}

// Scan implements sql.Scanner so History can be read back from JSONB.
func (h *History) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, h)
	case string:
		return json.Unmarshal([]byte(v), h)
	case nil:
		*h = nil
		return nil
	default:
		return errors.New("unsupported type for History")
	}
}

// TransactionDB represents a transaction row in the database
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`   // Unique transaction identifier
	UserID        uuid.UUID `json:"user_id" db:"user_id"`                 // Identifier of the owning user
	PaymentLinkID string    `json:"payment_link_id" db:"payment_link_id"` // Processor-issued link id, correlation key
	Amount        float64   `json:"amount" db:"amount"`                   // Requested amount in major units
	Currency      string    `json:"currency" db:"currency"`               // Currency code (e.g. usd)
	Description   string    `json:"description" db:"description"`         // Free-form description shown to the payer
	PaymentURL    string    `json:"payment_url" db:"payment_url"`         // Externally reachable payment page
	Status        string    `json:"status" db:"status"`                   // PENDING, PAID or CANCELLED
	History       History   `json:"history" db:"history"`                 // Append-only status history
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Timestamp when the transaction was created
}
