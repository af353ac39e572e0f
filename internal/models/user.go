package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user row in the database
type UserDB struct {
	UserID             uuid.UUID `json:"user_id" db:"user_id"`                           // Unique user identifier
	Username           string    `json:"username" db:"username"`                         // Unique username
	Email              string    `json:"email" db:"email"`                               // Unique email address
	PasswordHash       string    `json:"-" db:"password_hash"`                           // bcrypt hash of the password
	ProcessorAccountID *string   `json:"processor_account_id" db:"processor_account_id"` // Connected account id at the payment processor, nil until connected
	OnboardingComplete bool      `json:"onboarding_complete" db:"onboarding_complete"`   // Whether processor onboarding finished
	CreatedAt          time.Time `json:"created_at" db:"created_at"`                     // Timestamp when the user was created
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`                     // Timestamp of the last update
}
