package models

// AccountStatus is the onboarding state of a user's processor account.
type AccountStatus struct {
	Connected        bool `json:"connected"`         // Whether the account may accept payments under the active policy
	DetailsSubmitted bool `json:"details_submitted"` // Whether the user finished submitting onboarding details
	ChargesEnabled   bool `json:"charges_enabled"`   // Whether the processor enabled charges for the account
}
