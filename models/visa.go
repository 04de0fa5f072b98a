package models

import "encoding/json"

// Visa application statuses a caller can move an application through.
const (
	VisaStatusDraft     = "draft"
	VisaStatusSubmitted = "submitted"
)

// VisaApplication is a row in the applications table. Applicant and travel
// details are stored as documents; their inner shape is owned by the client.
type VisaApplication struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	CountryCode   string          `json:"country_code"`
	CategorySlug  string          `json:"category_slug"`
	Applicant     json.RawMessage `json:"applicant"`
	Travel        json.RawMessage `json:"travel"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	CreatedAt     string          `json:"created_at,omitempty"`
	UpdatedAt     string          `json:"updated_at,omitempty"`
}
