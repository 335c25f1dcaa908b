package domain

import "time"

// UserID uniquely identifies a live user record in the ST service.
// IDs are assigned by the service and are stable across fetches.
type UserID int64

// Address is the structured address attached to a live user record.
type Address struct {
	Address1  string  `json:"address1,omitempty"`
	Address2  string  `json:"address2,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// User is a live record fetched from the ST API. It is treated as an
// immutable snapshot taken at fetch time; the matcher never mutates it.
type User struct {
	// ID is the service-assigned identifier of the user.
	ID UserID `json:"id"`
	// HashID is the opaque public identifier used in ST URLs.
	HashID string `json:"hash_id,omitempty"`

	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`

	PreferredLanguage string `json:"preferred_language,omitempty"`
	SecondLanguage    string `json:"second_language,omitempty"`

	ChapterID  int64   `json:"chapter_id,omitempty"`
	ChapterIDs []int64 `json:"chapter_ids,omitempty"`
	BranchID   int64   `json:"branch_id,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`

	// CustomUserProperties holds the account-specific custom fields keyed by
	// property key. Values are left untyped; the API returns heterogeneous
	// types depending on the property definition.
	CustomUserProperties map[string]any `json:"custom_user_properties,omitempty"`

	Address *Address `json:"address,omitempty"`

	SMSPermission   bool `json:"sms_permission"`
	CallPermission  bool `json:"call_permission"`
	EmailPermission bool `json:"email_permission"`
}

// UserNote is a note attached to a live user record.
type UserNote struct {
	ID      int64  `json:"id"`
	UserID  UserID `json:"user_id"`
	Content string `json:"content"`
}
