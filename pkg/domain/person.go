package domain

import "time"

// PersonID uniquely identifies a person record inside an ST JSON export.
// It is local to the export and unrelated to the live UserID namespace.
type PersonID int64

// TextMessage is a text message recorded in the export history of a person.
type TextMessage struct {
	SentAt    int64  `json:"sent_at"`
	Content   string `json:"content"`
	Direction string `json:"direction,omitempty"` // "in" or "out"
}

// CallRecord is a call recorded in the export history of a person.
type CallRecord struct {
	CalledAt int64  `json:"called_at"`
	Duration int    `json:"duration"`
	Notes    string `json:"notes,omitempty"`
}

// Note is a free-form agent note attached to an exported person.
type Note struct {
	ID          int64     `json:"id"`
	Content     string    `json:"content"`
	AgentUserID int64     `json:"agent_user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Donation is a donation record from the export. The export schema for
// donations varies between accounts, so the record is kept untyped.
type Donation map[string]any

// Person is a record parsed from an ST JSON export: the pre-migration
// identity of a contact. Persons are immutable once loaded.
type Person struct {
	// ID is the export-local identifier of the person.
	ID PersonID `json:"id"`

	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`

	Chapter           string `json:"chapter,omitempty"`
	PreferredLanguage string `json:"preferred_language,omitempty"`

	FullAddress string `json:"full_address,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty"`
	Country     string `json:"country,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`

	Tags []string `json:"tags,omitempty"`

	Texts     []TextMessage `json:"texts,omitempty"`
	Calls     []CallRecord  `json:"calls,omitempty"`
	Notes     []Note        `json:"notes,omitempty"`
	Donations []Donation    `json:"donations,omitempty"`
}
