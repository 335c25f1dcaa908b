package stapi

import (
	"time"

	"sttools/pkg/domain"
)

// PageParams are the standard ST pagination parameters sent as _limit,
// _offset and _since on every list endpoint.
type PageParams struct {
	Limit  int
	Offset int
	// Since restricts results to records updated at or after this unix
	// timestamp; zero means no restriction.
	Since int64
}

// ListMeta is the pagination metadata the API returns alongside list data.
type ListMeta struct {
	// TotalCount is the total number of records matching the query, when the
	// API reports it.
	TotalCount *int `json:"total_count"`
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
}

// UsersParams filter the users listing.
type UsersParams struct {
	PageParams
	// UserListIDs restricts results to members of the given user lists.
	UserListIDs []int64
}

// EventRSVPsParams filter the event RSVP listing.
type EventRSVPsParams struct {
	PageParams
	EventID int64
	UserID  domain.UserID
}

// ScheduledTasksParams filter the scheduled task listing.
type ScheduledTasksParams struct {
	PageParams
	UserID      domain.UserID
	AgentUserID int64
}

// AgentAssignmentsParams filter the agent assignment listing.
type AgentAssignmentsParams struct {
	PageParams
	UserID      domain.UserID
	AgentUserID int64
}

// TextsParams filter the texts listing.
type TextsParams struct {
	PageParams
	UserID domain.UserID
}

// --- Entity models ---

// CustomUserProperty describes an account-specific custom field definition.
type CustomUserProperty struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Key       string `json:"key"`
	FieldType string `json:"field_type"`
	ScopeID   int64  `json:"scope_id"`
	ScopeType string `json:"scope_type"`
}

// UserList is a saved user segment.
type UserList struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
	UserID     domain.UserID  `json:"user_id,omitempty"`
	ScopeID    int64          `json:"scope_id"`
	ScopeType  string         `json:"scope_type"`
	EventID    int64          `json:"event_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at,omitzero"`
}

// Event is an organizing event.
type Event struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	ScopeID         int64     `json:"scope_id"`
	ScopeType       string    `json:"scope_type"`
	EventType       string    `json:"event_type"`
	LocationName    string    `json:"location_name,omitempty"`
	RSVPsCount      int       `json:"rsvps_count,omitempty"`
	AttendanceCount int       `json:"attendance_count,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

// EventRSVP records a user's RSVP to an event session.
type EventRSVP struct {
	ID             int64         `json:"id,omitempty"`
	EventID        int64         `json:"event_id"`
	EventSessionID int64         `json:"event_session_id"`
	UserID         domain.UserID `json:"user_id"`
	IsAttending    string        `json:"is_attending"` // "yes", "no" or "maybe"
	IsConfirmed    bool          `json:"is_confirmed"`
	AgentUserID    int64         `json:"agent_user_id,omitempty"`
	Source         string        `json:"source,omitempty"`
	SourceSystem   string        `json:"source_system,omitempty"`
}

// ScheduledTask is a follow-up task assigned to an agent for a user.
type ScheduledTask struct {
	ID                int64         `json:"id,omitempty"`
	DueAt             time.Time     `json:"due_at"`
	RemindAt          time.Time     `json:"remind_at,omitzero"`
	AgentUserID       int64         `json:"agent_user_id,omitempty"`
	UserID            domain.UserID `json:"user_id"`
	Notes             string        `json:"notes,omitempty"`
	TaskType          string        `json:"task_type,omitempty"`
	MarkedAsCompleted bool          `json:"marked_as_completed,omitempty"`
}

// Activity is an entry in a user's activity feed.
type Activity struct {
	ID             int64         `json:"id"`
	UserID         domain.UserID `json:"user_id"`
	Name           string        `json:"name"`
	ActionableID   int64         `json:"actionable_id"`
	ActionableType string        `json:"actionable_type"`
	CreatedAt      time.Time     `json:"created_at,omitzero"`
	UpdatedAt      time.Time     `json:"updated_at,omitzero"`
}

// Text is a text message sent to or received from a user.
type Text struct {
	ID          int64         `json:"id"`
	UserID      domain.UserID `json:"user_id"`
	Direction   string        `json:"direction"`
	Body        string        `json:"body,omitempty"`
	MediaURLs   []string      `json:"media_urls,omitempty"`
	SegmentSize int           `json:"segment_size,omitempty"`
	CreatedAt   time.Time     `json:"created_at,omitzero"`
}

// AgentAssignment links a user to the agent responsible for them.
type AgentAssignment struct {
	ID          int64         `json:"id,omitempty"`
	UserID      domain.UserID `json:"user_id"`
	AgentUserID int64         `json:"agent_user_id,omitempty"`
	IsActive    bool          `json:"is_active,omitempty"`
}

// Chapter is a local chapter of an organization.
type Chapter struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	LogoURL            string `json:"logo_url,omitempty"`
	OrganizationID     int64  `json:"organization_id"`
	ChapterPhoneNumber string `json:"chapter_phone_number,omitempty"`
}

// Organization is a top-level organization.
type Organization struct {
	ID                   int64    `json:"id,omitempty"`
	Name                 string   `json:"name"`
	ImageURL             string   `json:"image_url,omitempty"`
	ParentOrganizationID int64    `json:"parent_organization_id,omitempty"`
	DefaultLanguage      string   `json:"default_language,omitempty"`
	SupportedLanguages   []string `json:"supported_languages,omitempty"`
}

// --- Request models ---

// UserCreate is the request body for creating a live user.
type UserCreate struct {
	PhoneNumber          string            `json:"phone_number,omitempty"`
	Email                string            `json:"email,omitempty"`
	FirstName            string            `json:"first_name,omitempty"`
	LastName             string            `json:"last_name,omitempty"`
	PreferredLanguage    string            `json:"preferred_language,omitempty"`
	SecondLanguage       string            `json:"second_language,omitempty"`
	ChapterID            int64             `json:"chapter_id,omitempty"`
	ChapterIDs           []int64           `json:"chapter_ids,omitempty"`
	ReferredByUserID     domain.UserID     `json:"referred_by_user_id,omitempty"`
	CustomUserProperties map[string]string `json:"custom_user_properties,omitempty"`
	AddTags              []string          `json:"add_tags,omitempty"`
	RemoveTags           []string          `json:"remove_tags,omitempty"`
	Address              *domain.Address   `json:"address,omitempty"`
	SMSPermission        *bool             `json:"sms_permission,omitempty"`
	CallPermission       *bool             `json:"call_permission,omitempty"`
	EmailPermission      *bool             `json:"email_permission,omitempty"`
	Timezone             string            `json:"timezone,omitempty"`
}

// UserUpdate is the request body for updating a live user. Nil/zero fields
// are omitted and leave the corresponding attribute untouched.
type UserUpdate struct {
	PhoneNumber          string            `json:"phone_number,omitempty"`
	Email                string            `json:"email,omitempty"`
	FirstName            string            `json:"first_name,omitempty"`
	LastName             string            `json:"last_name,omitempty"`
	PreferredLanguage    string            `json:"preferred_language,omitempty"`
	SecondLanguage       string            `json:"second_language,omitempty"`
	ChapterID            int64             `json:"chapter_id,omitempty"`
	ChapterIDs           []int64           `json:"chapter_ids,omitempty"`
	AddChapterIDs        []int64           `json:"add_chapter_ids,omitempty"`
	RemoveChapterIDs     []int64           `json:"remove_chapter_ids,omitempty"`
	CustomUserProperties map[string]string `json:"custom_user_properties,omitempty"`
	Address              *domain.Address   `json:"address,omitempty"`
	SMSPermission        *bool             `json:"sms_permission,omitempty"`
	CallPermission       *bool             `json:"call_permission,omitempty"`
	EmailPermission      *bool             `json:"email_permission,omitempty"`
	Timezone             string            `json:"timezone,omitempty"`
}

// UserNoteCreate is the request body for attaching a note to a live user.
// CreatedAt (unix seconds) backdates the note, which note migration uses to
// preserve original timestamps.
type UserNoteCreate struct {
	UserID    domain.UserID `json:"user_id"`
	AgentID   int64         `json:"agent_id,omitempty"`
	Content   string        `json:"content"`
	CreatedAt int64         `json:"created_at,omitempty"`
}

// UserListCreate is the request body for creating a user list.
type UserListCreate struct {
	Name       string         `json:"name"`
	ScopeID    int64          `json:"scope_id"`
	ScopeType  string         `json:"scope_type"`
	EventID    int64          `json:"event_id,omitempty"`
	UserID     domain.UserID  `json:"user_id,omitempty"`
	Parameters map[string]any `json:"parameters"`
}

// UserListUpdate is the request body for updating a user list. Nil/zero
// fields are omitted and leave the corresponding attribute untouched.
type UserListUpdate struct {
	Name       string         `json:"name,omitempty"`
	ScopeID    int64          `json:"scope_id,omitempty"`
	ScopeType  string         `json:"scope_type,omitempty"`
	EventID    int64          `json:"event_id,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// EventRSVPCreate is the request body for creating an RSVP.
type EventRSVPCreate struct {
	EventID               int64         `json:"event_id"`
	EventSessionID        int64         `json:"event_session_id"`
	UserID                domain.UserID `json:"user_id"`
	IsAttending           string        `json:"is_attending"`
	IsConfirmed           bool          `json:"is_confirmed"`
	AgentUserID           int64         `json:"agent_user_id,omitempty"`
	Source                string        `json:"source,omitempty"`
	SourceSystem          string        `json:"source_system,omitempty"`
	SkipEmailConfirmation bool          `json:"skip_email_confirmation,omitempty"`
}

// EventRSVPUpdate is the request body for updating an RSVP.
type EventRSVPUpdate struct {
	IsAttending  string `json:"is_attending,omitempty"`
	IsConfirmed  *bool  `json:"is_confirmed,omitempty"`
	AgentUserID  int64  `json:"agent_user_id,omitempty"`
	Source       string `json:"source,omitempty"`
	SourceSystem string `json:"source_system,omitempty"`
}

// ScheduledTaskCreate is the request body for creating a scheduled task.
type ScheduledTaskCreate struct {
	DueAt             time.Time     `json:"due_at"`
	RemindAt          time.Time     `json:"remind_at,omitzero"`
	AgentUserID       int64         `json:"agent_user_id,omitempty"`
	UserID            domain.UserID `json:"user_id"`
	Notes             string        `json:"notes,omitempty"`
	MarkedAsCompleted bool          `json:"marked_as_completed,omitempty"`
}

// ScheduledTaskUpdate is the request body for updating a scheduled task.
type ScheduledTaskUpdate struct {
	DueAt             time.Time `json:"due_at,omitzero"`
	RemindAt          time.Time `json:"remind_at,omitzero"`
	AgentUserID       int64     `json:"agent_user_id,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	MarkedAsCompleted *bool     `json:"marked_as_completed,omitempty"`
}

// AgentAssignmentCreate is the request body for assigning an agent to a user.
type AgentAssignmentCreate struct {
	UserID      domain.UserID `json:"user_id"`
	AgentUserID int64         `json:"agent_user_id"`
	IsActive    *bool         `json:"is_active,omitempty"`
}

// AgentAssignmentUpdate is the request body for updating an agent assignment.
type AgentAssignmentUpdate struct {
	UserID      domain.UserID `json:"user_id,omitempty"`
	AgentUserID int64         `json:"agent_user_id,omitempty"`
	IsActive    *bool         `json:"is_active,omitempty"`
}

// TextCreate is the request body for sending a text to a user.
type TextCreate struct {
	UserID    domain.UserID `json:"user_id"`
	Body      string        `json:"body"`
	MediaURLs []string      `json:"media_urls,omitempty"`
}

// EmailCreate is the request body for sending a one-off email to a user.
type EmailCreate struct {
	UserID  domain.UserID `json:"user_id"`
	Subject string        `json:"subject"`
	Body    string        `json:"body"`
}

// AutomationEnrollmentCreate enrolls a user into an automation flow.
type AutomationEnrollmentCreate struct {
	AutomationID int64         `json:"automation_id"`
	UserID       domain.UserID `json:"user_id"`
}
