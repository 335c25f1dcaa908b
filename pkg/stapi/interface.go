// Package stapi defines the typed abstraction over the ST v1 REST API:
// the Client interface, request models, and pagination helpers. The HTTP
// implementation lives in the solidarity subpackage.
package stapi

import (
	"context"

	"sttools/pkg/domain"
)

// UserLister is the minimal contract needed to enumerate live users page by
// page. Client embeds it; pagination helpers accept it directly so tests can
// fake a single method.
type UserLister interface {
	// GetUsers returns one page of users along with the pagination metadata
	// reported by the API.
	GetUsers(ctx context.Context, params UsersParams) ([]domain.User, *ListMeta, error)
}

// Client is the typed contract of the ST v1 REST API. Implementations are
// safe for concurrent use.
type Client interface {
	UserLister

	// --- Users ---

	GetUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	CreateUser(ctx context.Context, req UserCreate) (*domain.User, error)
	UpdateUser(ctx context.Context, id domain.UserID, req UserUpdate) (*domain.User, error)

	// --- User Notes ---

	CreateUserNote(ctx context.Context, req UserNoteCreate) (*domain.UserNote, error)
	DeleteUserNote(ctx context.Context, noteID int64) error

	// --- Custom User Properties ---

	GetCustomUserProperties(ctx context.Context, page PageParams) ([]CustomUserProperty, *ListMeta, error)

	// --- User Lists ---

	GetUserLists(ctx context.Context, page PageParams) ([]UserList, *ListMeta, error)
	GetUserList(ctx context.Context, listID int64) (*UserList, error)
	CreateUserList(ctx context.Context, req UserListCreate) (*UserList, error)
	UpdateUserList(ctx context.Context, listID int64, req UserListUpdate) (*UserList, error)
	DeleteUserList(ctx context.Context, listID int64) error

	// --- Events & RSVPs ---

	GetEvents(ctx context.Context, page PageParams) ([]Event, *ListMeta, error)
	GetEvent(ctx context.Context, eventID int64) (*Event, error)
	GetEventRSVPs(ctx context.Context, params EventRSVPsParams) ([]EventRSVP, *ListMeta, error)
	CreateEventRSVP(ctx context.Context, req EventRSVPCreate) (*EventRSVP, error)
	UpdateEventRSVP(ctx context.Context, rsvpID int64, req EventRSVPUpdate) (*EventRSVP, error)

	// --- Scheduled Tasks ---

	GetScheduledTasks(ctx context.Context, params ScheduledTasksParams) ([]ScheduledTask, *ListMeta, error)
	CreateScheduledTask(ctx context.Context, req ScheduledTaskCreate) (*ScheduledTask, error)
	UpdateScheduledTask(ctx context.Context, taskID int64, req ScheduledTaskUpdate) (*ScheduledTask, error)

	// --- Agent Assignments ---

	GetAgentAssignments(ctx context.Context, params AgentAssignmentsParams) ([]AgentAssignment, *ListMeta, error)
	CreateAgentAssignment(ctx context.Context, req AgentAssignmentCreate) (*AgentAssignment, error)
	UpdateAgentAssignment(ctx context.Context, assignmentID int64, req AgentAssignmentUpdate) (*AgentAssignment, error)
	DeleteAgentAssignment(ctx context.Context, assignmentID int64) error

	// --- Activities, Texts & Emails ---

	GetActivities(ctx context.Context, page PageParams) ([]Activity, *ListMeta, error)
	GetTexts(ctx context.Context, params TextsParams) ([]Text, *ListMeta, error)
	CreateText(ctx context.Context, req TextCreate) (*Text, error)
	SendEmail(ctx context.Context, req EmailCreate) error

	// --- Organization structure ---

	GetChapters(ctx context.Context, page PageParams) ([]Chapter, *ListMeta, error)
	GetOrganizations(ctx context.Context, page PageParams) ([]Organization, *ListMeta, error)

	// --- Automations ---

	EnrollInAutomation(ctx context.Context, req AutomationEnrollmentCreate) error
}
