package solidarity

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sttools/pkg/domain"
	"sttools/pkg/stapi"
)

// --- Users ---

// GetUsers returns one page of live users matching the given parameters.
func (c *Client) GetUsers(ctx context.Context, params stapi.UsersParams) ([]domain.User, *stapi.ListMeta, error) {
	q := pageValues(params.PageParams)
	if len(params.UserListIDs) > 0 {
		ids := make([]string, len(params.UserListIDs))
		for i, id := range params.UserListIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		q.Set("user_list_ids", strings.Join(ids, ","))
	}

	return getList[domain.User](ctx, c, "users", q)
}

func (c *Client) GetUser(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return getOne[domain.User](ctx, c, fmt.Sprintf("users/%d", id))
}

func (c *Client) CreateUser(ctx context.Context, req stapi.UserCreate) (*domain.User, error) {
	return postOne[domain.User](ctx, c, "users", req)
}

func (c *Client) UpdateUser(ctx context.Context, id domain.UserID, req stapi.UserUpdate) (*domain.User, error) {
	return putOne[domain.User](ctx, c, fmt.Sprintf("users/%d", id), req)
}

// --- User Notes ---

func (c *Client) CreateUserNote(ctx context.Context, req stapi.UserNoteCreate) (*domain.UserNote, error) {
	return postOne[domain.UserNote](ctx, c, "user_notes", req)
}

func (c *Client) DeleteUserNote(ctx context.Context, noteID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("user_notes/%d", noteID), nil, nil)

	return err
}

// --- Custom User Properties ---

func (c *Client) GetCustomUserProperties(
	ctx context.Context,
	page stapi.PageParams) ([]stapi.CustomUserProperty, *stapi.ListMeta, error) {
	return getList[stapi.CustomUserProperty](ctx, c, "custom_user_properties", pageValues(page))
}

// --- User Lists ---

func (c *Client) GetUserLists(ctx context.Context, page stapi.PageParams) ([]stapi.UserList, *stapi.ListMeta, error) {
	return getList[stapi.UserList](ctx, c, "user_lists", pageValues(page))
}

func (c *Client) GetUserList(ctx context.Context, listID int64) (*stapi.UserList, error) {
	return getOne[stapi.UserList](ctx, c, fmt.Sprintf("user_lists/%d", listID))
}

func (c *Client) CreateUserList(ctx context.Context, req stapi.UserListCreate) (*stapi.UserList, error) {
	return postOne[stapi.UserList](ctx, c, "user_lists", req)
}

func (c *Client) UpdateUserList(ctx context.Context, listID int64, req stapi.UserListUpdate) (*stapi.UserList, error) {
	return putOne[stapi.UserList](ctx, c, fmt.Sprintf("user_lists/%d", listID), req)
}

func (c *Client) DeleteUserList(ctx context.Context, listID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("user_lists/%d", listID), nil, nil)

	return err
}

// --- Events & RSVPs ---

func (c *Client) GetEvents(ctx context.Context, page stapi.PageParams) ([]stapi.Event, *stapi.ListMeta, error) {
	return getList[stapi.Event](ctx, c, "events", pageValues(page))
}

func (c *Client) GetEvent(ctx context.Context, eventID int64) (*stapi.Event, error) {
	return getOne[stapi.Event](ctx, c, fmt.Sprintf("events/%d", eventID))
}

func (c *Client) GetEventRSVPs(
	ctx context.Context,
	params stapi.EventRSVPsParams) ([]stapi.EventRSVP, *stapi.ListMeta, error) {
	q := pageValues(params.PageParams)
	if params.EventID != 0 {
		q.Set("event_id", strconv.FormatInt(params.EventID, 10))
	}
	if params.UserID != 0 {
		q.Set("user_id", strconv.FormatInt(int64(params.UserID), 10))
	}

	return getList[stapi.EventRSVP](ctx, c, "event_rsvps", q)
}

func (c *Client) CreateEventRSVP(ctx context.Context, req stapi.EventRSVPCreate) (*stapi.EventRSVP, error) {
	return postOne[stapi.EventRSVP](ctx, c, "event_rsvps", req)
}

func (c *Client) UpdateEventRSVP(
	ctx context.Context,
	rsvpID int64,
	req stapi.EventRSVPUpdate) (*stapi.EventRSVP, error) {
	return putOne[stapi.EventRSVP](ctx, c, fmt.Sprintf("event_rsvps/%d", rsvpID), req)
}

// --- Scheduled Tasks ---

func (c *Client) GetScheduledTasks(
	ctx context.Context,
	params stapi.ScheduledTasksParams) ([]stapi.ScheduledTask, *stapi.ListMeta, error) {
	q := pageValues(params.PageParams)
	if params.UserID != 0 {
		q.Set("user_id", strconv.FormatInt(int64(params.UserID), 10))
	}
	if params.AgentUserID != 0 {
		q.Set("agent_user_id", strconv.FormatInt(params.AgentUserID, 10))
	}

	return getList[stapi.ScheduledTask](ctx, c, "scheduled_tasks", q)
}

func (c *Client) CreateScheduledTask(ctx context.Context, req stapi.ScheduledTaskCreate) (*stapi.ScheduledTask, error) {
	return postOne[stapi.ScheduledTask](ctx, c, "scheduled_tasks", req)
}

func (c *Client) UpdateScheduledTask(
	ctx context.Context,
	taskID int64,
	req stapi.ScheduledTaskUpdate) (*stapi.ScheduledTask, error) {
	return putOne[stapi.ScheduledTask](ctx, c, fmt.Sprintf("scheduled_tasks/%d", taskID), req)
}

// --- Agent Assignments ---

func (c *Client) GetAgentAssignments(
	ctx context.Context,
	params stapi.AgentAssignmentsParams) ([]stapi.AgentAssignment, *stapi.ListMeta, error) {
	q := pageValues(params.PageParams)
	if params.UserID != 0 {
		q.Set("user_id", strconv.FormatInt(int64(params.UserID), 10))
	}
	if params.AgentUserID != 0 {
		q.Set("agent_user_id", strconv.FormatInt(params.AgentUserID, 10))
	}

	return getList[stapi.AgentAssignment](ctx, c, "agent_assignments", q)
}

func (c *Client) CreateAgentAssignment(
	ctx context.Context,
	req stapi.AgentAssignmentCreate) (*stapi.AgentAssignment, error) {
	return postOne[stapi.AgentAssignment](ctx, c, "agent_assignments", req)
}

func (c *Client) UpdateAgentAssignment(
	ctx context.Context,
	assignmentID int64,
	req stapi.AgentAssignmentUpdate) (*stapi.AgentAssignment, error) {
	return putOne[stapi.AgentAssignment](ctx, c, fmt.Sprintf("agent_assignments/%d", assignmentID), req)
}

func (c *Client) DeleteAgentAssignment(ctx context.Context, assignmentID int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("agent_assignments/%d", assignmentID), nil, nil)

	return err
}

// --- Activities, Texts & Emails ---

func (c *Client) GetActivities(ctx context.Context, page stapi.PageParams) ([]stapi.Activity, *stapi.ListMeta, error) {
	return getList[stapi.Activity](ctx, c, "activities", pageValues(page))
}

func (c *Client) GetTexts(ctx context.Context, params stapi.TextsParams) ([]stapi.Text, *stapi.ListMeta, error) {
	q := pageValues(params.PageParams)
	if params.UserID != 0 {
		q.Set("user_id", strconv.FormatInt(int64(params.UserID), 10))
	}

	return getList[stapi.Text](ctx, c, "texts", q)
}

func (c *Client) CreateText(ctx context.Context, req stapi.TextCreate) (*stapi.Text, error) {
	return postOne[stapi.Text](ctx, c, "texts", req)
}

func (c *Client) SendEmail(ctx context.Context, req stapi.EmailCreate) error {
	_, err := c.do(ctx, http.MethodPost, "emails", nil, req)

	return err
}

// --- Organization structure ---

func (c *Client) GetChapters(ctx context.Context, page stapi.PageParams) ([]stapi.Chapter, *stapi.ListMeta, error) {
	return getList[stapi.Chapter](ctx, c, "chapters", pageValues(page))
}

func (c *Client) GetOrganizations(
	ctx context.Context,
	page stapi.PageParams) ([]stapi.Organization, *stapi.ListMeta, error) {
	return getList[stapi.Organization](ctx, c, "organizations", pageValues(page))
}

// --- Automations ---

func (c *Client) EnrollInAutomation(ctx context.Context, req stapi.AutomationEnrollmentCreate) error {
	_, err := c.do(ctx, http.MethodPost, "automation_enrollments", nil, req)

	return err
}
