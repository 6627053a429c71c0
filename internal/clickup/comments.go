// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/comments.go

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GetTaskComments fetches the comments on a task.
func (c *Client) GetTaskComments(ctx context.Context, taskID string) ([]Comment, error) {
	var resp struct {
		Comments []Comment `json:"comments"`
	}
	if err := c.get(ctx, fmt.Sprintf("/task/%s/comment", url.PathEscape(taskID)), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CreateTaskComment adds a comment to a task.
func (c *Client) CreateTaskComment(ctx context.Context, taskID, text string) (*Comment, error) {
	var comment Comment
	body := map[string]any{"comment_text": text}
	if err := c.post(ctx, fmt.Sprintf("/task/%s/comment", url.PathEscape(taskID)), body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// TimeEntryQuery bounds a time-entry listing to an interval and optionally
// one assignee.
type TimeEntryQuery struct {
	StartDate  int64
	EndDate    int64
	AssigneeID string
}

// GetTimeEntries fetches time entries for a workspace.
func (c *Client) GetTimeEntries(ctx context.Context, teamID string, q TimeEntryQuery) ([]TimeEntry, error) {
	query := url.Values{}
	if q.StartDate > 0 {
		query.Set("start_date", strconv.FormatInt(q.StartDate, 10))
	}
	if q.EndDate > 0 {
		query.Set("end_date", strconv.FormatInt(q.EndDate, 10))
	}
	if q.AssigneeID != "" {
		query.Set("assignee", q.AssigneeID)
	}

	var resp struct {
		Data []TimeEntry `json:"data"`
	}
	if err := c.get(ctx, fmt.Sprintf("/team/%s/time_entries", url.PathEscape(teamID)), query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// TimeEntryCreate is the payload for starting or logging a time entry.
type TimeEntryCreate struct {
	TaskID      string `json:"tid,omitempty"`
	Description string `json:"description,omitempty"`
	Start       int64  `json:"start"`
	Duration    int64  `json:"duration"`
	Billable    bool   `json:"billable,omitempty"`
}

// CreateTimeEntry logs a time entry in a workspace.
func (c *Client) CreateTimeEntry(ctx context.Context, teamID string, create TimeEntryCreate) (*TimeEntry, error) {
	var resp struct {
		Data TimeEntry `json:"data"`
	}
	if err := c.post(ctx, fmt.Sprintf("/team/%s/time_entries", url.PathEscape(teamID)), create, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
