// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/tasks.go

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// TaskQuery carries the optional filters for task listing endpoints.
type TaskQuery struct {
	Statuses      []string
	IncludeClosed bool
	Subtasks      bool
	Archived      bool
	OrderBy       string
	Reverse       bool
	AssigneeIDs   []string
}

// values encodes the query the way the task endpoints expect it.
func (q TaskQuery) values() url.Values {
	v := url.Values{}
	for _, s := range q.Statuses {
		v.Add("statuses[]", s)
	}
	for _, a := range q.AssigneeIDs {
		v.Add("assignees[]", a)
	}
	if q.IncludeClosed {
		v.Set("include_closed", "true")
	}
	if q.Subtasks {
		v.Set("subtasks", "true")
	}
	if q.Archived {
		v.Set("archived", "true")
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	if q.Reverse {
		v.Set("reverse", "true")
	}
	return v
}

// tasksResponse is the wire shape of the list-tasks endpoint.
type tasksResponse struct {
	Tasks []Task `json:"tasks"`
}

// GetTasksPage fetches one page of tasks from a list. Pages are addressed by
// index, not item offset; pageSize is the number of items per page and must
// stay constant across a paginated sequence.
func (c *Client) GetTasksPage(ctx context.Context, listID string, page, pageSize int, q TaskQuery) ([]Task, error) {
	query := q.values()
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp tasksResponse
	if err := c.get(ctx, fmt.Sprintf("/list/%s/task", url.PathEscape(listID)), query, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// GetTask fetches a single task by id.
func (c *Client) GetTask(ctx context.Context, taskID string) (*Task, error) {
	var task Task
	if err := c.get(ctx, fmt.Sprintf("/task/%s", url.PathEscape(taskID)), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskCreate is the payload for creating a task.
type TaskCreate struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    *int     `json:"priority,omitempty"`
	DueDate     *int64   `json:"due_date,omitempty"`
	Assignees   []int64  `json:"assignees,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Parent      string   `json:"parent,omitempty"`
}

// CreateTask creates a task in the given list.
func (c *Client) CreateTask(ctx context.Context, listID string, create TaskCreate) (*Task, error) {
	var task Task
	if err := c.post(ctx, fmt.Sprintf("/list/%s/task", url.PathEscape(listID)), create, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskUpdate is the payload for updating a task. Nil fields are left
// untouched upstream.
type TaskUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, taskID string, update TaskUpdate) (*Task, error) {
	var task Task
	if err := c.put(ctx, fmt.Sprintf("/task/%s", url.PathEscape(taskID)), update, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.del(ctx, fmt.Sprintf("/task/%s", url.PathEscape(taskID)))
}

// SetCustomFieldValue sets one custom field on a task.
func (c *Client) SetCustomFieldValue(ctx context.Context, taskID, fieldID string, value any) error {
	endpoint := fmt.Sprintf("/task/%s/field/%s", url.PathEscape(taskID), url.PathEscape(fieldID))
	return c.post(ctx, endpoint, map[string]any{"value": value}, nil)
}
