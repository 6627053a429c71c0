package tools

// file: internal/tools/tasks.go

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/paginate"
)

// TaskReader fetches individual tasks.
type TaskReader interface {
	GetTask(ctx context.Context, taskID string) (*clickup.Task, error)
}

// TaskPager fetches task pages by page index.
type TaskPager interface {
	GetTasksPage(ctx context.Context, listID string, page, pageSize int, q clickup.TaskQuery) ([]clickup.Task, error)
}

// TaskWriter creates and updates tasks.
type TaskWriter interface {
	CreateTask(ctx context.Context, listID string, create clickup.TaskCreate) (*clickup.Task, error)
	UpdateTask(ctx context.Context, taskID string, update clickup.TaskUpdate) (*clickup.Task, error)
}

// TaskDeleter removes tasks.
type TaskDeleter interface {
	DeleteTask(ctx context.Context, taskID string) error
}

// GetTask returns the get_task tool.
func GetTask(client TaskReader) Definition {
	tool := mcp.NewTool("get_task",
		mcp.WithDescription("Retrieves a single ClickUp task with its custom fields."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get Task", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		task, err := client.GetTask(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, taskDetailMarkdown(task), task, 1, "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}

// tasksPageResponse is the JSON payload for one page of tasks. It carries
// the full pagination contract so a caller can resume with next_offset.
type tasksPageResponse struct {
	Tasks      []clickup.Task `json:"tasks"`
	Pagination paginate.Info  `json:"pagination"`
}

// GetTasks returns the get_tasks tool. The offset must be an exact multiple
// of the limit; misaligned requests are rejected before any upstream call.
func GetTasks(client TaskPager) Definition {
	tool := mcp.NewTool("get_tasks",
		mcp.WithDescription("Retrieves one page of tasks from a ClickUp list. "+
			"Resume by passing the returned next_offset as the next offset; offset must always be a multiple of limit."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get Tasks", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
		mcp.WithNumber("offset", mcp.Description("Item offset; must be a multiple of limit"), mcp.Min(0)),
		mcp.WithNumber("limit", mcp.Description("Page size"), mcp.Min(1), mcp.Max(paginate.MaxLimit)),
		mcp.WithArray("statuses", mcp.Description("Restrict to these status names"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("include_closed", mcp.Description("Include closed tasks")),
		mcp.WithBoolean("subtasks", mcp.Description("Include subtasks")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := req.RequireString("list_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		offset := req.GetInt("offset", 0)
		limit := req.GetInt("limit", paginate.DefaultLimit)
		if err := paginate.ValidatePage(offset, limit); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		query := clickup.TaskQuery{
			Statuses:      req.GetStringSlice("statuses", nil),
			IncludeClosed: req.GetBool("include_closed", false),
			Subtasks:      req.GetBool("subtasks", false),
		}
		tasks, err := client.GetTasksPage(ctx, listID, paginate.PageIndex(offset, limit), limit, query)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}

		info := paginate.Compute(nil, len(tasks), offset, limit)
		payload := tasksPageResponse{Tasks: tasks, Pagination: info}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, tasksMarkdown(tasks, info), payload, len(tasks), "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}

// CreateTask returns the create_task tool.
func CreateTask(client TaskWriter) Definition {
	tool := mcp.NewTool("create_task",
		mcp.WithDescription("Creates a task in a ClickUp list."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Create Task"}),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Task name")),
		mcp.WithString("description", mcp.Description("Task description")),
		mcp.WithString("status", mcp.Description("Initial status name")),
		mcp.WithNumber("priority", mcp.Description("Priority 1 (urgent) to 4 (low)"), mcp.Min(1), mcp.Max(4)),
		mcp.WithNumber("due_date", mcp.Description("Due date as millisecond epoch")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := req.RequireString("list_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := req.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		create := clickup.TaskCreate{
			Name:        name,
			Description: req.GetString("description", ""),
			Status:      req.GetString("status", ""),
		}
		if p := req.GetInt("priority", 0); p > 0 {
			create.Priority = &p
		}
		if due := req.GetInt("due_date", 0); due > 0 {
			dueMs := int64(due)
			create.DueDate = &dueMs
		}

		task, err := client.CreateTask(ctx, listID, create)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, taskDetailMarkdown(task), task, 1, "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}

// UpdateTask returns the update_task tool. Only supplied fields change.
func UpdateTask(client TaskWriter) Definition {
	tool := mcp.NewTool("update_task",
		mcp.WithDescription("Updates fields of an existing ClickUp task. Omitted fields are left unchanged."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Update Task", IdempotentHint: toBoolPtr(true)}),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		mcp.WithString("name", mcp.Description("New task name")),
		mcp.WithString("description", mcp.Description("New description")),
		mcp.WithString("status", mcp.Description("New status name")),
		mcp.WithNumber("priority", mcp.Description("Priority 1 (urgent) to 4 (low)"), mcp.Min(1), mcp.Max(4)),
		mcp.WithNumber("due_date", mcp.Description("Due date as millisecond epoch")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		var update clickup.TaskUpdate
		args := req.GetArguments()
		if _, ok := args["name"]; ok {
			name := req.GetString("name", "")
			update.Name = &name
		}
		if _, ok := args["description"]; ok {
			desc := req.GetString("description", "")
			update.Description = &desc
		}
		if _, ok := args["status"]; ok {
			status := req.GetString("status", "")
			update.Status = &status
		}
		if p := req.GetInt("priority", 0); p > 0 {
			update.Priority = &p
		}
		if due := req.GetInt("due_date", 0); due > 0 {
			dueMs := int64(due)
			update.DueDate = &dueMs
		}

		task, err := client.UpdateTask(ctx, taskID, update)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, taskDetailMarkdown(task), task, 1, "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}

// DeleteTask returns the delete_task tool.
func DeleteTask(client TaskDeleter) Definition {
	tool := mcp.NewTool("delete_task",
		mcp.WithDescription("Deletes a ClickUp task permanently."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Delete Task", DestructiveHint: toBoolPtr(true)}),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := client.DeleteTask(ctx, taskID); err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		return mcp.NewToolResultText("Task " + taskID + " deleted."), nil
	}
	return Definition{Tool: tool, Handler: handler}
}
