package tools

// file: internal/tools/workspace.go

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
)

// WorkspaceReader walks the workspace tree.
type WorkspaceReader interface {
	GetTeams(ctx context.Context) ([]clickup.Team, error)
	GetSpaces(ctx context.Context, teamID string) ([]clickup.Space, error)
	GetFolders(ctx context.Context, spaceID string) ([]clickup.Folder, error)
	GetFolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error)
}

// FieldReader fetches custom-field definitions.
type FieldReader interface {
	GetAccessibleCustomFields(ctx context.Context, listID string) ([]clickup.CustomField, error)
}

// CommentReader fetches task comments.
type CommentReader interface {
	GetTaskComments(ctx context.Context, taskID string) ([]clickup.Comment, error)
}

// CommentWriter adds task comments.
type CommentWriter interface {
	CreateTaskComment(ctx context.Context, taskID, text string) (*clickup.Comment, error)
}

// TimeReader fetches time entries for a workspace.
type TimeReader interface {
	GetTimeEntries(ctx context.Context, teamID string, q clickup.TimeEntryQuery) ([]clickup.TimeEntry, error)
}

// spaceNode is one space with its resolved folders and folderless lists.
type spaceNode struct {
	Space   clickup.Space    `json:"space"`
	Folders []clickup.Folder `json:"folders,omitempty"`
	Lists   []clickup.List   `json:"lists,omitempty"`
}

// hierarchyResponse is the JSON payload of get_workspace_hierarchy.
type hierarchyResponse struct {
	Team   string      `json:"team"`
	Spaces []spaceNode `json:"spaces"`
}

// GetWorkspaceHierarchy returns the get_workspace_hierarchy tool: the full
// space/folder/list tree of the first accessible workspace.
func GetWorkspaceHierarchy(client WorkspaceReader) Definition {
	tool := mcp.NewTool("get_workspace_hierarchy",
		mcp.WithDescription("Retrieves the workspace tree: spaces, folders, and lists with their ids."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get Workspace Hierarchy", ReadOnlyHint: toBoolPtr(true)}),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		teams, err := client.GetTeams(ctx)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		if len(teams) == 0 {
			return mcp.NewToolResultError("No accessible workspace for this API token."), nil
		}
		team := teams[0]

		spaces, err := client.GetSpaces(ctx, team.ID)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}

		nodes := make([]spaceNode, 0, len(spaces))
		listCount := 0
		for _, space := range spaces {
			folders, err := client.GetFolders(ctx, space.ID)
			if err != nil {
				return mcp.NewToolResultError(clickup.UserMessage(err)), nil
			}
			lists, err := client.GetFolderlessLists(ctx, space.ID)
			if err != nil {
				return mcp.NewToolResultError(clickup.UserMessage(err)), nil
			}
			for _, folder := range folders {
				listCount += len(folder.Lists)
			}
			listCount += len(lists)
			nodes = append(nodes, spaceNode{Space: space, Folders: folders, Lists: lists})
		}

		payload := hierarchyResponse{Team: team.Name, Spaces: nodes}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, hierarchyMarkdown(team.Name, nodes), payload, listCount, "lists")
	}
	return Definition{Tool: tool, Handler: handler}
}

// GetListCustomFields returns the get_list_custom_fields tool.
func GetListCustomFields(client FieldReader) Definition {
	tool := mcp.NewTool("get_list_custom_fields",
		mcp.WithDescription("Retrieves the custom-field definitions available on a list."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get List Custom Fields", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := req.RequireString("list_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		fields, err := client.GetAccessibleCustomFields(ctx, listID)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, customFieldsMarkdown(listID, fields), fields, len(fields), "fields")
	}
	return Definition{Tool: tool, Handler: handler}
}

// GetTaskComments returns the get_task_comments tool.
func GetTaskComments(client CommentReader) Definition {
	tool := mcp.NewTool("get_task_comments",
		mcp.WithDescription("Retrieves the comments on a task."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get Task Comments", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		comments, err := client.GetTaskComments(ctx, taskID)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, commentsMarkdown(taskID, comments), comments, len(comments), "comments")
	}
	return Definition{Tool: tool, Handler: handler}
}

// CreateTaskComment returns the create_task_comment tool.
func CreateTaskComment(client CommentWriter) Definition {
	tool := mcp.NewTool("create_task_comment",
		mcp.WithDescription("Adds a comment to a task."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Create Task Comment"}),
		mcp.WithString("task_id", mcp.Required(), mcp.Description("Task id")),
		mcp.WithString("text", mcp.Required(), mcp.Description("Comment text")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		taskID, err := req.RequireString("task_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := req.RequireString("text")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		comment, err := client.CreateTaskComment(ctx, taskID, text)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		return mcp.NewToolResultText("Comment " + comment.ID + " added to task " + taskID + "."), nil
	}
	return Definition{Tool: tool, Handler: handler}
}

// GetTimeEntries returns the get_time_entries tool, scoped to the configured
// workspace.
func GetTimeEntries(client TimeReader, teamID string) Definition {
	tool := mcp.NewTool("get_time_entries",
		mcp.WithDescription("Retrieves time entries for the configured workspace, optionally bounded to an interval."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Get Time Entries", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithNumber("start_date", mcp.Description("Interval start as millisecond epoch")),
		mcp.WithNumber("end_date", mcp.Description("Interval end as millisecond epoch")),
		mcp.WithString("assignee", mcp.Description("Restrict to one member id")),
		withFormat(),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if teamID == "" {
			return mcp.NewToolResultError("No workspace configured: set CLICKUP_TEAM_ID or clickup.team_id."), nil
		}
		query := clickup.TimeEntryQuery{
			StartDate:  int64(req.GetInt("start_date", 0)),
			EndDate:    int64(req.GetInt("end_date", 0)),
			AssigneeID: req.GetString("assignee", ""),
		}
		entries, err := client.GetTimeEntries(ctx, teamID, query)
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, timeEntriesMarkdown(entries), entries, len(entries), "time entries")
	}
	return Definition{Tool: tool, Handler: handler}
}
