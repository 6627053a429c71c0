package tools

// file: internal/tools/reports.go

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/export"
	"github.com/dkoosis/clickup-mcp/internal/logging"
	"github.com/dkoosis/clickup-mcp/internal/scan"
)

// statusCountResponse is the JSON payload of count_tasks_by_status.
type statusCountResponse struct {
	ListID string           `json:"list_id"`
	Counts scan.StatusCount `json:"counts"`
}

// CountTasksByStatus returns the count_tasks_by_status tool: a full scan of
// the list followed by a per-status tally. The by-status counts always sum
// to the total, with or without a status filter.
func CountTasksByStatus(pager scan.Pager, logger logging.Logger) Definition {
	tool := mcp.NewTool("count_tasks_by_status",
		mcp.WithDescription("Counts every task in a list grouped by status. Scans the whole list, so it may issue several upstream requests."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Count Tasks by Status", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
		mcp.WithArray("statuses", mcp.Description("Restrict the tally to these status names (case-insensitive)"),
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

		scanner := scan.NewScanner(pager, logger)
		tasks, err := scanner.ScanList(ctx, listID, scan.Options{
			Statuses:      req.GetStringSlice("statuses", nil),
			IncludeClosed: req.GetBool("include_closed", false),
			Subtasks:      req.GetBool("subtasks", false),
		})
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}

		agg := scan.CountByStatus(tasks)
		payload := statusCountResponse{ListID: listID, Counts: agg}
		outputFormat := req.GetString("format", FormatMarkdown)
		return finishResponse(outputFormat, statusCountMarkdown(listID, agg), payload, agg.Total, "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}

// ExportTasksCSV returns the export_tasks_csv tool: a full scan of the list
// denormalized into CSV rows. The response is the raw CSV text; an empty
// result set yields a literal "no results" message instead of a header-only
// document.
func ExportTasksCSV(pager scan.Pager, logger logging.Logger) Definition {
	tool := mcp.NewTool("export_tasks_csv",
		mcp.WithDescription("Exports every task in a list as CSV. Standard columns first, then custom-field columns "+
			"(union of observed field names unless custom_fields narrows them)."),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{Title: "Export Tasks as CSV", ReadOnlyHint: toBoolPtr(true)}),
		mcp.WithString("list_id", mcp.Required(), mcp.Description("List id")),
		mcp.WithArray("statuses", mcp.Description("Restrict to these status names (case-insensitive)"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithArray("custom_fields", mcp.Description("Only export these custom-field columns, in this order"),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithBoolean("standard_fields", mcp.Description("Include the standard task columns (default true)")),
		mcp.WithBoolean("include_closed", mcp.Description("Include closed tasks")),
		mcp.WithBoolean("subtasks", mcp.Description("Include subtasks")),
	)
	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		listID, err := req.RequireString("list_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		scanner := scan.NewScanner(pager, logger)
		tasks, err := scanner.ScanList(ctx, listID, scan.Options{
			Statuses:      req.GetStringSlice("statuses", nil),
			IncludeClosed: req.GetBool("include_closed", false),
			Subtasks:      req.GetBool("subtasks", false),
		})
		if err != nil {
			return mcp.NewToolResultError(clickup.UserMessage(err)), nil
		}

		doc := export.Tasks(tasks, export.Options{
			StandardFields: req.GetBool("standard_fields", true),
			CustomFields:   req.GetStringSlice("custom_fields", nil),
		})
		if doc == "" {
			return mcp.NewToolResultText("No tasks found to export."), nil
		}
		return finishResponse(FormatMarkdown, doc, nil, len(tasks), "tasks")
	}
	return Definition{Tool: tool, Handler: handler}
}
