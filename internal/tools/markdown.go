package tools

// file: internal/tools/markdown.go

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/format"
	"github.com/dkoosis/clickup-mcp/internal/paginate"
	"github.com/dkoosis/clickup-mcp/internal/scan"
)

// fmtTimestamp renders a ClickUp millisecond-epoch string as a readable
// date, passing unparseable values through untouched.
func fmtTimestamp(ms string) string {
	if ms == "" {
		return ""
	}
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return ms
	}
	return time.UnixMilli(n).UTC().Format("2006-01-02 15:04")
}

// joinUsers renders usernames comma-separated.
func joinUsers(users []clickup.User) string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return strings.Join(names, ", ")
}

// taskSummaryMarkdown renders one task as a list-view section.
func taskSummaryMarkdown(b *strings.Builder, t clickup.Task) {
	fmt.Fprintf(b, "## %s\n\n", t.Name)
	fmt.Fprintf(b, "- ID: %s\n", t.ID)
	fmt.Fprintf(b, "- Status: %s\n", t.Status.Status)
	if t.Priority != nil {
		fmt.Fprintf(b, "- Priority: %s\n", t.Priority.Priority)
	}
	if t.DueDate != "" {
		fmt.Fprintf(b, "- Due: %s\n", fmtTimestamp(t.DueDate))
	}
	if len(t.Assignees) > 0 {
		fmt.Fprintf(b, "- Assignees: %s\n", joinUsers(t.Assignees))
	}
	if t.URL != "" {
		fmt.Fprintf(b, "- URL: %s\n", t.URL)
	}
	b.WriteString("\n")
}

// tasksMarkdown renders a page of tasks.
func tasksMarkdown(tasks []clickup.Task, info paginate.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tasks (%d)\n\n", len(tasks))
	if len(tasks) == 0 {
		b.WriteString("No tasks found.\n")
	}
	for _, t := range tasks {
		taskSummaryMarkdown(&b, t)
	}
	b.WriteString(paginationFooter(info))
	return b.String()
}

// paginationFooter surfaces the continuation contract in the markdown view:
// count, offset, has_more, and the next_offset to resume with.
func paginationFooter(info paginate.Info) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "count: %d | offset: %d | has_more: %t", info.Count, info.Offset, info.HasMore)
	if info.NextOffset != nil {
		fmt.Fprintf(&b, " | next_offset: %d", *info.NextOffset)
	}
	b.WriteString("\n")
	return b.String()
}

// taskDetailMarkdown renders a single task with its custom fields.
func taskDetailMarkdown(t *clickup.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Name)
	fmt.Fprintf(&b, "- ID: %s\n", t.ID)
	if t.CustomID != "" {
		fmt.Fprintf(&b, "- Custom ID: %s\n", t.CustomID)
	}
	fmt.Fprintf(&b, "- Status: %s\n", t.Status.Status)
	fmt.Fprintf(&b, "- List: %s\n", t.List.Name)
	fmt.Fprintf(&b, "- Created: %s\n", fmtTimestamp(t.DateCreated))
	fmt.Fprintf(&b, "- Updated: %s\n", fmtTimestamp(t.DateUpdated))
	if t.DueDate != "" {
		fmt.Fprintf(&b, "- Due: %s\n", fmtTimestamp(t.DueDate))
	}
	if t.Priority != nil {
		fmt.Fprintf(&b, "- Priority: %s\n", t.Priority.Priority)
	}
	if len(t.Assignees) > 0 {
		fmt.Fprintf(&b, "- Assignees: %s\n", joinUsers(t.Assignees))
	}
	if t.Creator.Username != "" {
		fmt.Fprintf(&b, "- Creator: %s\n", t.Creator.Username)
	}
	if len(t.Tags) > 0 {
		names := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			names = append(names, tag.Name)
		}
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(names, ", "))
	}
	if t.URL != "" {
		fmt.Fprintf(&b, "- URL: %s\n", t.URL)
	}
	if t.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", t.Description)
	}
	if len(t.CustomFields) > 0 {
		b.WriteString("\n## Custom Fields\n\n")
		for _, field := range t.CustomFields {
			value := format.CustomFieldValue(field)
			if value == "" {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s\n", field.Name, value)
		}
	}
	return b.String()
}

// hierarchyMarkdown renders the workspace tree: spaces, folders, lists.
func hierarchyMarkdown(teamName string, spaces []spaceNode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Workspace: %s\n\n", teamName)
	for _, space := range spaces {
		fmt.Fprintf(&b, "## Space: %s (%s)\n\n", space.Space.Name, space.Space.ID)
		for _, folder := range space.Folders {
			fmt.Fprintf(&b, "- Folder: %s (%s)\n", folder.Name, folder.ID)
			for _, list := range folder.Lists {
				fmt.Fprintf(&b, "  - List: %s (%s), %d tasks\n", list.Name, list.ID, list.TaskCount)
			}
		}
		for _, list := range space.Lists {
			fmt.Fprintf(&b, "- List: %s (%s), %d tasks\n", list.Name, list.ID, list.TaskCount)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// commentsMarkdown renders a task's comment thread.
func commentsMarkdown(taskID string, comments []clickup.Comment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Comments on %s (%d)\n\n", taskID, len(comments))
	if len(comments) == 0 {
		b.WriteString("No comments.\n")
	}
	for _, c := range comments {
		fmt.Fprintf(&b, "## %s at %s\n\n%s\n\n", c.User.Username, fmtTimestamp(c.Date), c.CommentText)
	}
	return b.String()
}

// timeEntriesMarkdown renders a set of time entries.
func timeEntriesMarkdown(entries []clickup.TimeEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Time Entries (%d)\n\n", len(entries))
	if len(entries) == 0 {
		b.WriteString("No time entries found.\n")
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s: %s on %s (%s ms)", e.User.Username, fmtTimestamp(e.Start), e.Task.Name, e.Duration)
		if e.Description != "" {
			fmt.Fprintf(&b, " - %s", e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// statusCountMarkdown renders a status aggregate with statuses in
// deterministic order.
func statusCountMarkdown(listID string, agg scan.StatusCount) string {
	names := make([]string, 0, len(agg.ByStatus))
	for name := range agg.ByStatus {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "# Task Counts for List %s\n\n", listID)
	fmt.Fprintf(&b, "Total: %d\n\n", agg.Total)
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %d\n", name, agg.ByStatus[name])
	}
	return b.String()
}

// customFieldsMarkdown renders a list's custom-field definitions.
func customFieldsMarkdown(listID string, fields []clickup.CustomField) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Custom Fields for List %s (%d)\n\n", listID, len(fields))
	for _, f := range fields {
		fmt.Fprintf(&b, "- %s (%s): type %s\n", f.Name, f.ID, f.Type)
	}
	return b.String()
}
