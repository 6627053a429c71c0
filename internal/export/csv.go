// Package export turns a full-scan row set into a CSV document with a
// stable, configurable column order.
//
// The cell escaping rule is deliberately hand-rolled rather than delegated
// to encoding/csv: cells are quoted if and only if they contain a comma,
// a double quote, or a newline, rows are joined with plain "\n", and an
// empty row set yields the empty string, not a header-only document.
package export

// file: internal/export/csv.go

import (
	"strings"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/format"
)

// StandardColumns is the fixed order of the standard task columns.
var StandardColumns = []string{
	"ID", "Name", "Status", "Created", "Updated", "URL",
	"Assignees", "Creator", "Due Date", "Priority", "Description", "Tags",
}

// Options controls which columns an export produces.
type Options struct {
	// StandardFields includes the StandardColumns block before any custom
	// columns.
	StandardFields bool
	// CustomFields, when non-empty, restricts custom columns to the named
	// fields, in the caller's order; names that occur on no row are dropped.
	// When empty, the columns are the union of field names observed across
	// all rows, in first-seen order.
	CustomFields []string
}

// Tasks renders the rows as a CSV document. An empty row set returns the
// empty string: callers must treat that as "nothing to export".
func Tasks(rows []clickup.Task, opts Options) string {
	if len(rows) == 0 {
		return ""
	}

	customColumns := selectCustomColumns(rows, opts.CustomFields)

	var header []string
	if opts.StandardFields {
		header = append(header, StandardColumns...)
	}
	header = append(header, customColumns...)

	var b strings.Builder
	writeRecord(&b, header)
	for _, task := range rows {
		record := make([]string, 0, len(header))
		if opts.StandardFields {
			record = append(record, standardCells(task)...)
		}
		for _, name := range customColumns {
			record = append(record, customCell(task, name))
		}
		writeRecord(&b, record)
	}
	return b.String()
}

// selectCustomColumns resolves the custom-column set: either the caller's
// inclusion list filtered to names that actually occur, or the first-seen
// union across all rows.
func selectCustomColumns(rows []clickup.Task, requested []string) []string {
	occurring := make(map[string]struct{})
	var firstSeen []string
	for _, task := range rows {
		for _, field := range task.CustomFields {
			if _, seen := occurring[field.Name]; !seen {
				occurring[field.Name] = struct{}{}
				firstSeen = append(firstSeen, field.Name)
			}
		}
	}

	if len(requested) == 0 {
		return firstSeen
	}
	columns := make([]string, 0, len(requested))
	for _, name := range requested {
		if _, ok := occurring[name]; ok {
			columns = append(columns, name)
		}
	}
	return columns
}

// standardCells produces the fixed-column values for one task, aligned with
// StandardColumns.
func standardCells(task clickup.Task) []string {
	assignees := make([]string, 0, len(task.Assignees))
	for _, a := range task.Assignees {
		assignees = append(assignees, a.Username)
	}
	tags := make([]string, 0, len(task.Tags))
	for _, t := range task.Tags {
		tags = append(tags, t.Name)
	}
	priority := ""
	if task.Priority != nil {
		priority = task.Priority.Priority
	}
	return []string{
		task.ID,
		task.Name,
		task.Status.Status,
		task.DateCreated,
		task.DateUpdated,
		task.URL,
		strings.Join(assignees, "; "),
		task.Creator.Username,
		task.DueDate,
		priority,
		task.Description,
		strings.Join(tags, "; "),
	}
}

// customCell extracts the display value of the named custom field on a task,
// or an empty cell when the task lacks the field.
func customCell(task clickup.Task, name string) string {
	for _, field := range task.CustomFields {
		if field.Name == name {
			return format.CustomFieldValue(field)
		}
	}
	return ""
}

// writeRecord appends one escaped CSV record and its trailing newline.
func writeRecord(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeCell(cell))
	}
	b.WriteByte('\n')
}

// escapeCell wraps a value in double quotes, doubling internal quotes, if
// and only if it contains a comma, a double quote, or a newline.
func escapeCell(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
