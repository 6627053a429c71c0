package tools

// file: internal/tools/reports_test.go

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/scan"
)

// fakeScanPager serves canned pages to the full-scan tools.
type fakeScanPager struct {
	pages [][]clickup.Task
	calls int
}

func (f *fakeScanPager) GetTasksPage(_ context.Context, _ string, page, _ int, _ clickup.TaskQuery) ([]clickup.Task, error) {
	f.calls++
	if page >= len(f.pages) {
		return nil, nil
	}
	return f.pages[page], nil
}

func scanPages(counts []int, statuses ...string) [][]clickup.Task {
	pages := make([][]clickup.Task, len(counts))
	seq := 0
	for p, n := range counts {
		pages[p] = make([]clickup.Task, n)
		for i := range pages[p] {
			pages[p][i] = clickup.Task{
				ID:     "t",
				Name:   "Task",
				Status: clickup.Status{Status: statuses[seq%len(statuses)]},
			}
			seq++
		}
	}
	return pages
}

func TestCountTasksByStatusFullScan(t *testing.T) {
	t.Parallel()
	pager := &fakeScanPager{pages: scanPages([]int{100, 100, 25}, "open", "in progress", "done")}
	def := CountTasksByStatus(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("count_tasks_by_status", map[string]any{
		"list_id": "l1",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, 3, pager.calls, "225 tasks must cost exactly three upstream requests")

	text := resultText(t, res)
	assert.Contains(t, text, "Total: 225")
	assert.Contains(t, text, "- open: 75")
	assert.Contains(t, text, "- in progress: 75")
	assert.Contains(t, text, "- done: 75")
}

func TestCountTasksByStatusJSONInvariant(t *testing.T) {
	t.Parallel()
	pager := &fakeScanPager{pages: scanPages([]int{100, 100, 25}, "Open", "DONE")}
	def := CountTasksByStatus(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("count_tasks_by_status", map[string]any{
		"list_id": "l1",
		"format":  "json",
	}))
	require.NoError(t, err)

	var payload struct {
		ListID string           `json:"list_id"`
		Counts scan.StatusCount `json:"counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, "l1", payload.ListID)
	assert.Equal(t, 225, payload.Counts.Total)
	sum := 0
	for _, n := range payload.Counts.ByStatus {
		sum += n
	}
	assert.Equal(t, payload.Counts.Total, sum, "by-status counts must sum to the total")
}

func TestCountTasksByStatusFiltered(t *testing.T) {
	t.Parallel()
	pager := &fakeScanPager{pages: scanPages([]int{10}, "Open", "In Progress")}
	def := CountTasksByStatus(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("count_tasks_by_status", map[string]any{
		"list_id":  "l1",
		"statuses": []any{"OPEN"},
	}))
	require.NoError(t, err)
	text := resultText(t, res)
	assert.Contains(t, text, "Total: 5")
	assert.Contains(t, text, "- open: 5")
	assert.NotContains(t, text, "in progress")
}

func TestExportTasksCSV(t *testing.T) {
	t.Parallel()
	var phone clickup.FieldValue
	require.NoError(t, json.Unmarshal([]byte(`"(623) 258-3673"`), &phone))
	pages := scanPages([]int{2}, "open")
	pages[0][0].CustomFields = []clickup.CustomField{
		{ID: "f1", Name: "Phone", Type: clickup.FieldTypePhone, Value: phone},
	}
	pager := &fakeScanPager{pages: pages}
	def := ExportTasksCSV(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("export_tasks_csv", map[string]any{
		"list_id": "l1",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	lines := strings.Split(strings.TrimRight(resultText(t, res), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one row per task")
	assert.True(t, strings.HasSuffix(lines[0], ",Phone"))
	assert.Contains(t, lines[1], "+16232583673")
}

func TestExportTasksCSVEmptyList(t *testing.T) {
	t.Parallel()
	pager := &fakeScanPager{}
	def := ExportTasksCSV(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("export_tasks_csv", map[string]any{
		"list_id": "l1",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "No tasks found to export.", resultText(t, res))
}

func TestExportTasksCSVExplicitColumns(t *testing.T) {
	t.Parallel()
	var budget clickup.FieldValue
	require.NoError(t, json.Unmarshal([]byte(`42`), &budget))
	pages := scanPages([]int{1}, "open")
	pages[0][0].CustomFields = []clickup.CustomField{
		{ID: "f1", Name: "Budget", Type: clickup.FieldTypeNumber, Value: budget},
	}
	pager := &fakeScanPager{pages: pages}
	def := ExportTasksCSV(pager, nil)

	res, err := def.Handler(context.Background(), callRequest("export_tasks_csv", map[string]any{
		"list_id":         "l1",
		"standard_fields": false,
		"custom_fields":   []any{"Budget"},
	}))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(resultText(t, res), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Budget", lines[0])
	assert.Equal(t, "42", lines[1])
}
