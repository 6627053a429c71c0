// Package clickup implements the client and data model for the ClickUp REST API.
package clickup

// file: internal/clickup/client_test.go

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSendsAuthAndPageParams(t *testing.T) {
	t.Parallel()
	var gotAuth, gotPage, gotPageSize string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPage = r.URL.Query().Get("page")
		gotPageSize = r.URL.Query().Get("page_size")
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"tasks":[{"id":"t1","name":"A","status":{"status":"open"}}]}`))
	}))
	defer srv.Close()

	client := NewClient("pk_test_token", WithBaseURL(srv.URL))
	tasks, err := client.GetTasksPage(context.Background(), "list1", 2, 100, TaskQuery{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "pk_test_token", gotAuth)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, "100", gotPageSize)
}

func TestClientTaskQueryEncoding(t *testing.T) {
	t.Parallel()
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		_, _ = w.Write([]byte(`{"tasks":[]}`))
	}))
	defer srv.Close()

	client := NewClient("tok", WithBaseURL(srv.URL))
	_, err := client.GetTasksPage(context.Background(), "list1", 0, 100, TaskQuery{
		Statuses:      []string{"open", "done"},
		IncludeClosed: true,
		Subtasks:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "done"}, query["statuses[]"])
	assert.Equal(t, []string{"true"}, query["include_closed"])
	assert.Equal(t, []string{"true"}, query["subtasks"])
}

// recordedRequest is what the wrapper-routing fake captures per call.
type recordedRequest struct {
	method string
	path   string
	body   []byte
}

func TestClientWrapperRouting(t *testing.T) {
	t.Parallel()
	var got recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = recordedRequest{method: r.Method, path: r.URL.Path, body: body}
		switch r.URL.Path {
		case "/list/l1":
			_, _ = w.Write([]byte(`{"id":"l1","name":"Backlog","task_count":3}`))
		case "/list/l1/member":
			_, _ = w.Write([]byte(`{"members":[{"id":7,"username":"ana"}]}`))
		case "/team/team1/time_entries":
			_, _ = w.Write([]byte(`{"data":{"id":"e1","duration":"3600000"}}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer srv.Close()
	client := NewClient("tok", WithBaseURL(srv.URL))
	ctx := context.Background()

	t.Run("GetList", func(t *testing.T) {
		list, err := client.GetList(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "/list/l1", got.path)
		assert.Equal(t, "Backlog", list.Name)
		assert.Equal(t, 3, list.TaskCount)
	})

	t.Run("GetListMembers", func(t *testing.T) {
		members, err := client.GetListMembers(ctx, "l1")
		require.NoError(t, err)
		assert.Equal(t, "/list/l1/member", got.path)
		require.Len(t, members, 1)
		assert.Equal(t, "ana", members[0].Username)
	})

	t.Run("DeleteTask", func(t *testing.T) {
		require.NoError(t, client.DeleteTask(ctx, "t1"))
		assert.Equal(t, http.MethodDelete, got.method)
		assert.Equal(t, "/task/t1", got.path)
	})

	t.Run("SetCustomFieldValue", func(t *testing.T) {
		require.NoError(t, client.SetCustomFieldValue(ctx, "t1", "f1", "+15184348128"))
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/task/t1/field/f1", got.path)
		var sent map[string]any
		require.NoError(t, json.Unmarshal(got.body, &sent))
		assert.Equal(t, "+15184348128", sent["value"])
	})

	t.Run("CreateTimeEntry", func(t *testing.T) {
		entry, err := client.CreateTimeEntry(ctx, "team1", TimeEntryCreate{
			TaskID:   "t1",
			Start:    1700000000000,
			Duration: 3600000,
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, got.method)
		assert.Equal(t, "/team/team1/time_entries", got.path)
		var sent map[string]any
		require.NoError(t, json.Unmarshal(got.body, &sent))
		assert.Equal(t, "t1", sent["tid"])
		assert.Equal(t, "e1", entry.ID)
		assert.Equal(t, "3600000", entry.Duration)
	})
}

func TestClientErrorTaxonomy(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name            string
		status          int
		body            string
		messageContains string
	}{
		{name: "bad request", status: 400, body: `{"err":"Status invalid","ECODE":"INPUT_005"}`, messageContains: "rejected the request as invalid: Status invalid"},
		{name: "auth failure", status: 401, body: `{"err":"Token invalid","ECODE":"OAUTH_025"}`, messageContains: "Authentication with ClickUp failed"},
		{name: "permission denied", status: 403, body: `{"err":"No access"}`, messageContains: "Permission denied"},
		{name: "not found", status: 404, body: `{"err":"List not found"}`, messageContains: "not found"},
		{name: "rate limited", status: 429, body: `{"err":"Rate limit reached"}`, messageContains: "Rate limited"},
		{name: "server error", status: 502, body: ``, messageContains: "server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient("tok", WithBaseURL(srv.URL))
			_, err := client.GetTask(context.Background(), "t1")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Contains(t, UserMessage(err), tc.messageContains)
		})
	}
}

func TestClientTimeoutClassification(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient("tok", WithBaseURL(srv.URL),
		WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	_, err := client.GetTask(context.Background(), "t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Contains(t, UserMessage(err), "timed out")
}

func TestClientUnreachableClassification(t *testing.T) {
	t.Parallel()
	// A closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient("tok", WithBaseURL(url))
	_, err := client.GetTask(context.Background(), "t1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnreachable))
	assert.Contains(t, UserMessage(err), "Could not reach ClickUp")
}

func TestUserMessageUnexpectedError(t *testing.T) {
	t.Parallel()
	msg := UserMessage(errors.New("boom"))
	assert.Contains(t, msg, "Unexpected error")
	assert.Contains(t, msg, "boom")
}
