// Package tools defines the MCP tool surface of the server: tool
// declarations, their handlers, and the response shaping (markdown or JSON,
// bounded by the truncation budget) every handler goes through.
//
// Handlers return user-facing failures as tool error results; a non-nil Go
// error escapes a handler only for internal faults, which the protocol
// layer's recovery middleware converts to a generic message.
package tools

// file: internal/tools/tools.go

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/dkoosis/clickup-mcp/internal/clickup"
	"github.com/dkoosis/clickup-mcp/internal/logging"
	"github.com/dkoosis/clickup-mcp/internal/middleware"
	"github.com/dkoosis/clickup-mcp/internal/truncate"
)

// Output format selector values.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Definition pairs a tool declaration with its handler.
type Definition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// Server wraps the MCP protocol server with this package's toolset.
type Server struct {
	mcpServer *server.MCPServer
}

// NewServer assembles the MCP server: every tool in defs is registered and
// guarded by schema validation of its arguments.
func NewServer(name, version string, defs []Definition, logger logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}

	declared := make([]mcp.Tool, 0, len(defs))
	for _, def := range defs {
		declared = append(declared, def.Tool)
	}
	validator, err := middleware.NewToolValidator(declared, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tool argument validator")
	}

	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithToolHandlerMiddleware(validator.Middleware()),
		server.WithRecovery(),
	)
	for _, def := range defs {
		s.AddTool(def.Tool, def.Handler)
	}
	return &Server{mcpServer: s}, nil
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// DefaultToolset returns every tool this server exposes, bound to the given
// client. teamID scopes the time-entry tools; it may be empty, in which case
// those tools report the missing configuration when called.
func DefaultToolset(client *clickup.Client, teamID string, logger logging.Logger) []Definition {
	if teamID == "" {
		teamID = client.TeamID()
	}
	return []Definition{
		GetTask(client),
		GetTasks(client),
		CreateTask(client),
		UpdateTask(client),
		DeleteTask(client),
		GetWorkspaceHierarchy(client),
		GetListCustomFields(client),
		GetTaskComments(client),
		CreateTaskComment(client),
		GetTimeEntries(client, teamID),
		CountTasksByStatus(client, logger),
		ExportTasksCSV(client, logger),
	}
}

// finishResponse renders the selected output format and bounds it to the
// response budget, appending the truncation warning when content was cut.
func finishResponse(format, markdown string, jsonPayload any, itemCount int, itemLabel string) (*mcp.CallToolResult, error) {
	var body string
	if format == FormatJSON {
		encoded, err := json.MarshalIndent(jsonPayload, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode JSON response")
		}
		body = string(encoded)
	} else {
		body = markdown
	}

	body, info := truncate.Truncate(body, itemCount, itemLabel)
	if info != nil {
		body += "\n\n" + info.Message
	}
	return mcp.NewToolResultText(body), nil
}

// toBoolPtr adapts a literal for the *bool fields of mcp.ToolAnnotation.
func toBoolPtr(b bool) *bool { return &b }

// withFormat declares the shared output-format parameter.
func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format"),
		mcp.Enum(FormatMarkdown, FormatJSON),
	)
}
