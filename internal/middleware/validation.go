// Package middleware provides chainable handlers for processing MCP tool
// calls, like argument validation.
package middleware

// file: internal/middleware/validation.go

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dkoosis/clickup-mcp/internal/logging"
)

// ToolValidator validates tool-call arguments against each tool's input
// schema before the handler runs. Schemas are compiled once at startup;
// validation failures become tool error results, never handler panics.
type ToolValidator struct {
	schemas map[string]*jsonschema.Schema
	logger  logging.Logger
}

// NewToolValidator compiles the input schema of every given tool.
func NewToolValidator(tools []mcp.Tool, logger logging.Logger) (*ToolValidator, error) {
	if logger == nil {
		logger = logging.GetNoopLogger()
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	schemas := make(map[string]*jsonschema.Schema, len(tools))
	for _, tool := range tools {
		raw, err := json.Marshal(tool.InputSchema)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal input schema for tool %q", tool.Name)
		}
		url := "mem://tools/" + tool.Name + ".json"
		if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
			return nil, errors.Wrapf(err, "failed to add schema resource for tool %q", tool.Name)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compile input schema for tool %q", tool.Name)
		}
		schemas[tool.Name] = schema
	}
	return &ToolValidator{schemas: schemas, logger: logger}, nil
}

// Validate checks raw arguments for the named tool. Tools without a compiled
// schema pass through.
func (v *ToolValidator) Validate(toolName string, args map[string]any) error {
	schema, ok := v.schemas[toolName]
	if !ok {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}
	// jsonschema validates decoded JSON values; round-trip to normalize
	// argument types the protocol layer may have widened.
	raw, err := json.Marshal(args)
	if err != nil {
		return errors.Wrap(err, "failed to encode tool arguments for validation")
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return errors.Wrap(err, "failed to decode tool arguments for validation")
	}
	if err := schema.Validate(decoded); err != nil {
		return errors.Wrapf(err, "invalid arguments for tool %q", toolName)
	}
	return nil
}

// Middleware wraps tool handlers with argument validation.
func (v *ToolValidator) Middleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			if err := v.Validate(req.Params.Name, req.GetArguments()); err != nil {
				v.logger.Debug("Tool arguments failed schema validation.", "tool", req.Params.Name, "error", err)
				return mcp.NewToolResultError(err.Error()), nil
			}
			return next(ctx, req)
		}
	}
}
