// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/h315uk3/mcp-forge/src/internal/forge/dispatch"
	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/mark3labs/mcp-go/mcp"
)

// makeDispatchHandler builds the MCP tool handler for one generation
// operation. The handler forwards the raw argument bag to the dispatcher,
// which owns validation, sanitization, and generation; every dispatch
// failure comes back as a tool error result rather than a protocol error so
// malformed input never tears down the session.
//
// Parameters:
//   - d: The dispatcher executing the operation
//   - op: Canonical operation name (e.g., "generate_project")
//
// Returns:
//   - A ToolHandler that runs the operation and renders its artifact
//
// For generate_readme, a sanitized output path on the artifact triggers the
// delegated write: the rendered document is persisted below the configured
// output directory and the result notes where it was written.
func makeDispatchHandler(d *dispatch.Dispatcher, op string) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := d.Dispatch(ctx, dispatch.Request{
			Op:   op,
			Args: request.GetArguments(),
		})
		if err != nil {
			return toolErrorResult(err), nil
		}

		artifact := result.Artifact
		if artifact.OutputPath != "" {
			if err := writeArtifact(artifact); err != nil {
				return toolErrorResult(err), nil
			}
			return mcp.NewToolResultText(
				fmt.Sprintf("%sWrote %s.\n", artifact.Text(), artifact.OutputPath)), nil
		}

		return mcp.NewToolResultText(artifact.Text()), nil
	}
}

// toolErrorResult converts a dispatch failure into an MCP tool error result.
// The message leads with the error kind so clients can distinguish unknown
// operations, validation failures, path rejections, template faults, and I/O
// errors without parsing prose.
func toolErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", dispatch.ErrorKind(err), err))
}

// writeArtifact persists a single-file artifact to its sanitized output
// path. Parent directories are created as needed. Failures are reported as
// I/O errors carrying the offending path.
func writeArtifact(artifact *generate.Artifact) error {
	if len(artifact.Files) != 1 {
		return &dispatch.IoError{
			Path: artifact.OutputPath,
			Err:  fmt.Errorf("expected a single file artifact, got %d files", len(artifact.Files)),
		}
	}

	if dir := filepath.Dir(artifact.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &dispatch.IoError{Path: artifact.OutputPath, Err: err}
		}
	}

	content := []byte(artifact.Files[0].Content)
	if err := os.WriteFile(artifact.OutputPath, content, 0644); err != nil {
		return &dispatch.IoError{Path: artifact.OutputPath, Err: err}
	}
	return nil
}

// handleGetResourceUsage provides current resource usage statistics for the server.
// It returns memory usage, garbage collection stats, and system information.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing format and detail options
//
// Returns:
//   - The tool execution result containing resource usage data
//   - An error if data collection or formatting fails
//
// The function supports JSON and markdown output formats and an optional
// detailed memory breakdown.
func handleGetResourceUsage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	detailed := request.GetBool("detailed", false)
	format := request.GetString("format", "json")

	data := CollectResourceUsage(detailed)

	switch format {
	case "markdown":
		return mcp.NewToolResultText(FormatResourceUsageAsMarkdown(data)), nil
	case "json":
		output, err := FormatResourceUsageAsJSON(data)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to format resource usage: %v", err)), nil
		}
		return mcp.NewToolResultText(output), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format %q: use 'json' or 'markdown'", format)), nil
	}
}
