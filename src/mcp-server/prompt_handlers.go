// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// handleProjectScaffoldingPrompt handles the project scaffolding workflow prompt.
//
// This function implements the project-scaffolding prompt, which walks users
// through creating a complete MCP server project skeleton: scaffolding the
// layout, adding the first tool, and producing documentation.
//
// Parameters:
//   - ctx: Context for the request, used for cancellation and timeouts
//   - request: The MCP get prompt request containing arguments
//
// Returns:
//   - *mcp.GetPromptResult: The prompt result with workflow messages
//   - error: Any error that occurred during prompt handling
//
// Expected arguments in request.Params.Arguments:
//   - project_name: Name of the MCP server project to scaffold
//   - description: Short description of what the server does
func handleProjectScaffoldingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectName := request.Params.Arguments["project_name"]
	description := request.Params.Arguments["description"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll help you scaffold a new MCP server project: %s (%s)

Let's start with the base skeleton:`, projectName, description)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`1. First, generate the complete project skeleton with module wiring, server setup, and registration files.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_project" tool with the project name and description. Pick an identifier made of lowercase letters, digits, hyphens, or underscores.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`2. Next, add the tools the server should expose.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_tool" tool once per tool to produce handler stubs you can fill in.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`3. Generate the project documentation.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_readme" tool to produce a README covering the generated tools and resources.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`4. Review the generated files and wire your business logic into the handler stubs.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Project Scaffolding Workflow",
		messages,
	), nil
}

// handleToolAuthoringPrompt handles the tool authoring workflow prompt.
func handleToolAuthoringPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	toolName := request.Params.Arguments["tool_name"]
	description := request.Params.Arguments["description"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll help you add a new tool "%s" to your MCP server: %s`, toolName, description)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_tool" tool to produce the tool definition and handler stub.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Key conventions for the generated code:
• The tool name must be a valid identifier (lowercase letters, digits, hyphens, underscores)
• The handler receives a context and the call request, and returns a result or an error
• Report user-facing failures as tool error results, not Go errors
• Register the tool in the server's registration file alongside the existing ones`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`After generating, implement the handler body and add a test exercising the tool through an in-process client.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Tool Authoring Workflow",
		messages,
	), nil
}

// handleResourceAuthoringPrompt handles the resource authoring workflow prompt.
func handleResourceAuthoringPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	resourceName := request.Params.Arguments["resource_name"]
	resourceType := request.Params.Arguments["resource_type"]
	if resourceType == "" {
		resourceType = "text"
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll help you add a new %s resource "%s" to your MCP server.`, resourceType, resourceName)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_resource" tool with the resource name and type to produce the resource definition and read handler.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Resource type determines the handler shape:
• text — serves plain UTF-8 content with a text/plain MIME type
• binary — serves base64-encoded content with an octet-stream MIME type
• json — serves structured content with an application/json MIME type`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Based on the generated stub, implement the read handler and register the resource with its URI.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Resource Authoring Workflow",
		messages,
	), nil
}

// handleManifestReviewPrompt handles the manifest review prompt.
func handleManifestReviewPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	manifestJSON := request.Params.Arguments["manifest_content"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll review this server manifest before publication:

%s`, manifestJSON)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "validate_manifest" tool to check the manifest against the publication rules. The tool reports all violations at once rather than stopping at the first.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Things the validation covers:
• Required fields are present and non-empty
• The name is a safe identifier with no path separators or traversal sequences
• Field lengths stay within the publication limits
• Declared capabilities use known values`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`An invalid manifest still produces a full report, so fix every listed violation and validate again until the report is clean.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Manifest Review",
		messages,
	), nil
}

// handleReadmeGenerationPrompt handles the readme generation prompt.
func handleReadmeGenerationPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectName := request.Params.Arguments["project_name"]

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`I'll generate documentation for: %s`, projectName)),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Use the "generate_readme" tool with the project name, description, and the lists of tools and resources the server exposes.`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`The generated README includes:
• Project overview and description
• Installation and build instructions
• A table of exposed tools and their descriptions
• A table of exposed resources and their URIs`),
		),
	}

	return mcp.NewGetPromptResult(
		"README Generation",
		messages,
	), nil
}

// handleAdvancedToolPrompt handles the advanced tool implementation prompt.
func handleAdvancedToolPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	toolName := request.Params.Arguments["tool_name"]
	if toolName == "" {
		toolName = "your tool"
	}

	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(fmt.Sprintf(`Let's take %s beyond the generated stub.`, toolName)),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Patterns worth applying once the stub works:
• Validate every argument up front and report all problems in one error result
• Keep the handler thin: parse arguments, call a package-level function, format the result
• Accept the request context and pass it to anything that blocks
• Return rich text content for humans and structured content for machines
• Keep tool names and argument names stable once clients depend on them`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Read "forge://docs/getting-started" for the full conventions the generated scaffold follows.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Advanced Tool Implementation",
		messages,
	), nil
}

// handleErrorHandlingPrompt handles the error handling patterns prompt.
func handleErrorHandlingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Error handling conventions for generated MCP servers:`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`• User mistakes (bad arguments, unknown names, rejected paths) become tool error results with an actionable message
• Infrastructure failures (template compile, file writes) become Go errors wrapped with %w and context
• Collect every validation violation before responding instead of stopping at the first
• Classify failures consistently: not-found, validation, path safety, template, IO, internal
• A report about invalid input is a successful result; only a malformed request is an error`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`Call "validate_manifest" with a broken manifest to see the report-not-error convention in action.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Error Handling Patterns",
		messages,
	), nil
}

// handleAsyncPatternsPrompt handles the concurrency patterns prompt.
func handleAsyncPatternsPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Concurrency patterns for long-running tools:`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`• Honor the request context: check ctx.Err() between expensive steps and pass ctx to blocking calls
• Bound concurrent work with a semaphore channel rather than unbounded goroutines
• Use sync.WaitGroup to drain in-flight work during shutdown
• Never share mutable state between handlers without a mutex; prefer immutable lookup tables built at startup
• Send progress as notifications so the client is not left waiting silently`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`When generating a tool that does slow work, keep the generated handler shape and move the slow part behind a context-aware function.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Async and Concurrency Patterns",
		messages,
	), nil
}

// handleTestingStrategiesPrompt handles the testing strategies prompt.
func handleTestingStrategiesPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	messages := []mcp.PromptMessage{
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`Testing approaches for generated MCP servers:`),
		),
		mcp.NewPromptMessage(
			mcp.RoleAssistant,
			mcp.NewTextContent(`• Exercise tools end to end through an in-process test client instead of calling handlers directly
• Use table-driven tests: tool name, arguments, substrings the result must contain
• Cover the failure rows too: missing arguments, rejected names, traversal paths
• Point file-writing tools at a temporary directory and assert on the written bytes
• Keep generated _test.go stubs next to the handler they exercise`),
		),
		mcp.NewPromptMessage(
			mcp.RoleUser,
			mcp.NewTextContent(`The "generate_tool" tool emits a matching test stub alongside every handler stub as a starting point.`),
		),
	}

	return mcp.NewGetPromptResult(
		"Testing Strategies",
		messages,
	), nil
}

// handleTroubleshootingPrompt handles the troubleshooting prompt
func handleTroubleshootingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	issueType := request.Params.Arguments["issue_type"]
	detail := request.Params.Arguments["detail"]

	var messages []mcp.PromptMessage

	switch issueType {
	case "naming":
		messages = []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf(`Troubleshooting a rejected name: %s`, detail)),
			),
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(`Common naming issues:
• Uppercase letters, spaces, or punctuation outside [a-z0-9_-]
• Names starting with a digit, hyphen, or underscore
• Path separators or ".." sequences in the name
• Names longer than the configured maximum`),
			),
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(`Rename the input to a lowercase identifier and retry the generation tool.`),
			),
		}
	case "validation":
		messages = []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf(`Troubleshooting argument validation failures: %s`, detail)),
			),
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(`Common validation issues:
• Required argument missing or empty
• Value not in the allowed set for an enum argument
• Value exceeding the maximum length
• Wrong argument name (check the tool's input schema)`),
			),
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(`The error message lists every violation. Fix them all and call the tool again.`),
			),
		}
	case "templates":
		messages = []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf(`Troubleshooting template rendering issues: %s`, detail)),
			),
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(`Common template issues:
• A template slot left unfilled by the provided arguments
• Referencing a template name that is not embedded in the server
• Stale template content after upgrading the server binary`),
			),
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(`Read the template through its "forge://templates/" resource to inspect the slots it expects.`),
			),
		}
	case "output":
		messages = []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(fmt.Sprintf(`Troubleshooting output writing issues: %s`, detail)),
			),
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(`Common output issues:
• Output directory not writable by the server process
• Output path escaping the configured base directory
• Disk full or filesystem errors
• MCP_FORGE_OUTPUT_DIR pointing at a non-existent location`),
			),
			mcp.NewPromptMessage(
				mcp.RoleUser,
				mcp.NewTextContent(`Check the configured output directory in the "status://server-status" resource, then retry.`),
			),
		}
	default:
		messages = []mcp.PromptMessage{
			mcp.NewPromptMessage(
				mcp.RoleAssistant,
				mcp.NewTextContent(`Please specify a valid issue type: 'naming', 'validation', 'templates', or 'output'.`),
			),
		}
	}

	return mcp.NewGetPromptResult(
		"Generation Troubleshooting Guide",
		messages,
	), nil
}
