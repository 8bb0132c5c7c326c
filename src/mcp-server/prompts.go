// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createPrompts creates and returns all MCP prompt definitions with their handlers
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("project-scaffolding",
				mcp.WithPromptDescription("Complete workflow for scaffolding a new MCP server project"),
				mcp.WithArgument("project_name",
					mcp.ArgumentDescription("Name of the MCP server project to scaffold"),
				),
				mcp.WithArgument("description",
					mcp.ArgumentDescription("Short description of what the server does"),
				),
			),
			Handler: handleProjectScaffoldingPrompt,
		},
		{
			Prompt: mcp.NewPrompt("tool-authoring",
				mcp.WithPromptDescription("Guided workflow for adding a new tool to an MCP server"),
				mcp.WithArgument("tool_name",
					mcp.ArgumentDescription("Name of the tool to create"),
				),
				mcp.WithArgument("description",
					mcp.ArgumentDescription("What the tool does"),
				),
			),
			Handler: handleToolAuthoringPrompt,
		},
		{
			Prompt: mcp.NewPrompt("resource-authoring",
				mcp.WithPromptDescription("Guided workflow for adding a new resource to an MCP server"),
				mcp.WithArgument("resource_name",
					mcp.ArgumentDescription("Name of the resource to create"),
				),
				mcp.WithArgument("resource_type",
					mcp.ArgumentDescription("Resource content type: 'text', 'binary', or 'json' (default: text)"),
				),
			),
			Handler: handleResourceAuthoringPrompt,
		},
		{
			Prompt: mcp.NewPrompt("manifest-review",
				mcp.WithPromptDescription("Review and validate a server manifest before publication"),
				mcp.WithArgument("manifest_content",
					mcp.ArgumentDescription("Manifest document as a JSON string"),
				),
			),
			Handler: handleManifestReviewPrompt,
		},
		{
			Prompt: mcp.NewPrompt("readme-generation",
				mcp.WithPromptDescription("Generate project documentation from server metadata"),
				mcp.WithArgument("project_name",
					mcp.ArgumentDescription("Name of the project to document"),
				),
			),
			Handler: handleReadmeGenerationPrompt,
		},
		{
			Prompt: mcp.NewPrompt("advanced-tool-implementation",
				mcp.WithPromptDescription("Patterns for implementing tools beyond the generated stub"),
				mcp.WithArgument("tool_name",
					mcp.ArgumentDescription("Name of the tool being implemented"),
				),
			),
			Handler: handleAdvancedToolPrompt,
		},
		{
			Prompt: mcp.NewPrompt("error-handling-patterns",
				mcp.WithPromptDescription("Error handling conventions for generated MCP servers"),
			),
			Handler: handleErrorHandlingPrompt,
		},
		{
			Prompt: mcp.NewPrompt("async-patterns",
				mcp.WithPromptDescription("Concurrency and cancellation patterns for long-running tools"),
			),
			Handler: handleAsyncPatternsPrompt,
		},
		{
			Prompt: mcp.NewPrompt("testing-strategies",
				mcp.WithPromptDescription("Testing approaches for generated MCP servers"),
			),
			Handler: handleTestingStrategiesPrompt,
		},
		{
			Prompt: mcp.NewPrompt("troubleshooting",
				mcp.WithPromptDescription("Troubleshoot common generation and validation issues"),
				mcp.WithArgument("issue_type",
					mcp.ArgumentDescription("Type of issue: 'naming', 'validation', 'templates', 'output'"),
				),
				mcp.WithArgument("detail",
					mcp.ArgumentDescription("The rejected input or error message you received"),
				),
			),
			Handler: handleTroubleshootingPrompt,
		},
	}
}
