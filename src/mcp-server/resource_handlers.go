// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/h315uk3/mcp-forge/src/version"
	"github.com/mark3labs/mcp-go/mcp"
)

// makeTemplateResourceHandler builds a resource handler that serves one
// embedded scaffold template verbatim.
//
// Parameters:
//   - uri: The resource URI the content is reported under
//   - file: The embedded template file to serve
//
// Returns:
//   - A ResourceHandler serving the template as plain text
//
// Templates are served raw, slots included, so clients can see exactly what
// the generators will render before calling them.
func makeTemplateResourceHandler(uri, file string) ResourceHandler {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		content, err := templates.MagicEmbed.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read scaffold template %s: %w", file, err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     string(content),
			},
		}, nil
	}
}

// handleVersionResource handles requests for version information resource.
// It provides server metadata including version, capabilities, and supported features.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for version information
//
// Returns:
//   - A slice containing version and capability information as JSON content
//   - An error if JSON marshaling fails
//
// The resource includes server name, version, and the tools, resources, and
// prompts registered with the server. Capabilities are loaded from the
// metadata cache populated during server construction.
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	// Load capability metadata from the cache
	prompts, err := loadPromptsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts config: %w", err)
	}

	tools, err := loadToolsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tools config: %w", err)
	}

	resources, err := loadResourcesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load resources config: %w", err)
	}

	versionInfo := map[string]any{
		"name":    "MCP Forge",
		"version": version.Version,
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     tools,
			"resources": resources,
			"prompts":   prompts,
		},
		"resourceTypes": []string{"text", "binary", "json"},
	}

	jsonData, err := json.MarshalIndent(versionInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal version info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "forge://info/version",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleGettingStartedResource handles requests for the getting-started guide resource.
// It serves embedded documentation describing how to generate and run a project.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for the guide
//
// Returns:
//   - A slice containing the guide as markdown content
//   - An error if the embedded file cannot be read
//
// The guide is stored in templates/getting-started.md and covers the
// generation tools, naming rules, and how to build the generated project.
func handleGettingStartedResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("getting-started.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read getting-started guide: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "forge://docs/getting-started",
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

// handleStatusResource handles requests for server status information resource.
// It provides current server health, version, and operational status.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for server status
//
// Returns:
//   - A slice containing server status information as JSON content
//   - An error if JSON marshaling fails
//
// The status includes server health, timestamp, version, and the registered
// capabilities loaded from the metadata cache.
func handleStatusResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	// Load capability metadata from the cache
	prompts, err := loadPromptsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts config: %w", err)
	}

	tools, err := loadToolsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tools config: %w", err)
	}

	resources, err := loadResourcesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load resources config: %w", err)
	}

	statusInfo := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"server":    "MCP Forge Server",
		"version":   version.Version,
		"capabilities": map[string]any{
			"tools":     tools,
			"resources": resources,
			"prompts":   prompts,
		},
		"resourceTypes": []string{"text", "binary", "json"},
	}

	jsonData, err := json.MarshalIndent(statusInfo, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal status info: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "status://server-status",
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
