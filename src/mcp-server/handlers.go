// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"maps"
	"strings"
	"sync"
	"text/template"

	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/server"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions parses the template with dynamic data from the provided tools and returns the rendered instructions as a string for MCP client initialization.
//
// Parameters:
//   - tools: Slice of tool definitions registered with the server
//
// Returns:
//   - string: The rendered instruction text describing server capabilities and tool usage
//   - error: If the embedded file cannot be read or template parsing fails
//
// The instructions provide MCP clients with comprehensive guidance on using
// all available generation tools and workflows.
func loadInstructions(tools []ToolDefinition) (string, error) {
	// Read the template file
	templateBytes, err := templates.MagicEmbed.ReadFile("forge-instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	// Extract tool info and build role mappings for template
	var toolInfos []toolInfo
	toolRoles := make(map[string]string)

	for _, tool := range tools {
		toolName := string(tool.Tool.Name)
		toolInfos = append(toolInfos, toolInfo{
			Name:        toolName,
			Description: tool.Tool.Description,
		})

		// Use the Role defined in the tool definition
		if tool.Role != "" {
			toolRoles[tool.Role] = toolName
		}
	}

	// Prepare data for template
	data := instructionData{
		Tools:     toolInfos,
		ToolRoles: toolRoles,
	}

	// Parse the template
	tmpl, err := template.New("instructions").Parse(string(templateBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	// Execute the template
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return buf.String(), nil
}

// Cache structure for server capabilities
type serverCache struct {
	prompts   []map[string]any
	tools     []map[string]any
	resources []map[string]any
}

// Global cache instance with sync.Once for thread-safe lazy initialization
var (
	cache     *serverCache
	cacheOnce sync.Once
)

// getServerCache returns the lazily initialized server cache.
// Uses sync.Once to ensure initialization happens exactly once, even with concurrent access.
func getServerCache() *serverCache {
	cacheOnce.Do(func() {
		cache = &serverCache{
			// Cache is populated dynamically through populate*MetadataCache functions
			// called from the ServerBuilder's Build() method when WithPopulate() is used
		}
	})
	return cache
}

// loadPromptsConfig loads the prompts configuration from the cache.
// Returns the prompts array with user-facing information only (filters out internal fields).
func loadPromptsConfig() ([]map[string]any, error) {
	cache := getServerCache()
	return cache.prompts, nil
}

// loadToolsConfig loads the tools configuration from the cache.
// Returns the tool metadata registered during server construction.
func loadToolsConfig() ([]map[string]any, error) {
	cache := getServerCache()
	return cache.tools, nil
}

// loadResourcesConfig loads the resources configuration from the cache.
// Returns the resources with user-facing information only (filters out internal fields).
func loadResourcesConfig() ([]map[string]any, error) {
	cache := getServerCache()
	return cache.resources, nil
}

// populateToolMetadataCache extracts metadata from created tools and caches it for resource handlers.
// This function is called once during server initialization via the ServerBuilder's Build() method
// when WithPopulate() is used. It processes tools created by the builder's tool registration methods.
func populateToolMetadataCache(serverCache *serverCache, tools []ToolDefinition) {
	serverCache.tools = make([]map[string]any, 0, len(tools))

	for _, toolDef := range tools {
		tool := toolDef.Tool
		metadata := map[string]any{
			"name":        tool.Name,
			"description": tool.Description,
		}
		serverCache.tools = append(serverCache.tools, metadata)
	}
}

// populatePromptMetadataCache extracts metadata from created prompts and caches it for resource handlers.
// This function is called once during server initialization via the ServerBuilder's Build() method
// when WithPopulate() is used. It processes prompts created by the builder's prompt registration methods.
func populatePromptMetadataCache(serverCache *serverCache, prompts []server.ServerPrompt) {
	serverCache.prompts = make([]map[string]any, 0, len(prompts))

	for _, promptDef := range prompts {
		prompt := promptDef.Prompt
		metadata := map[string]any{
			"name":        prompt.Name,
			"description": prompt.Description,
		}

		// Extract arguments
		if len(prompt.Arguments) > 0 {
			args := make([]map[string]any, 0, len(prompt.Arguments))
			for _, arg := range prompt.Arguments {
				argMap := map[string]any{
					"name":        arg.Name,
					"description": arg.Description,
					"required":    arg.Required,
				}
				args = append(args, argMap)
			}
			metadata["arguments"] = args
		}

		// Extract meta information
		if prompt.Meta != nil {
			// Convert Meta struct to map for JSON serialization
			metaMap := make(map[string]any)
			maps.Copy(metaMap, prompt.Meta.AdditionalFields)
			// Remove any null/empty progressToken that might be set by MCP library
			if progressToken, exists := metaMap["progressToken"]; exists {
				if progressToken == nil || progressToken == "" || progressToken == "null" {
					delete(metaMap, "progressToken")
				}
			}
			if len(metaMap) > 0 {
				metadata["meta"] = metaMap
			}
		}

		serverCache.prompts = append(serverCache.prompts, metadata)
	}
}

// populateResourceMetadataCache extracts metadata from created resources and caches it for resource handlers.
// This function is called once during server initialization via the ServerBuilder's Build() method
// when WithPopulate() is used. It processes resources created by the builder's resource registration methods.
func populateResourceMetadataCache(serverCache *serverCache, resources []server.ServerResource) {
	serverCache.resources = make([]map[string]any, 0, len(resources))

	for _, resourceDef := range resources {
		resource := resourceDef.Resource
		metadata := map[string]any{
			"uri":         resource.URI,
			"name":        resource.Name,
			"description": resource.Description,
			"mimeType":    resource.MIMEType,
		}

		// Extract meta information
		if resource.Meta != nil {
			// Convert Meta struct to map for JSON serialization
			metaMap := make(map[string]any)
			maps.Copy(metaMap, resource.Meta.AdditionalFields)
			// Remove any null/empty progressToken that might be set by MCP library
			if progressToken, exists := metaMap["progressToken"]; exists {
				if progressToken == nil || progressToken == "" || progressToken == "null" {
					delete(metaMap, "progressToken")
				}
			}
			if len(metaMap) > 0 {
				metadata["meta"] = metaMap
			}
		}

		serverCache.resources = append(serverCache.resources, metadata)
	}
}
