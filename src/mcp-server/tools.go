// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/h315uk3/mcp-forge/src/internal/forge/dispatch"
	"github.com/h315uk3/mcp-forge/src/internal/forge/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolRoles maps operation names to the stable role identifiers used by the
// instructions template.
var toolRoles = map[string]string{
	dispatch.OpGenerateProject:  "projectGenerator",
	dispatch.OpGenerateTool:     "toolGenerator",
	dispatch.OpGenerateResource: "resourceGenerator",
	dispatch.OpGenerateReadme:   "readmeGenerator",
	dispatch.OpValidateManifest: "manifestValidator",
}

// createTools creates and returns all MCP tool definitions with their handlers.
// The generation tools are derived from the dispatcher's descriptor table so
// the MCP input schemas always match what the dispatcher actually validates.
//
// Parameters:
//   - d: The dispatcher that executes generation operations
//
// Returns:
//   - A slice of ToolDefinition ready for registration with the server
//
// The function defines the following tools:
//   - generate_project: Generates a complete Go MCP server project scaffold
//   - generate_tool: Generates a tool handler stub with a matching test file
//   - generate_resource: Generates a resource handler stub (text, binary, or json)
//   - generate_readme: Generates README.md content, optionally writing it to disk
//   - validate_manifest: Validates a manifest document and reports every violation
//   - get_resource_usage: Provides server resource usage statistics
//
// Each tool includes proper parameter definitions, descriptions, and enum
// constraints as required by the MCP specification.
func createTools(d *dispatch.Dispatcher) []ToolDefinition {
	// Derive descriptors from the dispatcher's catalog so the advertised
	// input schemas carry the same limits the dispatcher enforces
	descriptors := dispatch.DefaultTools(0)
	if d != nil {
		catalog := d.Catalog()
		descriptors = descriptors[:0]
		for _, name := range catalog.OpsOf(dispatch.OpTool) {
			if desc, ok := catalog.Lookup(name); ok {
				descriptors = append(descriptors, desc)
			}
		}
	}

	tools := make([]ToolDefinition, 0, len(descriptors)+1)
	for _, desc := range descriptors {
		tools = append(tools, ToolDefinition{
			Tool:    toolFromDescriptor(desc),
			Handler: makeDispatchHandler(d, desc.Name),
			Role:    toolRoles[desc.Name],
		})
	}

	// Diagnostic tool outside the generation catalog
	tools = append(tools, ToolDefinition{
		Tool: mcp.NewTool("get_resource_usage",
			mcp.WithDescription("Get current resource usage statistics including memory, GC, and CPU information"),
			mcp.WithBoolean("detailed",
				mcp.Description("Include detailed memory breakdown (default: false)"),
				mcp.DefaultBool(false),
			),
			mcp.WithString("format",
				mcp.Description("Output format: 'json' or 'markdown' (default: 'json')"),
				mcp.DefaultString("json"),
			),
		),
		Handler: handleGetResourceUsage,
		Role:    "resourceMonitor",
	})

	return tools
}

// toolFromDescriptor converts a dispatch descriptor into an MCP tool
// definition. Every generation argument is a string; required, enum, and
// description attributes carry over from the field specs.
func toolFromDescriptor(desc dispatch.Descriptor) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(desc.Description)}
	for _, f := range desc.Args.Fields {
		opts = append(opts, mcp.WithString(f.Name, fieldOptions(f)...))
	}
	return mcp.NewTool(desc.Name, opts...)
}

// fieldOptions builds the MCP property options for one argument field.
func fieldOptions(f schema.FieldSpec) []mcp.PropertyOption {
	var opts []mcp.PropertyOption
	if f.Required {
		opts = append(opts, mcp.Required())
	}
	if f.Description != "" {
		opts = append(opts, mcp.Description(f.Description))
	}
	if len(f.Enum) > 0 {
		opts = append(opts, mcp.Enum(f.Enum...))
	}
	return opts
}
