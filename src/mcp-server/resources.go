// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// scaffoldTemplates maps the template resource names exposed under
// forge://templates/ to their embedded files. The order here is the listing
// order presented to MCP clients.
var scaffoldTemplates = []struct {
	Name        string
	File        string
	Description string
}{
	{"go-mod", "go-mod.tmpl", "go.mod scaffold for a generated MCP server project"},
	{"main-go", "main-go.tmpl", "main.go entry point scaffold"},
	{"server-go", "server-go.tmpl", "server.go scaffold wiring the MCP server"},
	{"tools-go", "tools-go.tmpl", "tools.go scaffold with an example tool"},
	{"resources-go", "resources-go.tmpl", "resources.go scaffold with an example resource"},
	{"errors-go", "errors-go.tmpl", "errors.go scaffold with sentinel errors"},
	{"tool-stub", "tool-stub.tmpl", "standalone tool handler stub"},
	{"resource-stub", "resource-stub.tmpl", "standalone resource handler stub"},
	{"readme", "readme.tmpl", "README.md scaffold"},
}

// createResources creates and returns all MCP resource definitions with their handlers.
//
// The server exposes the raw scaffold templates (so clients can inspect what
// the generators render), version and capability information, the
// getting-started guide, and a live server status resource.
func createResources() []server.ServerResource {
	resources := make([]server.ServerResource, 0, len(scaffoldTemplates)+3)

	for _, t := range scaffoldTemplates {
		resources = append(resources, server.ServerResource{
			Resource: mcp.NewResource(
				"forge://templates/"+t.Name,
				"Template: "+t.Name,
				mcp.WithResourceDescription(t.Description),
				mcp.WithMIMEType("text/plain"),
			),
			Handler: makeTemplateResourceHandler("forge://templates/"+t.Name, t.File),
		})
	}

	resources = append(resources,
		server.ServerResource{
			Resource: mcp.NewResource(
				"forge://info/version",
				"Server Version",
				mcp.WithResourceDescription("Server version and capability information"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		server.ServerResource{
			Resource: mcp.NewResource(
				"forge://docs/getting-started",
				"Getting Started",
				mcp.WithResourceDescription("Guide for generating and running an MCP server project"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleGettingStartedResource,
		},
		server.ServerResource{
			Resource: mcp.NewResource(
				"status://server-status",
				"Server Status",
				mcp.WithResourceDescription("Current server health and operational status"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleStatusResource,
		},
	)

	return resources
}
