// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/h315uk3/mcp-forge/src/internal/forge/dispatch"
	"github.com/h315uk3/mcp-forge/src/internal/forge/generate"
	"github.com/h315uk3/mcp-forge/src/internal/forge/render"
	"github.com/h315uk3/mcp-forge/src/logger"
	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerConfig holds configuration for the [MCP] server, including version, config, and embedded filesystem.
// It is used to initialize the server with necessary dependencies and settings.
//
// Fields:
//   - Version: The server version string (e.g., "1.0.0")
//   - Config: Pointer to the server configuration containing generation defaults
//   - Embed: Embedded filesystem for static resources like templates and documentation
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerConfig struct {
	Version string
	Config  *Config
	Embed   templates.EmbedFS
}

// ToolHandler defines the signature for tool handlers that matches [MCP] server expectations.
// It processes tool calls and returns results.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: The MCP tool call request containing arguments and metadata
//
// Returns:
//   - The tool execution result or an error if the tool failed
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ResourceHandler defines the signature for resource handlers that provide static or dynamic resources.
// It processes resource read requests and returns the resource contents.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: The MCP resource read request containing the resource URI
//
// Returns:
//   - A slice of resource contents or an error if the resource cannot be read
//
// Resource handlers can return multiple content items for complex resources.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler defines the signature for prompt handlers that provide predefined prompts.
// It processes prompt requests and returns prompt content with optional arguments.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: The MCP prompt request containing the prompt name and arguments
//
// Returns:
//   - The prompt result containing messages and description, or an error if the prompt is not found
//
// Prompt handlers are used for guided workflows like project scaffolding or manifest review.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition holds a tool definition and its handler.
// It pairs an MCP tool specification with its implementation function.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Stable role identifier used by the instructions template (e.g., "projectGenerator")
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It consolidates all required components for server initialization using the builder pattern.
//
// Fields:
//   - Config: Server configuration containing generation defaults
//   - Embed: Embedded filesystem for static resources and templates
//   - Version: Server version string for identification
//   - Dispatcher: Central dispatcher routing tool calls to the generator set
//   - Tools: List of tool definitions registered with the server
//   - Resources: List of static and dynamic resources provided by the server
//   - Prompts: List of predefined prompts for guided workflows
//   - Instructions: Server instructions sent to MCP clients during initialization
//   - PopulateCache: Whether to populate the capability metadata cache for resource handlers
//
// This struct is used internally by ServerBuilder and should not be instantiated directly.
type ServerDependencies struct {
	Config        *Config
	Embed         templates.EmbedFS
	Version       string
	Dispatcher    *dispatch.Dispatcher
	Tools         []ToolDefinition
	Resources     []server.ServerResource
	Prompts       []server.ServerPrompt
	Instructions  string
	PopulateCache bool
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
// It implements the builder pattern to configure and create MCP servers with all required components.
//
// The builder allows chaining configuration methods and provides default implementations
// for common dependencies. Use NewServerBuilder() to create an instance, chain configuration
// methods, and call Build() to create the server.
//
// Example:
//
//	builder := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithDispatcher(dispatcher).
//	    WithTools(tools...)
//	server, err := builder.Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
// It initializes a ServerBuilder instance that can be configured using the fluent interface methods.
//
// Returns:
//   - A pointer to a new ServerBuilder instance ready for configuration
//
// The returned builder has no dependencies configured and should be chained with
// configuration methods before calling Build().
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration containing generation defaults.
//
// Parameters:
//   - config: Pointer to the server configuration (can be nil for built-in defaults)
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for static resources and templates.
// It configures the server with an embedded filesystem containing scaffold
// templates and documentation.
//
// Parameters:
//   - embed: The embedded filesystem (typically templates.MagicEmbed)
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// The embedded filesystem is used to serve static resources like scaffold
// templates and the getting-started guide. If not set, some resources may not
// be available.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the server version string used for identification.
//
// Parameters:
//   - version: The server version string (e.g., "1.0.0" or "v1.2.3")
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithDispatcher sets the dispatcher that routes tool calls to the generator set.
// The dispatcher owns operation lookup, argument validation, identifier
// sanitization, and error classification.
//
// Parameters:
//   - d: The dispatcher instance shared by all tool handlers
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithDispatcher(d *dispatch.Dispatcher) *ServerBuilder {
	b.deps.Dispatcher = d
	return b
}

// WithTools adds tool definitions to the server.
// It registers multiple tools that can be called by MCP clients.
//
// Parameters:
//   - tools: Variable number of ToolDefinition structs containing tool specs and handlers
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds static and dynamic resources to the MCP server.
// It registers resources that can be read by MCP clients using resource URIs.
//
// Parameters:
//   - resources: Variable number of server.ServerResource structs containing resource specs and handlers
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// Resources can provide static content (like scaffold templates) or dynamic content
// (like server status). Clients access resources using URIs like "forge://templates/go-mod".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts to the MCP server for guided workflows.
// It registers prompts that provide structured interactions for common tasks.
//
// Parameters:
//   - prompts: Variable number of server.ServerPrompt structs containing prompt specs and handlers
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// Prompts are used for workflows like project scaffolding or manifest review,
// providing clients with predefined conversation starters and argument schemas.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the server instructions sent to MCP clients during
// the initialization handshake.
//
// Parameters:
//   - instructions: Rendered instruction text describing server capabilities
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithPopulate enables capability metadata cache population during Build.
// When enabled, resource handlers can serve cached tool/resource/prompt
// metadata through the version and status resources.
//
// Returns:
//   - The ServerBuilder instance for method chaining
func (b *ServerBuilder) WithPopulate() *ServerBuilder {
	b.deps.PopulateCache = true
	return b
}

// WithDefaultTools adds the default MCP Forge generation tools to the server.
// It automatically registers the standard generation tools using createTools,
// backed by the dispatcher configured via WithDispatcher.
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// This includes tools for project scaffolding, tool and resource stub
// generation, README generation, manifest validation, and resource usage
// reporting. WithDispatcher must be called first.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, createTools(b.deps.Dispatcher)...)
	return b
}

// Build creates the [MCP] server with all configured dependencies.
// It validates the configuration and constructs a fully configured MCP server instance.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if the configuration is invalid or server creation fails
//
// The method registers all tools, resources, and prompts, optionally populates
// the capability metadata cache, and returns a ready-to-use server. The server
// will handle MCP protocol communication and route requests to the appropriate
// handlers.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer("MCP Forge", b.deps.Version, opts...)

	// Add tools
	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}

	// Add resources
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	// Add prompts
	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	// Populate capability metadata cache for the version and status resources
	if b.deps.PopulateCache {
		cache := getServerCache()
		populateToolMetadataCache(cache, b.deps.Tools)
		populateResourceMetadataCache(cache, b.deps.Resources)
		populatePromptMetadataCache(cache, b.deps.Prompts)
	}

	return s, nil
}

// newDispatcher wires the generator set and operation catalog into a
// dispatcher using the provided configuration. The embedded template set is
// compiled once here; a compile failure means the binary shipped with broken
// templates and is returned as an error.
func newDispatcher(config *Config, log logger.Logger) (*dispatch.Dispatcher, error) {
	engine, err := render.NewEngine(templates.MagicEmbed, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to compile scaffold templates: %w", err)
	}

	opts := generate.Options{}
	maxNameLen := 0
	if config != nil {
		opts = config.generateOptions()
		maxNameLen = config.Defaults.MaxNameLength
	}
	gen := generate.New(engine, opts)

	catalog, err := dispatch.NewCatalog(dispatch.DefaultTools(maxNameLen)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build operation catalog: %w", err)
	}

	return dispatch.New(catalog, gen, log), nil
}
