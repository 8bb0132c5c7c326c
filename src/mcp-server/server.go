// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/h315uk3/mcp-forge/src/logger"
	"github.com/h315uk3/mcp-forge/src/mcp-server/templates"
	"github.com/h315uk3/mcp-forge/src/version"
	"github.com/mark3labs/mcp-go/server"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// GetVersion provides access to the server's version string, which is set
// during server initialization via the Run function. This allows other
// components to access the version information for logging, user-agent
// strings, or API responses.
//
// Returns:
//   - string: The current server version (e.g., "0.1.0")
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// newServerLogger builds the structured logger used while the server owns
// stdout for the MCP wire protocol. Logs go to the configured file when set,
// otherwise they are discarded so they cannot corrupt the protocol stream.
func newServerLogger(config *Config) logger.Logger {
	if config.Logging.File != "" {
		if f, err := os.OpenFile(config.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return logger.NewMCPLogger(f, false)
		}
	}
	return logger.NewMCPLogger(io.Discard, true)
}

// Run starts the MCP server exposing the code generation tools.
//
// Run initializes and starts the MCP server with all generation
// capabilities: project scaffolding, tool and resource stub generation,
// README generation, and manifest validation. The server supports graceful
// shutdown on SIGINT and SIGTERM.
//
// Parameters:
//   - version: Version string to set for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loads config from MCP_FORGE_CONFIG_FILE environment variable
//   - Falls back to default config if environment variable not set
//   - MCP_FORGE_OUTPUT_DIR overrides the output base directory
//
// Server Lifecycle:
//  1. Load configuration from environment
//  2. Build the dispatcher from the embedded template set
//  3. Set up signal handling for graceful shutdown
//  4. Build MCP server using ServerBuilder pattern
//  5. Start stdio server with context cancellation support
//  6. Wait for either server error or shutdown signal
func Run(version string) error {
	// Set the version for GetVersion
	appVersion = version

	// Load configuration
	config, err := loadConfig(os.Getenv("MCP_FORGE_CONFIG_FILE"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := newServerLogger(config)

	// Build the dispatcher backed by the embedded templates
	dispatcher, err := newDispatcher(config, log)
	if err != nil {
		return fmt.Errorf("failed to build dispatcher: %w", err)
	}

	// Create tools (called once and reused)
	tools := createTools(dispatcher)

	// Load server instructions with tool information
	//
	// This approach is better as it uses dynamic content generation based on tools,
	// instead of hardcoded values
	instructions, err := loadInstructions(tools)
	if err != nil {
		return fmt.Errorf("failed to load instructions: %w", err)
	}

	// Create cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create MCP server using ServerBuilder for better testability
	s, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(templates.MagicEmbed).
		WithVersion(version).
		WithDispatcher(dispatcher).
		WithTools(tools...).
		WithResources(createResources()...).
		WithPrompts(createPrompts()...).
		WithInstructions(instructions).
		WithPopulate().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	// Create stdio server to connect with our context
	stdioServer := server.NewStdioServer(s)

	// Start server with graceful shutdown support
	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		// Graceful shutdown triggered by signal
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
