// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server framework for MCP Forge.
// It implements the Model Context Protocol ([MCP]) server with tools for
// scaffolding new MCP servers in Go, including project generation, tool and
// resource stub generation, README generation, and manifest validation.
// The package uses a builder pattern for server construction and routes all
// tool calls through a central dispatcher with typed error classification.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
