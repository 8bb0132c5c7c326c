// Copyright (c) 2025 h315uk3 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the MCP Forge toolkit.
// It implements a Cobra-based CLI whose default behavior is starting the MCP
// server over stdio, plus a validate subcommand for checking server manifests
// against the publication rules without a protocol round-trip. The package
// integrates with the mcp-server CLI framework for dynamic help text,
// configuration handling, and graceful shutdown.
package cli
